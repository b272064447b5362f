package lexer

import "fmt"

// SnippetContext is how many characters of surrounding context a LexError
// exposes on each side of the offending byte.
const SnippetContext = 5

// A LexError reports a byte the scanner cannot form a token from. It keeps
// the raw line and the offending column so a renderer can point at the
// exact character.
type LexError struct {
	Line   string // the raw line, terminator stripped
	Column int    // zero-based index of the offending byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at column %d", e.Line[e.Column], e.Column+1)
}

// Snippet returns the offending byte with up to SnippetContext characters
// of context on each side, clipped to the line bounds.
func (e *LexError) Snippet() (before string, ch byte, after string) {
	start := e.Column - SnippetContext
	if start < 0 {
		start = 0
	}
	end := e.Column + 1 + SnippetContext
	if end > len(e.Line) {
		end = len(e.Line)
	}
	return e.Line[start:e.Column], e.Line[e.Column], e.Line[e.Column+1 : end]
}
