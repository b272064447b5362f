// Package source supplies logical input lines to the expression pipeline.
// It owns the collaborator duties the pipeline does not: buffering,
// terminator stripping, blank-line filtering and the interactive prompt.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// MaxLineSize bounds a single input line in bytes.
const MaxLineSize = 1024

// ErrLineTooLong reports a line over MaxLineSize. Unlike expression
// errors it ends the whole run, since the rest of the over-long line
// cannot be resynchronized reliably.
var ErrLineTooLong = errors.New("source: line too long")

// Line is one logical input line with its terminator stripped.
type Line struct {
	Text   []byte
	Number int  // 1-based position in the input
	AtEOF  bool // the input ended with no trailing terminator
}

// Reader hands out logical lines one at a time. Blank and whitespace-only
// lines are filtered here and never reach the lexer.
type Reader struct {
	br     *bufio.Reader
	prompt io.Writer // nil when not interactive
	ps     string
	lineno int
	eof    bool
}

// NewReader creates a line reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// WithPrompt makes the reader print ps to w before each read, for
// interactive sessions.
func (r *Reader) WithPrompt(w io.Writer, ps string) *Reader {
	r.prompt = w
	r.ps = ps
	return r
}

// Next returns the next non-blank line, or io.EOF once the input is
// exhausted.
func (r *Reader) Next() (Line, error) {
	for {
		if r.eof {
			return Line{}, io.EOF
		}
		if r.prompt != nil {
			fmt.Fprint(r.prompt, r.ps)
		}

		text, err := r.br.ReadBytes('\n')
		atEOF := false
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			r.eof = true
			atEOF = true
		default:
			return Line{}, err
		}

		if len(text) > MaxLineSize {
			return Line{}, ErrLineTooLong
		}

		hadTerminator := bytes.HasSuffix(text, []byte("\n"))
		text = bytes.TrimSuffix(text, []byte("\n"))
		text = bytes.TrimSuffix(text, []byte("\r"))
		if hadTerminator || len(text) > 0 {
			r.lineno++
		}
		if len(bytes.TrimSpace(text)) == 0 {
			// Skip blank lines; on a terminal the prompt reappears at the
			// top of the loop.
			continue
		}
		return Line{Text: text, Number: r.lineno, AtEOF: atEOF}, nil
	}
}
