package parser

import "fmt"

// ErrorKind classifies a SyntaxError.
type ErrorKind uint8

const (
	// ExpectedEndOfExpression: a complete expression was followed by
	// something other than the end of the line or of the input.
	ExpectedEndOfExpression ErrorKind = iota
	// UnmatchedOpenParen: a parenthesized group was not closed.
	UnmatchedOpenParen
	// ExpectedOperandOrParen: an operand position held neither a number
	// nor an opening parenthesis.
	ExpectedOperandOrParen
)

// A SyntaxError reports the token that violated the expression grammar.
// Parsing of the line stops at the first one.
type SyntaxError struct {
	Kind   ErrorKind
	Lexeme string // display lexeme of the offending token
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case ExpectedEndOfExpression:
		return fmt.Sprintf("expected end of expression near %q", e.Lexeme)
	case UnmatchedOpenParen:
		return "expected closing ) before end of expression"
	case ExpectedOperandOrParen:
		return fmt.Sprintf("expected an integer or ( near %q", e.Lexeme)
	}
	return "syntax error"
}
