package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

// KindEndOfFile is deliberately the zero value: a zero Token reads as a
// bare end-of-input marker rather than as an empty number.
const (
	KindEndOfFile Kind = iota
	KindNumber
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindLParen
	KindRParen
	KindEndOfExpression
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindPlus:
		return "+"
	case KindMinus:
		return "-"
	case KindStar:
		return "*"
	case KindSlash:
		return "/"
	case KindLParen:
		return "("
	case KindRParen:
		return ")"
	case KindEndOfExpression:
		return "end of expression"
	case KindEndOfFile:
		return "end of input"
	}
	return "unknown"
}

// Token is one lexical unit of a line. Lexeme holds the literal digit run
// for numbers and is empty for every other kind. Column is the zero-based
// byte offset of the token's first character in the line.
type Token struct {
	Kind   Kind
	Lexeme string
	Column int
}

// String returns the display lexeme used in diagnostics.
func (t Token) String() string {
	if t.Kind == KindNumber {
		return t.Lexeme
	}
	return t.Kind.String()
}
