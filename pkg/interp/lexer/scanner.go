package lexer

// Scanner performs lexical analysis on a single source line. The line is
// handed over with its terminator already stripped; atEOF marks a line that
// ended because the input ran out rather than at a line break.
type Scanner struct {
	line   []byte
	cursor int
	atEOF  bool
}

// NewScanner creates a scanner for one line.
func NewScanner(line []byte, atEOF bool) *Scanner {
	return &Scanner{line: line, atEOF: atEOF}
}

// Reset re-initializes the scanner with a new line for reuse.
func (s *Scanner) Reset(line []byte, atEOF bool) {
	s.line = line
	s.cursor = 0
	s.atEOF = atEOF
}

// Next returns the next token from the line. Once the line is exhausted it
// returns KindEndOfExpression, or KindEndOfFile when the input ended with
// no line break.
func (s *Scanner) Next() (Token, error) {
	s.skipWhitespace()

	if s.cursor >= len(s.line) {
		if s.atEOF {
			return Token{Kind: KindEndOfFile, Column: s.cursor}, nil
		}
		return Token{Kind: KindEndOfExpression, Column: s.cursor}, nil
	}

	start := s.cursor
	ch := s.line[s.cursor]

	if isDigit(ch) {
		return s.scanNumber(), nil
	}

	s.cursor++
	switch ch {
	case '+':
		return Token{Kind: KindPlus, Column: start}, nil
	case '-':
		return Token{Kind: KindMinus, Column: start}, nil
	case '*':
		return Token{Kind: KindStar, Column: start}, nil
	case '/':
		return Token{Kind: KindSlash, Column: start}, nil
	case '(':
		return Token{Kind: KindLParen, Column: start}, nil
	case ')':
		return Token{Kind: KindRParen, Column: start}, nil
	}

	return Token{}, &LexError{Line: string(s.line), Column: start}
}

// Tokenize runs a scanner over one line and collects the full token batch.
// The batch always ends with an EndOfExpression token, or with EndOfFile
// when the input ended without a line terminator; an empty line at end of
// input yields a lone EndOfFile token. On a lexical error no batch is
// returned at all.
func Tokenize(line []byte, atEOF bool) ([]Token, error) {
	s := NewScanner(line, atEOF)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEndOfExpression || tok.Kind == KindEndOfFile {
			return tokens, nil
		}
	}
}

// scanNumber consumes a maximal run of decimal digits. Literals are
// unsigned at this level; a leading '-' is its own Minus token.
func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.line) && isDigit(s.line[s.cursor]) {
		s.cursor++
	}
	return Token{
		Kind:   KindNumber,
		Lexeme: string(s.line[start:s.cursor]),
		Column: start,
	}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.line) {
		switch s.line[s.cursor] {
		case ' ', '\t', '\r', '\v', '\f':
			s.cursor++
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
