package lexer_test

import (
	"errors"
	"testing"

	"github.com/devbumbuna/bodmas/pkg/interp/lexer"
)

func TestTokenizeDigitRun(t *testing.T) {
	tests := []string{"0", "8", "52", "007", "9223372036854775807"}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			tokens, err := lexer.Tokenize([]byte(src), false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tokens) != 2 {
				t.Fatalf("expected number + terminator, got %d tokens", len(tokens))
			}
			if tokens[0].Kind != lexer.KindNumber || tokens[0].Lexeme != src {
				t.Errorf("expected Number(%q), got %v(%q)", src, tokens[0].Kind, tokens[0].Lexeme)
			}
			if tokens[1].Kind != lexer.KindEndOfExpression {
				t.Errorf("expected EndOfExpression, got %v", tokens[1].Kind)
			}
		})
	}
}

func TestTokenizeOperators(t *testing.T) {
	tokens, err := lexer.Tokenize([]byte(" ( 1 + 2 ) * 3 - 4 / 5 "), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []lexer.Kind{
		lexer.KindLParen,
		lexer.KindNumber,
		lexer.KindPlus,
		lexer.KindNumber,
		lexer.KindRParen,
		lexer.KindStar,
		lexer.KindNumber,
		lexer.KindMinus,
		lexer.KindNumber,
		lexer.KindSlash,
		lexer.KindNumber,
		lexer.KindEndOfExpression,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, kind := range expected {
		if tokens[i].Kind != kind {
			t.Errorf("token %d: expected %v, got %v", i, kind, tokens[i].Kind)
		}
	}
}

func TestTokenizeNoUnaryMinus(t *testing.T) {
	tokens, err := lexer.Tokenize([]byte("-5"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != lexer.KindMinus {
		t.Errorf("expected Minus first, got %v", tokens[0].Kind)
	}
	if tokens[1].Kind != lexer.KindNumber || tokens[1].Lexeme != "5" {
		t.Errorf("expected Number(5), got %v(%q)", tokens[1].Kind, tokens[1].Lexeme)
	}
}

func TestTokenizeTerminators(t *testing.T) {
	tokens, err := lexer.Tokenize([]byte("1+2"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last := tokens[len(tokens)-1]; last.Kind != lexer.KindEndOfFile {
		t.Errorf("unterminated final line should end in EndOfFile, got %v", last.Kind)
	}

	tokens, err = lexer.Tokenize(nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != lexer.KindEndOfFile {
		t.Errorf("bare end of input should yield a lone EndOfFile, got %v", tokens)
	}
}

func TestTokenizeUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		src    string
		column int
	}{
		{"1+2=3", 3},
		{"x", 0},
		{"10 % 2", 3},
		{"1.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tokens, err := lexer.Tokenize([]byte(tt.src), false)
			if tokens != nil {
				t.Errorf("no token batch should survive a lexical error")
			}
			var lexErr *lexer.LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected LexError, got %v", err)
			}
			if lexErr.Column != tt.column {
				t.Errorf("expected column %d, got %d", tt.column, lexErr.Column)
			}
		})
	}
}

func TestLexErrorSnippet(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column int
		before string
		after  string
	}{
		{"mid line", "123456=654321", 6, "23456", "65432"},
		{"start of line", "=1+2", 0, "", "1+2"},
		{"end of line", "1+2=", 3, "1+2", ""},
		{"short line", "a", 0, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &lexer.LexError{Line: tt.line, Column: tt.column}
			before, ch, after := e.Snippet()
			if before != tt.before || after != tt.after {
				t.Errorf("Snippet() = %q, %q; expected %q, %q", before, after, tt.before, tt.after)
			}
			if ch != tt.line[tt.column] {
				t.Errorf("Snippet() ch = %q, expected %q", ch, tt.line[tt.column])
			}
		})
	}
}

func TestScannerReset(t *testing.T) {
	s := lexer.NewScanner([]byte("1+2"), false)
	for {
		tok, err := s.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Kind == lexer.KindEndOfExpression {
			break
		}
	}

	s.Reset([]byte("42"), false)
	tok, err := s.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != lexer.KindNumber || tok.Lexeme != "42" || tok.Column != 0 {
		t.Errorf("after Reset expected Number(42) at column 0, got %v(%q) at %d",
			tok.Kind, tok.Lexeme, tok.Column)
	}
}
