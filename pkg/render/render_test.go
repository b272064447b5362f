package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devbumbuna/bodmas/pkg/interp/eval"
	"github.com/devbumbuna/bodmas/pkg/interp/lexer"
	"github.com/devbumbuna/bodmas/pkg/interp/parser"
	"github.com/devbumbuna/bodmas/pkg/render"
)

func newRenderer() (*render.Renderer, *strings.Builder, *strings.Builder) {
	var out, errOut strings.Builder
	return render.New(&out, &errOut, false), &out, &errOut
}

func TestRendererResult(t *testing.T) {
	r, out, errOut := newRenderer()
	r.Result(42)
	r.Result(-7)

	assert.Equal(t, "42\n-7\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRendererLexDiagnostic(t *testing.T) {
	r, out, errOut := newRenderer()
	r.Diagnostic(&lexer.LexError{Line: "1+2=3", Column: 3})

	assert.Empty(t, out.String())
	assert.Equal(t,
		"LexError: unexpected character.\n"+
			"\t1+2=3\n"+
			"\t~~~^~\n",
		errOut.String())
}

func TestRendererLexDiagnosticClipped(t *testing.T) {
	r, _, errOut := newRenderer()
	r.Diagnostic(&lexer.LexError{Line: "1234567=7654321", Column: 7})

	lines := strings.Split(errOut.String(), "\n")
	assert.Equal(t, "\t34567=76543", lines[1], "five characters of context each side")
	assert.Equal(t, "\t~~~~~^~~~~~", lines[2])
}

func TestRendererSyntaxDiagnostic(t *testing.T) {
	r, _, errOut := newRenderer()
	r.Diagnostic(&parser.SyntaxError{Kind: parser.ExpectedEndOfExpression, Lexeme: ")"})

	assert.Equal(t, "SyntaxError: expected end of expression near \")\".\n", errOut.String())
}

func TestRendererRuntimeDiagnostics(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{eval.ErrDivisionByZero, "RuntimeError: division by zero.\n"},
		{eval.ErrStackOverflow, "RuntimeError: expression too deeply nested.\n"},
		{eval.ErrStackUnderflow, "RuntimeError: evaluation stack underflow.\n"},
	}

	for _, tt := range tests {
		r, _, errOut := newRenderer()
		r.Diagnostic(tt.err)
		assert.Equal(t, tt.want, errOut.String())
	}
}
