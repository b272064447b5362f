// Package render turns pipeline outcomes into user-facing text. The core
// packages emit structured results and errors only; every formatting and
// color decision lives here.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devbumbuna/bodmas/pkg/interp/eval"
	"github.com/devbumbuna/bodmas/pkg/interp/lexer"
	"github.com/devbumbuna/bodmas/pkg/interp/parser"
)

var (
	resultStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Bold(true)
)

// Renderer writes results to out and diagnostics to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

// New creates a renderer. With color disabled all styling is bypassed, so
// output is byte-for-byte deterministic.
func New(out, errOut io.Writer, color bool) *Renderer {
	return &Renderer{out: out, errOut: errOut, color: color}
}

// Result renders a successfully computed value.
func (r *Renderer) Result(v int64) {
	fmt.Fprintln(r.out, r.paint(resultStyle, strconv.FormatInt(v, 10)))
}

// Diagnostic renders a structured pipeline error. Lexical errors get a
// caret snippet pointing at the offending character; syntax and runtime
// errors get their category and message.
func (r *Renderer) Diagnostic(err error) {
	var lexErr *lexer.LexError
	var synErr *parser.SyntaxError
	switch {
	case errors.As(err, &lexErr):
		r.caretSnippet(lexErr)
	case errors.As(err, &synErr):
		fmt.Fprintln(r.errOut, r.paint(errorStyle, "SyntaxError: "+synErr.Error()+"."))
	case errors.Is(err, eval.ErrDivisionByZero):
		fmt.Fprintln(r.errOut, r.paint(errorStyle, "RuntimeError: division by zero."))
	case errors.Is(err, eval.ErrStackOverflow):
		fmt.Fprintln(r.errOut, r.paint(errorStyle, "RuntimeError: expression too deeply nested."))
	case errors.Is(err, eval.ErrStackUnderflow):
		fmt.Fprintln(r.errOut, r.paint(errorStyle, "RuntimeError: evaluation stack underflow."))
	default:
		fmt.Fprintln(r.errOut, r.paint(errorStyle, err.Error()))
	}
}

// caretSnippet prints the error heading, the surrounding characters with
// the offending one highlighted, and a tilde row with a caret under it.
func (r *Renderer) caretSnippet(e *lexer.LexError) {
	fmt.Fprintln(r.errOut, r.paint(errorStyle, "LexError: unexpected character."))
	before, ch, after := e.Snippet()
	fmt.Fprintf(r.errOut, "\t%s%s%s\n", before, r.paint(errorStyle, string(ch)), after)
	fmt.Fprintf(r.errOut, "\t%s^%s\n",
		strings.Repeat("~", len(before)), strings.Repeat("~", len(after)))
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}
