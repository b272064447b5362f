// Package interp drives the expression pipeline: each input line is
// tokenized, parsed and evaluated to completion before the next one is
// read. Every line is an independent unit of failure; its token batch,
// tree and stack state are retired before the next line starts.
package interp

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/devbumbuna/bodmas/pkg/interp/eval"
	"github.com/devbumbuna/bodmas/pkg/interp/lexer"
	"github.com/devbumbuna/bodmas/pkg/interp/parser"
	"github.com/devbumbuna/bodmas/pkg/source"
)

// Sink receives per-line outcomes. The session itself never formats
// user-facing output.
type Sink interface {
	Result(v int64)
	Diagnostic(err error)
}

// Session holds the reusable pieces of the pipeline.
type Session struct {
	machine *eval.Machine
	sink    Sink
	log     zerolog.Logger
}

// NewSession creates a session delivering outcomes to sink.
func NewSession(sink Sink, log zerolog.Logger) *Session {
	return &Session{
		machine: eval.New(),
		sink:    sink,
		log:     log,
	}
}

// Run pulls lines from src until end of input. A failing expression is
// delivered to the sink as a diagnostic and folds into the ok result;
// processing then resumes with the next line. Only a reader failure ends
// the run early.
func (s *Session) Run(src *source.Reader) (ok bool, err error) {
	ok = true
	for {
		line, err := src.Next()
		if errors.Is(err, io.EOF) {
			return ok, nil
		}
		if err != nil {
			return false, err
		}
		if !s.evalLine(line) {
			ok = false
		}
	}
}

// evalLine runs one line through the full pipeline and reports whether it
// succeeded.
func (s *Session) evalLine(line source.Line) bool {
	tokens, err := lexer.Tokenize(line.Text, line.AtEOF)
	if err != nil {
		s.log.Debug().Int("line", line.Number).Err(err).Msg("lexing failed")
		s.sink.Diagnostic(err)
		return false
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		s.log.Debug().Int("line", line.Number).Err(err).Msg("parsing failed")
		s.sink.Diagnostic(err)
		return false
	}
	if tree == nil {
		// Bare end of input: nothing to evaluate.
		return true
	}

	result, err := s.machine.Eval(tree)
	if err != nil {
		s.log.Debug().Int("line", line.Number).Err(err).Msg("evaluation failed")
		s.sink.Diagnostic(err)
		return false
	}

	s.log.Debug().
		Int("line", line.Number).
		Int("tokens", len(tokens)).
		Int64("result", result).
		Msg("line evaluated")
	s.sink.Result(result)
	return true
}
