// Package parser builds expression trees from token batches using a
// recursive-descent grammar with BODMAS precedence:
//
//	expression := addExpr (EndOfExpression | EndOfFile)
//	addExpr    := subExpr ( '+' subExpr )*
//	subExpr    := mulExpr ( '-' mulExpr )*
//	mulExpr    := unit ( ('*' | '/') unit )*
//	unit       := Number | '(' addExpr ')'
//
// Each repetition folds the tree built so far as the left child of a new
// node, so operators of equal precedence group from the left. '*' and '/'
// share a single tier whose operands are units, making mixed chains like
// 8*3/2 compose strictly left to right: (8*3)/2, never 8*(3/2).
package parser

import (
	"strconv"

	"github.com/devbumbuna/bodmas/pkg/interp/ast"
	"github.com/devbumbuna/bodmas/pkg/interp/lexer"
)

// Parser consumes a token batch left to right through a single-token
// lookahead cursor. It never backtracks or re-reads.
type Parser struct {
	tokens []lexer.Token
	pos    int
	cur    lexer.Token
}

// New creates a parser positioned on the first token of the batch.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	p.next()
	return p
}

// next advances the cursor. Past the end of the batch the cursor stays on
// the final token, which Tokenize guarantees is a terminal one.
func (p *Parser) next() {
	if p.pos < len(p.tokens) {
		p.cur = p.tokens[p.pos]
		p.pos++
	}
}

// Parse builds the expression tree for one token batch. A batch holding
// only an end-of-input marker yields a nil tree and no error: there is
// nothing to evaluate.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	p := New(tokens)
	if p.cur.Kind == lexer.KindEndOfFile {
		return nil, nil
	}
	return p.parseExpression()
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	tree, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.KindEndOfExpression && p.cur.Kind != lexer.KindEndOfFile {
		return nil, &SyntaxError{Kind: ExpectedEndOfExpression, Lexeme: p.cur.String()}
	}
	return tree, nil
}

func (p *Parser) parseAdd() (ast.Expr, error) {
	tree, err := p.parseSub()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.KindPlus {
		p.next()
		right, err := p.parseSub()
		if err != nil {
			return nil, err
		}
		tree = &ast.Binary{Op: ast.Add, Left: tree, Right: right}
	}
	return tree, nil
}

func (p *Parser) parseSub() (ast.Expr, error) {
	tree, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.KindMinus {
		p.next()
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		tree = &ast.Binary{Op: ast.Sub, Left: tree, Right: right}
	}
	return tree, nil
}

// parseMul folds '*' and '/' in one repetition over units. Splitting them
// into nested tiers would hand '/' chains to the right operand of '*',
// grouping 8*3/2 as 8*(3/2) and changing the integer result.
func (p *Parser) parseMul() (ast.Expr, error) {
	tree, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	for p.cur.Kind == lexer.KindStar || p.cur.Kind == lexer.KindSlash {
		op := ast.Mul
		if p.cur.Kind == lexer.KindSlash {
			op = ast.Div
		}
		p.next()
		right, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		tree = &ast.Binary{Op: op, Left: tree, Right: right}
	}
	return tree, nil
}

func (p *Parser) parseUnit() (ast.Expr, error) {
	switch p.cur.Kind {
	case lexer.KindNumber:
		// The lexeme is a pure digit run, so the only possible failure is
		// range overflow, where ParseInt already returns the saturated
		// value.
		v, _ := strconv.ParseInt(p.cur.Lexeme, 10, 64)
		p.next()
		return &ast.Num{Value: v}, nil
	case lexer.KindLParen:
		p.next()
		tree, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.KindRParen {
			return nil, &SyntaxError{Kind: UnmatchedOpenParen, Lexeme: p.cur.String()}
		}
		p.next()
		return tree, nil
	}
	return nil, &SyntaxError{Kind: ExpectedOperandOrParen, Lexeme: p.cur.String()}
}
