package parser

import (
	"math"
	"strconv"

	"github.com/jesperkha/exprc/exprc/ast"
	"github.com/jesperkha/exprc/exprc/token"
)

// Each level folds the tree built so far into the left side of a new binary
// node, which makes both levels left associative.

func (p *Parser) parseAddSub() (ast.Expr, error) {
	return p.parseBinary(p.parseMulDiv, token.PLUS, token.MINUS)
}

func (p *Parser) parseMulDiv() (ast.Expr, error) {
	return p.parseBinary(p.parseAtom, token.STAR, token.SLASH)
}

func (p *Parser) parseBinary(operand func() (ast.Expr, error), ops ...token.TokenType) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.matchMany(ops...) {
		opTok, err := p.eat(p.cur().Type)
		if err != nil {
			return nil, err
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}

		op, _ := ast.OperatorFor(opTok.Type)
		left = &ast.Binary{
			Op:    op,
			OpTok: opTok,
			Left:  left,
			Right: right,
		}
	}

	return left, nil
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	switch p.cur().Type {
	case token.NUMBER:
		return p.parseNumber()

	case token.IDENT:
		t, err := p.eat(token.IDENT)
		if err != nil {
			return nil, err
		}

		return &ast.Ident{
			Name: t.Lexeme,
			T:    t,
		}, nil

	case token.LPAREN:
		if _, err := p.eat(token.LPAREN); err != nil {
			return nil, err
		}

		expr, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}

		if _, err := p.eat(token.RPAREN); err != nil {
			return nil, err
		}

		return expr, nil
	}

	return nil, token.ErrorAt(token.MalformedAtom, p.cur().Pos,
		"expected number, identifier or '(', got %s", describe(p.cur()))
}

func (p *Parser) parseNumber() (ast.Expr, error) {
	t := p.cur()
	value, err := strconv.ParseFloat(t.Lexeme, 64)
	if err != nil {
		return nil, token.ErrorAt(token.MalformedAtom, t.Pos, "invalid number literal '%s'", t.Lexeme)
	}

	if p.mode&TruncateNumbers != 0 {
		value = math.Trunc(value)
	}

	if _, err := p.eat(token.NUMBER); err != nil {
		return nil, err
	}

	return &ast.Number{
		Value: value,
		T:     t,
	}, nil
}
