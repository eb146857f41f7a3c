package parser

import (
	"github.com/jesperkha/exprc/exprc/ast"
	"github.com/jesperkha/exprc/exprc/token"
)

//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_source_test.go github.com/jesperkha/exprc/exprc/parser TokenSource

// TokenSource produces tokens one at a time. The scanner implements it. After
// the EOF token has been returned Scan is not called again.
type TokenSource interface {
	Scan() (token.Token, error)
}

type Mode uint

const (
	// Drop the fractional part of numeric literals, so "3.75" becomes 3.
	TruncateNumbers Mode = 1 << iota
)

type Parser struct {
	src  TokenSource
	mode Mode
	tok  token.Token // Lookahead, always the next unconsumed token
}

// New makes a parser reading from src and reads the first lookahead token.
func New(src TokenSource, mode Mode) (*Parser, error) {
	p := &Parser{
		src:  src,
		mode: mode,
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	return p, nil
}

// ParseExpr parses a single expression spanning all of the input. Any error
// aborts the parse and no tree is returned.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	expr, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}

	if !p.match(token.EOF) {
		return nil, p.unexpected(token.EOF)
	}

	return expr, nil
}

func (p *Parser) cur() token.Token {
	return p.tok
}

func (p *Parser) match(typ token.TokenType) bool {
	return p.tok.Type == typ
}

func (p *Parser) matchMany(types ...token.TokenType) bool {
	for _, t := range types {
		if p.match(t) {
			return true
		}
	}

	return false
}

// Pull the next token into the lookahead.
func (p *Parser) next() error {
	tok, err := p.src.Scan()
	if err != nil {
		return err
	}

	p.tok = tok
	return nil
}

// Consumes the lookahead if it has the given type, returning it.
func (p *Parser) eat(typ token.TokenType) (token.Token, error) {
	if !p.match(typ) {
		return token.Token{}, p.unexpected(typ)
	}

	tok := p.tok
	if err := p.next(); err != nil {
		return token.Token{}, err
	}

	return tok, nil
}

func (p *Parser) unexpected(expected token.TokenType) error {
	err := token.ErrorAt(token.UnexpectedToken, p.tok.Pos,
		"expected %s, got %s", expected, describe(p.tok))
	err.Expected = expected
	err.Found = p.tok.Type
	return err
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.NUMBER, token.IDENT:
		return tok.Type.String() + " '" + tok.Lexeme + "'"
	}
	return tok.Type.String()
}
