package ast

import "github.com/jesperkha/exprc/exprc/token"

type Operator int

const (
	ADD Operator = iota
	SUB
	MUL
	DIV
)

var operators = [...]struct {
	symbol   string
	mnemonic string
}{
	ADD: {"+", "add"},
	SUB: {"-", "sub"},
	MUL: {"*", "mul"},
	DIV: {"/", "div"},
}

// String returns the operator symbol, identical to the source syntax.
func (o Operator) String() string { return operators[o].symbol }

// Mnemonic is the IR instruction name for the operator.
func (o Operator) Mnemonic() string { return operators[o].mnemonic }

// OperatorFor returns the operator for the given token type. Only the four
// arithmetic tokens are operators.
func OperatorFor(typ token.TokenType) (Operator, bool) {
	switch typ {
	case token.PLUS:
		return ADD, true
	case token.MINUS:
		return SUB, true
	case token.STAR:
		return MUL, true
	case token.SLASH:
		return DIV, true
	}
	return 0, false
}
