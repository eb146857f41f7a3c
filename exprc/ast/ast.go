package ast

import "github.com/jesperkha/exprc/exprc/token"

type (
	Node interface {
		Pos() token.Pos // Position of first token in node segment
		End() token.Pos // Position of last token in node segment

		// Accept a visitor to inspect this node. Must call the appropriate
		// visit method on the visitor for this node.
		Accept(v Visitor)
	}

	// Expr is one of *Ident, *Number or *Binary. The set is closed, no other
	// package can add to it. Nodes are never modified after the parser has
	// built them.
	Expr interface {
		Node
		exprNode()
	}
)

type (
	// Variable reference, eg. "foo".
	Ident struct {
		Name string
		T    token.Token
	}

	// Numeric literal. Value is already converted from the token lexeme.
	Number struct {
		Value float64
		T     token.Token
	}

	// Binary expression, eg. "a + b". Left and Right are never nil.
	Binary struct {
		Op    Operator
		OpTok token.Token
		Left  Expr
		Right Expr
	}
)

func (*Ident) exprNode()  {}
func (*Number) exprNode() {}
func (*Binary) exprNode() {}

func (i *Ident) Pos() token.Pos { return i.T.Pos }
func (i *Ident) End() token.Pos { return i.T.EndPos }

func (n *Number) Pos() token.Pos { return n.T.Pos }
func (n *Number) End() token.Pos { return n.T.EndPos }

func (b *Binary) Pos() token.Pos { return b.Left.Pos() }
func (b *Binary) End() token.Pos { return b.Right.End() }

// Depth returns the height of the tree rooted at e. A single leaf has depth 1.
func Depth(e Expr) int {
	switch e := e.(type) {
	case *Binary:
		return 1 + max(Depth(e.Left), Depth(e.Right))
	case nil:
		return 0
	default:
		return 1
	}
}

// Count returns the number of nodes in the tree rooted at e.
func Count(e Expr) int {
	switch e := e.(type) {
	case *Binary:
		return 1 + Count(e.Left) + Count(e.Right)
	case nil:
		return 0
	default:
		return 1
	}
}
