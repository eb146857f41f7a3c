package ast

type Visitor interface {
	VisitIdent(node *Ident)
	VisitNumber(node *Number)
	VisitBinary(node *Binary)
}

func (n *Ident) Accept(v Visitor)  { v.VisitIdent(n) }
func (n *Number) Accept(v Visitor) { v.VisitNumber(n) }
func (n *Binary) Accept(v Visitor) { v.VisitBinary(n) }

// Walk visits the tree rooted at e. Visitors are responsible for descending
// into the children of a Binary node themselves.
func Walk(v Visitor, e Expr) {
	if e != nil {
		e.Accept(v)
	}
}
