package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer prints the tree with every binary expression wrapped in parens, so
// the grouping the parser chose is visible. Used for testing the parser (by
// comparing AST to string) and for debugging.
type Printer struct {
	sb *strings.Builder
}

func NewPrinter() *Printer {
	return &Printer{
		sb: &strings.Builder{},
	}
}

// Sprint returns the printed form of e.
func Sprint(e Expr) string {
	p := NewPrinter()
	Walk(p, e)
	return p.String()
}

func (p *Printer) String() string {
	return p.sb.String()
}

func (p *Printer) write(f string, args ...any) {
	fmt.Fprintf(p.sb, f, args...)
}

func (p *Printer) VisitIdent(node *Ident) {
	p.write("%s", node.Name)
}

func (p *Printer) VisitNumber(node *Number) {
	p.write("%s", strconv.FormatFloat(node.Value, 'f', -1, 64))
}

func (p *Printer) VisitBinary(node *Binary) {
	p.write("(")
	node.Left.Accept(p)
	p.write(" %s ", node.Op)
	node.Right.Accept(p)
	p.write(")")
}

// TreePrinter prints one node per line, indenting children under their
// parent.
type TreePrinter struct {
	sb     *strings.Builder
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{
		sb: &strings.Builder{},
	}
}

func (d *TreePrinter) String() string {
	return d.sb.String()
}

func (d *TreePrinter) write(s string) {
	d.sb.WriteString(strings.Repeat("  ", d.indent) + s + "\n")
}

func (d *TreePrinter) VisitIdent(node *Ident) {
	d.write("ident: " + node.Name)
}

func (d *TreePrinter) VisitNumber(node *Number) {
	d.write("number: " + strconv.FormatFloat(node.Value, 'f', -1, 64))
}

func (d *TreePrinter) VisitBinary(node *Binary) {
	d.write("binary: " + node.Op.String())
	d.indent++
	node.Left.Accept(d)
	node.Right.Accept(d)
	d.indent--
}
