package ir

import (
	"fmt"

	"github.com/jesperkha/exprc/exprc/ast"
	"github.com/jesperkha/exprc/exprc/util"
)

const loadPrefix = "x"

var binaryOps = map[ast.Operator]Op{
	ast.ADD: ADD,
	ast.SUB: SUB,
	ast.MUL: MUL,
	ast.DIV: DIV,
}

// Generator turns an expression tree into a Program with a single post-order
// walk. Each loaded or computed value gets a fresh register.
type Generator struct {
	ir    []Instruction
	stack []Reg // Registers of values not yet used as operands
	ctr   int
}

func NewGenerator() *Generator {
	return &Generator{ctr: 1}
}

// Generate is shorthand for NewGenerator().Generate(root).
func Generate(root ast.Expr) (*Program, error) {
	return NewGenerator().Generate(root)
}

// Generate emits the program for the tree rooted at root. The tree is only
// read. Calling Generate again starts a new pass from register 1.
func (g *Generator) Generate(root ast.Expr) (*Program, error) {
	if root == nil {
		return nil, fmt.Errorf("no expression to generate")
	}

	g.ir = nil
	g.stack = nil
	g.ctr = 1

	g.emit(root)
	util.Assert(len(g.stack) == 1, "expected one value on stack after generation, got %d", len(g.stack))

	return &Program{
		Instructions: g.ir,
		Result:       g.pop(),
	}, nil
}

// Get next available register
func (g *Generator) reg(prefix string) Reg {
	r := Reg{Prefix: prefix, ID: g.ctr}
	g.ctr++
	return r
}

func (g *Generator) push(r Reg) {
	g.stack = append(g.stack, r)
}

func (g *Generator) pop() Reg {
	util.Assert(len(g.stack) > 0, "pop on empty operand stack")
	r := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
	return r
}

func (g *Generator) emit(e ast.Expr) {
	switch node := e.(type) {
	case *ast.Ident:
		dest := g.reg(loadPrefix)
		g.ir = append(g.ir, Instruction{
			Op:   LOAD,
			Dest: dest,
			Name: node.Name,
		})
		g.push(dest)

	case *ast.Number:
		dest := g.reg(loadPrefix)
		g.ir = append(g.ir, Instruction{
			Op:    CONST,
			Dest:  dest,
			Value: node.Value,
		})
		g.push(dest)

	case *ast.Binary:
		g.emit(node.Left)
		g.emit(node.Right)

		// Right was pushed last
		right := g.pop()
		left := g.pop()

		dest := g.reg(node.Op.Mnemonic() + "tmp")
		g.ir = append(g.ir, Instruction{
			Op:    binaryOps[node.Op],
			Dest:  dest,
			Left:  left,
			Right: right,
		})
		g.push(dest)

	default:
		panic(fmt.Sprintf("unknown expression node %T", e))
	}
}
