package ir_test

import (
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jesperkha/exprc/exprc/ast"
	"github.com/jesperkha/exprc/exprc/ir"
	"github.com/jesperkha/exprc/exprc/parser"
	"github.com/jesperkha/exprc/exprc/scanner"
)

func irFrom(src string) *ir.Program {
	p, err := parser.New(scanner.New(nil, 0, []byte(src)), 0)
	Expect(err).NotTo(HaveOccurred())

	tree, err := p.ParseExpr()
	Expect(err).NotTo(HaveOccurred())

	prog, err := ir.Generate(tree)
	Expect(err).NotTo(HaveOccurred())
	return prog
}

// Trims each line so expected listings can be indented in the test source.
func listing(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "\n")
}

var _ = Describe("Generator", func() {
	It("should load a variable", func() {
		Expect(irFrom("foo").String()).To(Equal(listing(`
			%x1 = %foo
			%result = %x1
		`)))
	})

	It("should load a constant", func() {
		Expect(irFrom("42").String()).To(Equal(listing(`
			%x1 = 42
			%result = %x1
		`)))
	})

	It("should emit left associative chains in order", func() {
		prog := irFrom("8 - 3 - 2")
		Expect(prog.String()).To(Equal(listing(`
			%x1 = 8
			%x2 = 3
			%subtmp3 = sub %x1 %x2
			%x4 = 2
			%subtmp5 = sub %subtmp3 %x4
			%result = %subtmp5
		`)))

		first, second := prog.Instructions[2], prog.Instructions[4]
		Expect(second.Left).To(Equal(first.Dest))
	})

	It("should emit mul before the add that uses it", func() {
		prog := irFrom("2 + 3 * 4")
		Expect(prog.String()).To(Equal(listing(`
			%x1 = 2
			%x2 = 3
			%x3 = 4
			%multmp4 = mul %x2 %x3
			%addtmp5 = add %x1 %multmp4
			%result = %addtmp5
		`)))

		mul, add := prog.Instructions[3], prog.Instructions[4]
		Expect(mul.Op).To(Equal(ir.MUL))
		Expect(add.Op).To(Equal(ir.ADD))
		Expect(add.Right).To(Equal(mul.Dest))
	})

	It("should let parens override precedence", func() {
		prog := irFrom("(2 + 3) * 4")
		Expect(prog.String()).To(Equal(listing(`
			%x1 = 2
			%x2 = 3
			%addtmp3 = add %x1 %x2
			%x4 = 4
			%multmp5 = mul %addtmp3 %x4
			%result = %multmp5
		`)))

		add, mul := prog.Instructions[2], prog.Instructions[4]
		Expect(mul.Left).To(Equal(add.Dest))
	})

	It("should name registers after the operator", func() {
		Expect(irFrom("a / b").String()).To(Equal(listing(`
			%x1 = %a
			%x2 = %b
			%divtmp3 = div %x1 %x2
			%result = %divtmp3
		`)))
	})

	It("should print fractional constants exactly", func() {
		prog := irFrom("3.75 * x")
		Expect(prog.Instructions[0].String()).To(Equal("%x1 = 3.75"))
	})

	It("should never reuse a register", func() {
		prog := irFrom("a * (b - c) / (d + e * f) - 1.5 + g")

		seen := map[int]bool{}
		last := 0
		for _, ins := range prog.Instructions {
			Expect(seen[ins.Dest.ID]).To(BeFalse())
			Expect(ins.Dest.ID).To(BeNumerically(">", last))
			seen[ins.Dest.ID] = true
			last = ins.Dest.ID
		}

		Expect(prog.Result).To(Equal(prog.Instructions[len(prog.Instructions)-1].Dest))
	})

	It("should end with exactly one result line naming the root register", func() {
		text := irFrom("x * y + z").String()
		lines := strings.Split(text, "\n")

		results := 0
		for _, line := range lines {
			if strings.HasPrefix(line, "%result") {
				results++
			}
		}

		Expect(results).To(Equal(1))
		Expect(lines[len(lines)-1]).To(Equal("%result = %addtmp5"))
	})

	It("should produce identical output for independent runs", func() {
		src := "(a + 2) * b - c / 4"
		Expect(irFrom(src).String()).To(Equal(irFrom(src).String()))
	})

	It("should restart register numbering when reused", func() {
		g := ir.NewGenerator()
		tree := &ast.Binary{Op: ast.ADD, Left: &ast.Ident{Name: "a"}, Right: &ast.Number{Value: 1}}

		first, err := g.Generate(tree)
		Expect(err).NotTo(HaveOccurred())
		second, err := g.Generate(tree)
		Expect(err).NotTo(HaveOccurred())

		Expect(second.String()).To(Equal(first.String()))
		Expect(second.Result.String()).To(Equal("%addtmp3"))
	})

	It("should not modify the tree", func() {
		tree := &ast.Binary{Op: ast.SUB, Left: &ast.Number{Value: 1}, Right: &ast.Ident{Name: "q"}}
		before := ast.Sprint(tree)

		_, err := ir.Generate(tree)
		Expect(err).NotTo(HaveOccurred())
		Expect(ast.Sprint(tree)).To(Equal(before))
	})

	It("should reject a nil tree", func() {
		prog, err := ir.Generate(nil)
		Expect(prog).To(BeNil())
		Expect(err).To(HaveOccurred())
	})

	It("should handle deep trees", func() {
		src := "x"
		for i := 1; i <= 200; i++ {
			src = "(" + src + " + " + strconv.Itoa(i) + ")"
		}

		prog := irFrom(src)
		Expect(prog.Instructions).To(HaveLen(401))
		Expect(prog.Result.String()).To(Equal("%addtmp401"))
	})
})

var _ = Describe("FormatNumber", func() {
	DescribeTable("formats constants",
		func(v float64, expect string) {
			Expect(ir.FormatNumber(v)).To(Equal(expect))
		},
		Entry("integer", 3.0, "3"),
		Entry("fraction", 3.75, "3.75"),
		Entry("large", 1e21, "1000000000000000000000"),
		Entry("zero", 0.0, "0"),
	)
})
