package ir

import "fmt"

type Op int

const (
	NOP Op = iota

	LOAD  // Load named variable
	CONST // Load numeric constant
	ADD
	SUB
	MUL
	DIV
)

type Instruction struct {
	Op   Op
	Dest Reg

	Name  string  // Variable name for LOAD
	Value float64 // Constant for CONST

	// Operands for binary ops
	Left  Reg
	Right Reg
}

// Reg is a virtual register. IDs come from one counter per generation pass,
// so no two registers in a program share an ID regardless of prefix.
type Reg struct {
	Prefix string
	ID     int
}

func (r Reg) String() string {
	return fmt.Sprintf("%%%s%d", r.Prefix, r.ID)
}

// Program is the finished output of one generation pass. Result holds the
// value of the whole expression.
type Program struct {
	Instructions []Instruction
	Result       Reg
}
