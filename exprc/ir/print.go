package ir

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var mnemonics = map[Op]string{
	ADD: "add",
	SUB: "sub",
	MUL: "mul",
	DIV: "div",
}

func (op Op) String() string {
	switch op {
	case NOP:
		return "nop"
	case LOAD:
		return "load"
	case CONST:
		return "const"
	}

	if m, ok := mnemonics[op]; ok {
		return m
	}
	return "unknown"
}

func (ins Instruction) String() string {
	switch ins.Op {
	case LOAD:
		return fmt.Sprintf("%s = %%%s", ins.Dest, ins.Name)

	case CONST:
		return fmt.Sprintf("%s = %s", ins.Dest, FormatNumber(ins.Value))

	case ADD, SUB, MUL, DIV:
		return fmt.Sprintf("%s = %s %s %s", ins.Dest, mnemonics[ins.Op], ins.Left, ins.Right)
	}

	return "unknown op"
}

// FormatNumber formats a constant with as few digits as needed to read it
// back exactly.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fprint writes the program listing to w, one instruction per line, ending
// with the result line.
func Fprint(w io.Writer, p *Program) error {
	for _, ins := range p.Instructions {
		if _, err := fmt.Fprintln(w, ins); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%%result = %s\n", p.Result)
	return err
}

// String returns the program listing without a trailing newline.
func (p *Program) String() string {
	sb := &strings.Builder{}
	Fprint(sb, p)
	return strings.TrimSuffix(sb.String(), "\n")
}
