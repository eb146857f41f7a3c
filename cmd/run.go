package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jesperkha/exprc/exprc"
	"github.com/jesperkha/exprc/exprc/ast"
	"github.com/jesperkha/exprc/exprc/ir"
	"github.com/jesperkha/exprc/exprc/token"
	"github.com/jesperkha/exprc/exprc/util"
)

// repl reads one expression per line from in until it ends, printing the IR
// or the error for each line. A bad line never stops the loop.
func repl(in io.Reader, out io.Writer, cfg Config, logger *slog.Logger) {
	sc := bufio.NewScanner(in)
	opts := cfg.options(logger)

	fmt.Fprint(out, cfg.Prompt)
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			compileLine(out, line, cfg, opts)
		}
		fmt.Fprint(out, cfg.Prompt)
	}

	if err := sc.Err(); err != nil {
		logger.Error("read failed", "err", err)
	}
	fmt.Fprintln(out)
}

func compileLine(out io.Writer, line string, cfg Config, opts []exprc.Option) {
	if cfg.ShowTokens {
		toks, err := exprc.Tokens(line)
		if err == nil {
			printTokens(out, toks)
		}
	}

	tree, err := exprc.ParseExpr(line, opts...)
	if err != nil {
		printError(out, err, line)
		return
	}

	if cfg.ShowAst {
		printTree(out, tree)
	}

	prog, err := ir.Generate(tree)
	if err != nil {
		printError(out, err, line)
		return
	}

	fmt.Fprintln(out, prog)
}

// runFile compiles every line of the named file, printing the programs and
// then all errors. Returns false if any line failed.
func runFile(name string, out io.Writer, cfg Config, logger *slog.Logger) (bool, error) {
	file := token.NewFile(name, nil)
	if file.Err != nil {
		return false, file.Err
	}

	logger.Info("compiling file", "name", name, "lines", file.NumLines())
	results := exprc.CompileFile(file, cfg.options(logger)...)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}

		fmt.Fprintf(out, "; %s:%d: %s\n", name, r.Row+1, r.Src)
		if cfg.ShowAst {
			printTree(out, r.Tree)
		}
		fmt.Fprintln(out, r.Program)
	}

	if err := exprc.Errors(results); err != nil {
		fmt.Fprintln(out, err)
	}

	printSummary(out, name, len(results), failed)
	return failed == 0, nil
}

func printError(out io.Writer, err error, line string) {
	var e *exprc.Error
	if errors.As(err, &e) {
		fmt.Fprintln(out, util.Pretty(e, line))
		return
	}

	fmt.Fprintln(out, "error:", err)
}

func printTree(out io.Writer, tree ast.Expr) {
	p := ast.NewTreePrinter()
	ast.Walk(p, tree)
	fmt.Fprint(out, p.String())
}

func printTokens(out io.Writer, toks []token.Token) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"#", "Type", "Lexeme", "Col"})
	for i, tok := range toks {
		t.AppendRow(table.Row{i, tok.Type.String(), tok.Lexeme, tok.Pos.Col})
	}
	t.Render()
}

func printSummary(out io.Writer, name string, lines int, failed int) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"File", "Expressions", "Compiled", "Failed"})
	t.AppendRow(table.Row{name, lines, lines - failed, failed})
	t.Render()
}
