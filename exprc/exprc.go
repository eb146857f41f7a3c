package exprc

import (
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jesperkha/exprc/exprc/ast"
	"github.com/jesperkha/exprc/exprc/ir"
	"github.com/jesperkha/exprc/exprc/parser"
	"github.com/jesperkha/exprc/exprc/scanner"
	"github.com/jesperkha/exprc/exprc/token"
	"github.com/jesperkha/exprc/exprc/util"
)

type options struct {
	mode    parser.Mode
	logger  *slog.Logger
	workers int
}

type Option func(*options)

// WithTruncateNumbers drops the fractional part of numeric literals.
func WithTruncateNumbers() Option {
	return func(o *options) { o.mode |= parser.TruncateNumbers }
}

// WithLogger sets the logger used for debug output. Nothing is logged by
// default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithWorkers sets how many lines CompileFile compiles at once.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = max(n, 1) }
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:  slog.New(slog.DiscardHandler),
		workers: 1,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Tokens returns all tokens in src, ending with EOF.
func Tokens(src string) ([]token.Token, error) {
	return scanner.New(nil, 0, []byte(src)).ScanAll()
}

// ParseExpr parses a single line expression.
func ParseExpr(src string, opts ...Option) (ast.Expr, error) {
	return parseLine(nil, 0, src, newOptions(opts))
}

// Compile runs the whole pipeline on a single line expression. On error no
// program is returned.
func Compile(src string, opts ...Option) (*ir.Program, error) {
	o := newOptions(opts)
	tree, err := parseLine(nil, 0, src, o)
	if err != nil {
		return nil, err
	}

	return generate(tree, o)
}

func parseLine(file *token.File, row int, src string, o *options) (ast.Expr, error) {
	s := scanner.New(file, row, []byte(src))
	p, err := parser.New(s, o.mode)
	if err != nil {
		o.logger.Debug("scan failed", "row", row, "err", err)
		return nil, err
	}

	tree, err := p.ParseExpr()
	if err != nil {
		o.logger.Debug("parse failed", "row", row, "err", err)
		return nil, err
	}

	o.logger.Debug("parsed", "row", row, "tree", ast.Sprint(tree), "nodes", ast.Count(tree))
	return tree, nil
}

func generate(tree ast.Expr, o *options) (*ir.Program, error) {
	prog, err := ir.Generate(tree)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("generated", "instructions", len(prog.Instructions), "result", prog.Result.String())
	return prog, nil
}

// Result is the outcome of compiling one line of a file.
type Result struct {
	Row     int    // Line number -1
	Src     string // Line source
	Tree    ast.Expr
	Program *ir.Program
	Err     error
}

// CompileFile compiles each non-blank line of file as its own expression.
// Lines share nothing, a failing line does not affect the others. Results are
// in line order.
func CompileFile(file *token.File, opts ...Option) []Result {
	o := newOptions(opts)

	results := []Result{}
	for row := 0; row < file.NumLines(); row++ {
		line := file.Line(row)
		if strings.TrimSpace(line) == "" {
			continue
		}

		results = append(results, Result{Row: row, Src: line})
	}

	g := errgroup.Group{}
	g.SetLimit(o.workers)

	for i := range results {
		r := &results[i]
		g.Go(func() error {
			r.Tree, r.Err = parseLine(file, r.Row, r.Src, o)
			if r.Err == nil {
				r.Program, r.Err = generate(r.Tree, o)
			}
			return nil
		})
	}

	g.Wait()
	o.logger.Debug("compiled file", "name", file.Name, "lines", len(results))
	return results
}

// Errors joins the errors of all failed results, rendered with their source
// line. Returns nil if every line compiled.
func Errors(results []Result) error {
	eh := util.NewErrorHandler()
	for _, r := range results {
		if r.Err != nil {
			eh.Pretty(r.Err, r.Src)
		}
	}

	return eh.Error()
}
