// Package run assembles the scan→parse→resolve→evaluate pipeline the
// rest of the tree (cmd/lox, the REPL, lox check) all drive the same
// way, giving every entry point (running a script, the REPL, check, ast) one shared path
// through the stages instead of each command re-wiring the lexer and
// parser itself.
package run

import (
	"io"

	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/eval"
	"lox/internal/lexer"
	"lox/internal/parser"
	"lox/internal/resolve"
	"lox/internal/source"
)

// MaxDiagnostics bounds how many diagnostics a single Bag accumulates
// before further reports are dropped.
const MaxDiagnostics = 100

// Result is everything one compile of a file or REPL line produced: its
// Program, the resolver's side-tables, and the diagnostics gathered
// across scan, parse, and resolve.
type Result struct {
	Program *ast.Program
	Resolve resolve.Result
	Bag     *diag.Bag
}

// Compile scans, parses, and resolves file, stopping diagnostics at
// MaxDiagnostics. It never returns a Go error: scan/parse/resolve
// failures are recorded in Result.Bag, and the
// caller decides whether Bag.HasErrors() should block evaluation.
func Compile(file *source.File) Result {
	bag := diag.NewBag(MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, reporter)
	tokens := lx.ScanTokens()

	prog := ast.NewProgram(file, uint(len(tokens)))
	prog.Tokens = tokens
	parser.Parse(prog, tokens, reporter)

	res := resolve.New(prog, reporter).Resolve(prog)

	return Result{Program: prog, Resolve: res, Bag: bag}
}

// Interpret evaluates an already-resolved Result against ev, returning
// the evaluator's first runtime error (if any) as-is; a *diag.RuntimeError's
// Error() text is already in the runtime wire form (diag.FormatRuntime).
func Interpret(ev *eval.Evaluator, res Result) error {
	return ev.Interpret(res.Program)
}

// NewEvaluator builds an Evaluator for res, writing Print/REPL output to
// out.
func NewEvaluator(res Result, out io.Writer, replMode bool) *eval.Evaluator {
	return eval.New(res.Program, res.Resolve, out, replMode)
}
