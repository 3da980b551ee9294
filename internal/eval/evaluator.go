// Package eval implements the tree-walking evaluator: the final stage of
// the pipeline, executing a resolved Program's statements against an
// Env chain.
package eval

import (
	"io"

	"lox/internal/ast"
	"lox/internal/resolve"
	"lox/internal/value"
)

// Evaluator walks a resolved AST. It holds the global frame, the current
// frame, the resolver's side-tables, and the writer `print` and a bare
// REPL expression statement write to.
type Evaluator struct {
	globals    *value.Env
	env        *value.Env
	bindings   map[ast.ExprID]resolve.Binding
	scopeSizes map[ast.StmtID]int
	declSlots  map[ast.StmtID]int
	exprs      *ast.Exprs
	stmts      *ast.Stmts
	out        io.Writer
	replMode   bool
}

// New creates an Evaluator for prog, installing native bindings
// into a fresh global frame.
func New(prog *ast.Program, res resolve.Result, out io.Writer, replMode bool) *Evaluator {
	globals := value.NewGlobalEnv()
	installNatives(globals)
	return &Evaluator{
		globals:    globals,
		env:        globals,
		bindings:   res.Bindings,
		scopeSizes: res.ScopeSizes,
		declSlots:  res.DeclSlots,
		exprs:      prog.Exprs,
		stmts:      prog.Stmts,
		out:        out,
		replMode:   replMode,
	}
}

// Interpret executes every top-level statement of prog in program order,
// stopping at the first runtime error.
func (ev *Evaluator) Interpret(prog *ast.Program) error {
	for _, id := range prog.Statements {
		if err := ev.execTopLevelStmt(id); err != nil {
			return err
		}
	}
	return nil
}

// InterpretLine runs one freshly-resolved Program against this Evaluator's
// existing global frame, rebinding the arena and side-table pointers it
// reads from to prog/res first. The REPL calls this once per line so
// variables and functions a line declares stay visible to the next one,
// since each line is parsed and resolved as its own Program with its own
// arenas.
func (ev *Evaluator) InterpretLine(prog *ast.Program, res resolve.Result) error {
	ev.exprs = prog.Exprs
	ev.stmts = prog.Stmts
	ev.bindings = res.Bindings
	ev.scopeSizes = res.ScopeSizes
	ev.declSlots = res.DeclSlots
	return ev.Interpret(prog)
}

// SetOutput redirects where Print statements and REPL auto-printed
// expression results write to, letting a caller capture one line's
// output separately from the next (internal/replui).
func (ev *Evaluator) SetOutput(out io.Writer) {
	ev.out = out
}

// lookupVariable resolves a Variable/This reference via the resolver's
// side-table (a local slot) or, absent an entry, the global frame by
// name.
func (ev *Evaluator) lookupVariable(id ast.ExprID, name string, line uint32) (value.Value, error) {
	if b, ok := ev.bindings[id]; ok {
		return ev.env.Ancestor(b.Depth).GetSlot(b.Slot), nil
	}
	if v, ok := ev.globals.GetGlobal(name); ok {
		return v, nil
	}
	return value.Value{}, runtimeErrorf(line, "Undefined variable '%s'.", name)
}
