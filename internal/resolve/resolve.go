// Package resolve implements the variable-resolution pass: a static
// pre-pass over the AST that binds every local variable use to a
// (depth, slot) pair and validates the static rules lists
// (no self-reference in initializer, no return outside function, no
// break outside loop, no duplicate declaration, no this outside method).
package resolve

import (
	"fmt"

	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/token"
)

// FunctionType distinguishes the kind of function body currently being
// resolved, used to validate `return` placement and initializer rules.
type FunctionType uint8

const (
	FuncNone FunctionType = iota
	FuncFunction
	FuncMethod
	FuncInitializer
)

// ClassType distinguishes whether resolution is currently inside a class
// body, used to validate `this` placement.
type ClassType uint8

const (
	ClassNone ClassType = iota
	ClassInClass
)

// Binding is the resolver's output for one Variable/Assign/This node:
// how many environment hops (Depth) and which declaration-order slot
// (Slot) the evaluator should read or write at runtime.
type Binding struct {
	Depth int
	Slot  int
}

// entryKind distinguishes why a scope entry exists, so the unused-
// variable check can be scoped to `var` declarations only.
// A method that never references `this`, or a parameter a function never
// uses, is common and not itself an error — the own end-to-end
// scenario 5 (`greet(name) { print "hi " + name; }`, which never reads
// `this`) would be unresolvable otherwise. Only a declared-and-unread
// `var` binding is flagged.
type entryKind uint8

const (
	entryVar entryKind = iota
	entryParam
	entryThis
	entryFunc
)

type scopeEntry struct {
	defined bool
	used    bool
	token   token.Token
	index   int
	kind    entryKind
}

type scope map[string]*scopeEntry

// Result is everything the evaluator needs from a completed resolve pass.
type Result struct {
	// Bindings maps a Variable/Assign/This expression to the (depth, slot)
	// the evaluator reads or writes at runtime.
	Bindings map[ast.ExprID]Binding
	// ScopeSizes maps a scope-opening statement (StmtBlock, or the
	// StmtFunctionDecl/StmtClassDecl whose param/this scope runs alongside
	// it) to the number of slots its Env frame needs, since value.Env's
	// slot slice is sized at creation and addressed by the resolver's
	// declaration-order index.
	ScopeSizes map[ast.StmtID]int
	// DeclSlots maps a StmtVarDecl/StmtFunctionDecl/StmtClassDecl to the
	// slot its own name was assigned within its enclosing local scope. A
	// declaration with no entry here was resolved at global scope (no
	// scopes open), so the evaluator binds it by name instead.
	DeclSlots map[ast.StmtID]int
}

// Resolver walks a Program's AST once, producing a side-table keyed by
// expression-node identity (ast.ExprID). It never mutates the AST.
type Resolver struct {
	reporter        diag.Reporter
	exprs           *ast.Exprs
	stmts           *ast.Stmts
	scopes          []scope
	currentFunction FunctionType
	currentClass    ClassType
	loopDepth       int
	bindings        map[ast.ExprID]Binding
	scopeSizes      map[ast.StmtID]int
	declSlots       map[ast.StmtID]int
}

// New creates a Resolver over prog's expression/statement arenas.
func New(prog *ast.Program, reporter diag.Reporter) *Resolver {
	return &Resolver{
		reporter:   reporter,
		exprs:      prog.Exprs,
		stmts:      prog.Stmts,
		bindings:   make(map[ast.ExprID]Binding),
		scopeSizes: make(map[ast.StmtID]int),
		declSlots:  make(map[ast.StmtID]int),
	}
}

// Resolve walks every top-level statement in prog and returns the
// resulting side-tables. Errors are reported through the Reporter; the
// caller checks the shared diag.Bag before evaluating.
func (r *Resolver) Resolve(prog *ast.Program) Result {
	for _, id := range prog.Statements {
		r.resolveStmt(id)
	}
	return Result{Bindings: r.bindings, ScopeSizes: r.scopeSizes, DeclSlots: r.declSlots}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

// endScope closes the current scope, recording its final entry count
// under owner (the statement that opened it) and flagging unused `var`
// bindings.
func (r *Resolver) endScope(owner ast.StmtID) {
	top := r.scopes[len(r.scopes)-1]
	for name, e := range top {
		if e.kind == entryVar && !e.used {
			diag.ReportError(r.reporter, e.token.Span, diag.FormatAtToken(e.token, fmt.Sprintf("Unused variable '%s'.", name)))
		}
	}
	r.scopeSizes[owner] = len(top)
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the current scope and returns its assigned slot
// index, or -1 if there is no open scope (global scope: the evaluator
// binds the name in the global map instead, see Result.DeclSlots) or if
// name is already declared in the current scope (reported as an error).
func (r *Resolver) declare(name token.Token, kind entryKind) int {
	if len(r.scopes) == 0 {
		return -1
	}
	top := r.scopes[len(r.scopes)-1]
	if _, exists := top[name.Lexeme]; exists {
		diag.ReportError(r.reporter, name.Span, diag.FormatAtToken(name, "Already a variable with this name in this scope."))
		return -1
	}
	idx := len(top)
	top[name.Lexeme] = &scopeEntry{token: name, index: idx, kind: kind}
	return idx
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	if e, ok := r.scopes[len(r.scopes)-1][name.Lexeme]; ok {
		e.defined = true
	}
}

// resolveLocal walks the scope stack from the innermost scope outward
// looking for name; the innermost hit records (depth, slot) and marks the binding used. A miss
// leaves no side-table entry, so the evaluator falls back to the global
// frame at runtime.
func (r *Resolver) resolveLocal(id ast.ExprID, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if e, ok := r.scopes[i][name.Lexeme]; ok {
			e.used = true
			r.bindings[id] = Binding{Depth: len(r.scopes) - 1 - i, Slot: e.index}
			return
		}
	}
}
