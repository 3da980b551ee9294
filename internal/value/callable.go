package value

import "lox/internal/ast"

// Callable is implemented by every value that can appear as the callee
// of a call expression: native functions, user-defined functions and
// closures, and classes (construction is calling the class itself).
type Callable interface {
	Object
	Arity() int
	Call(caller Caller, args []Value) (Value, error)
}

// Caller is the subset of the evaluator a Callable needs to invoke a
// user-defined function body, kept as a narrow interface here so
// package value never imports package eval (which imports value).
type Caller interface {
	CallUserFn(fn *UserFn, args []Value) (Value, error)
}

// NativeFn wraps a Go function as a Lox callable.
type NativeFn struct {
	Name string
	Arg  int
	Fn   func(args []Value) (Value, error)
}

func (f *NativeFn) Arity() int { return f.Arg }

func (f *NativeFn) Call(_ Caller, args []Value) (Value, error) { return f.Fn(args) }

func (f *NativeFn) String() string { return "<native fn>" }

// UserFn is a user-defined function or method closing over the
// environment active at its declaration.
type UserFn struct {
	Name string
	Decl *ast.StmtFunctionDeclData
	// SlotCount is the resolver's total local-slot count for this
	// function's param/body scope (resolve.Result.ScopeSizes), which may
	// exceed len(Decl.Params) when the body declares its own locals in
	// the same scope.
	SlotCount     int
	Closure       *Env
	IsInitializer bool
}

func (f *UserFn) Arity() int { return len(f.Decl.Params) }

func (f *UserFn) Call(caller Caller, args []Value) (Value, error) {
	return caller.CallUserFn(f, args)
}

func (f *UserFn) String() string { return "<fn " + f.Name + ">" }

// Bind returns a copy of f whose closure is a fresh child environment
// with `this` bound at slot 0 — the method-binding rule,
// matching the resolver's this-at-slot-0 pre-binding (internal/resolve).
func (f *UserFn) Bind(instance *Instance) *UserFn {
	env := NewEnv(f.Closure, 1)
	env.SetSlot(0, MakeObject(instance))
	bound := *f
	bound.Closure = env
	return &bound
}
