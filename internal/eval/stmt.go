package eval

import (
	"fmt"

	"lox/internal/ast"
	"lox/internal/value"
)

// execTopLevelStmt runs one statement from the program's top-level list.
// Only here — not in nested blocks — does the REPL rule apply:
// in REPL mode, a bare expression statement prints its value.
func (ev *Evaluator) execTopLevelStmt(id ast.StmtID) error {
	s := ev.stmts.Get(id)
	if ev.replMode && s.Kind == ast.StmtExpr {
		v, err := ev.evalExpr(ev.stmts.Expr(s).Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(ev.out, value.Stringify(v))
		return nil
	}
	return ev.execStmt(id)
}

func (ev *Evaluator) execStmt(id ast.StmtID) error {
	if !id.IsValid() {
		return nil
	}
	s := ev.stmts.Get(id)
	switch s.Kind {
	case ast.StmtPrint:
		v, err := ev.evalExpr(ev.stmts.Print(s).Value)
		if err != nil {
			return err
		}
		fmt.Fprintln(ev.out, value.Stringify(v))
		return nil
	case ast.StmtExpr:
		_, err := ev.evalExpr(ev.stmts.Expr(s).Value)
		return err
	case ast.StmtVarDecl:
		return ev.execVarDecl(id, ev.stmts.VarDecl(s))
	case ast.StmtBlock:
		d := ev.stmts.Block(s)
		child := value.NewEnv(ev.env, ev.scopeSizes[id])
		return ev.execBlock(d.Stmts, child)
	case ast.StmtIf:
		return ev.execIf(ev.stmts.If(s))
	case ast.StmtWhile:
		return ev.execWhile(ev.stmts.While(s))
	case ast.StmtBreak:
		return newBreakSignal()
	case ast.StmtReturn:
		return ev.execReturn(ev.stmts.Return(s))
	case ast.StmtFunctionDecl:
		ev.execFunctionDecl(id, ev.stmts.FunctionDecl(s))
		return nil
	case ast.StmtClassDecl:
		return ev.execClassDecl(id, ev.stmts.ClassDecl(s))
	default:
		return nil
	}
}

// defineAt binds name either in the caller's current local frame (at the
// slot the resolver assigned to owner) or, absent a slot entry, in the
// global frame by name — the same rule the resolver used to decide
// between a side-table entry and a global fallback.
func (ev *Evaluator) defineAt(owner ast.StmtID, name string, v value.Value) {
	if slot, ok := ev.declSlots[owner]; ok {
		ev.env.SetSlot(slot, v)
		return
	}
	ev.globals.DefineGlobal(name, v)
}

func (ev *Evaluator) execVarDecl(id ast.StmtID, d *ast.StmtVarDeclData) error {
	v := value.Nil
	if d.Init.IsValid() {
		var err error
		v, err = ev.evalExpr(d.Init)
		if err != nil {
			return err
		}
	}
	ev.defineAt(id, d.Name.Lexeme, v)
	return nil
}

// execBlock runs stmts in child, restoring the previous frame on every
// exit path — including an error or control-signal unwind.
func (ev *Evaluator) execBlock(stmts []ast.StmtID, child *value.Env) error {
	previous := ev.env
	ev.env = child
	defer func() { ev.env = previous }()

	for _, st := range stmts {
		if err := ev.execStmt(st); err != nil {
			return err
		}
	}
	return nil
}

func (ev *Evaluator) execIf(d *ast.StmtIfData) error {
	cond, err := ev.evalExpr(d.Cond)
	if err != nil {
		return err
	}
	if cond.IsTruthy() {
		return ev.execStmt(d.Then)
	}
	if d.Else.IsValid() {
		return ev.execStmt(d.Else)
	}
	return nil
}

func (ev *Evaluator) execWhile(d *ast.StmtWhileData) error {
	for {
		cond, err := ev.evalExpr(d.Cond)
		if err != nil {
			return err
		}
		if !cond.IsTruthy() {
			return nil
		}
		if err := ev.execStmt(d.Body); err != nil {
			if _, ok := asSignal(err, signalBreak); ok {
				return nil
			}
			return err
		}
	}
}

func (ev *Evaluator) execReturn(d *ast.StmtReturnData) error {
	v := value.Nil
	if d.Value.IsValid() {
		var err error
		v, err = ev.evalExpr(d.Value)
		if err != nil {
			return err
		}
	}
	return newReturnSignal(v)
}

func (ev *Evaluator) execFunctionDecl(id ast.StmtID, d *ast.StmtFunctionDeclData) {
	fn := &value.UserFn{Name: d.Name.Lexeme, Decl: d, SlotCount: ev.scopeSizes[id], Closure: ev.env}
	ev.defineAt(id, d.Name.Lexeme, value.MakeObject(fn))
}

// execClassDecl implements the two-step class binding: define
// the name as Nil first so methods (and the class body itself, were it
// ever to reference itself) see a slot to close over, build the method
// table, then overwrite the binding with the finished Class value.
func (ev *Evaluator) execClassDecl(id ast.StmtID, d *ast.StmtClassDeclData) error {
	ev.defineAt(id, d.Name.Lexeme, value.Nil)

	methods := make(map[string]*value.UserFn, len(d.Methods))
	for _, methodID := range d.Methods {
		method := ev.stmts.Get(methodID)
		fd := ev.stmts.FunctionDecl(method)
		methods[fd.Name.Lexeme] = &value.UserFn{
			Name:          fd.Name.Lexeme,
			Decl:          fd,
			SlotCount:     ev.scopeSizes[methodID],
			Closure:       ev.env,
			IsInitializer: fd.Name.Lexeme == "init",
		}
	}

	class := &value.Class{Name: d.Name.Lexeme, Methods: methods}
	ev.defineAt(id, d.Name.Lexeme, value.MakeObject(class))
	return nil
}

// CallUserFn implements the user-function call semantics: a
// fresh frame child of the closure, one parameter per slot in order,
// the body block run in that frame. It satisfies value.Caller so
// value.UserFn/value.Class can invoke back into the evaluator without
// package value importing package eval.
func (ev *Evaluator) CallUserFn(fn *value.UserFn, args []value.Value) (value.Value, error) {
	callEnv := value.NewEnv(fn.Closure, fn.SlotCount)
	for i := range fn.Decl.Params {
		callEnv.SetSlot(i, args[i])
	}

	previous := ev.env
	ev.env = callEnv
	defer func() { ev.env = previous }()

	body := ev.stmts.Get(fn.Decl.Body)
	block := ev.stmts.Block(body)
	for _, st := range block.Stmts {
		if err := ev.execStmt(st); err != nil {
			if sig, ok := asSignal(err, signalReturn); ok {
				if fn.IsInitializer {
					return fn.Closure.GetSlot(0), nil
				}
				return sig.value, nil
			}
			return value.Value{}, err
		}
	}
	if fn.IsInitializer {
		return fn.Closure.GetSlot(0), nil
	}
	return value.Nil, nil
}
