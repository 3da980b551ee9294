package resolve

import (
	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/token"
)

func (r *Resolver) resolveStmt(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	s := r.stmts.Get(id)
	switch s.Kind {
	case ast.StmtPrint:
		r.resolveExpr(r.stmts.Print(s).Value)
	case ast.StmtExpr:
		r.resolveExpr(r.stmts.Expr(s).Value)
	case ast.StmtVarDecl:
		d := r.stmts.VarDecl(s)
		if slot := r.declare(d.Name, entryVar); slot >= 0 {
			r.declSlots[id] = slot
		}
		if d.Init.IsValid() {
			r.resolveExpr(d.Init)
		}
		r.define(d.Name)
	case ast.StmtBlock:
		d := r.stmts.Block(s)
		r.beginScope()
		for _, st := range d.Stmts {
			r.resolveStmt(st)
		}
		r.endScope(id)
	case ast.StmtIf:
		d := r.stmts.If(s)
		r.resolveExpr(d.Cond)
		r.resolveStmt(d.Then)
		if d.Else.IsValid() {
			r.resolveStmt(d.Else)
		}
	case ast.StmtWhile:
		d := r.stmts.While(s)
		r.resolveExpr(d.Cond)
		r.loopDepth++
		r.resolveStmt(d.Body)
		r.loopDepth--
	case ast.StmtBreak:
		d := r.stmts.Break(s)
		if r.loopDepth == 0 {
			diag.ReportError(r.reporter, d.Keyword.Span, diag.FormatAtToken(d.Keyword, "Can't use 'break' outside of loop."))
		}
	case ast.StmtReturn:
		r.resolveReturn(r.stmts.Return(s))
	case ast.StmtFunctionDecl:
		d := r.stmts.FunctionDecl(s)
		if slot := r.declare(d.Name, entryFunc); slot >= 0 {
			r.declSlots[id] = slot
		}
		r.define(d.Name)
		r.resolveFunction(d, id, FuncFunction)
	case ast.StmtClassDecl:
		r.resolveClass(r.stmts.ClassDecl(s), id)
	}
}

func (r *Resolver) resolveReturn(d *ast.StmtReturnData) {
	if r.currentFunction == FuncNone {
		diag.ReportError(r.reporter, d.Keyword.Span, diag.FormatAtToken(d.Keyword, "Can't return from top-level code."))
	}
	if d.Value.IsValid() {
		if r.currentFunction == FuncInitializer {
			diag.ReportError(r.reporter, d.Keyword.Span, diag.FormatAtToken(d.Keyword, "Can't return a value from an initializer."))
		}
		r.resolveExpr(d.Value)
	}
}

// resolveFunction resolves a function or method body in its own scope:
// declare+define each parameter, then resolve the body block's statements
// directly rather than treating the body as a nested Block statement, so
// parameters and body locals share one scope.
func (r *Resolver) resolveFunction(d *ast.StmtFunctionDeclData, id ast.StmtID, fnType FunctionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = fnType
	r.beginScope()

	for _, param := range d.Params {
		r.declare(param, entryParam)
		r.define(param)
	}

	body := r.stmts.Get(d.Body)
	block := r.stmts.Block(body)
	for _, st := range block.Stmts {
		r.resolveStmt(st)
	}

	r.endScope(id)
	r.currentFunction = enclosingFunction
}

// resolveClass declares the class name, then resolves every method with
// an enclosing scope pre-binding `this` at slot 0 — matching exactly the
// environment the evaluator builds when it binds a method to an instance.
func (r *Resolver) resolveClass(d *ast.StmtClassDeclData, id ast.StmtID) {
	if slot := r.declare(d.Name, entryFunc); slot >= 0 {
		r.declSlots[id] = slot
	}
	r.define(d.Name)

	enclosingClass := r.currentClass
	r.currentClass = ClassInClass
	r.beginScope()

	thisTok := token.Token{Kind: token.KwThis, Lexeme: "this", Span: d.Name.Span, Line: d.Name.Line}
	r.declare(thisTok, entryThis)
	r.define(thisTok)

	for _, methodID := range d.Methods {
		method := r.stmts.Get(methodID)
		fd := r.stmts.FunctionDecl(method)
		fnType := FuncMethod
		if fd.Name.Lexeme == "init" {
			fnType = FuncInitializer
		}
		r.resolveFunction(fd, methodID, fnType)
	}

	r.endScope(id)
	r.currentClass = enclosingClass
}
