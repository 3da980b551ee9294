package resolve

import (
	"lox/internal/ast"
	"lox/internal/diag"
)

func (r *Resolver) resolveExpr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	e := r.exprs.Get(id)
	switch e.Kind {
	case ast.ExprLiteral:
		// no sub-expressions, no variable reference
	case ast.ExprUnary:
		d := r.exprs.Unary(e)
		r.resolveExpr(d.Operand)
	case ast.ExprBinary:
		d := r.exprs.Binary(e)
		r.resolveExpr(d.Left)
		r.resolveExpr(d.Right)
	case ast.ExprLogical:
		d := r.exprs.Logical(e)
		r.resolveExpr(d.Left)
		r.resolveExpr(d.Right)
	case ast.ExprVariable:
		d := r.exprs.Variable(e)
		if len(r.scopes) > 0 {
			if entry, ok := r.scopes[len(r.scopes)-1][d.Name.Lexeme]; ok && !entry.defined {
				diag.ReportError(r.reporter, d.Name.Span, diag.FormatAtToken(d.Name, "Can't read local variable in its own initializer."))
			}
		}
		r.resolveLocal(id, d.Name)
	case ast.ExprAssign:
		d := r.exprs.Assign(e)
		r.resolveExpr(d.Value)
		r.resolveLocal(id, d.Name)
	case ast.ExprCall:
		d := r.exprs.Call(e)
		r.resolveExpr(d.Callee)
		for _, arg := range d.Args {
			r.resolveExpr(arg)
		}
	case ast.ExprGet:
		d := r.exprs.GetData(e)
		r.resolveExpr(d.Object)
	case ast.ExprSet:
		d := r.exprs.SetData(e)
		r.resolveExpr(d.Value)
		r.resolveExpr(d.Object)
	case ast.ExprThis:
		d := r.exprs.This(e)
		if r.currentClass == ClassNone {
			diag.ReportError(r.reporter, d.Keyword.Span, diag.FormatAtToken(d.Keyword, "Can't use 'this' outside of a class."))
			return
		}
		r.resolveLocal(id, d.Keyword)
	}
}
