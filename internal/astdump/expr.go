package astdump

import (
	"strconv"

	"lox/internal/ast"
)

func (d *dumper) expr(id ast.ExprID) Node {
	if !id.IsValid() {
		return Node{Kind: "None"}
	}
	e := d.exprs.Get(id)
	switch e.Kind {
	case ast.ExprLiteral:
		lit := d.exprs.Literal(e)
		fields := map[string]string{"kind": literalKindName(lit.Kind)}
		switch lit.Kind {
		case ast.LitBool:
			fields["value"] = strconv.FormatBool(lit.Bool)
		case ast.LitNumber:
			fields["value"] = strconv.FormatFloat(lit.Num, 'g', -1, 64)
		case ast.LitString:
			fields["value"] = lit.Str
		}
		return Node{Kind: "Literal", Line: d.exprLine(e), Fields: fields}
	case ast.ExprUnary:
		u := d.exprs.Unary(e)
		return Node{Kind: "Unary", Line: u.Op.Line, Fields: map[string]string{"op": u.Op.Lexeme},
			Children: []Node{d.expr(u.Operand)}}
	case ast.ExprBinary:
		b := d.exprs.Binary(e)
		return Node{Kind: "Binary", Line: b.Op.Line, Fields: map[string]string{"op": b.Op.Lexeme},
			Children: []Node{d.expr(b.Left), d.expr(b.Right)}}
	case ast.ExprLogical:
		l := d.exprs.Logical(e)
		return Node{Kind: "Logical", Line: l.Op.Line, Fields: map[string]string{"op": l.Op.Lexeme},
			Children: []Node{d.expr(l.Left), d.expr(l.Right)}}
	case ast.ExprVariable:
		v := d.exprs.Variable(e)
		return Node{Kind: "Variable", Line: v.Name.Line, Fields: map[string]string{"name": v.Name.Lexeme}}
	case ast.ExprAssign:
		a := d.exprs.Assign(e)
		return Node{Kind: "Assign", Line: a.Name.Line, Fields: map[string]string{"name": a.Name.Lexeme},
			Children: []Node{d.expr(a.Value)}}
	case ast.ExprCall:
		c := d.exprs.Call(e)
		children := make([]Node, 0, len(c.Args)+1)
		children = append(children, d.expr(c.Callee))
		for _, arg := range c.Args {
			children = append(children, d.expr(arg))
		}
		return Node{Kind: "Call", Line: c.Paren.Line, Children: children}
	case ast.ExprGet:
		g := d.exprs.GetData(e)
		return Node{Kind: "Get", Line: g.Name.Line, Fields: map[string]string{"name": g.Name.Lexeme},
			Children: []Node{d.expr(g.Object)}}
	case ast.ExprSet:
		s := d.exprs.SetData(e)
		return Node{Kind: "Set", Line: s.Name.Line, Fields: map[string]string{"name": s.Name.Lexeme},
			Children: []Node{d.expr(s.Object), d.expr(s.Value)}}
	case ast.ExprThis:
		t := d.exprs.This(e)
		return Node{Kind: "This", Line: t.Keyword.Line}
	default:
		return Node{Kind: "?"}
	}
}

// exprLine recovers a line number for nodes (like ExprLiteral) whose
// payload carries no token, by resolving the node's own span instead.
func (d *dumper) exprLine(e *ast.Expr) uint32 {
	return d.fs.Line(e.Span)
}

func literalKindName(k ast.LiteralKind) string {
	switch k {
	case ast.LitNil:
		return "nil"
	case ast.LitBool:
		return "bool"
	case ast.LitNumber:
		return "number"
	case ast.LitString:
		return "string"
	default:
		return "?"
	}
}
