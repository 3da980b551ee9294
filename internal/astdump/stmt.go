package astdump

import "lox/internal/ast"

func (d *dumper) stmt(id ast.StmtID) Node {
	if !id.IsValid() {
		return Node{Kind: "None"}
	}
	s := d.stmts.Get(id)
	switch s.Kind {
	case ast.StmtPrint:
		p := d.stmts.Print(s)
		return Node{Kind: "Print", Line: d.stmtLine(s), Children: []Node{d.expr(p.Value)}}
	case ast.StmtExpr:
		v := d.stmts.Expr(s)
		return Node{Kind: "Expr", Line: d.stmtLine(s), Children: []Node{d.expr(v.Value)}}
	case ast.StmtVarDecl:
		vd := d.stmts.VarDecl(s)
		node := Node{Kind: "VarDecl", Line: vd.Name.Line, Fields: map[string]string{"name": vd.Name.Lexeme}}
		if vd.Init.IsValid() {
			node.Children = []Node{d.expr(vd.Init)}
		}
		return node
	case ast.StmtBlock:
		b := d.stmts.Block(s)
		children := make([]Node, 0, len(b.Stmts))
		for _, st := range b.Stmts {
			children = append(children, d.stmt(st))
		}
		return Node{Kind: "Block", Line: d.stmtLine(s), Children: children}
	case ast.StmtIf:
		i := d.stmts.If(s)
		children := []Node{d.expr(i.Cond), d.stmt(i.Then)}
		if i.Else.IsValid() {
			children = append(children, d.stmt(i.Else))
		}
		return Node{Kind: "If", Line: d.stmtLine(s), Children: children}
	case ast.StmtWhile:
		w := d.stmts.While(s)
		return Node{Kind: "While", Line: d.stmtLine(s), Children: []Node{d.expr(w.Cond), d.stmt(w.Body)}}
	case ast.StmtBreak:
		b := d.stmts.Break(s)
		return Node{Kind: "Break", Line: b.Keyword.Line}
	case ast.StmtReturn:
		r := d.stmts.Return(s)
		node := Node{Kind: "Return", Line: r.Keyword.Line}
		if r.Value.IsValid() {
			node.Children = []Node{d.expr(r.Value)}
		}
		return node
	case ast.StmtFunctionDecl:
		return d.functionDecl(d.stmts.FunctionDecl(s))
	case ast.StmtClassDecl:
		c := d.stmts.ClassDecl(s)
		children := make([]Node, 0, len(c.Methods))
		for _, m := range c.Methods {
			children = append(children, d.stmt(m))
		}
		return Node{Kind: "ClassDecl", Line: c.Name.Line, Fields: map[string]string{"name": c.Name.Lexeme}, Children: children}
	default:
		return Node{Kind: "?"}
	}
}

func (d *dumper) functionDecl(fd *ast.StmtFunctionDeclData) Node {
	params := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = p.Lexeme
	}
	fields := map[string]string{"name": fd.Name.Lexeme}
	if len(params) > 0 {
		fields["params"] = joinLexemes(params)
	}
	return Node{Kind: "FunctionDecl", Line: fd.Name.Line, Fields: fields, Children: []Node{d.stmt(fd.Body)}}
}

func (d *dumper) stmtLine(s *ast.Stmt) uint32 {
	return d.fs.Line(s.Span)
}

func joinLexemes(lexemes []string) string {
	out := lexemes[0]
	for _, l := range lexemes[1:] {
		out += "," + l
	}
	return out
}
