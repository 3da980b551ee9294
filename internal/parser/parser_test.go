package parser_test

import (
	"testing"

	"lox/internal/ast"
	"lox/internal/diag"
	"lox/internal/lexer"
	"lox/internal/parser"
	"lox/internal/source"
)

type testReporter struct {
	messages []string
}

func (r *testReporter) Report(sev diag.Severity, primary source.Span, msg string) {
	r.messages = append(r.messages, msg)
}

func parse(t *testing.T, src string) (*ast.Program, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lox", src)
	file := fs.Get(fileID)

	reporter := &testReporter{}
	tokens := lexer.New(file, reporter).ScanTokens()
	prog := ast.NewProgram(file, uint(len(tokens)))
	prog.Tokens = tokens
	parser.Parse(prog, tokens, reporter)
	return prog, reporter
}

func TestParseVarDeclaration(t *testing.T) {
	prog, reporter := parse(t, `var x = 1 + 2;`)
	if len(reporter.messages) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.messages)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	s := prog.Stmts.Get(prog.Statements[0])
	if s.Kind != ast.StmtVarDecl {
		t.Fatalf("got %v, want StmtVarDecl", s.Kind)
	}
	d := prog.Stmts.VarDecl(s)
	if d.Name.Lexeme != "x" {
		t.Errorf("got name %q, want x", d.Name.Lexeme)
	}
	initExpr := prog.Exprs.Get(d.Init)
	if initExpr.Kind != ast.ExprBinary {
		t.Errorf("got init kind %v, want ExprBinary", initExpr.Kind)
	}
}

func TestParsePrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3): the outer node is '+'.
	prog, reporter := parse(t, `1 + 2 * 3;`)
	if len(reporter.messages) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.messages)
	}
	s := prog.Stmts.Get(prog.Statements[0])
	exprStmt := prog.Stmts.Expr(s)
	top := prog.Exprs.Get(exprStmt.Value)
	if top.Kind != ast.ExprBinary {
		t.Fatalf("got %v, want ExprBinary", top.Kind)
	}
	bin := prog.Exprs.Binary(top)
	if bin.Op.Lexeme != "+" {
		t.Fatalf("outer operator = %q, want +", bin.Op.Lexeme)
	}
	right := prog.Exprs.Get(bin.Right)
	if right.Kind != ast.ExprBinary {
		t.Fatalf("right operand kind = %v, want ExprBinary (2 * 3)", right.Kind)
	}
}

func TestParseClassWithMethods(t *testing.T) {
	prog, reporter := parse(t, `class Greeter { greet(name) { print "hi " + name; } }`)
	if len(reporter.messages) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.messages)
	}
	s := prog.Stmts.Get(prog.Statements[0])
	if s.Kind != ast.StmtClassDecl {
		t.Fatalf("got %v, want StmtClassDecl", s.Kind)
	}
	d := prog.Stmts.ClassDecl(s)
	if d.Name.Lexeme != "Greeter" || len(d.Methods) != 1 {
		t.Fatalf("got %+v", d)
	}
	method := prog.Stmts.FunctionDecl(prog.Stmts.Get(d.Methods[0]))
	if method.Name.Lexeme != "greet" || len(method.Params) != 1 {
		t.Errorf("got %+v", method)
	}
}

func TestParseErrorRecoverySynchronizesOnNextDeclaration(t *testing.T) {
	// The first statement is missing its semicolon, a parse error; after
	// synchronizing, the second (independent) declaration should still parse.
	prog, reporter := parse(t, "var x = 1\nvar y = 2;")
	if len(reporter.messages) == 0 {
		t.Fatal("expected a parse error for the missing ';'")
	}
	foundY := false
	for _, id := range prog.Statements {
		s := prog.Stmts.Get(id)
		if s.Kind == ast.StmtVarDecl && prog.Stmts.VarDecl(s).Name.Lexeme == "y" {
			foundY = true
		}
	}
	if !foundY {
		t.Error("parser should recover and still parse 'var y = 2;'")
	}
}
