package astdump_test

import (
	"testing"

	"lox/internal/ast"
	"lox/internal/astdump"
	"lox/internal/diag"
	"lox/internal/lexer"
	"lox/internal/parser"
	"lox/internal/source"
)

type testReporter struct{ messages []string }

func (r *testReporter) Report(sev diag.Severity, primary source.Span, msg string) {
	r.messages = append(r.messages, msg)
}

func compileForDump(t *testing.T, src string) (*ast.Program, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lox", src)
	file := fs.Get(fileID)

	reporter := &testReporter{}
	tokens := lexer.New(file, reporter).ScanTokens()
	prog := ast.NewProgram(file, uint(len(tokens)))
	prog.Tokens = tokens
	parser.Parse(prog, tokens, reporter)
	if len(reporter.messages) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.messages)
	}
	return prog, fs
}

func TestDumpBinaryExpressionShape(t *testing.T) {
	prog, fs := compileForDump(t, "1 + 2;")
	nodes := astdump.Dump(prog, fs)
	if len(nodes) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(nodes))
	}
	exprStmt := nodes[0]
	if exprStmt.Kind != "Expr" {
		t.Fatalf("got %q, want Expr", exprStmt.Kind)
	}
	if len(exprStmt.Children) != 1 {
		t.Fatalf("Expr statement should wrap exactly one expression")
	}
	binary := exprStmt.Children[0]
	if binary.Kind != "Binary" || binary.Fields["op"] != "+" {
		t.Errorf("got %+v, want Binary op=+", binary)
	}
	if len(binary.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(binary.Children))
	}
	if binary.Children[0].Fields["value"] != "1" || binary.Children[1].Fields["value"] != "2" {
		t.Errorf("got %+v", binary.Children)
	}
}

func TestDumpVarDeclLineNumber(t *testing.T) {
	prog, fs := compileForDump(t, "\n\nvar x = 1;")
	nodes := astdump.Dump(prog, fs)
	if nodes[0].Line != 3 {
		t.Errorf("got line %d, want 3", nodes[0].Line)
	}
}

func TestDumpClassWithMethodNesting(t *testing.T) {
	prog, fs := compileForDump(t, `class C { m() { return 1; } }`)
	nodes := astdump.Dump(prog, fs)
	if nodes[0].Kind != "ClassDecl" {
		t.Fatalf("got %q, want ClassDecl", nodes[0].Kind)
	}
	if len(nodes[0].Children) != 1 {
		t.Fatalf("got %d methods, want 1", len(nodes[0].Children))
	}
	method := nodes[0].Children[0]
	if method.Kind != "FunctionDecl" || method.Fields["name"] != "m" {
		t.Errorf("got %+v", method)
	}
}
