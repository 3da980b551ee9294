package run_test

import (
	"bytes"
	"testing"

	"lox/internal/run"
	"lox/internal/source"
)

func compile(t *testing.T, src string) run.Result {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lox", src)
	return run.Compile(fs.Get(fileID))
}

func TestCompileCleanProgramHasNoDiagnostics(t *testing.T) {
	res := compile(t, `print 1 + 2;`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestCompileSyntaxErrorIsReportedNotPanicked(t *testing.T) {
	res := compile(t, `var x = ;`)
	if !res.Bag.HasErrors() {
		t.Fatal("expected a syntax error to be reported")
	}
}

func TestCompileResolveErrorIsReported(t *testing.T) {
	res := compile(t, `{ var a = a; }`)
	if !res.Bag.HasErrors() {
		t.Fatal("expected a resolve error for the self-referencing initializer")
	}
}

func TestInterpretRunsACompiledResult(t *testing.T) {
	res := compile(t, `print "hello";`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	var out bytes.Buffer
	ev := run.NewEvaluator(res, &out, false)
	if err := run.Interpret(ev, res); err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out.String() != "hello\n" {
		t.Errorf("got %q, want %q", out.String(), "hello\n")
	}
}

func TestMaxDiagnosticsBoundsReportedCount(t *testing.T) {
	var src string
	for i := 0; i < run.MaxDiagnostics+20; i++ {
		src += "var ;\n"
	}
	res := compile(t, src)
	if !res.Bag.HasErrors() {
		t.Fatal("expected the malformed declarations to report errors")
	}
	if len(res.Bag.Items()) > run.MaxDiagnostics {
		t.Errorf("got %d diagnostics, want at most %d", len(res.Bag.Items()), run.MaxDiagnostics)
	}
}
