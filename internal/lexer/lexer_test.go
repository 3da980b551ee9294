package lexer_test

import (
	"testing"

	"lox/internal/diag"
	"lox/internal/lexer"
	"lox/internal/source"
	"lox/internal/token"
)

type testReporter struct {
	messages []string
}

func (r *testReporter) Report(sev diag.Severity, primary source.Span, msg string) {
	r.messages = append(r.messages, msg)
}

func scan(t *testing.T, src string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lox", src)
	reporter := &testReporter{}
	lx := lexer.New(fs.Get(fileID), reporter)
	return lx.ScanTokens(), reporter
}

func TestScanTokensAlwaysEndsInEOF(t *testing.T) {
	toks, _ := scan(t, "var x = 1;")
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("last token = %v, want EOF", toks)
	}
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, reporter := scan(t, "(){},.-+;*!!====<=>=<>/")
	if len(reporter.messages) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.messages)
	}
	want := []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace, token.Comma, token.Dot,
		token.Minus, token.Plus, token.Semicolon, token.Star, token.Bang, token.BangEqual,
		token.EqualEqual, token.Equal, token.LessEqual, token.GreaterEqual, token.Less,
		token.Greater, token.Slash, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestScanStringLiteral(t *testing.T) {
	toks, reporter := scan(t, `"hello world"`)
	if len(reporter.messages) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.messages)
	}
	if toks[0].Kind != token.String || toks[0].Literal.Str != "hello world" {
		t.Errorf("got %+v, want String \"hello world\"", toks[0])
	}
}

func TestUnterminatedStringReportsError(t *testing.T) {
	_, reporter := scan(t, `"never closed`)
	if len(reporter.messages) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(reporter.messages), reporter.messages)
	}
}

func TestScanNumberLiteral(t *testing.T) {
	toks, _ := scan(t, "123.45")
	if toks[0].Kind != token.Number || toks[0].Literal.Num != 123.45 {
		t.Errorf("got %+v, want Number 123.45", toks[0])
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, _ := scan(t, "class fun var orchard")
	want := []token.Kind{token.KwClass, token.KwFun, token.KwVar, token.Ident, token.EOF}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLineCommentsAreSkipped(t *testing.T) {
	toks, _ := scan(t, "var x = 1; // trailing comment\nvar y = 2;")
	count := 0
	for _, tok := range toks {
		if tok.Kind == token.KwVar {
			count++
		}
	}
	if count != 2 {
		t.Errorf("got %d var tokens, want 2 (comment should not produce tokens)", count)
	}
}

func TestNewlinesAdvanceLine(t *testing.T) {
	toks, _ := scan(t, "1\n2\n3")
	wantLines := []uint32{1, 2, 3}
	for i, line := range wantLines {
		if toks[i].Line != line {
			t.Errorf("token %d line = %d, want %d", i, toks[i].Line, line)
		}
	}
}
