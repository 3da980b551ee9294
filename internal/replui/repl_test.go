package replui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lox/internal/config"
)

func TestRunPlainEchoesPrintOutput(t *testing.T) {
	in := strings.NewReader("print 1 + 2;\n")
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Color = "off"
	cfg.HistoryFile = ""

	if err := runPlain(in, &out, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "3") {
		t.Errorf("output %q does not contain evaluated result", out.String())
	}
}

func TestRunPlainPersistsVariablesAcrossLines(t *testing.T) {
	in := strings.NewReader("var x = 10;\nprint x + 5;\n")
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Color = "off"
	cfg.HistoryFile = ""

	if err := runPlain(in, &out, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "15") {
		t.Errorf("output %q does not show x surviving into the next line", out.String())
	}
}

func TestRunPlainReportsDiagnosticsWithoutStopping(t *testing.T) {
	in := strings.NewReader("1 +;\nprint 4;\n")
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Color = "off"
	cfg.HistoryFile = ""

	if err := runPlain(in, &out, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "Error") {
		t.Errorf("expected a reported parse error, got %q", out.String())
	}
	if !strings.Contains(out.String(), "4") {
		t.Errorf("expected the later, valid line to still evaluate, got %q", out.String())
	}
}

func TestRunPlainAppendsSubmittedLinesToHistoryFile(t *testing.T) {
	dir := t.TempDir()
	histPath := filepath.Join(dir, "history")

	in := strings.NewReader("print 1;\nvar x = 2;\n")
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Color = "off"
	cfg.HistoryFile = histPath

	if err := runPlain(in, &out, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(histPath)
	if err != nil {
		t.Fatalf("history file was not written: %v", err)
	}
	got := strings.TrimRight(string(data), "\n")
	want := "print 1;\nvar x = 2;"
	if got != want {
		t.Errorf("got history %q, want %q", got, want)
	}
}

func TestLoadHistoryReturnsNilForEmptyPath(t *testing.T) {
	if h := loadHistory(""); h != nil {
		t.Errorf("got %v, want nil", h)
	}
}

func TestLoadHistoryReadsPersistedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got := loadHistory(path)
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
