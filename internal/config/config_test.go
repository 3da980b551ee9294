package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"lox/internal/config"
)

func TestDefaultHasSaneFallbacks(t *testing.T) {
	cfg := config.Default()
	if cfg.Color != "auto" {
		t.Errorf("got Color %q, want auto", cfg.Color)
	}
	if cfg.Prompt != "> " {
		t.Errorf("got Prompt %q, want %q", cfg.Prompt, "> ")
	}
}

func TestLoadWithNoConfigFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	t.Setenv("HOME", dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := config.Default()
	if cfg.Color != want.Color || cfg.Prompt != want.Prompt {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadOverlaysFieldsFromCwdConfigFile(t *testing.T) {
	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()
	t.Setenv("HOME", dir)

	contents := "color = \"off\"\nprompt = \"lox> \"\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != "off" {
		t.Errorf("got Color %q, want off", cfg.Color)
	}
	if cfg.Prompt != "lox> " {
		t.Errorf("got Prompt %q, want lox> ", cfg.Prompt)
	}
}

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	return func() { os.Chdir(old) }
}
