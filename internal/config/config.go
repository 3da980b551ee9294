// Package config loads the optional .loxrc.toml file the REPL and CLI
// read their defaults from, following ordinary BurntSushi/toml-backed
// CLI config convention; see DESIGN.md for why this package has no
// single file it's adapted from.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the config file's name, searched for in the current
// working directory and then the user's home directory.
const FileName = ".loxrc.toml"

// Config holds the REPL and CLI defaults a .loxrc.toml may override.
type Config struct {
	// Color selects "auto", "on", or "off" — the same three values the
	// --color persistent flag accepts.
	Color string `toml:"color"`
	// Prompt is the REPL's line prompt, default "> ".
	Prompt string `toml:"prompt"`
	// HistoryFile is where the REPL persists line history between runs.
	// Empty disables history persistence.
	HistoryFile string `toml:"history_file"`
}

// Default returns the built-in defaults applied when no config file is
// found, or a field is left unset in one that is.
func Default() Config {
	return Config{Color: "auto", Prompt: "> ", HistoryFile: defaultHistoryPath()}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lox_history")
}

// Load searches the working directory, then the user's home directory,
// for .loxrc.toml, merging any fields it sets over Default(). A missing
// file is not an error — it returns Default() unchanged.
func Load() (Config, error) {
	cfg := Default()

	path, ok := findFile()
	if !ok {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func findFile() (string, bool) {
	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}
