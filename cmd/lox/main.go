// Package main is the lox CLI: a cobra root command that runs a script,
// enters the REPL, or dispatches to the check/ast subcommands.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Exit codes: 0 success, 60 I/O failure (file not found/unreadable),
// 65 a scan/parse/resolve error, 70 a runtime error.
const (
	exitOK          = 0
	exitIOError     = 60
	exitStaticError = 65
	exitRuntimeErr  = 70
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Lox language interpreter",
	Long:  `lox scans, parses, resolves, and evaluates Lox source — a tree-walking interpreter.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRootCommand,
}

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("no-config", false, "ignore .loxrc.toml")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	return flag == "on" || (flag == "auto" && isTerminal(f))
}
