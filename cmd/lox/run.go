package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lox/internal/replui"
	"lox/internal/run"
	"lox/internal/source"
)

// runRootCommand implements bare `lox` (enter the REPL) and `lox script`
// (run one file), the two forms the command line accepts.
func runRootCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		noConfig, _ := cmd.Root().PersistentFlags().GetBool("no-config")
		return replui.Run(os.Stdin, os.Stdout, noConfig)
	}
	runScript(cmd, args[0])
	return nil
}

// runScript loads path, compiles it, and evaluates it if compilation
// produced no errors, exiting with the exit-code convention.
func runScript(cmd *cobra.Command, path string) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitIOError)
	}
	file := fs.Get(fileID)

	result := run.Compile(file)
	if result.Bag.HasErrors() {
		printDiagnostics(cmd, result)
		os.Exit(exitStaticError)
	}

	ev := run.NewEvaluator(result, os.Stdout, false)
	if err := run.Interpret(ev, result); err != nil {
		errColor := color.New(color.FgRed)
		if colorEnabled(cmd, os.Stderr) {
			errColor.Fprintln(os.Stderr, err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(exitRuntimeErr)
	}
	os.Exit(exitOK)
}

func printDiagnostics(cmd *cobra.Command, result run.Result) {
	useColor := colorEnabled(cmd, os.Stderr)
	for _, d := range result.Bag.Items() {
		printDiagnosticLine(d.Message, useColor)
	}
	if uint16(result.Bag.Len()) >= result.Bag.Cap() {
		fmt.Fprintf(os.Stderr, "... diagnostics truncated at %d\n", result.Bag.Cap())
	}
}

func printDiagnosticLine(msg string, useColor bool) {
	if useColor {
		color.New(color.FgRed).Fprintln(os.Stderr, msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}
