package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lox/internal/astdump"
	"lox/internal/run"
	"lox/internal/source"
)

var astCmd = &cobra.Command{
	Use:   "ast [flags] <file>",
	Short: "Dump a file's parsed AST",
	Long:  `ast scans, parses, and resolves file, then prints its AST in the chosen format without evaluating it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	astCmd.Flags().String("format", "json", "output format (json|msgpack)")
}

func runAST(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitIOError)
	}

	result := run.Compile(fs.Get(fileID))
	if result.Bag.HasErrors() {
		printDiagnostics(cmd, result)
		os.Exit(exitStaticError)
	}

	nodes := astdump.Dump(result.Program, fs)
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case "msgpack":
		return astdump.EncodeMsgpack(os.Stdout, result.Program, fs)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
