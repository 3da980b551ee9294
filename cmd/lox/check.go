package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"lox/internal/run"
	"lox/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Scan, parse, and resolve files without running them",
	Long:  `check runs the static stages (scan, parse, resolve) over one or more files concurrently and reports every diagnostic found.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

type checkOutcome struct {
	path string
	res  run.Result
}

// runCheck diagnoses every file in parallel via errgroup, then prints
// results in argument order so output is deterministic despite the
// concurrent work: one goroutine per file, writing into a pre-sized
// result slice indexed by argument position.
func runCheck(cmd *cobra.Command, args []string) error {
	outcomes := make([]checkOutcome, len(args))

	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			fs := source.NewFileSet()
			fileID, err := fs.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outcomes[i] = checkOutcome{path: path, res: run.Compile(fs.Get(fileID))}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitIOError)
	}

	useColor := colorEnabled(cmd, os.Stderr)
	hasErrors := false
	for _, o := range outcomes {
		if o.res.Bag.Len() == 0 {
			continue
		}
		fmt.Fprintf(os.Stdout, "== %s ==\n", o.path)
		for _, d := range o.res.Bag.Items() {
			printDiagnosticLine(d.Message, useColor)
		}
		if uint16(o.res.Bag.Len()) >= o.res.Bag.Cap() {
			fmt.Fprintf(os.Stdout, "... diagnostics truncated at %d\n", o.res.Bag.Cap())
		}
		if o.res.Bag.HasErrors() {
			hasErrors = true
		}
	}

	if hasErrors {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		os.Exit(exitStaticError)
	}
	return nil
}
