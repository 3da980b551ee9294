package replui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"golang.org/x/term"

	"lox/internal/ast"
	"lox/internal/config"
	"lox/internal/run"
	"lox/internal/source"
)

// Run starts the REPL, reading from in and writing to out. When in is a
// terminal it drives the Bubble Tea line editor; otherwise (piped input,
// a test harness, `lox < script.lox`) it falls back to a plain line-at-a-
// time loop, since a Bubble Tea program cannot render to a non-terminal.
// If skipConfig is set, .loxrc.toml is never consulted and Run starts
// from config.Default() instead.
func Run(in *os.File, out io.Writer, skipConfig bool) error {
	cfg := config.Default()
	if !skipConfig {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if isTerminal(in) {
		p := tea.NewProgram(NewModel(cfg))
		_, err := p.Run()
		return err
	}
	return runPlain(in, out, cfg)
}

// runPlain drives the REPL without Bubble Tea: one line in, one
// evaluation, diagnostics or the result printed, repeat until EOF.
func runPlain(in io.Reader, out io.Writer, cfg config.Config) error {
	scanner := bufio.NewScanner(in)
	fs := source.NewFileSet()
	ev := run.NewEvaluator(run.Result{Program: ast.NewProgram(nil, 0)}, out, true)

	errColor := color.New(color.FgRed)
	if cfg.Color == "off" {
		errColor.DisableColor()
	}
	lineNo := 0
	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		appendHistory(cfg.HistoryFile, text)

		lineNo++
		name := fmt.Sprintf("<repl:%d>", lineNo)
		fileID := fs.AddVirtual(name, text)
		file := fs.Get(fileID)

		result := run.Compile(file)
		if result.Bag.HasErrors() {
			for _, d := range result.Bag.Items() {
				errColor.Fprintln(out, d.Message)
			}
			continue
		}
		if err := ev.InterpretLine(result.Program, result.Resolve); err != nil {
			errColor.Fprintln(out, err.Error())
		}
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
