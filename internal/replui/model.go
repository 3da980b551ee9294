// Package replui implements the interactive REPL: a Bubble Tea line
// editor when stdin is a terminal, falling back to a plain
// bufio.Scanner loop otherwise — the same on/off-terminal distinction
// the CLI makes for colorized output.
package replui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lox/internal/ast"
	"lox/internal/config"
	"lox/internal/eval"
	"lox/internal/run"
	"lox/internal/source"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

type line struct {
	prompt string
	source string
	output []string
	errs   []string
}

type model struct {
	cfg        config.Config
	colorOn    bool
	input      textinput.Model
	fileSet    *source.FileSet
	evaluator  *eval.Evaluator
	lines      []line
	lineNo     int
	width      int
	quitting   bool
	history    []string
	historyPos int
}

// NewModel builds the Bubble Tea REPL model. The evaluator's globals
// persist for the model's whole lifetime; each submitted line is its own
// Program resolved fresh against run.Compile. Past lines are preloaded
// from cfg.HistoryFile, if set, so Up/Down recall survives across runs.
func NewModel(cfg config.Config) tea.Model {
	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	if cfg.Color != "off" {
		ti.PromptStyle = promptStyle
	}
	ti.Focus()

	fs := source.NewFileSet()
	out := &strings.Builder{}
	ev := run.NewEvaluator(run.Result{Program: ast.NewProgram(nil, 0)}, out, true)
	history := loadHistory(cfg.HistoryFile)
	m := &model{
		cfg:        cfg,
		colorOn:    cfg.Color != "off",
		input:      ti,
		fileSet:    fs,
		evaluator:  ev,
		width:      80,
		history:    history,
		historyPos: len(history),
	}
	return m
}

// loadHistory reads previously-persisted REPL lines, one per line, or
// returns nil if path is empty or unreadable.
func loadHistory(path string) []string {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// appendHistory persists src as the newest history entry, ignoring
// failures — a missing or unwritable history file never blocks the REPL.
func appendHistory(path, src string) {
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintln(f, src)
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// recall moves historyPos by delta and loads the entry at the new
// position into the input, or clears it once delta walks past the end
// (recalling "the line not yet submitted").
func (m *model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.historyPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.history) {
		pos = len(m.history)
	}
	m.historyPos = pos
	if pos == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

func (m *model) submit() {
	src := m.input.Value()
	m.input.SetValue("")
	if strings.TrimSpace(src) == "" {
		return
	}
	m.history = append(m.history, src)
	m.historyPos = len(m.history)
	appendHistory(m.cfg.HistoryFile, src)

	m.lineNo++
	name := fmt.Sprintf("<repl:%d>", m.lineNo)
	fileID := m.fileSet.AddVirtual(name, src)
	file := m.fileSet.Get(fileID)

	result := run.Compile(file)
	l := line{prompt: m.cfg.Prompt, source: src}

	if result.Bag.HasErrors() {
		for _, d := range result.Bag.Items() {
			l.errs = append(l.errs, d.Message)
		}
		m.lines = append(m.lines, l)
		return
	}

	var out strings.Builder
	m.evaluator.SetOutput(&out)
	if err := m.evaluator.InterpretLine(result.Program, result.Resolve); err != nil {
		l.errs = append(l.errs, err.Error())
	}
	if text := out.String(); text != "" {
		l.output = strings.Split(strings.TrimRight(text, "\n"), "\n")
	}
	m.lines = append(m.lines, l)
}

func (m *model) View() string {
	var b strings.Builder
	for _, l := range m.lines {
		fmt.Fprintf(&b, "%s%s\n", m.render(promptStyle, l.prompt), m.render(echoStyle, m.clip(l.source)))
		for _, o := range l.output {
			b.WriteString(m.clip(o))
			b.WriteString("\n")
		}
		for _, e := range l.errs {
			b.WriteString(m.render(errorStyle, m.clip(e)))
			b.WriteString("\n")
		}
	}
	if !m.quitting {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	return b.String()
}

// render applies style to s unless cfg.Color is "off", in which case the
// text is passed through unstyled.
func (m *model) render(style lipgloss.Style, s string) string {
	if !m.colorOn {
		return s
	}
	return style.Render(s)
}

// clip truncates s to the terminal's current width, appending an
// ellipsis when it had to cut, so a long echoed line or print result
// never wraps the Bubble Tea viewport in a way that breaks rendering.
func (m *model) clip(s string) string {
	if m.width <= 0 || runewidth.StringWidth(s) <= m.width {
		return s
	}
	if m.width <= 3 {
		return runewidth.Truncate(s, m.width, "")
	}
	return runewidth.Truncate(s, m.width-3, "...")
}
