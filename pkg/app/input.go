package app

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/tinyland/shelf/pkg/complete"
)

// ErrInterrupted is returned by ReadLine when the operator cancels the
// current line with Ctrl-C, per §5's "at a readline wait it discards
// the current line" cancellation rule.
var ErrInterrupted = errors.New("input interrupted")

// suggestionStyle dims the ghost-text completion textinput renders past
// the cursor, per §4.8's "printed to the right of the cursor in a
// dim/colored style".
var suggestionStyle = lipgloss.NewStyle().Faint(true)

// lineModel is component H's readline-level line editor: a bubbletea
// model wrapping bubbles/textinput, decorated with the fixed-order
// suggestion engine (§4.8) fed through textinput's own ghost-text
// support rather than a hand-rolled CSI cursor dance.
type lineModel struct {
	ti        textinput.Model
	prompt    string
	ctx       *Ctx
	submitted bool
	cancelled bool
	value     string
}

func newLineModel(ctx *Ctx, prompt string) lineModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()
	ti.ShowSuggestions = ctx.Cfg.SuggestionsEnabled
	ti.CompletionStyle = suggestionStyle
	return lineModel{ti: ti, prompt: prompt, ctx: ctx}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.value = m.ti.Value()
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.ti.Value() == "" {
				m.value = "q"
				m.submitted = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.ti.SetSuggestions(m.suggestionPool())
	return m, cmd
}

func (m lineModel) View() string {
	return m.prompt + m.ti.View()
}

// suggestionPool gathers every candidate source the fixed strategy
// order in §4.8 draws from and flattens them into one pool; textinput's
// own prefix matcher then picks and renders the ghost text, which keeps
// the cursor-restore math inside the well-tested library rather than
// hand-rolled CSI bookkeeping.
func (m lineModel) suggestionPool() []string {
	rt := m.ctx.Runtime
	var pool []string
	for alias := range rt.Cfg.Aliases {
		pool = append(pool, alias)
	}
	for _, bm := range rt.Bookmarks.List() {
		pool = append(pool, bm.Name)
	}
	pool = append(pool, complete.CommandCandidates(m.ctx.Dispatcher.Names(), rt.Cfg.Aliases)...)
	pool = append(pool, m.ctx.names()...)
	if rt.Cfg.History {
		pool = append(pool, rt.History.Lines()...)
	}
	sort.Strings(pool)

	return complete.Complete(m.ti.Value(), pool, complete.Options{
		CaseSensitive: rt.Cfg.CaseSensPathComp,
		Fuzzy:         rt.Cfg.FuzzyMatch,
	})
}

// ReadLine renders prompt and drives one bubbletea program to collect a
// single input line, honoring suggestions when enabled and TAB
// completion delegated to textinput's built-in matcher. Returns
// ErrInterrupted on Ctrl-C, matching the state-machine cancellation
// §5 describes for a readline wait.
func ReadLine(ctx *Ctx, prompt string) (string, error) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return readLineNonInteractive()
	}

	m := newLineModel(ctx, prompt)
	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	final := result.(lineModel)
	if final.cancelled {
		return "", ErrInterrupted
	}
	return final.value, nil
}

// stdinReader is shared across calls so a non-interactive (piped) run
// reads one line per prompt iteration instead of rebuffering from the
// start of stdin each time.
var stdinReader = bufio.NewReader(os.Stdin)

// readLineNonInteractive services scripted/piped invocations (stdout is
// not a TTY): no prompt chrome, suggestions, or raw mode, just one line
// at a time, per §5's "only at readline I/O" suspension point.
func readLineNonInteractive() (string, error) {
	line, err := stdinReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "q", nil
	}
	return trimNewline(line), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
