// Package browse implements an interactive terminal browser for parsed
// documents. Entries are navigated as a tree with fuzzy filtering over the
// keys visible at the current level.
package browse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/acfkit/acf"
	"github.com/acfkit/acf/log"
)

const filterPrompt = "/ "

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	entryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// model is the Bubble Tea model for the document browser.
type model struct {
	ctxFunc  func() context.Context
	input    textinput.Model
	logger   log.Logger
	doc      *acf.Document
	stack    []*acf.Entry // path of nested entries, root level when empty
	items    []item       // filtered items at the current level
	cursor   int          // selected item index
	width    int
	height   int
	quitting bool
}

// Run starts the browser over the given document.
func Run(ctx context.Context, doc *acf.Document, logger log.Logger) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if doc == nil {
		return ErrNoDocument
	}

	logger.TraceContext(
		ctx,
		"browse start",
		slog.Int("entry_count", len(doc.Entries)),
	)

	m := newModel(ctx, doc, logger)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(ctx context.Context, doc *acf.Document, logger log.Logger) model {
	ti := textinput.New()
	ti.Prompt = hintStyle.Render(filterPrompt)
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = defaultWidth

	m := model{
		ctxFunc: func() context.Context { return ctx },
		input:   ti,
		logger:  logger,
		doc:     doc,
		width:   defaultWidth,
	}
	m.items = filterItems(levelItems(m.doc, m.stack), "")

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(filterPrompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"browse keypress",
		slog.String("key", msg.String()),
	)

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		return m.descend()

	case tea.KeyEsc:
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.refresh()

			return m, nil
		}

		return m.ascend()

	case tea.KeyBackspace:
		if m.input.Value() == "" {
			return m.ascend()
		}

	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}

		return m, nil

	case tea.KeyDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.refresh()

	return m, cmd
}

// descend enters the selected item when it is a nested entry.
func (m model) descend() (model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return m, nil
	}

	it := m.items[m.cursor]
	if it.nested == nil {
		return m, nil
	}

	m.stack = append(m.stack, it.nested)
	m.input.SetValue("")
	m.refresh()

	m.logger.TraceContext(
		m.ctxFunc(),
		"browse descend",
		slog.String("entry", it.nested.Name),
		slog.Int("depth", len(m.stack)),
	)

	return m, nil
}

// ascend returns to the parent level, or quits at the root.
func (m model) ascend() (model, tea.Cmd) {
	if len(m.stack) == 0 {
		m.quitting = true

		return m, tea.Quit
	}

	m.stack = m.stack[:len(m.stack)-1]
	m.input.SetValue("")
	m.refresh()

	return m, nil
}

// refresh recomputes the filtered item list and clamps the cursor.
func (m *model) refresh() {
	m.items = filterItems(levelItems(m.doc, m.stack), m.input.Value())

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.breadcrumb()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(hintStyle.Render("  (no matches)"))
		b.WriteString("\n")
	}

	for i, it := range m.items {
		b.WriteString(renderItem(it, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(
		"↑/↓ select · enter descend · esc back · ctrl+c quit",
	))
	b.WriteString("\n")

	return b.String()
}

// breadcrumb renders the current navigation path.
func (m model) breadcrumb() string {
	if len(m.stack) == 0 {
		return "(document)"
	}

	names := make([]string, len(m.stack))
	for i, e := range m.stack {
		names[i] = e.Name
	}

	return strings.Join(names, " / ")
}
