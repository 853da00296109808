package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/connerohnesorge/paredit/internal/paredit"
	"github.com/connerohnesorge/paredit/internal/sexp"
	"github.com/connerohnesorge/paredit/internal/theme"
)

// Editor is the interactive structural editing session. It owns one
// document and renders it with the current form highlighted; every
// keybinding maps to a paredit operation.
type Editor struct {
	doc  *paredit.Document
	path string
	fs   afero.Fs

	keys keyMap
	help help.Model

	status   string
	dirty    bool
	quitting bool
	width    int
	height   int
}

// NewEditor creates an editor over an already-loaded document.
// Saving writes the document text back to path on fs.
func NewEditor(
	doc *paredit.Document,
	path string,
	fs afero.Fs,
) *Editor {
	return &Editor{
		doc:  doc,
		path: path,
		fs:   fs,
		keys: defaultKeyMap(),
		help: help.New(),
	}
}

// Init implements tea.Model.
func (m *Editor) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
//
//nolint:revive // cognitive-complexity: keybinding dispatch is one flat switch
func (m *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true

			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Save):
			m.save()

		case key.Matches(msg, m.keys.ForwardSexp):
			m.moveTo(paredit.ForwardSexpOrUpRange, 1)

		case key.Matches(msg, m.keys.BackwardSexp):
			m.moveTo(paredit.BackwardSexpOrUpRange, 0)

		case key.Matches(msg, m.keys.UpList):
			m.moveTo(paredit.RangeToBackwardUpList, 0)

		case key.Matches(msg, m.keys.DownList):
			m.moveTo(paredit.RangeToForwardDownList, 1)

		case key.Matches(msg, m.keys.SlurpFwd):
			m.run("slurp-forward", paredit.SlurpForward)

		case key.Matches(msg, m.keys.SlurpBack):
			m.run("slurp-backward", paredit.SlurpBackward)

		case key.Matches(msg, m.keys.BarfFwd):
			m.run("barf-forward", paredit.BarfForward)

		case key.Matches(msg, m.keys.BarfBack):
			m.run("barf-backward", paredit.BarfBackward)

		case key.Matches(msg, m.keys.Raise):
			m.run("raise", paredit.Raise)

		case key.Matches(msg, m.keys.Splice):
			m.run("splice", paredit.Splice)

		case key.Matches(msg, m.keys.Wrap):
			m.run("wrap", paredit.WrapWith("(", ")"))

		case key.Matches(msg, m.keys.Transpose):
			m.run("transpose", paredit.Transpose)

		case key.Matches(msg, m.keys.Kill):
			m.run("kill", paredit.KillForwardSexp)
		}
	}

	return m, nil
}

// moveTo applies a range function to the cursor and moves the active
// end to the chosen side of the result.
func (m *Editor) moveTo(fn paredit.RangeFunc, side int) {
	active := m.doc.Selection().Active
	r := fn(m.doc, active)
	if r[0] == r[1] {
		m.status = "no move"

		return
	}
	m.doc.SetSelections([]paredit.Selection{
		paredit.Cursor(r[side]),
	})
	m.status = ""
}

// run executes a mutation and records its outcome in the status line.
func (m *Editor) run(name string, op paredit.Op) {
	if !paredit.Execute(m.doc, op) {
		m.status = name + ": no-op"

		return
	}
	m.dirty = true
	m.status = name
}

// save writes the buffer back to disk.
func (m *Editor) save() {
	err := afero.WriteFile(
		m.fs,
		m.path,
		[]byte(m.doc.Text()),
		0o644,
	)
	if err != nil {
		m.status = "save failed: " + err.Error()

		return
	}
	m.dirty = false
	m.status = "saved"
}

// View implements tea.Model.
func (m *Editor) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(Banner("paredit"))
	b.WriteString("  ")
	b.WriteString(TitleStyle().Render(m.path))
	if m.dirty {
		b.WriteString(TitleStyle().Render(" *"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderBuffer())
	b.WriteString("\n")
	b.WriteString(StatusStyle().Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(HelpStyle().Render(m.help.View(m.keys)))

	return b.String()
}

// statusLine formats the cursor position and last operation outcome.
func (m *Editor) statusLine() string {
	active := m.doc.Selection().Active
	pos := m.doc.Model().OffsetToPosition(active)
	line := fmt.Sprintf(
		"%d:%d  offset %d/%d",
		pos.Line+1,
		pos.Col,
		active,
		m.doc.Length(),
	)
	if m.status != "" {
		line += "  " + m.status
	}

	return line
}

// renderBuffer renders the document with token coloring, the current
// form highlighted, and the cursor cell inverted.
func (m *Editor) renderBuffer() string {
	model := m.doc.Model()
	active := m.doc.Selection().Active
	form := paredit.RangeForCurrentForm(m.doc, active)

	var b strings.Builder
	for li := 0; li < model.LineCount(); li++ {
		if li > 0 {
			b.WriteByte('\n')
		}
		line := model.Line(li)
		lineOff := model.OffsetForLine(li)

		for _, tok := range line.Tokens {
			start := lineOff + tok.Col
			b.WriteString(renderToken(
				tok,
				start,
				active,
				form,
			))
		}

		// Cursor parked on the line's trailing newline.
		if active == lineOff+len(line.Text) &&
			m.cursorOnLine(li, active) {
			b.WriteString(CursorStyle().Render(" "))
		}
	}

	return b.String()
}

// cursorOnLine reports whether the active offset belongs to line li.
func (m *Editor) cursorOnLine(li, active int) bool {
	return m.doc.Model().OffsetToPosition(active).Line == li
}

// renderToken styles one token cell by cell, splitting out the cursor
// and applying the current-form background.
func renderToken(
	tok sexp.Token,
	start, active int,
	form [2]int,
) string {
	base := tokenStyle(tok)
	inForm := base.Background(
		theme.Current().FormHighlight,
	)

	var b strings.Builder
	for i := 0; i < len(tok.Raw); i++ {
		off := start + i
		cell := tok.Raw[i : i+1]
		switch {
		case off == active:
			b.WriteString(CursorStyle().Render(cell))
		case form[0] < form[1] && off >= form[0] && off < form[1]:
			b.WriteString(inForm.Render(cell))
		default:
			b.WriteString(base.Render(cell))
		}
	}

	return b.String()
}

// tokenStyle picks the foreground style for a token kind.
func tokenStyle(tok sexp.Token) lipgloss.Style {
	switch {
	case tok.IsOpenKind() || tok.IsCloseKind():
		return DelimiterStyle()
	case tok.Type == sexp.TokenStrInside:
		return StringStyle()
	case tok.IsWhitespace():
		return lipgloss.NewStyle()
	default:
		return AtomStyle()
	}
}

// Run starts the interactive session and blocks until it exits.
func (m *Editor) Run() error {
	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("error running editor: %w", err)
	}

	return nil
}

// Doc exposes the edited document, mainly for tests.
func (m *Editor) Doc() *paredit.Document {
	return m.doc
}
