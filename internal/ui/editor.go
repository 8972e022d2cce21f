// Package ui holds the interactive spec editor used by `mpass edit`.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"mpass/internal/diagfmt"
	"mpass/internal/driver"
	"mpass/internal/specifier"
)

// strongBits fills the strength meter.
const strongBits = 100.0

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	sampleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	staleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// EditorModel edits a spec string with live validation. Every change is
// checked, and valid specs are recompiled into the shared Specifier. An
// invalid spec keeps the last good sample on screen, dimmed.
type EditorModel struct {
	ctx      context.Context
	spec     *specifier.Specifier
	input    textinput.Model
	meter    progress.Model
	check    *driver.CheckResult
	sample   string
	bits     float64
	width    int
	accepted bool
}

// NewEditor starts from the spec already compiled into s.
func NewEditor(ctx context.Context, s *specifier.Specifier) *EditorModel {
	ti := textinput.New()
	ti.Prompt = "spec> "
	ti.Placeholder = "w W i r a A x z # $ ?"
	ti.CharLimit = 256
	ti.SetValue(s.Spec())
	ti.CursorEnd()
	ti.Focus()

	m := &EditorModel{
		ctx:   ctx,
		spec:  s,
		input: ti,
		meter: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width: 80,
	}
	m.meter.Width = 40
	m.revalidate()
	return m
}

func (m *EditorModel) Init() tea.Cmd { return textinput.Blink }

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.check.OK() {
				m.accepted = true
				return m, tea.Quit
			}
			return m, nil
		case tea.KeyCtrlR:
			if m.check.OK() {
				m.sample = m.spec.Generate()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.meter.Width = min(40, max(msg.Width-20, 10))
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.revalidate()
	}
	return m, cmd
}

// revalidate runs Check first so every problem is shown, then Recompile.
func (m *EditorModel) revalidate() {
	value := m.input.Value()
	m.check = driver.Check(m.ctx, value, 8)
	if !m.check.OK() {
		return
	}
	if err := m.spec.Recompile(value); err != nil {
		// Check и Recompile согласованы; сюда попадать не должны
		m.check.Err = err
		return
	}
	m.sample = m.spec.Generate()
	m.bits = driver.SpecBits(m.spec)
}

func (m *EditorModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("mpass edit"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.check.Bag.Len() > 0 {
		var diags strings.Builder
		_ = diagfmt.Pretty(&diags, m.check.Bag, m.check.Text, diagfmt.PrettyOpts{Max: 4})
		style := helpStyle
		if !m.check.OK() {
			style = errStyle
		}
		b.WriteString(style.Render(strings.TrimRight(diags.String(), "\n")))
		b.WriteString("\n\n")
	}

	sample := runewidth.Truncate(m.sample, max(m.width-10, 10), "…")
	if m.check.OK() {
		b.WriteString("sample:  " + sampleStyle.Render(sample))
	} else {
		b.WriteString("sample:  " + staleStyle.Render(sample))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "strength %s %.0f bits\n\n", m.meter.ViewAs(min(m.bits/strongBits, 1)), m.bits)
	b.WriteString(helpStyle.Render("enter accept • ctrl+r regenerate • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// SetInput replaces the text being edited and validates it.
func (m *EditorModel) SetInput(spec string) {
	m.input.SetValue(spec)
	m.input.CursorEnd()
	m.revalidate()
}

// Result returns the edited spec and whether the user accepted it.
func (m *EditorModel) Result() (string, bool) {
	return m.spec.Spec(), m.accepted
}

// Sample is the passphrase currently shown.
func (m *EditorModel) Sample() string { return m.sample }
