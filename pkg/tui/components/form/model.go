// Package form provides a small labeled-field form rendered as a modal.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"daybook.dev/daybook/pkg/tui/theme"
	"daybook.dev/daybook/pkg/tui/ui"
)

// Field is one labeled text input.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	Value       string
	input       textinput.Model
}

// Model is a vertical stack of fields with a single focused input.
type Model struct {
	Title  string
	fields []Field
	focus  int
	width  int
	height int
	styles theme.ModalTheme
}

// New builds a form. The first field receives focus.
func New(th theme.ModalTheme, title string, fields ...Field) *Model {
	for i := range fields {
		ti := textinput.New()
		ti.Placeholder = fields[i].Placeholder
		ti.CharLimit = 256
		ti.Prompt = ""
		ti.VirtualCursor = true
		ti.Styles.Cursor.Color = lipgloss.Color("212")
		ti.Styles.Cursor.Shape = tea.CursorBlock
		ti.SetValue(fields[i].Value)
		fields[i].input = ti
	}
	m := &Model{
		Title:  title,
		fields: fields,
		styles: th,
	}
	if len(m.fields) > 0 {
		m.fields[0].input.Focus()
	}
	return m
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.fields {
		m.fields[i].input.SetWidth(m.innerWidth())
	}
}

func (m *Model) innerWidth() int {
	w := m.width - 8
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}

// Update cycles focus on tab/shift+tab and forwards everything else to the
// focused input. Enter and esc are the caller's to handle.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			m.step(1)
			return m, nil
		case "shift+tab", "up":
			m.step(-1)
			return m, nil
		}
	}
	if len(m.fields) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
	return m, cmd
}

func (m *Model) step(delta int) {
	if len(m.fields) == 0 {
		return
	}
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	m.fields[m.focus].input.Focus()
}

// Value returns the current text for the field key.
func (m *Model) Value(key string) string {
	for i := range m.fields {
		if m.fields[i].Key == key {
			return strings.TrimSpace(m.fields[i].input.Value())
		}
	}
	return ""
}

// SetValue replaces the text for the field key.
func (m *Model) SetValue(key, value string) {
	for i := range m.fields {
		if m.fields[i].Key == key {
			m.fields[i].input.SetValue(value)
			return
		}
	}
}

// View renders the framed form.
func (m *Model) View() string {
	var rows []string
	rows = append(rows, m.styles.Title.Render(m.Title))
	for i := range m.fields {
		label := m.fields[i].Label
		if i == m.focus {
			label = "› " + label
		} else {
			label = "  " + label
		}
		rows = append(rows, m.styles.Label.Render(label))
		rows = append(rows, "  "+m.fields[i].input.View())
	}
	rows = append(rows, "")
	rows = append(rows, m.styles.Label.Render("enter save · esc cancel · tab next field"))
	return m.styles.Frame.Render(strings.Join(rows, "\n"))
}
