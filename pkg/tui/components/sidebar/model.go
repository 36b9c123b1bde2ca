// Package sidebar renders the navigation tree and tracks its cursor and
// expand/collapse state.
package sidebar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/tui/theme"
	"daybook.dev/daybook/pkg/tui/ui"
)

// Model is the sidebar component.
type Model struct {
	items    []model.SidebarItem
	expanded map[string]bool
	flat     []model.FlatSidebarItem
	cursor   int
	focused  bool
	width    int
	height   int
	styles   theme.SidebarTheme
}

// New builds a sidebar over the default navigation entries.
func New(th theme.SidebarTheme) *Model {
	m := &Model{
		items:    model.DefaultSidebar(),
		expanded: make(map[string]bool),
		styles:   th,
	}
	m.reflatten()
	return m
}

// SetStyles swaps the style set, e.g. after a theme change.
func (m *Model) SetStyles(th theme.SidebarTheme) { m.styles = th }

// SetFocused toggles whether the cursor row highlights.
func (m *Model) SetFocused(on bool) { m.focused = on }

// Focused reports focus state.
func (m *Model) Focused() bool { return m.focused }

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update moves the cursor and toggles expansion on key presses.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		m.Move(-1)
	case "down", "j":
		m.Move(1)
	case "left", "h":
		m.Collapse()
	case "right", "l":
		m.Expand()
	case "space":
		m.Toggle()
	}
	return m, nil
}

// Move shifts the cursor by delta, clamped to the visible rows.
func (m *Model) Move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
}

// Selected returns the entry under the cursor.
func (m *Model) Selected() model.FlatSidebarItem {
	if len(m.flat) == 0 {
		return model.FlatSidebarItem{}
	}
	return m.flat[m.cursor]
}

// Select moves the cursor to the entry with the given id if visible.
func (m *Model) Select(id string) {
	for i, f := range m.flat {
		if f.Item.ID == id {
			m.cursor = i
			return
		}
	}
}

// Toggle flips expansion for the entry under the cursor. Leaf entries are
// unaffected.
func (m *Model) Toggle() {
	sel := m.Selected()
	if len(sel.Item.Children) == 0 {
		return
	}
	m.expanded[sel.Item.ID] = !m.expanded[sel.Item.ID]
	m.reflatten()
}

// Expand opens the entry under the cursor.
func (m *Model) Expand() {
	sel := m.Selected()
	if len(sel.Item.Children) == 0 || m.expanded[sel.Item.ID] {
		return
	}
	m.expanded[sel.Item.ID] = true
	m.reflatten()
}

// Collapse closes the entry under the cursor.
func (m *Model) Collapse() {
	sel := m.Selected()
	if !m.expanded[sel.Item.ID] {
		return
	}
	m.expanded[sel.Item.ID] = false
	m.reflatten()
}

func (m *Model) reflatten() {
	m.flat = model.Flatten(m.items, m.expanded)
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the visible rows.
func (m *Model) View() string {
	lines := make([]string, 0, len(m.flat))
	for i, f := range m.flat {
		caret := "  "
		if len(f.Item.Children) > 0 {
			caret = "▸ "
			if m.expanded[f.Item.ID] {
				caret = "▾ "
			}
		}
		row := strings.Repeat("  ", f.Depth) + m.styles.Caret.Render(caret) + f.Item.Icon + " " + f.Item.Title

		style := m.styles.Item
		if i == m.cursor && m.focused {
			style = m.styles.Selected
		}
		lines = append(lines, style.Render(row))
	}
	if m.height > len(lines) {
		for len(lines) < m.height {
			lines = append(lines, "")
		}
	}
	return m.styles.Frame.Render(strings.Join(lines, "\n"))
}
