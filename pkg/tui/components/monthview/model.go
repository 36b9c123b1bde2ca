// Package monthview renders the month grid with event chips and tracks the
// day cursor and chip selection.
package monthview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"daybook.dev/daybook/pkg/calendar"
	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/timeutil"
	"daybook.dev/daybook/pkg/tui/theme"
	"daybook.dev/daybook/pkg/tui/ui"
)

// Direct chips shown per cell before collapsing into "+N more".
const maxChips = 2

// Model is the month grid component.
type Model struct {
	month  time.Time
	cursor time.Time
	chip   int
	events []model.CalendarEvent

	width  int
	height int

	th  theme.Theme
	now func() time.Time
}

// New builds a month view anchored on today.
func New(th theme.Theme) *Model {
	m := &Model{
		th:  th,
		now: time.Now,
	}
	m.month = calendar.StartOfMonth(m.now())
	m.cursor = m.now()
	return m
}

// SetNow injects the clock for tests.
func (m *Model) SetNow(now func() time.Time) {
	m.now = now
	m.month = calendar.StartOfMonth(now())
	m.cursor = now()
}

// SetTheme swaps styles after a theme change.
func (m *Model) SetTheme(th theme.Theme) { m.th = th }

// SetEvents replaces the event collection used for bucketing.
func (m *Model) SetEvents(events []model.CalendarEvent) {
	m.events = events
	m.clampChip()
}

// Month returns the first of the displayed month.
func (m *Model) Month() time.Time { return m.month }

// Cursor returns the selected day.
func (m *Model) Cursor() time.Time { return m.cursor }

// SelectedEvent returns the chip under the cursor, if any.
func (m *Model) SelectedEvent() (model.CalendarEvent, bool) {
	day := calendar.EventsOn(m.events, m.cursor)
	if len(day) == 0 {
		return model.CalendarEvent{}, false
	}
	if m.chip >= len(day) {
		return day[len(day)-1], true
	}
	return day[m.chip], true
}

// NextMonth advances a month; the cursor snaps to the 1st so repeated
// navigation can never skip a short month.
func (m *Model) NextMonth() {
	m.month = calendar.NextMonth(m.month)
	m.cursor = m.month
	m.chip = 0
}

// PrevMonth goes back a month.
func (m *Model) PrevMonth() {
	m.month = calendar.PrevMonth(m.month)
	m.cursor = m.month
	m.chip = 0
}

// Today re-anchors the view on the current day.
func (m *Model) Today() {
	m.cursor = m.now()
	m.month = calendar.StartOfMonth(m.cursor)
	m.chip = 0
}

// MoveDay shifts the cursor by days, following it across month edges.
func (m *Model) MoveDay(delta int) {
	m.cursor = m.cursor.AddDate(0, 0, delta)
	if m.cursor.Month() != m.month.Month() || m.cursor.Year() != m.month.Year() {
		m.month = calendar.StartOfMonth(m.cursor)
	}
	m.chip = 0
}

// CycleChip steps through the chips on the selected day.
func (m *Model) CycleChip() {
	day := calendar.EventsOn(m.events, m.cursor)
	if len(day) == 0 {
		m.chip = 0
		return
	}
	m.chip = (m.chip + 1) % len(day)
}

func (m *Model) clampChip() {
	day := calendar.EventsOn(m.events, m.cursor)
	if m.chip >= len(day) {
		m.chip = 0
	}
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation keys.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.MoveDay(-1)
	case "right", "l":
		m.MoveDay(1)
	case "up", "k":
		m.MoveDay(-7)
	case "down", "j":
		m.MoveDay(7)
	case "n", "pgdown":
		m.NextMonth()
	case "p", "pgup":
		m.PrevMonth()
	case "t":
		m.Today()
	case "space":
		m.CycleChip()
	}
	return m, nil
}

// View renders the grid: month header, weekday row, then one bordered row of
// cells per week. Each cell shows the day number and up to two chips with an
// overflow line.
func (m *Model) View() string {
	cellWidth := m.cellWidth()

	var b strings.Builder
	b.WriteString(m.th.Month.Header.Render(timeutil.MonthLabel(m.month)))
	b.WriteString("\n")

	for i, wd := range calendar.Weekdays() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(m.th.Month.Weekday.Render(padCell(wd, cellWidth)))
	}
	b.WriteString("\n")

	cells := calendar.Grid(m.month, m.now())
	for row := 0; row*7 < len(cells); row++ {
		week := cells[row*7 : row*7+7]
		rendered := make([]string, 0, 7)
		for _, cell := range week {
			rendered = append(rendered, m.renderCell(cell, cellWidth))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, interleave(rendered)...))
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func interleave(cols []string) []string {
	out := make([]string, 0, len(cols)*2)
	for i, c := range cols {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c)
	}
	return out
}

func (m *Model) cellWidth() int {
	w := (m.width - 6) / 7
	if w < 8 {
		w = 8
	}
	if w > 22 {
		w = 22
	}
	return w
}

func (m *Model) renderCell(cell calendar.Cell, width int) string {
	if cell.Blank() {
		return m.th.Month.Blank.Render(strings.Repeat(" ", width) + "\n" + strings.Repeat(" ", width) + "\n" + strings.Repeat(" ", width))
	}

	selected := sameDate(cell.Date, m.cursor)

	dayStyle := m.th.Month.Day
	if cell.Today {
		dayStyle = dayStyle.Inherit(m.th.Month.Today)
	}
	lines := []string{dayStyle.Render(padCell(fmt.Sprintf("%2d", cell.Day), width))}

	visible, more := calendar.CapChips(calendar.EventsOn(m.events, cell.Date), maxChips)
	for i, e := range visible {
		label := truncate.StringWithTail(e.Title, uint(width), "…")
		chip := m.th.Chip(e.Color)
		if selected && i == m.chip {
			chip = chip.Reverse(true)
		}
		lines = append(lines, chip.Render(padCell(label, width)))
	}
	if more > 0 {
		lines = append(lines, m.th.Month.More.Render(padCell(fmt.Sprintf("+%d more", more), width)))
	}
	for len(lines) < maxChips+1 {
		lines = append(lines, strings.Repeat(" ", width))
	}

	out := strings.Join(lines, "\n")
	if selected {
		return m.th.Month.Selected.Render(out)
	}
	return out
}

func padCell(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
