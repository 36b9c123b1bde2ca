package teaui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"daybook.dev/daybook/pkg/calendar"
	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/timeutil"
	"daybook.dev/daybook/pkg/tui/ui/overlay"
)

// View renders the composed UI.
func (m *Model) View() string {
	width := m.termWidth
	if width <= 0 {
		width = 80
	}
	height := m.termHeight
	if height <= 0 {
		height = 24
	}

	header := m.renderHeader()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), " ", m.renderContent())
	footer := m.renderFooter()

	base := strings.Join([]string{header, body, footer}, "\n")

	if fg := m.renderOverlay(); fg != "" {
		return overlay.Compose(base, width, height, fg, overlay.Placement{})
	}
	return base
}

func (m *Model) renderHeader() string {
	title := m.th.Header.Title.Render("Daybook")
	crumb := m.th.Header.Breadcrumb.Render(" › " + viewLabel(m.view))
	return title + crumb
}

func viewLabel(v viewID) string {
	switch v {
	case viewCalendar:
		return "Calendar"
	case viewNotes:
		return "Notes"
	case viewTasks:
		return "Tasks"
	default:
		return "Dashboard"
	}
}

func (m *Model) renderContent() string {
	switch m.view {
	case viewCalendar:
		return m.month.View()
	case viewNotes:
		return m.renderNotes()
	case viewTasks:
		return m.renderTasks()
	default:
		return m.renderDashboard()
	}
}

func (m *Model) renderDashboard() string {
	now := m.now()

	var cards []string
	cards = append(cards, m.renderCard("Today · "+timeutil.DayLabel(now), m.todayLines(now)))
	cards = append(cards, m.renderCard("Open tasks", m.openTaskLines()))
	cards = append(cards, m.renderCard("Recent notes", m.recentNoteLines(now)))
	cards = append(cards, m.renderCard("Quick notes", m.quickNoteSummary()))

	top := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], " ", cards[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], " ", cards[3])
	return top + "\n" + bottom
}

func (m *Model) todayLines(now time.Time) []string {
	events := calendar.EventsOn(m.svc.Events(), now)
	if len(events) == 0 {
		return []string{m.th.Card.Faint.Render("nothing scheduled")}
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		when := e.StartDate.Format("15:04")
		if e.AllDay {
			when = "all day"
		}
		lines = append(lines, m.th.Chip(e.Color).Render(" ")+" "+e.Title+" "+m.th.Card.Faint.Render(when))
	}
	return lines
}

func (m *Model) openTaskLines() []string {
	var lines []string
	for _, t := range m.svc.Tasks() {
		if t.Completed {
			continue
		}
		marker := "·"
		if t.Priority == model.PriorityHigh {
			marker = "!"
		}
		lines = append(lines, marker+" "+t.Title)
		if len(lines) == 5 {
			break
		}
	}
	if len(lines) == 0 {
		return []string{m.th.Card.Faint.Render("all done")}
	}
	return lines
}

func (m *Model) recentNoteLines(now time.Time) []string {
	notes := append([]model.Note(nil), m.svc.Notes()...)
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt.Time)
	})
	if len(notes) > 5 {
		notes = notes[:5]
	}
	if len(notes) == 0 {
		return []string{m.th.Card.Faint.Render("no notes yet")}
	}
	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, n.Title+" "+m.th.Card.Faint.Render(timeutil.Relative(n.UpdatedAt.Time, now)))
	}
	return lines
}

func (m *Model) quickNoteSummary() []string {
	notes := m.svc.QuickNotes()
	starred := 0
	for _, n := range notes {
		if n.Starred {
			starred++
		}
	}
	lines := []string{fmt.Sprintf("%d notes, %d starred", len(notes), starred)}
	for i, n := range notes {
		if i == 3 {
			break
		}
		mark := "  "
		if n.Starred {
			mark = m.th.Card.Star.Render("★ ")
		}
		lines = append(lines, mark+n.Text)
	}
	lines = append(lines, m.th.Card.Faint.Render("press o to open"))
	return lines
}

func (m *Model) renderCard(title string, lines []string) string {
	width := m.cardWidth()
	body := make([]string, 0, len(lines)+1)
	body = append(body, m.th.Card.Title.Render(title))
	for _, line := range lines {
		body = append(body, wordwrap.String(line, width))
	}
	return m.th.Card.Frame.Width(width).Render(strings.Join(body, "\n"))
}

func (m *Model) cardWidth() int {
	w := (m.termWidth - 30) / 2
	if w < 24 {
		w = 24
	}
	return w
}

func (m *Model) renderTasks() string {
	tasks := m.svc.Tasks()
	var lines []string
	lines = append(lines, m.th.Card.Title.Render(fmt.Sprintf("Tasks · %d", len(tasks))))
	if len(tasks) == 0 {
		lines = append(lines, m.th.Card.Faint.Render("no tasks · press a to add one"))
	}
	for i, t := range tasks {
		mark := "[ ]"
		style := m.th.Card.Body
		if t.Completed {
			mark = "[x]"
			style = m.th.Card.Done
		}
		row := fmt.Sprintf("%s %s", mark, t.Title)
		if !t.Date.IsZero() {
			row += " " + m.th.Card.Faint.Render(t.Date.Format("Jan 2"))
		}
		if t.Priority == model.PriorityHigh {
			row += " " + m.th.Card.Error.Render("high")
		}
		if len(t.Tags) > 0 {
			row += " " + m.th.Card.Faint.Render("#"+strings.Join(t.Tags, " #"))
		}
		if i == m.taskCursor && m.focus == focusContent {
			row = "→ " + style.Render(row)
		} else {
			row = "  " + style.Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderNotes() string {
	notes := m.svc.Notes()
	var lines []string
	lines = append(lines, m.th.Card.Title.Render(fmt.Sprintf("Notes · %d", len(notes))))
	if len(notes) == 0 {
		lines = append(lines, m.th.Card.Faint.Render("no notes · press a to add one"))
	}
	now := m.now()
	for i, n := range notes {
		row := n.Title + " " + m.th.Card.Faint.Render("updated "+timeutil.Relative(n.UpdatedAt.Time, now))
		if i == m.noteCursor && m.focus == focusContent {
			row = "→ " + row
			lines = append(lines, row)
			preview := n.Content
			if len(preview) > 120 {
				preview = preview[:120] + "…"
			}
			if preview != "" {
				lines = append(lines, "    "+m.th.Card.Faint.Render(preview))
			}
			continue
		}
		lines = append(lines, "  "+row)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	help := m.helpLine()
	status := m.th.Footer.Status.Render(m.status)
	return status + "\n" + m.th.Footer.Help.Render(help)
}

func (m *Model) helpLine() string {
	switch m.overlay {
	case overlaySettings:
		return "d dark mode · n/b toggles · e export JSON · i export ICS · x delete all · esc close"
	case overlayQuickNotes:
		return "enter add · ↑/↓ select · ctrl+s star · ctrl+d delete · esc close"
	case overlayForm:
		return "enter save · tab next field · esc cancel"
	case overlayConfirm:
		return "y confirm · n cancel"
	}
	switch {
	case m.focus == focusSidebar:
		return "j/k move · enter open · tab content · 1-4 views · q quit"
	case m.view == viewCalendar:
		return "arrows move · n/p month · t today · space cycle chips · a add · e edit · x delete · r remind"
	case m.view == viewNotes:
		return "j/k move · a add · e edit · x delete · m email · tab sidebar"
	case m.view == viewTasks:
		return "j/k move · space toggle · a add · e edit · x delete · tab sidebar"
	default:
		return "tab sidebar · 2 calendar · 3 notes · 4 tasks · o quick notes · s settings · q quit"
	}
}

func (m *Model) renderOverlay() string {
	switch m.overlay {
	case overlaySettings:
		return m.renderSettings()
	case overlayQuickNotes:
		return m.renderQuickNotes()
	case overlayForm:
		if m.form != nil {
			return m.form.View()
		}
	case overlayConfirm:
		return m.th.Modal.Frame.Render(
			m.th.Modal.Title.Render("Confirm") + "\n" +
				m.th.Modal.Body.Render(m.status) + "\n\n" +
				m.th.Modal.Label.Render("y confirm · n cancel"))
	}
	return ""
}

func (m *Model) renderSettings() string {
	mode := "light"
	if m.svc.DarkMode() {
		mode = "dark"
	}
	var rows []string
	rows = append(rows, m.th.Modal.Title.Render("Settings"))
	rows = append(rows, m.th.Modal.Body.Render("Theme: "+mode+" (d to toggle)"))
	rows = append(rows, m.th.Modal.Body.Render("Notifications: "+onOff(m.notifications)+" (n)"))
	rows = append(rows, m.th.Modal.Body.Render("Auto backup: "+onOff(m.autoBackup)+" (b)"))
	rows = append(rows, m.th.Modal.Body.Render("Export data: e (JSON) · i (calendar .ics)"))
	rows = append(rows, m.th.Modal.Body.Render("Delete all data: x"))
	if m.modelInfoOK {
		rows = append(rows, "")
		label := m.modelInfo.Info.DisplayName
		if label == "" {
			label = m.modelInfo.Name
		}
		rows = append(rows, m.th.Modal.Label.Render(fmt.Sprintf("Assistant: %s (temp %.1f, max %d tokens)",
			label, m.modelInfo.Temperature, m.modelInfo.MaxTokens)))
	}
	rows = append(rows, "")
	rows = append(rows, m.th.Modal.Label.Render("esc close"))
	return m.th.Modal.Frame.Render(strings.Join(rows, "\n"))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m *Model) renderQuickNotes() string {
	notes := m.svc.QuickNotes()
	var rows []string
	rows = append(rows, m.th.Modal.Title.Render("Quick notes"))
	rows = append(rows, m.quickInput.View())
	rows = append(rows, "")
	if len(notes) == 0 {
		rows = append(rows, m.th.Modal.Label.Render("nothing yet"))
	}
	for i, n := range notes {
		mark := "  "
		if n.Starred {
			mark = m.th.Card.Star.Render("★ ")
		}
		row := mark + n.Text + " " + m.th.Modal.Label.Render(timeutil.Relative(n.CreatedAt.Time, m.now()))
		if i == m.quickCursor {
			row = "→ " + row
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	return m.th.Modal.Frame.Render(strings.Join(rows, "\n"))
}
