package teaui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"daybook.dev/daybook/pkg/tui/components/form"
)

var errNoBackend = errors.New("backend not configured")

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quit(cmds)
		return
	}

	switch m.overlay {
	case overlaySettings:
		m.handleSettingsKey(msg)
	case overlayQuickNotes:
		m.handleQuickNotesKey(msg, cmds)
	case overlayForm:
		m.handleFormKey(msg, cmds)
	case overlayConfirm:
		m.handleConfirmKey(msg)
	default:
		m.handleMainKey(msg, cmds)
	}
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	m.stopWatch()
	m.cancel()
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) handleMainKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quit(cmds)
		return
	case "tab":
		m.toggleFocus()
		return
	case "1":
		m.switchView(viewDashboard)
		return
	case "2":
		m.switchView(viewCalendar)
		return
	case "3":
		m.switchView(viewNotes)
		return
	case "4":
		m.switchView(viewTasks)
		return
	case "s":
		m.overlay = overlaySettings
		return
	case "o":
		m.overlay = overlayQuickNotes
		m.quickInput.SetValue("")
		m.quickInput.Focus()
		return
	case "r":
		m.openRemindForm()
		return
	}

	if m.focus == focusSidebar {
		m.handleSidebarKey(msg)
		return
	}

	switch m.view {
	case viewCalendar:
		m.handleCalendarKey(msg)
	case viewNotes:
		m.handleNotesKey(msg, cmds)
	case viewTasks:
		m.handleTasksKey(msg)
	}
}

func (m *Model) toggleFocus() {
	if m.focus == focusSidebar {
		m.focus = focusContent
	} else {
		m.focus = focusSidebar
	}
	m.sidebar.SetFocused(m.focus == focusSidebar)
}

func (m *Model) switchView(v viewID) {
	m.view = v
	m.focus = focusContent
	m.sidebar.SetFocused(false)
	m.sidebar.Select(string(v))
}

func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) {
	if msg.String() == "enter" {
		switch sel := m.sidebar.Selected(); sel.Item.ID {
		case "dashboard":
			m.switchView(viewDashboard)
		case "calendar":
			m.switchView(viewCalendar)
		case "notes":
			m.switchView(viewNotes)
		case "tasks":
			m.switchView(viewTasks)
		default:
			m.sidebar.Toggle()
		}
		return
	}
	m.sidebar.Update(msg)
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "a":
		m.openEventForm("")
	case "enter", "e":
		if ev, ok := m.month.SelectedEvent(); ok {
			m.openEventForm(ev.ID)
		} else {
			m.openEventForm("")
		}
	case "x":
		if ev, ok := m.month.SelectedEvent(); ok {
			m.openConfirm(confirmDeleteEvent, ev.ID, "Delete event \""+ev.Title+"\"?")
		}
	default:
		m.month.Update(msg)
	}
}

func (m *Model) handleNotesKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	notes := m.svc.Notes()
	switch msg.String() {
	case "up", "k":
		m.noteCursor = maxInt(0, m.noteCursor-1)
	case "down", "j":
		m.noteCursor = minInt(maxInt(0, len(notes)-1), m.noteCursor+1)
	case "a":
		m.openNoteForm("")
	case "enter", "e":
		if m.noteCursor < len(notes) {
			m.openNoteForm(notes[m.noteCursor].ID)
		}
	case "x":
		if m.noteCursor < len(notes) {
			n := notes[m.noteCursor]
			m.openConfirm(confirmDeleteNote, n.ID, "Delete note \""+n.Title+"\"?")
		}
	case "m":
		if m.noteCursor < len(notes) {
			m.openEmailForm(notes[m.noteCursor].Title, notes[m.noteCursor].Content)
		}
	}
	_ = cmds
}

func (m *Model) handleTasksKey(msg tea.KeyPressMsg) {
	tasks := m.svc.Tasks()
	switch msg.String() {
	case "up", "k":
		m.taskCursor = maxInt(0, m.taskCursor-1)
	case "down", "j":
		m.taskCursor = minInt(maxInt(0, len(tasks)-1), m.taskCursor+1)
	case "a":
		m.openTaskForm("")
	case "e":
		if m.taskCursor < len(tasks) {
			m.openTaskForm(tasks[m.taskCursor].ID)
		}
	case "enter", "space":
		if m.taskCursor < len(tasks) {
			t := tasks[m.taskCursor]
			if err := m.svc.ToggleTask(t.ID); err != nil {
				m.setStatus("ERR: " + err.Error())
				return
			}
			if t.Completed {
				m.setStatus("Reopened \"" + t.Title + "\"")
			} else {
				m.setStatus("Completed \"" + t.Title + "\"")
			}
		}
	case "x":
		if m.taskCursor < len(tasks) {
			t := tasks[m.taskCursor]
			m.openConfirm(confirmDeleteTask, t.ID, "Delete task \""+t.Title+"\"?")
		}
	}
}

func (m *Model) handleSettingsKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "esc", "q", "s":
		m.overlay = overlayNone
	case "d":
		dark := !m.svc.DarkMode()
		if err := m.svc.SetDarkMode(dark); err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		m.setTheme(dark)
		if dark {
			m.setStatus("Dark mode on")
		} else {
			m.setStatus("Dark mode off")
		}
	case "n":
		m.notifications = !m.notifications
	case "b":
		m.autoBackup = !m.autoBackup
	case "e":
		m.exportSnapshot()
	case "i":
		m.exportICS()
	case "x":
		m.openConfirm(confirmClearAll, "", "Delete ALL data? This cannot be undone.")
	}
}

func (m *Model) handleQuickNotesKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = overlayNone
		m.quickInput.Blur()
		return
	case "enter":
		text := m.quickInput.Value()
		if text == "" {
			return
		}
		if _, err := m.svc.AddQuickNote(text); err != nil {
			m.setStatus("ERR: " + err.Error())
			return
		}
		m.quickInput.SetValue("")
		m.quickCursor = 0
		return
	case "up":
		m.quickCursor = maxInt(0, m.quickCursor-1)
		return
	case "down":
		m.quickCursor = minInt(maxInt(0, len(m.svc.QuickNotes())-1), m.quickCursor+1)
		return
	case "ctrl+s":
		if notes := m.svc.QuickNotes(); m.quickCursor < len(notes) {
			if err := m.svc.ToggleQuickNoteStar(notes[m.quickCursor].ID); err != nil {
				m.setStatus("ERR: " + err.Error())
			}
		}
		return
	case "ctrl+d":
		if notes := m.svc.QuickNotes(); m.quickCursor < len(notes) {
			n := notes[m.quickCursor]
			m.openConfirm(confirmDeleteQuickNote, n.ID, "Delete quick note \""+n.Text+"\"?")
		}
		return
	}

	var cmd tea.Cmd
	m.quickInput, cmd = m.quickInput.Update(msg)
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleFormKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return
	case "enter":
		m.submitForm(cmds)
		return
	}
	if m.form == nil {
		return
	}
	next, cmd := m.form.Update(msg)
	if f, ok := next.(*form.Model); ok {
		m.form = f
	}
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "y", "enter":
		m.runConfirm()
	case "n", "esc":
		m.overlay = overlayNone
		m.confirm = confirmNone
		m.confirmID = ""
	}
}

func (m *Model) openConfirm(kind confirmKind, id, prompt string) {
	m.confirm = kind
	m.confirmID = id
	m.status = prompt
	m.overlay = overlayConfirm
}

func (m *Model) runConfirm() {
	var err error
	switch m.confirm {
	case confirmDeleteTask:
		err = m.svc.DeleteTask(m.confirmID)
		m.setStatus("Task deleted")
	case confirmDeleteNote:
		err = m.svc.DeleteNote(m.confirmID)
		m.setStatus("Note deleted")
	case confirmDeleteEvent:
		err = m.svc.DeleteEvent(m.confirmID)
		m.refreshEvents()
		m.setStatus("Event deleted")
	case confirmDeleteQuickNote:
		err = m.svc.DeleteQuickNote(m.confirmID)
		m.setStatus("Quick note deleted")
		m.clampCursors()
		m.overlay = overlayQuickNotes
		m.confirm = confirmNone
		m.confirmID = ""
		if err != nil {
			m.setStatus("ERR: " + err.Error())
		}
		return
	case confirmClearAll:
		err = m.svc.ClearAll()
		m.refreshEvents()
		m.setTheme(false)
		m.setStatus("All data deleted")
	}
	if err != nil {
		m.setStatus("ERR: " + err.Error())
	}
	m.clampCursors()
	m.overlay = overlayNone
	m.confirm = confirmNone
	m.confirmID = ""
}

func formatSeconds(secs float64) string {
	if secs >= 120 {
		return fmt.Sprintf("%.0f minutes", secs/60)
	}
	return fmt.Sprintf("%.0f seconds", secs)
}
