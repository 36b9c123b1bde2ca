package teaui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/tui/components/form"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04"
)

func (m *Model) openForm(kind formKind, f *form.Model, editID string) {
	m.formKind = kind
	m.form = f
	m.editID = editID
	m.form.SetSize(m.termWidth/2, m.termHeight)
	m.overlay = overlayForm
}

func (m *Model) closeForm() {
	m.overlay = overlayNone
	m.form = nil
	m.formKind = formNone
	m.editID = ""
}

func (m *Model) openTaskForm(editID string) {
	var t model.Task
	title := "New task"
	if editID != "" {
		existing, ok := m.svc.TaskByID(editID)
		if !ok {
			return
		}
		t = existing
		title = "Edit task"
	}
	date := ""
	if !t.Date.IsZero() {
		date = t.Date.Format(layoutDate)
	}
	f := form.New(m.th.Modal, title,
		form.Field{Key: "title", Label: "Title", Placeholder: "What needs doing?", Value: t.Title},
		form.Field{Key: "description", Label: "Description", Value: t.Description},
		form.Field{Key: "date", Label: "Date (YYYY-MM-DD)", Placeholder: layoutDate, Value: date},
		form.Field{Key: "priority", Label: "Priority (low/medium/high)", Value: string(t.Priority)},
		form.Field{Key: "category", Label: "Category", Value: t.Category},
		form.Field{Key: "tags", Label: "Tags (comma separated)", Value: strings.Join(t.Tags, ", ")},
	)
	m.openForm(formTask, f, editID)
}

func (m *Model) openNoteForm(editID string) {
	var n model.Note
	title := "New note"
	if editID != "" {
		for _, existing := range m.svc.Notes() {
			if existing.ID == editID {
				n = existing
				break
			}
		}
		if n.ID == "" {
			return
		}
		title = "Edit note"
	}
	f := form.New(m.th.Modal, title,
		form.Field{Key: "title", Label: "Title", Value: n.Title},
		form.Field{Key: "content", Label: "Content", Value: n.Content},
		form.Field{Key: "category", Label: "Category", Value: n.Category},
		form.Field{Key: "tags", Label: "Tags (comma separated)", Value: strings.Join(n.Tags, ", ")},
	)
	m.openForm(formNote, f, editID)
}

func (m *Model) openEventForm(editID string) {
	var e model.CalendarEvent
	title := "New event"
	if editID != "" {
		for _, existing := range m.svc.Events() {
			if existing.ID == editID {
				e = existing
				break
			}
		}
		if e.ID == "" {
			return
		}
		title = "Edit event"
	} else {
		// New events land on the day under the calendar cursor.
		day := m.month.Cursor()
		e.StartDate = model.Timestamp{Time: time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())}
		e.EndDate = model.Timestamp{Time: e.StartDate.Add(time.Hour)}
		e.Color = model.DefaultPalette()[0].Hex
	}
	allDay := "n"
	if e.AllDay {
		allDay = "y"
	}
	f := form.New(m.th.Modal, title,
		form.Field{Key: "title", Label: "Title", Value: e.Title},
		form.Field{Key: "description", Label: "Description", Value: e.Description},
		form.Field{Key: "start", Label: "Start (YYYY-MM-DD HH:MM)", Value: e.StartDate.Format(layoutDateTime)},
		form.Field{Key: "end", Label: "End (YYYY-MM-DD HH:MM)", Value: e.EndDate.Format(layoutDateTime)},
		form.Field{Key: "allday", Label: "All day (y/n)", Value: allDay},
		form.Field{Key: "color", Label: "Color (hex)", Value: e.Color},
		form.Field{Key: "category", Label: "Category", Value: e.Category},
	)
	m.openForm(formEvent, f, editID)
}

func (m *Model) openEmailForm(subject, body string) {
	f := form.New(m.th.Modal, "Send email",
		form.Field{Key: "to", Label: "To", Placeholder: "you@example.com"},
		form.Field{Key: "subject", Label: "Subject", Value: subject},
		form.Field{Key: "body", Label: "Body", Value: body},
		form.Field{Key: "runAt", Label: "Send at (YYYY-MM-DD HH:MM, blank = now)"},
	)
	m.openForm(formEmail, f, "")
}

func (m *Model) openRemindForm() {
	f := form.New(m.th.Modal, "AI reminder",
		form.Field{Key: "text", Label: "Meeting text or link", Placeholder: "standup tomorrow at 9am"},
		form.Field{Key: "email", Label: "Your email", Placeholder: "you@example.com"},
	)
	m.openForm(formRemind, f, "")
}

func (m *Model) submitForm(cmds *[]tea.Cmd) {
	if m.form == nil {
		return
	}
	switch m.formKind {
	case formTask:
		m.submitTask()
	case formNote:
		m.submitNote()
	case formEvent:
		m.submitEvent()
	case formEmail:
		m.submitEmail(cmds)
	case formRemind:
		m.submitRemind(cmds)
	}
}

func (m *Model) submitTask() {
	title := m.form.Value("title")
	if title == "" {
		m.setStatus("Task needs a title")
		return
	}
	priority, err := model.ParsePriority(m.form.Value("priority"))
	if err != nil {
		m.setStatus("Priority must be low, medium, or high")
		return
	}
	date, err := parseStamp(m.form.Value("date"))
	if err != nil {
		m.setStatus("Date must look like " + layoutDate)
		return
	}

	t := model.Task{
		ID:          m.editID,
		Title:       title,
		Description: m.form.Value("description"),
		Date:        date,
		Priority:    priority,
		Category:    m.form.Value("category"),
		Tags:        splitTags(m.form.Value("tags")),
	}
	if m.editID != "" {
		if existing, ok := m.svc.TaskByID(m.editID); ok {
			t.Completed = existing.Completed
		}
		err = m.svc.EditTask(t)
		m.setStatus("Task updated")
	} else {
		_, err = m.svc.AddTask(t)
		m.setStatus("Task added")
	}
	if err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.closeForm()
}

func (m *Model) submitNote() {
	title := m.form.Value("title")
	if title == "" {
		m.setStatus("Note needs a title")
		return
	}
	n := model.Note{
		ID:       m.editID,
		Title:    title,
		Content:  m.form.Value("content"),
		Category: m.form.Value("category"),
		Tags:     splitTags(m.form.Value("tags")),
	}
	var err error
	if m.editID != "" {
		err = m.svc.EditNote(n)
		m.setStatus("Note updated")
	} else {
		_, err = m.svc.AddNote(n)
		m.setStatus("Note added")
	}
	if err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.closeForm()
}

func (m *Model) submitEvent() {
	title := m.form.Value("title")
	if title == "" {
		m.setStatus("Event needs a title")
		return
	}
	start, err := parseStamp(m.form.Value("start"))
	if err != nil || start.IsZero() {
		m.setStatus("Start must look like " + layoutDateTime)
		return
	}
	end, err := parseStamp(m.form.Value("end"))
	if err != nil {
		m.setStatus("End must look like " + layoutDateTime)
		return
	}

	e := model.CalendarEvent{
		ID:          m.editID,
		Title:       title,
		Description: m.form.Value("description"),
		StartDate:   start,
		EndDate:     end,
		AllDay:      strings.EqualFold(m.form.Value("allday"), "y"),
		Color:       m.form.Value("color"),
		Category:    m.form.Value("category"),
	}
	if m.editID != "" {
		err = m.svc.EditEvent(e)
		m.setStatus("Event updated")
	} else {
		_, err = m.svc.AddEvent(e)
		m.setStatus("Event added")
	}
	if err != nil {
		m.setStatus("ERR: " + err.Error())
		return
	}
	m.refreshEvents()
	m.closeForm()
}

func (m *Model) submitEmail(cmds *[]tea.Cmd) {
	to := m.form.Value("to")
	if to == "" {
		m.setStatus("Email needs a recipient")
		return
	}
	subject := m.form.Value("subject")
	body := m.form.Value("body")

	// The form stays open until the backend answers: a failure keeps the
	// user's input for a retry, success closes it.
	runAtRaw := m.form.Value("runAt")
	if runAtRaw == "" {
		*cmds = append(*cmds, m.sendEmailCmd(to, subject, body))
		m.setStatus("Sending email…")
		return
	}
	runAt, err := parseStamp(runAtRaw)
	if err != nil || runAt.IsZero() {
		m.setStatus("Send-at must look like " + layoutDateTime)
		return
	}
	*cmds = append(*cmds, m.scheduleEmailCmd(to, subject, body, runAt.Time))
	m.setStatus("Scheduling email…")
}

func (m *Model) submitRemind(cmds *[]tea.Cmd) {
	text := m.form.Value("text")
	email := m.form.Value("email")
	if text == "" || email == "" {
		m.setStatus("Reminder needs meeting text and an email")
		return
	}
	*cmds = append(*cmds, m.scheduleReminderCmd(text, email))
	m.setStatus("Asking the scheduler…")
}

// parseStamp accepts a date with optional time of day. Empty input is a zero
// timestamp, not an error.
func parseStamp(raw string) (model.Timestamp, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return model.Timestamp{}, nil
	}
	if t, err := time.ParseInLocation(layoutDateTime, raw, time.Local); err == nil {
		return model.Timestamp{Time: t}, nil
	}
	t, err := time.ParseInLocation(layoutDate, raw, time.Local)
	if err != nil {
		return model.Timestamp{}, err
	}
	return model.Timestamp{Time: t}, nil
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return model.NormalizeTags(strings.Split(raw, ","))
}
