package teaui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"daybook.dev/daybook/pkg/app"
	"daybook.dev/daybook/pkg/backend"
	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/store"
)

type testConfig struct{ path string }

func (c *testConfig) BasePath() string       { return c.path }
func (c *testConfig) BackendURL() string     { return "" }
func (c *testConfig) Timeout() time.Duration { return time.Second }

func stripANSI(s string) string {
	var b strings.Builder
	seq := false
	for _, r := range s {
		if r == ansi.Marker {
			seq = true
			continue
		}
		if seq {
			if ansi.IsTerminator(r) {
				seq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newTestService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(&testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	svc, err := app.NewService(p)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	seq := 0
	svc.NewID = func() string {
		seq++
		return string(rune('a' + seq - 1))
	}
	return svc
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(newTestService(t), nil)
	m.termWidth = 100
	m.termHeight = 30
	m.applySizes()
	m.now = func() time.Time {
		return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	m.month.SetNow(m.now)
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var cmds []tea.Cmd
		m.handleKeyPress(keyFor(k), &cmds)
	}
}

func keyFor(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestDashboardRendersCards(t *testing.T) {
	m := newTestModel(t)
	view := stripANSI(m.View())
	for _, want := range []string{"Daybook", "Dashboard", "Open tasks", "Recent notes", "Quick notes"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q on dashboard; view=%q", want, view)
		}
	}
}

func TestSidebarEnterSwitchesView(t *testing.T) {
	m := newTestModel(t)
	press(m, "j", "enter")
	if m.view != viewCalendar {
		t.Fatalf("expected calendar view after selecting second sidebar entry, got %q", m.view)
	}
	if m.focus != focusContent {
		t.Fatalf("selecting a view should focus content")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "June 2024") {
		t.Fatalf("expected month header in calendar view; view=%q", view)
	}
}

func TestNumberKeysJumpBetweenViews(t *testing.T) {
	m := newTestModel(t)
	press(m, "4")
	if m.view != viewTasks {
		t.Fatalf("expected tasks view, got %q", m.view)
	}
	press(m, "1")
	if m.view != viewDashboard {
		t.Fatalf("expected dashboard view, got %q", m.view)
	}
}

func TestTaskToggleFromList(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.svc.AddTask(model.Task{Title: "Write report"}); err != nil {
		t.Fatalf("add task: %v", err)
	}
	press(m, "4", "space")
	if got := m.svc.Tasks()[0]; !got.Completed {
		t.Fatalf("space should complete the selected task")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "[x] Write report") {
		t.Fatalf("expected completed marker; view=%q", view)
	}
}

func TestDeleteTaskNeedsConfirmation(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.svc.AddTask(model.Task{Title: "Ephemeral"}); err != nil {
		t.Fatalf("add task: %v", err)
	}
	press(m, "4", "x")
	if m.overlay != overlayConfirm {
		t.Fatalf("delete should open the confirm overlay")
	}
	press(m, "n")
	if len(m.svc.Tasks()) != 1 {
		t.Fatalf("declining the confirm must keep the task")
	}
	press(m, "x", "y")
	if len(m.svc.Tasks()) != 0 {
		t.Fatalf("confirming should delete the task")
	}
}

func TestTaskFormAddsTask(t *testing.T) {
	m := newTestModel(t)
	press(m, "4", "a")
	if m.overlay != overlayForm || m.formKind != formTask {
		t.Fatalf("expected task form overlay")
	}
	m.form.SetValue("title", "Plan offsite")
	m.form.SetValue("priority", "high")
	m.form.SetValue("tags", "work, work, travel")
	press(m, "enter")

	tasks := m.svc.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected one task, got %d", len(tasks))
	}
	if tasks[0].Priority != model.PriorityHigh {
		t.Fatalf("priority not applied: %+v", tasks[0])
	}
	if len(tasks[0].Tags) != 2 {
		t.Fatalf("tags must be de-duplicated: %v", tasks[0].Tags)
	}
	if m.overlay != overlayNone {
		t.Fatalf("form should close after save")
	}
}

func TestTaskFormRejectsEmptyTitle(t *testing.T) {
	m := newTestModel(t)
	press(m, "4", "a", "enter")
	if m.overlay != overlayForm {
		t.Fatalf("form must stay open when the title is missing")
	}
	if len(m.svc.Tasks()) != 0 {
		t.Fatalf("no task should be created")
	}
}

func TestEventFormPrefillsCursorDay(t *testing.T) {
	m := newTestModel(t)
	press(m, "2")
	m.month.MoveDay(-5) // June 10
	press(m, "a")
	if m.formKind != formEvent {
		t.Fatalf("expected event form")
	}
	if got := m.form.Value("start"); !strings.HasPrefix(got, "2024-06-10") {
		t.Fatalf("start should prefill the cursor day, got %q", got)
	}
}

func TestQuickNotesOverlayAddAndStar(t *testing.T) {
	m := newTestModel(t)
	press(m, "o")
	if m.overlay != overlayQuickNotes {
		t.Fatalf("expected quick notes overlay")
	}
	m.quickInput.SetValue("call the bank")
	press(m, "enter")
	if notes := m.svc.QuickNotes(); len(notes) != 1 || notes[0].Text != "call the bank" {
		t.Fatalf("quick note not added: %+v", notes)
	}
	var cmds []tea.Cmd
	m.handleKeyPress(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}, &cmds)
	if !m.svc.QuickNotes()[0].Starred {
		t.Fatalf("ctrl+s should star the selected quick note")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "call the bank") {
		t.Fatalf("expected quick note in overlay; view=%q", view)
	}
}

func TestSettingsToggleDarkModePersists(t *testing.T) {
	m := newTestModel(t)
	press(m, "s")
	if m.overlay != overlaySettings {
		t.Fatalf("expected settings overlay")
	}
	press(m, "d")
	if !m.svc.DarkMode() {
		t.Fatalf("dark mode flag should persist through the service")
	}
	if !m.th.Dark {
		t.Fatalf("theme should switch with the flag")
	}
	press(m, "d")
	if m.svc.DarkMode() || m.th.Dark {
		t.Fatalf("second toggle should restore light mode")
	}
}

func TestSettingsDeleteAllClearsEverything(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.svc.AddTask(model.Task{Title: "t"}); err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := m.svc.AddQuickNote("q"); err != nil {
		t.Fatalf("add quick note: %v", err)
	}
	press(m, "s", "x")
	if m.overlay != overlayConfirm {
		t.Fatalf("delete-all should ask for confirmation")
	}
	press(m, "y")
	if len(m.svc.Tasks()) != 0 || len(m.svc.QuickNotes()) != 0 {
		t.Fatalf("confirming delete-all should clear every collection")
	}
}

func TestStaleBackendResponseIgnored(t *testing.T) {
	m := newTestModel(t)
	m.reqSeq = 2
	_, _ = m.Update(emailSentMsg{seq: 1, err: nil})
	if m.status == "Email sent" {
		t.Fatalf("stale response must not update status")
	}
	_, _ = m.Update(emailSentMsg{seq: 2, err: nil})
	if m.status != "Email sent" {
		t.Fatalf("current response should update status, got %q", m.status)
	}
}

func TestRemindFormKeepsInputOnBackendError(t *testing.T) {
	m := newTestModel(t)
	press(m, "r")
	if m.overlay != overlayForm || m.formKind != formRemind {
		t.Fatalf("expected reminder form overlay")
	}
	m.form.SetValue("text", "standup tomorrow at 9am")
	m.form.SetValue("email", "me@example.com")
	press(m, "enter")
	if m.overlay != overlayForm {
		t.Fatalf("form must stay open while the request is in flight")
	}

	_, _ = m.Update(reminderScheduledMsg{seq: m.reqSeq, err: errors.New("could not parse date")})
	if m.overlay != overlayForm || m.form == nil {
		t.Fatalf("form must survive a backend error")
	}
	if got := m.form.Value("text"); got != "standup tomorrow at 9am" {
		t.Fatalf("input must be preserved after a backend error, got %q", got)
	}

	_, _ = m.Update(reminderScheduledMsg{seq: m.reqSeq, reminder: backend.Reminder{Name: "standup", ScheduledTime: "2024-06-16T09:00:00Z"}})
	if m.overlay != overlayNone || m.form != nil {
		t.Fatalf("form should close once the reminder is scheduled")
	}
}

func TestEmailFormKeepsInputOnSendFailure(t *testing.T) {
	m := newTestModel(t)
	if _, err := m.svc.AddNote(model.Note{Title: "Agenda", Content: "minutes"}); err != nil {
		t.Fatalf("add note: %v", err)
	}
	press(m, "3", "m")
	if m.overlay != overlayForm || m.formKind != formEmail {
		t.Fatalf("expected email form overlay")
	}
	m.form.SetValue("to", "me@example.com")
	press(m, "enter")
	if m.overlay != overlayForm {
		t.Fatalf("form must stay open until the send is confirmed")
	}

	_, _ = m.Update(emailSentMsg{seq: m.reqSeq, err: errors.New("smtp unavailable")})
	if m.overlay != overlayForm || m.form.Value("to") != "me@example.com" {
		t.Fatalf("recipient must be preserved after a send failure")
	}

	_, _ = m.Update(emailSentMsg{seq: m.reqSeq})
	if m.overlay != overlayNone || m.form != nil {
		t.Fatalf("form should close once the email is sent")
	}
}

func TestWatchEventSyncsThemeWithReloadedFlag(t *testing.T) {
	m := newTestModel(t)
	if err := m.svc.Persistence().SetDarkMode(true); err != nil {
		t.Fatalf("set dark mode: %v", err)
	}
	_, _ = m.Update(watchEventMsg{event: store.Event{Key: store.KeyDarkMode}})
	if !m.th.Dark {
		t.Fatalf("theme should follow an externally changed dark-mode flag")
	}
}

func TestWatchEventReloadsService(t *testing.T) {
	m := newTestModel(t)
	other, err := app.NewService(m.svc.Persistence())
	if err != nil {
		t.Fatalf("second service: %v", err)
	}
	if _, err := other.AddTask(model.Task{Title: "External"}); err != nil {
		t.Fatalf("external add: %v", err)
	}
	if len(m.svc.Tasks()) != 0 {
		t.Fatalf("sanity: model should not see the task yet")
	}
	_, _ = m.Update(watchEventMsg{event: store.Event{Key: store.KeyTasks}})
	if len(m.svc.Tasks()) != 1 {
		t.Fatalf("watch event should reload collections")
	}
}
