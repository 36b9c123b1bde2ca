// Package teaui hosts the Bubble Tea program for the daybook TUI.
package teaui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"daybook.dev/daybook/pkg/app"
	"daybook.dev/daybook/pkg/backend"
	"daybook.dev/daybook/pkg/export"
	"daybook.dev/daybook/pkg/store"
	"daybook.dev/daybook/pkg/tui/components/form"
	"daybook.dev/daybook/pkg/tui/components/monthview"
	"daybook.dev/daybook/pkg/tui/components/sidebar"
	"daybook.dev/daybook/pkg/tui/theme"
)

// Views and overlay states
type viewID string

const (
	viewDashboard viewID = "dashboard"
	viewCalendar  viewID = "calendar"
	viewNotes     viewID = "notes"
	viewTasks     viewID = "tasks"
)

type overlayKind int

const (
	overlayNone overlayKind = iota
	overlaySettings
	overlayQuickNotes
	overlayForm
	overlayConfirm
)

type formKind int

const (
	formNone formKind = iota
	formTask
	formNote
	formEvent
	formEmail
	formRemind
)

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteTask
	confirmDeleteNote
	confirmDeleteEvent
	confirmDeleteQuickNote
	confirmClearAll
)

const (
	focusSidebar = 0
	focusContent = 1
)

// Model contains UI state.
type Model struct {
	svc    *app.Service
	client *backend.Client
	ctx    context.Context
	cancel context.CancelFunc

	th theme.Theme

	view    viewID
	overlay overlayKind
	focus   int

	sidebar *sidebar.Model
	month   *monthview.Model

	taskCursor int
	noteCursor int

	quickInput  textinput.Model
	quickCursor int

	form     *form.Model
	formKind formKind
	editID   string

	confirm   confirmKind
	confirmID string

	// Session-only settings toggles; only the theme flag persists.
	notifications bool
	autoBackup    bool

	status string

	modelInfo   backend.ModelInfo
	modelInfoOK bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	// reqSeq numbers backend requests so stale responses are discarded.
	reqSeq int

	termWidth  int
	termHeight int

	now func() time.Time
}

type errMsg struct{ err error }

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct{ event store.Event }

type watchStoppedMsg struct{}

type reminderScheduledMsg struct {
	seq      int
	reminder backend.Reminder
	err      error
}

type emailSentMsg struct {
	seq int
	err error
}

type emailScheduledMsg struct {
	seq  int
	secs float64
	err  error
}

type modelInfoMsg struct {
	info backend.ModelInfo
	err  error
}

// New creates the root model backed by the Service and backend client.
func New(svc *app.Service, client *backend.Client) *Model {
	dark := false
	if svc != nil {
		dark = svc.DarkMode()
	}
	th := theme.ForMode(dark)

	qi := textinput.New()
	qi.Placeholder = "Jot something down…"
	qi.CharLimit = 256
	qi.Prompt = "> "
	qi.VirtualCursor = true
	qi.Styles.Cursor.Color = lipgloss.Color("212")
	qi.Styles.Cursor.Shape = tea.CursorBlock

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		svc:        svc,
		client:     client,
		ctx:        ctx,
		cancel:     cancel,
		th:         th,
		view:       viewDashboard,
		focus:      focusSidebar,
		sidebar:    sidebar.New(th.Sidebar),
		month:      monthview.New(th),
		quickInput: qi,
		now:        time.Now,
		status:     "Ready",
	}
	m.sidebar.SetFocused(true)
	m.refreshEvents()
	return m
}

// Init loads initial data and starts the store watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(startWatchCmd(m.ctx, m.svc), m.fetchModelInfo())
}

// Update routes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.setStatus("ERR: " + msg.err.Error())
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.svc.Reload()
		if dark := m.svc.DarkMode(); dark != m.th.Dark {
			m.setTheme(dark)
		}
		m.refreshEvents()
		m.clampCursors()
		m.setStatus("Reloaded after external change")
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
	case reminderScheduledMsg:
		if msg.seq != m.reqSeq {
			break
		}
		if msg.err != nil {
			m.setStatus("Reminder: " + msg.err.Error())
			break
		}
		when := msg.reminder.ScheduledTime
		if at, err := msg.reminder.ScheduledAt(); err == nil {
			when = at.Local().Format("Jan 2 15:04")
		}
		m.setStatus("Reminder \"" + msg.reminder.Name + "\" scheduled for " + when)
		if m.formKind == formRemind {
			m.closeForm()
		}
	case emailSentMsg:
		if msg.seq != m.reqSeq {
			break
		}
		if msg.err != nil {
			m.setStatus("Email: " + msg.err.Error())
			break
		}
		m.setStatus("Email sent")
		if m.formKind == formEmail {
			m.closeForm()
		}
	case emailScheduledMsg:
		if msg.seq != m.reqSeq {
			break
		}
		if msg.err != nil {
			m.setStatus("Email: " + msg.err.Error())
			break
		}
		m.setStatus("Email scheduled, sending in " + formatSeconds(msg.secs))
		if m.formKind == formEmail {
			m.closeForm()
		}
	case modelInfoMsg:
		// Model info is decorative; failures stay silent.
		if msg.err == nil {
			m.modelInfo = msg.info
			m.modelInfoOK = true
		}
	case tea.KeyPressMsg:
		m.handleKeyPress(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) setStatus(s string) { m.status = s }

// setTheme rebuilds every themed component after a dark-mode flip.
func (m *Model) setTheme(dark bool) {
	m.th = theme.ForMode(dark)
	m.sidebar.SetStyles(m.th.Sidebar)
	m.month.SetTheme(m.th)
}

func (m *Model) refreshEvents() {
	if m.svc == nil {
		return
	}
	m.month.SetEvents(m.svc.Events())
}

func (m *Model) clampCursors() {
	if m.svc == nil {
		return
	}
	if n := len(m.svc.Tasks()); m.taskCursor >= n {
		m.taskCursor = maxInt(0, n-1)
	}
	if n := len(m.svc.Notes()); m.noteCursor >= n {
		m.noteCursor = maxInt(0, n-1)
	}
	if n := len(m.svc.QuickNotes()); m.quickCursor >= n {
		m.quickCursor = maxInt(0, n-1)
	}
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 5
	if left < 18 {
		left = 18
	}
	if left > 28 {
		left = 28
	}
	contentHeight := m.termHeight - 4
	if contentHeight < 5 {
		contentHeight = 5
	}
	m.sidebar.SetSize(left, contentHeight)
	m.month.SetSize(m.termWidth-left-3, contentHeight)
	if m.form != nil {
		m.form.SetSize(m.termWidth/2, m.termHeight)
	}
	m.quickInput.SetWidth(minInt(48, maxInt(20, m.termWidth/2)))
}

// Watch plumbing

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// Backend commands

func (m *Model) fetchModelInfo() tea.Cmd {
	if m.client == nil {
		return nil
	}
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		info, err := client.GetModelInfo(ctx)
		return modelInfoMsg{info: info, err: err}
	}
}

func (m *Model) scheduleReminderCmd(text, email string) tea.Cmd {
	if m.client == nil {
		return func() tea.Msg { return errMsg{err: errNoBackend} }
	}
	m.reqSeq++
	seq := m.reqSeq
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		r, err := client.ScheduleReminder(ctx, text, email)
		return reminderScheduledMsg{seq: seq, reminder: r, err: err}
	}
}

func (m *Model) sendEmailCmd(to, subject, body string) tea.Cmd {
	if m.client == nil {
		return func() tea.Msg { return errMsg{err: errNoBackend} }
	}
	m.reqSeq++
	seq := m.reqSeq
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		err := client.SendEmail(ctx, to, subject, body)
		return emailSentMsg{seq: seq, err: err}
	}
}

func (m *Model) scheduleEmailCmd(to, subject, body string, runAt time.Time) tea.Cmd {
	if m.client == nil {
		return func() tea.Msg { return errMsg{err: errNoBackend} }
	}
	m.reqSeq++
	seq := m.reqSeq
	client := m.client
	ctx := m.ctx
	return func() tea.Msg {
		secs, err := client.ScheduleEmail(ctx, to, subject, body, runAt)
		return emailScheduledMsg{seq: seq, secs: secs, err: err}
	}
}

func (m *Model) exportSnapshot() {
	if m.svc == nil {
		return
	}
	if err := export.WriteSnapshot(m.svc.Persistence(), export.DefaultSnapshotFile); err != nil {
		m.setStatus("Export: " + err.Error())
		return
	}
	m.setStatus("Exported " + export.DefaultSnapshotFile)
}

func (m *Model) exportICS() {
	if m.svc == nil {
		return
	}
	if err := export.WriteEventsICS(m.svc.Events(), "daybook-events.ics"); err != nil {
		m.setStatus("Export: " + err.Error())
		return
	}
	m.setStatus("Exported daybook-events.ics")
}

// Run launches the interactive TUI program.
func Run(svc *app.Service, client *backend.Client) error {
	p := tea.NewProgram(New(svc, client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
