package app

import (
	"fmt"
	"testing"
	"time"

	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/store"
)

type memConfig struct{ path string }

func (c *memConfig) BasePath() string       { return c.path }
func (c *memConfig) BackendURL() string     { return "" }
func (c *memConfig) Timeout() time.Duration { return time.Second }

func newTestService(t *testing.T) *Service {
	t.Helper()
	p, err := store.Load(&memConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	svc, err := NewService(p)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	seq := 0
	svc.NewID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc
}

func TestAddTaskAssignsIdentityAndDefaults(t *testing.T) {
	svc := newTestService(t)

	before := len(svc.Tasks())
	added, err := svc.AddTask(model.Task{
		Title:    "Buy milk",
		Date:     model.Timestamp{Time: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
		Priority: model.PriorityLow,
	})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if len(svc.Tasks()) != before+1 {
		t.Fatalf("expected collection to grow by 1")
	}
	if added.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if added.Completed {
		t.Fatalf("new tasks must start incomplete")
	}
}

func TestToggleTaskIsIdempotentPair(t *testing.T) {
	svc := newTestService(t)
	added, _ := svc.AddTask(model.Task{Title: "x", Priority: model.PriorityHigh, Tags: []string{"a"}})

	if err := svc.ToggleTask(added.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, _ := svc.TaskByID(added.ID)
	if !got.Completed {
		t.Fatalf("expected completed after first toggle")
	}
	if err := svc.ToggleTask(added.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, _ = svc.TaskByID(added.ID)
	if got.Completed {
		t.Fatalf("expected original value after double toggle")
	}
	if got.Title != "x" || got.Priority != model.PriorityHigh || len(got.Tags) != 1 {
		t.Fatalf("toggle must not alter other fields: %+v", got)
	}
}

func TestEditTaskUnknownIDIsSilentNoop(t *testing.T) {
	svc := newTestService(t)
	svc.AddTask(model.Task{Title: "keep"})

	if err := svc.EditTask(model.Task{ID: "missing", Title: "ghost"}); err != nil {
		t.Fatalf("edit of unknown id must not error: %v", err)
	}
	if len(svc.Tasks()) != 1 || svc.Tasks()[0].Title != "keep" {
		t.Fatalf("collection must be unchanged")
	}
	if err := svc.DeleteTask("missing"); err != nil {
		t.Fatalf("delete of unknown id must not error: %v", err)
	}
}

func TestAddNoteStampsBothTimestamps(t *testing.T) {
	svc := newTestService(t)
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc.Now = func() model.Timestamp { return model.Timestamp{Time: now} }

	added, err := svc.AddNote(model.Note{Title: "n", Content: "body"})
	if err != nil {
		t.Fatalf("add note: %v", err)
	}
	if !added.CreatedAt.Equal(now) || !added.UpdatedAt.Equal(now) {
		t.Fatalf("expected createdAt == updatedAt == now, got %v / %v", added.CreatedAt, added.UpdatedAt)
	}
}

func TestEditNoteAdvancesUpdatedAtAndKeepsCreatedAt(t *testing.T) {
	svc := newTestService(t)
	created := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc.Now = func() model.Timestamp { return model.Timestamp{Time: created} }
	added, _ := svc.AddNote(model.Note{Title: "n", Content: "v1"})

	later := created.Add(2 * time.Hour)
	svc.Now = func() model.Timestamp { return model.Timestamp{Time: later} }

	edit := added
	edit.Content = "v2"
	// The caller supplies bogus timestamps; both must be overridden.
	edit.CreatedAt = model.Timestamp{Time: created.AddDate(1, 0, 0)}
	edit.UpdatedAt = model.Timestamp{}
	if err := svc.EditNote(edit); err != nil {
		t.Fatalf("edit note: %v", err)
	}

	got := svc.Notes()[0]
	if got.Content != "v2" {
		t.Fatalf("content not updated")
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("createdAt must never change, got %v", got.CreatedAt)
	}
	if !got.UpdatedAt.Equal(later) {
		t.Fatalf("updatedAt must be forced to now, got %v", got.UpdatedAt)
	}
	if got.UpdatedAt.Before(got.CreatedAt.Time) {
		t.Fatalf("updatedAt must be >= createdAt")
	}
}

func TestAddEventClampsEndBeforeStart(t *testing.T) {
	svc := newTestService(t)
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	added, err := svc.AddEvent(model.CalendarEvent{
		Title:     "retro",
		StartDate: model.Timestamp{Time: start},
		EndDate:   model.Timestamp{Time: start.Add(-time.Hour)},
	})
	if err != nil {
		t.Fatalf("add event: %v", err)
	}
	if !added.EndDate.Equal(start) {
		t.Fatalf("expected clamped end, got %v", added.EndDate)
	}
}

func TestIdentitiesAreUniqueAcrossCollections(t *testing.T) {
	svc := newTestService(t)
	task, _ := svc.AddTask(model.Task{Title: "t"})
	note, _ := svc.AddNote(model.Note{Title: "n"})
	event, _ := svc.AddEvent(model.CalendarEvent{Title: "e"})
	ids := map[string]bool{task.ID: true, note.ID: true, event.ID: true}
	if len(ids) != 3 {
		t.Fatalf("identities must not collide across collections")
	}
}

func TestQuickNotesOrderStarredFirst(t *testing.T) {
	svc := newTestService(t)
	base := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	stamp := base
	svc.Now = func() model.Timestamp {
		stamp = stamp.Add(time.Minute)
		return model.Timestamp{Time: stamp}
	}

	first, _ := svc.AddQuickNote("first")
	svc.AddQuickNote("second")
	if err := svc.ToggleQuickNoteStar(first.ID); err != nil {
		t.Fatalf("star: %v", err)
	}

	got := svc.QuickNotes()
	if got[0].ID != first.ID {
		t.Fatalf("starred note must sort first, got %s", got[0].ID)
	}
	if err := svc.DeleteQuickNote(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(svc.QuickNotes()) != 1 {
		t.Fatalf("expected one quick note after delete")
	}
}

func TestMutationsPersistAcrossReload(t *testing.T) {
	svc := newTestService(t)
	svc.AddTask(model.Task{Title: "persisted"})
	svc.SetDarkMode(true)

	fresh, err := NewService(svc.Persistence())
	if err != nil {
		t.Fatalf("rehydrate: %v", err)
	}
	if len(fresh.Tasks()) != 1 || fresh.Tasks()[0].Title != "persisted" {
		t.Fatalf("task did not persist")
	}
	if !fresh.DarkMode() {
		t.Fatalf("dark mode flag did not persist")
	}
}

func TestClearAllEmptiesState(t *testing.T) {
	svc := newTestService(t)
	svc.AddTask(model.Task{Title: "t"})
	svc.AddNote(model.Note{Title: "n"})
	if err := svc.ClearAll(); err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if len(svc.Tasks()) != 0 || len(svc.Notes()) != 0 || svc.DarkMode() {
		t.Fatalf("expected empty state after clear")
	}
}
