package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"daybook.dev/daybook/pkg/model"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string       { return c.path }
func (c *testConfig) BackendURL() string     { return "http://localhost:5000" }
func (c *testConfig) Timeout() time.Duration { return time.Second }

func newTestStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return p, dir
}

func TestTaskRoundTripPreservesInstantsAndOrder(t *testing.T) {
	p, _ := newTestStore(t)

	due := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "t1", Title: "Buy milk", Date: model.Timestamp{Time: due}, Priority: model.PriorityLow, Tags: []string{}},
		{ID: "t2", Title: "Call bank", Date: model.Timestamp{Time: due.AddDate(0, 0, 3)}, Priority: model.PriorityHigh, Tags: []string{"errand"}},
	}
	if err := p.SaveTasks(tasks); err != nil {
		t.Fatalf("save tasks: %v", err)
	}

	got := p.Tasks()
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != "t1" || got[1].ID != "t2" {
		t.Fatalf("collection order not preserved: %s, %s", got[0].ID, got[1].ID)
	}
	if !got[0].Date.Equal(due) {
		t.Fatalf("date did not round-trip as an equal instant: %v", got[0].Date)
	}
}

func TestNoteRoundTripPreservesTimestamps(t *testing.T) {
	p, _ := newTestStore(t)

	created := time.Date(2024, time.May, 20, 14, 5, 9, 0, time.UTC)
	notes := []model.Note{{
		ID:        "n1",
		Title:     "Meeting notes",
		Content:   "agenda",
		CreatedAt: model.Timestamp{Time: created},
		UpdatedAt: model.Timestamp{Time: created.Add(time.Hour)},
		Tags:      []string{"work"},
	}}
	if err := p.SaveNotes(notes); err != nil {
		t.Fatalf("save notes: %v", err)
	}
	got := p.Notes()
	if len(got) != 1 {
		t.Fatalf("expected 1 note, got %d", len(got))
	}
	if !got[0].CreatedAt.Equal(created) || !got[0].UpdatedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("timestamps did not round-trip: %v / %v", got[0].CreatedAt, got[0].UpdatedAt)
	}
}

func TestCorruptCollectionFailsClosedIndependently(t *testing.T) {
	p, dir := newTestStore(t)

	if err := p.SaveNotes([]model.Note{{ID: "n1", Title: "kept"}}); err != nil {
		t.Fatalf("save notes: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, KeyTasks), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt tasks: %v", err)
	}

	if got := p.Tasks(); len(got) != 0 {
		t.Fatalf("corrupt tasks must hydrate empty, got %d", len(got))
	}
	if got := p.Notes(); len(got) != 1 || got[0].Title != "kept" {
		t.Fatalf("notes hydration must be unaffected, got %+v", got)
	}
}

func TestTypeMismatchedCollectionFailsClosed(t *testing.T) {
	p, dir := newTestStore(t)

	// Valid JSON syntax, but the second element has a numeric id and an
	// unparseable date. Unmarshal fills part of the slice before erroring;
	// none of it may survive hydration.
	doc := `[{"id":"t1","title":"ok","date":"2024-06-01T00:00:00Z","priority":"low","tags":[]},` +
		`{"id":123,"title":"bad","date":"not-a-date","priority":"low","tags":[]}]`
	if err := os.WriteFile(filepath.Join(dir, KeyTasks), []byte(doc), 0o644); err != nil {
		t.Fatalf("write tasks: %v", err)
	}

	if got := p.Tasks(); len(got) != 0 {
		t.Fatalf("type-mismatched tasks must hydrate empty, got %d: %+v", len(got), got)
	}
}

func TestAbsentKeysHydrateEmpty(t *testing.T) {
	p, _ := newTestStore(t)
	if got := p.Events(); len(got) != 0 {
		t.Fatalf("expected empty events, got %d", len(got))
	}
	if p.DarkMode() {
		t.Fatalf("dark mode must default to false")
	}
}

func TestDarkModeFlag(t *testing.T) {
	p, _ := newTestStore(t)
	if err := p.SetDarkMode(true); err != nil {
		t.Fatalf("set dark mode: %v", err)
	}
	if !p.DarkMode() {
		t.Fatalf("expected dark mode on")
	}
}

func TestSnapshotCarriesRawStoredBytes(t *testing.T) {
	p, dir := newTestStore(t)
	if err := p.SaveTasks([]model.Task{{ID: "t1", Title: "x", Priority: model.PriorityLow, Tags: []string{}}}); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, KeyTasks))
	if err != nil {
		t.Fatalf("read stored tasks: %v", err)
	}
	snap := p.Snapshot()
	if !bytes.Equal(snap.Tasks, raw) {
		t.Fatalf("snapshot must embed raw stored bytes")
	}
	if snap.Events != nil {
		t.Fatalf("absent entries must be nil in the snapshot")
	}
}

func TestClearEmptiesEveryKey(t *testing.T) {
	p, _ := newTestStore(t)
	if err := p.SaveTasks([]model.Task{{ID: "t1"}}); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	if err := p.SetDarkMode(true); err != nil {
		t.Fatalf("set dark mode: %v", err)
	}
	if err := p.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(p.Tasks()) != 0 || p.DarkMode() {
		t.Fatalf("clear must empty every key")
	}
}
