package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampRoundTrip(t *testing.T) {
	in := Timestamp{Time: time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Timestamp
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Equal(in.Time) {
		t.Fatalf("expected equal instant, got %v want %v", out, in)
	}
}

func TestTimestampRoundTripKeepsSubSecondPrecision(t *testing.T) {
	in := Timestamp{Time: time.Date(2024, time.June, 1, 9, 30, 0, 123456789, time.UTC)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Timestamp
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Equal(in.Time) {
		t.Fatalf("sub-second precision lost: got %v want %v", out, in)
	}
}

func TestTimestampEmptyString(t *testing.T) {
	var out Timestamp
	if err := json.Unmarshal([]byte(`""`), &out); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !out.IsZero() {
		t.Fatalf("expected zero instant, got %v", out)
	}
}

func TestTimestampSameDayIgnoresTime(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, time.June, 1, 23, 59, 0, 0, time.Local)}
	if !ts.SameDay(time.Date(2024, time.June, 1, 0, 1, 0, 0, time.Local)) {
		t.Fatalf("expected same calendar day")
	}
	if ts.SameDay(time.Date(2024, time.June, 2, 0, 1, 0, 0, time.Local)) {
		t.Fatalf("expected different calendar day")
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"work", " home ", "work", "", "errand", "home"})
	want := []string{"work", "home", "errand"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParsePriority(t *testing.T) {
	if p, err := ParsePriority(" High "); err != nil || p != PriorityHigh {
		t.Fatalf("expected high, got %q err %v", p, err)
	}
	if p, err := ParsePriority(""); err != nil || p != PriorityMedium {
		t.Fatalf("expected default medium, got %q err %v", p, err)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}

func TestEventNormalizeClampsEnd(t *testing.T) {
	start := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	e := CalendarEvent{
		Title:     "standup",
		StartDate: Timestamp{Time: start},
		EndDate:   Timestamp{Time: start.Add(-time.Hour)},
	}
	e.Normalize()
	if !e.EndDate.Equal(start) {
		t.Fatalf("expected end clamped to start, got %v", e.EndDate)
	}
	if e.Color == "" {
		t.Fatalf("expected default color")
	}
}

func TestEventOnDayUsesStartOnly(t *testing.T) {
	start := time.Date(2024, time.June, 1, 23, 0, 0, 0, time.Local)
	e := CalendarEvent{
		StartDate: Timestamp{Time: start},
		EndDate:   Timestamp{Time: start.Add(4 * time.Hour)}, // spans midnight
	}
	if !e.OnDay(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("expected event bucketed on start date")
	}
	if e.OnDay(time.Date(2024, time.June, 2, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("event must not appear on its end date")
	}
}

func TestSortQuickNotesStarredFirstThenNewest(t *testing.T) {
	base := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	notes := []QuickNote{
		{ID: "a", CreatedAt: Timestamp{Time: base}},
		{ID: "b", CreatedAt: Timestamp{Time: base.Add(time.Hour)}},
		{ID: "c", CreatedAt: Timestamp{Time: base.Add(-time.Hour)}, Starred: true},
	}
	got := SortQuickNotes(notes)
	if got[0].ID != "c" || got[1].ID != "b" || got[2].ID != "a" {
		t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	if notes[0].ID != "a" {
		t.Fatalf("input slice must not be reordered")
	}
}

func TestFlattenRespectsExpansion(t *testing.T) {
	items := []SidebarItem{
		{ID: "projects", Title: "Projects", Children: []SidebarItem{
			{ID: "home", Title: "Home"},
		}},
		{ID: "tasks", Title: "Tasks"},
	}
	flat := Flatten(items, map[string]bool{})
	if len(flat) != 2 {
		t.Fatalf("collapsed tree should hide children, got %d items", len(flat))
	}
	flat = Flatten(items, map[string]bool{"projects": true})
	if len(flat) != 3 {
		t.Fatalf("expanded tree should include children, got %d items", len(flat))
	}
	if flat[1].Item.ID != "home" || flat[1].Depth != 1 {
		t.Fatalf("expected nested child at depth 1, got %+v", flat[1])
	}
}
