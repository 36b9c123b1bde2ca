package sidebar

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"daybook.dev/daybook/pkg/tui/theme"
)

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

func TestDefaultEntriesRender(t *testing.T) {
	m := New(theme.Light().Sidebar)
	view := stripANSI(m.View())
	for _, want := range []string{"Dashboard", "Calendar", "Notes", "Tasks"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in sidebar; view=%q", want, view)
		}
	}
}

func TestMoveClampsAtEnds(t *testing.T) {
	m := New(theme.Light().Sidebar)
	m.Move(-3)
	if m.Selected().Item.ID != "dashboard" {
		t.Fatalf("cursor should clamp at the top, got %q", m.Selected().Item.ID)
	}
	m.Move(99)
	if m.Selected().Item.ID != "tasks" {
		t.Fatalf("cursor should clamp at the bottom, got %q", m.Selected().Item.ID)
	}
}

func TestSelectByID(t *testing.T) {
	m := New(theme.Light().Sidebar)
	m.Select("notes")
	if m.Selected().Item.ID != "notes" {
		t.Fatalf("expected notes selected, got %q", m.Selected().Item.ID)
	}
	m.Select("missing")
	if m.Selected().Item.ID != "notes" {
		t.Fatalf("unknown id must not move the cursor")
	}
}

func TestToggleIgnoresLeaves(t *testing.T) {
	m := New(theme.Light().Sidebar)
	m.Select("calendar")
	before := len(m.flat)
	m.Toggle()
	if len(m.flat) != before {
		t.Fatalf("toggling a leaf changed visible rows")
	}
}
