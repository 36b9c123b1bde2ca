package overlay

import (
	"strings"
	"testing"
)

func TestComposeCentersForeground(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat("..........\n", 5), "\n")
	out := Compose(bg, 10, 5, "XX", Placement{})

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[2] != "....XX...." {
		t.Fatalf("expected centered overlay, got %q", lines[2])
	}
	if lines[0] != ".........." || lines[4] != ".........." {
		t.Fatalf("background outside the overlay must survive: %q", out)
	}
}

func TestComposeEmptyForegroundKeepsBackground(t *testing.T) {
	out := Compose("ab\ncd", 2, 2, "  ", Placement{})
	if out != "ab\ncd" {
		t.Fatalf("blank foreground must not disturb background, got %q", out)
	}
}

func TestComposeClipsOversizedForeground(t *testing.T) {
	out := Compose("....", 4, 1, "XXXXXXXX", Placement{})
	if len(strings.Split(out, "\n")) != 1 {
		t.Fatalf("canvas height must hold, got %q", out)
	}
	if !strings.Contains(out, "XXXX") || strings.Contains(out, "XXXXX") {
		t.Fatalf("foreground should clip to canvas width, got %q", out)
	}
}
