// Package overlay composes a foreground view atop a background view while
// preserving background content outside the overlay bounds.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Placement controls overlay alignment and sizing. Zero values center the
// overlay and size it to its content.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
	Width      int
	Height     int
}

// Compose draws foreground over background within a width x height canvas.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalize(background, width, height)
	if strings.TrimSpace(foreground) == "" {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")

	ow := placement.Width
	if ow <= 0 {
		for _, line := range fgLines {
			if w := lipgloss.Width(line); w > ow {
				ow = w
			}
		}
	}
	if ow <= 0 {
		return strings.Join(bgLines, "\n")
	}
	if ow > width {
		ow = width
	}

	oh := placement.Height
	if oh <= 0 {
		oh = len(fgLines)
	}
	if oh > height {
		oh = height
	}
	if oh <= 0 {
		return strings.Join(bgLines, "\n")
	}

	x, y := offsets(width, height, ow, oh, placement)

	for row := 0; row < oh; row++ {
		dest := y + row
		if dest < 0 || dest >= len(bgLines) {
			continue
		}
		line := ""
		if row < len(fgLines) {
			line = fgLines[row]
		}
		line = pad(line, ow)

		base := bgLines[dest]
		bgLines[dest] = slice(base, 0, x) + line + slice(base, x+ow, width)
	}

	return strings.Join(bgLines, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(lines[i], width)
	}
	return lines
}

func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(s)
	if w > width {
		return slice(s, 0, width)
	}
	if w == width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// slice returns the portion of s between the given display columns, honoring
// wide runes. ANSI-styled backgrounds lose their styling at the cut; callers
// accept that for the covered region.
func slice(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > lipgloss.Width(s) {
		end = lipgloss.Width(s)
	}
	if start >= end {
		return ""
	}

	var b strings.Builder
	seen := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		next := seen + rw
		if next <= start {
			seen = next
			continue
		}
		if seen >= end || next > end {
			break
		}
		b.WriteRune(r)
		seen = next
	}
	return b.String()
}

func offsets(width, height, ow, oh int, placement Placement) (int, int) {
	h := placement.Horizontal
	if h == 0 {
		h = lipgloss.Center
	}
	v := placement.Vertical
	if v == 0 {
		v = lipgloss.Center
	}

	x := placement.MarginX
	switch h {
	case lipgloss.Right:
		x = width - ow - placement.MarginX
	case lipgloss.Center:
		x = (width - ow) / 2
	}
	x = clamp(x, 0, width-ow)

	y := placement.MarginY
	switch v {
	case lipgloss.Bottom:
		y = height - oh - placement.MarginY
	case lipgloss.Center:
		y = (height - oh) / 2
	}
	y = clamp(y, 0, height-oh)

	return x, y
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
