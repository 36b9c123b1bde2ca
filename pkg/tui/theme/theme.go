// Package theme centralizes Lip Gloss styles for the Bubble Tea UI. Two
// variants exist, keyed on the persisted dark-mode flag.
package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/charmbracelet/lipgloss/v2"
)

// Theme groups the styles used across the UI.
type Theme struct {
	Dark bool

	Header  HeaderTheme
	Sidebar SidebarTheme
	Card    CardTheme
	Footer  FooterTheme
	Modal   ModalTheme
	Month   MonthTheme
}

// HeaderTheme styles the top bar.
type HeaderTheme struct {
	Title      lipgloss.Style
	Breadcrumb lipgloss.Style
}

// SidebarTheme styles the navigation tree.
type SidebarTheme struct {
	Frame    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Caret    lipgloss.Style
}

// CardTheme styles dashboard cards and list panes.
type CardTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Faint lipgloss.Style
	Done  lipgloss.Style
	Star  lipgloss.Style
	Error lipgloss.Style
}

// FooterTheme styles the bottom status/help line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// ModalTheme styles centered overlays (forms, settings, confirmations).
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Label lipgloss.Style
}

// MonthTheme styles the month grid.
type MonthTheme struct {
	Header   lipgloss.Style
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	Blank    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	More     lipgloss.Style
}

// Chip renders an event chip style for the given hex color. The foreground
// flips between black and white depending on the background's luminance so
// every palette entry stays readable.
func (t Theme) Chip(hex string) lipgloss.Style {
	bg := lipgloss.Color(hex)
	fg := lipgloss.Color("0")
	if c, err := colorful.Hex(hex); err == nil {
		if _, _, l := c.Hsl(); l < 0.5 {
			fg = lipgloss.Color("15")
		}
	}
	return lipgloss.NewStyle().Background(bg).Foreground(fg)
}

// ForMode returns the theme matching the persisted dark-mode flag.
func ForMode(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

// Light returns the light-background theme.
func Light() Theme {
	return build(false, palette{
		text:     lipgloss.Color("235"),
		faint:    lipgloss.Color("245"),
		accent:   lipgloss.Color("26"),
		selected: lipgloss.Color("153"),
		border:   lipgloss.Color("250"),
		err:      lipgloss.Color("160"),
	})
}

// Dark returns the dark-background theme.
func Dark() Theme {
	return build(true, palette{
		text:     lipgloss.Color("252"),
		faint:    lipgloss.Color("243"),
		accent:   lipgloss.Color("75"),
		selected: lipgloss.Color("24"),
		border:   lipgloss.Color("238"),
		err:      lipgloss.Color("203"),
	})
}

type palette struct {
	text     color.Color
	faint    color.Color
	accent   color.Color
	selected color.Color
	border   color.Color
	err      color.Color
}

func build(dark bool, p palette) Theme {
	return Theme{
		Dark: dark,
		Header: HeaderTheme{
			Title:      lipgloss.NewStyle().Bold(true).Foreground(p.accent),
			Breadcrumb: lipgloss.NewStyle().Foreground(p.faint),
		},
		Sidebar: SidebarTheme{
			Frame:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(p.border).PaddingRight(1),
			Item:     lipgloss.NewStyle().Foreground(p.text),
			Selected: lipgloss.NewStyle().Background(p.selected).Foreground(p.text).Bold(true),
			Caret:    lipgloss.NewStyle().Foreground(p.faint),
		},
		Card: CardTheme{
			Frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(p.text),
			Body:  lipgloss.NewStyle().Foreground(p.text),
			Faint: lipgloss.NewStyle().Foreground(p.faint),
			Done:  lipgloss.NewStyle().Foreground(p.faint).Strikethrough(true),
			Star:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			Error: lipgloss.NewStyle().Foreground(p.err),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(p.faint),
			Status: lipgloss.NewStyle().Foreground(p.text),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
			Body:  lipgloss.NewStyle().Foreground(p.text),
			Label: lipgloss.NewStyle().Foreground(p.faint),
		},
		Month: MonthTheme{
			Header:   lipgloss.NewStyle().Bold(true).Foreground(p.text),
			Weekday:  lipgloss.NewStyle().Bold(true).Foreground(p.faint),
			Day:      lipgloss.NewStyle().Foreground(p.text),
			Blank:    lipgloss.NewStyle().Foreground(p.faint),
			Today:    lipgloss.NewStyle().Underline(true).Bold(true),
			Selected: lipgloss.NewStyle().Background(p.selected),
			More:     lipgloss.NewStyle().Foreground(p.faint).Italic(true),
		},
	}
}
