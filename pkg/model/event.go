package model

import "time"

// PaletteColor pairs a display label with a hex value.
type PaletteColor struct {
	Label string
	Hex   string
}

// DefaultPalette is the fixed event color palette. Arbitrary hex values are
// still accepted anywhere a color is stored.
func DefaultPalette() []PaletteColor {
	return []PaletteColor{
		{Label: "Blue", Hex: "#1976d2"},
		{Label: "Red", Hex: "#d32f2f"},
		{Label: "Green", Hex: "#388e3c"},
		{Label: "Orange", Hex: "#f57c00"},
		{Label: "Purple", Hex: "#7b1fa2"},
		{Label: "Pink", Hex: "#c2185b"},
	}
}

// CalendarEvent is a scheduled item with a concrete start and end instant.
// When AllDay is set the time-of-day components are ignored for display and
// bucketing.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   Timestamp `json:"startDate"`
	EndDate     Timestamp `json:"endDate"`
	AllDay      bool      `json:"allDay"`
	Color       string    `json:"color"`
	Category    string    `json:"category,omitempty"`
}

// Normalize repairs field values that would otherwise violate invariants: a
// missing color falls back to the first palette entry and an end before the
// start is clamped to the start.
func (e *CalendarEvent) Normalize() {
	if e.Color == "" {
		e.Color = DefaultPalette()[0].Hex
	}
	if !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate.Time) {
		e.EndDate = e.StartDate
	}
	if e.EndDate.IsZero() {
		e.EndDate = e.StartDate
	}
}

// OnDay reports whether the event belongs to the given calendar day. Only the
// start instant's local date decides placement; events are never split across
// days even when they span midnight.
func (e CalendarEvent) OnDay(day time.Time) bool {
	return e.StartDate.SameDay(day)
}
