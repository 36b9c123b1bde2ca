// Package timeutil provides compact time formatting for lists and dashboards.
package timeutil

import (
	"fmt"
	"time"
)

// Relative renders t against now in a compact human form: "just now",
// "5m ago", "3h ago", "2d ago", or the calendar date once it is a week out.
// Future instants render as "in ..." with the same units.
func Relative(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	var label string
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		label = fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		label = fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		label = fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}

	if future {
		return "in " + label
	}
	return label + " ago"
}

// DayLabel renders a calendar date for headers: "Monday, June 3".
func DayLabel(t time.Time) string {
	return t.Format("Monday, January 2")
}

// MonthLabel renders a month reference for the calendar header.
func MonthLabel(t time.Time) string {
	return t.Format("January 2006")
}
