// Package calendar builds month grids and buckets events into day cells.
// The grid uses the blank-padded policy: leading blanks align the 1st under
// its weekday column (Sunday first), trailing blanks complete the final
// 7-wide row, and blank cells carry no date.
package calendar

import (
	"time"

	"daybook.dev/daybook/pkg/model"
)

// Cell is one slot in a month grid. Blank cells have Day == 0 and a zero
// Date; they render empty and are not selectable.
type Cell struct {
	Day   int
	Date  time.Time
	Today bool
}

// Blank reports whether the cell is a padding slot.
func (c Cell) Blank() bool { return c.Day == 0 }

// Weekdays returns the fixed column headers, Sunday first.
func Weekdays() []string {
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// StartOfMonth normalizes ref to midnight on the first of its month. Grid
// navigation always works from this normalized reference so adding or
// subtracting a month can never overflow a day-of-month.
func StartOfMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
}

// NextMonth returns the first of the month after ref's month.
func NextMonth(ref time.Time) time.Time {
	return StartOfMonth(ref).AddDate(0, 1, 0)
}

// PrevMonth returns the first of the month before ref's month.
func PrevMonth(ref time.Time) time.Time {
	return StartOfMonth(ref).AddDate(0, -1, 0)
}

// DaysIn returns the number of days in ref's month.
func DaysIn(ref time.Time) int {
	return StartOfMonth(ref).AddDate(0, 1, -1).Day()
}

// Grid produces the ordered day slots covering ref's month. The result
// length is always a multiple of 7. Today is marked by calendar-date
// equality against now, so at most one cell per invocation carries it.
func Grid(ref, now time.Time) []Cell {
	first := StartOfMonth(ref)
	days := DaysIn(ref)
	offset := int(first.Weekday()) // Sunday == 0
	rows := (offset + days + 6) / 7

	cells := make([]Cell, rows*7)
	for day := 1; day <= days; day++ {
		date := first.AddDate(0, 0, day-1)
		cells[offset+day-1] = Cell{
			Day:   day,
			Date:  date,
			Today: sameDate(date, now),
		}
	}
	return cells
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// EventsOn returns the day bucket for the given date: every event whose start
// instant falls on that local calendar date, in collection order. All-day
// events bucket by their start date like any other; an event is never split
// across cells.
func EventsOn(events []model.CalendarEvent, day time.Time) []model.CalendarEvent {
	out := make([]model.CalendarEvent, 0, 2)
	for _, e := range events {
		if e.OnDay(day) {
			out = append(out, e)
		}
	}
	return out
}

// CapChips limits a day bucket to max direct chips, returning the visible
// events and the overflow count for the "+N more" affordance.
func CapChips(events []model.CalendarEvent, max int) ([]model.CalendarEvent, int) {
	if max < 0 {
		max = 0
	}
	if len(events) <= max {
		return events, 0
	}
	return events[:max], len(events) - max
}
