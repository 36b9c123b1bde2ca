package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(s string) string {
	if !pp.ShowID {
		return ""
	}
	if len(s) > 8 {
		s = s[:8]
	}
	return s
}

// Tasks prints the task list, one row per task, done markers first.
func (pp *PrettyPrint) Tasks(tasks []model.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	done := color.New(color.Faint)
	open := color.New()
	pri := map[model.Priority]*color.Color{
		model.PriorityHigh:   color.New(color.FgHiRed),
		model.PriorityMedium: color.New(color.FgYellow),
		model.PriorityLow:    color.New(color.FgGreen),
	}

	table := uitable.New()
	table.MaxColWidth = 60
	for _, t := range tasks {
		mark, c := "·", open
		if t.Completed {
			mark, c = "x", done
		}
		p := pri[t.Priority]
		if p == nil {
			p = open
		}
		table.AddRow(pp.id(t.ID), c.Sprintf("%s %s", mark, t.Title), p.Sprint(t.Priority), t.Date.Format("Jan 2"), strings.Join(t.Tags, ","))
	}
	fmt.Println(table)
	fmt.Println("")
}

// Notes prints the note list newest-first with relative update times.
func (pp *PrettyPrint) Notes(notes []model.Note) {
	if len(notes) == 0 {
		pp.none()
		return
	}

	t := color.New()
	f := color.New(color.Faint)

	table := uitable.New()
	table.MaxColWidth = 60
	for _, n := range notes {
		table.AddRow(pp.id(n.ID), t.Sprint(n.Title), f.Sprint(timeutil.Relative(n.UpdatedAt.Time, time.Now())))
	}
	fmt.Println(table)
	fmt.Println("")
}

// Events prints the event list with start instants and category chips.
func (pp *PrettyPrint) Events(events []model.CalendarEvent) {
	if len(events) == 0 {
		pp.none()
		return
	}

	t := color.New()
	f := color.New(color.Faint)

	table := uitable.New()
	table.MaxColWidth = 60
	for _, e := range events {
		when := e.StartDate.Format("Jan 2 15:04")
		if e.AllDay {
			when = e.StartDate.Format("Jan 2") + " (all day)"
		}
		table.AddRow(pp.id(e.ID), t.Sprint(e.Title), f.Sprint(when), f.Sprint(e.Category))
	}
	fmt.Println(table)
	fmt.Println("")
}

// QuickNotes prints quick notes in display order, starred entries flagged.
func (pp *PrettyPrint) QuickNotes(notes []model.QuickNote) {
	if len(notes) == 0 {
		pp.none()
		return
	}

	t := color.New()
	star := color.New(color.FgHiYellow)

	for _, n := range notes {
		mark := " "
		if n.Starred {
			mark = star.Sprint("*")
		}
		if pp.ShowID {
			y := color.New(color.FgHiYellow, color.Italic, color.Faint)
			_, _ = y.Print(pp.id(n.ID))
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(pp.id(n.ID))))
		}
		_, _ = t.Printf("%s %s\n", mark, n.Text)
	}
	_, _ = t.Println("")
}
