// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"
)

const layoutISO = "2006-01-02"

// IDOptions selects a single entry.
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry.")
}

// DateOptions captures a --date flag for dated entries.
type DateOptions struct {
	DateString string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.DateString, "date", "",
		`Specify a date, example: --date="2024-06-15".`)
}

// GetDate parses the flag; empty input means no date.
func (o *DateOptions) GetDate() (*time.Time, error) {
	if o.DateString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.DateString, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// TaskOptions captures task-shaping flags.
type TaskOptions struct {
	Priority string
	Category string
	Tags     []string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Task priority: low, medium, or high.")
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Category label.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the entry; repeatable.")
}

// EventOptions captures event-shaping flags.
type EventOptions struct {
	StartString string
	EndString   string
	AllDay      bool
	Color       string
	Category    string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.StartString, "start", "",
		`Event start, example: --start="2024-06-15 09:00".`)
	cmd.Flags().StringVar(&o.EndString, "end", "",
		`Event end; defaults to the start.`)
	cmd.Flags().BoolVar(&o.AllDay, "all-day", false,
		"Mark the event as all-day.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		"Chip color as hex, example: #1976d2.")
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Category label.")
}

const layoutDateTime = "2006-01-02 15:04"

// ParseWhen accepts "YYYY-MM-DD HH:MM" or a bare date.
func ParseWhen(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation(layoutDateTime, raw, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation(layoutISO, raw, time.Local)
}
