// Package export produces user-triggered data exports: a JSON snapshot of
// every persisted entry and an iCalendar rendering of the event collection.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"

	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/store"
)

// DefaultSnapshotFile is the default export filename.
const DefaultSnapshotFile = "daybook-backup.json"

// SnapshotJSON renders the store's snapshot as a single indented JSON
// document embedding the raw serialized contents of each entry.
func SnapshotJSON(p store.Persistence) ([]byte, error) {
	data, err := json.MarshalIndent(p.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode snapshot: %w", err)
	}
	return data, nil
}

// WriteSnapshot writes the snapshot document to path.
func WriteSnapshot(p store.Persistence, path string) error {
	if path == "" {
		path = DefaultSnapshotFile
	}
	data, err := SnapshotJSON(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// EventsICS renders the event collection as a VCALENDAR. All-day events are
// emitted as DATE values; timed events keep their instants.
func EventsICS(events []model.CalendarEvent) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for _, e := range events {
		ve := cal.AddEvent(e.ID + "@daybook")
		ve.SetDtStampTime(now)
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Category != "" {
			ve.SetProperty(ics.ComponentPropertyCategories, e.Category)
		}
		if e.AllDay {
			ve.SetAllDayStartAt(e.StartDate.Time)
			ve.SetAllDayEndAt(e.EndDate.AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(e.StartDate.Time)
			ve.SetEndAt(e.EndDate.Time)
		}
	}
	return cal.Serialize()
}

// WriteEventsICS writes the ICS rendering to path.
func WriteEventsICS(events []model.CalendarEvent, path string) error {
	if path == "" {
		path = "daybook-events.ics"
	}
	if err := os.WriteFile(path, []byte(EventsICS(events)), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
