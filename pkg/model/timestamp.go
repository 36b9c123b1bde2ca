package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseTime parses an RFC3339 instant as produced by MarshalJSON.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with a stable string serialization so persisted
// documents round-trip through JSON as equal instants.
type Timestamp struct {
	time.Time
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// SameDay reports calendar-date equality (year/month/day) in local time.
func (t Timestamp) SameDay(then time.Time) bool {
	return t.Local().Day() == then.Local().Day() &&
		t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year()
}

// SameMonth reports year/month equality in local time.
func (t Timestamp) SameMonth(then time.Time) bool {
	return t.Local().Month() == then.Local().Month() &&
		t.Local().Year() == then.Local().Year()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339Nano)
}
