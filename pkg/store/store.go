// Package store persists daybook collections as JSON documents in a local
// diskv database. Each collection lives under its own key and is rewritten
// whole on every mutation; hydration reconstructs date fields through the
// model.Timestamp codec.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"daybook.dev/daybook/pkg/model"
)

// Storage keys. One independent document per key.
const (
	KeyTasks      = "tasks"
	KeyNotes      = "notes"
	KeyEvents     = "events"
	KeyQuickNotes = "quicknotes"
	KeyDarkMode   = "darkmode"
)

// Keys lists every persisted entry in snapshot order.
func Keys() []string {
	return []string{KeyTasks, KeyNotes, KeyEvents, KeyQuickNotes, KeyDarkMode}
}

// Persistence is the durable storage contract for daybook collections.
type Persistence interface {
	Tasks() []model.Task
	SaveTasks(tasks []model.Task) error
	Notes() []model.Note
	SaveNotes(notes []model.Note) error
	Events() []model.CalendarEvent
	SaveEvents(events []model.CalendarEvent) error
	QuickNotes() []model.QuickNote
	SaveQuickNotes(notes []model.QuickNote) error
	DarkMode() bool
	SetDarkMode(on bool) error
	Snapshot() Snapshot
	Clear() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Snapshot carries the raw serialized contents of every persisted entry, for
// user-triggered export. Absent entries are null.
type Snapshot struct {
	Tasks      json.RawMessage `json:"tasks"`
	Notes      json.RawMessage `json:"notes"`
	Events     json.RawMessage `json:"events"`
	QuickNotes json.RawMessage `json:"quickNotes"`
	DarkMode   json.RawMessage `json:"darkMode"`
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// readRaw returns the stored bytes for key, or nil when the key is absent.
func (p *persistence) readRaw(key string) []byte {
	if !p.d.Has(key) {
		return nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %s\n", key, err)
		return nil
	}
	return val
}

// decode hydrates one collection, reporting whether the document parsed. A
// corrupt document reports to stderr and returns false; Unmarshal may have
// partially filled target by then, so callers must discard it and fall back
// to the empty value, leaving the remaining keys untouched.
func (p *persistence) decode(key string, target any) bool {
	val := p.readRaw(key)
	if val == nil {
		return true
	}
	if err := json.Unmarshal(val, target); err != nil {
		fmt.Fprintf(os.Stderr, "store: parse %s: %s\n", key, err)
		return false
	}
	return true
}

func (p *persistence) write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Tasks() []model.Task {
	tasks := []model.Task{}
	if !p.decode(KeyTasks, &tasks) {
		return []model.Task{}
	}
	return tasks
}

func (p *persistence) SaveTasks(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return p.write(KeyTasks, tasks)
}

func (p *persistence) Notes() []model.Note {
	notes := []model.Note{}
	if !p.decode(KeyNotes, &notes) {
		return []model.Note{}
	}
	return notes
}

func (p *persistence) SaveNotes(notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}
	return p.write(KeyNotes, notes)
}

func (p *persistence) Events() []model.CalendarEvent {
	events := []model.CalendarEvent{}
	if !p.decode(KeyEvents, &events) {
		return []model.CalendarEvent{}
	}
	return events
}

func (p *persistence) SaveEvents(events []model.CalendarEvent) error {
	if events == nil {
		events = []model.CalendarEvent{}
	}
	return p.write(KeyEvents, events)
}

func (p *persistence) QuickNotes() []model.QuickNote {
	notes := []model.QuickNote{}
	if !p.decode(KeyQuickNotes, &notes) {
		return []model.QuickNote{}
	}
	return notes
}

func (p *persistence) SaveQuickNotes(notes []model.QuickNote) error {
	if notes == nil {
		notes = []model.QuickNote{}
	}
	return p.write(KeyQuickNotes, notes)
}

func (p *persistence) DarkMode() bool {
	var on bool
	if !p.decode(KeyDarkMode, &on) {
		return false
	}
	return on
}

func (p *persistence) SetDarkMode(on bool) error {
	return p.write(KeyDarkMode, on)
}

func (p *persistence) Snapshot() Snapshot {
	return Snapshot{
		Tasks:      p.readRaw(KeyTasks),
		Notes:      p.readRaw(KeyNotes),
		Events:     p.readRaw(KeyEvents),
		QuickNotes: p.readRaw(KeyQuickNotes),
		DarkMode:   p.readRaw(KeyDarkMode),
	}
}

func (p *persistence) Clear() error {
	if err := p.d.EraseAll(); err != nil {
		return fmt.Errorf("store: clear: %w", err)
	}
	return nil
}
