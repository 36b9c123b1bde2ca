// Package app holds the entity managers for tasks, notes, calendar events,
// and quick notes. The Service hydrates every collection from the store once
// at construction, keeps the canonical in-memory state, and rewrites the
// owning collection after each mutation.
package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"daybook.dev/daybook/pkg/model"
	"daybook.dev/daybook/pkg/store"
)

// Service provides high-level operations over the daybook collections so the
// TUI and CLI can share logic.
type Service struct {
	p store.Persistence

	tasks      []model.Task
	notes      []model.Note
	events     []model.CalendarEvent
	quickNotes []model.QuickNote
	darkMode   bool

	// NewID and Now are injectable for tests. NewID must be globally unique
	// across the process; all collections share the one generator.
	NewID func() string
	Now   func() model.Timestamp
}

// NewService hydrates a Service from persistence.
func NewService(p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return &Service{
		p:          p,
		tasks:      p.Tasks(),
		notes:      p.Notes(),
		events:     p.Events(),
		quickNotes: p.QuickNotes(),
		darkMode:   p.DarkMode(),
		NewID:      uuid.NewString,
		Now:        model.Now,
	}, nil
}

// Persistence exposes the underlying store (snapshot export, watch).
func (s *Service) Persistence() store.Persistence { return s.p }

// Watch streams external store changes until ctx is cancelled.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.p.Watch(ctx)
}

// Tasks returns the task collection in insertion order. Callers must not
// mutate the returned slice.
func (s *Service) Tasks() []model.Task { return s.tasks }

// Notes returns the note collection in insertion order.
func (s *Service) Notes() []model.Note { return s.notes }

// Events returns the calendar event collection in insertion order.
func (s *Service) Events() []model.CalendarEvent { return s.events }

// QuickNotes returns quick notes in display order: starred first, newest
// first.
func (s *Service) QuickNotes() []model.QuickNote {
	return model.SortQuickNotes(s.quickNotes)
}

// DarkMode reports the persisted theme flag.
func (s *Service) DarkMode() bool { return s.darkMode }

// SetDarkMode persists the theme flag.
func (s *Service) SetDarkMode(on bool) error {
	s.darkMode = on
	return s.p.SetDarkMode(on)
}

// AddTask assigns identity to the task and appends it. Completed always
// starts false and tags are de-duplicated.
func (s *Service) AddTask(t model.Task) (model.Task, error) {
	t.ID = s.NewID()
	t.Completed = false
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	t.Tags = model.NormalizeTags(t.Tags)
	s.tasks = append(s.tasks, t)
	return t, s.p.SaveTasks(s.tasks)
}

// EditTask replaces the task with the same identity. Unknown identities are
// a silent no-op.
func (s *Service) EditTask(t model.Task) error {
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			t.Tags = model.NormalizeTags(t.Tags)
			s.tasks[i] = t
			return s.p.SaveTasks(s.tasks)
		}
	}
	return nil
}

// DeleteTask removes the task by identity; absent identities are a no-op.
func (s *Service) DeleteTask(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.p.SaveTasks(s.tasks)
		}
	}
	return nil
}

// ToggleTask flips the completed flag only, leaving every other field as is.
func (s *Service) ToggleTask(id string) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return s.p.SaveTasks(s.tasks)
		}
	}
	return nil
}

// AddNote assigns identity and stamps both CreatedAt and UpdatedAt to now.
func (s *Service) AddNote(n model.Note) (model.Note, error) {
	n.ID = s.NewID()
	now := s.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	n.Tags = model.NormalizeTags(n.Tags)
	s.notes = append(s.notes, n)
	return n, s.p.SaveNotes(s.notes)
}

// EditNote replaces the note with the same identity, preserving the stored
// CreatedAt and forcing UpdatedAt to now regardless of the caller's value.
func (s *Service) EditNote(n model.Note) error {
	for i := range s.notes {
		if s.notes[i].ID == n.ID {
			n.CreatedAt = s.notes[i].CreatedAt
			n.UpdatedAt = s.Now()
			n.Tags = model.NormalizeTags(n.Tags)
			s.notes[i] = n
			return s.p.SaveNotes(s.notes)
		}
	}
	return nil
}

// DeleteNote removes the note by identity; absent identities are a no-op.
func (s *Service) DeleteNote(id string) error {
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return s.p.SaveNotes(s.notes)
		}
	}
	return nil
}

// AddEvent assigns identity, normalizes the event, and appends it.
func (s *Service) AddEvent(e model.CalendarEvent) (model.CalendarEvent, error) {
	e.ID = s.NewID()
	e.Normalize()
	s.events = append(s.events, e)
	return e, s.p.SaveEvents(s.events)
}

// EditEvent replaces the event with the same identity after normalizing.
func (s *Service) EditEvent(e model.CalendarEvent) error {
	for i := range s.events {
		if s.events[i].ID == e.ID {
			e.Normalize()
			s.events[i] = e
			return s.p.SaveEvents(s.events)
		}
	}
	return nil
}

// DeleteEvent removes the event by identity; absent identities are a no-op.
func (s *Service) DeleteEvent(id string) error {
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return s.p.SaveEvents(s.events)
		}
	}
	return nil
}

// AddQuickNote prepends a quick note so the newest shows first.
func (s *Service) AddQuickNote(text string) (model.QuickNote, error) {
	n := model.QuickNote{
		ID:        s.NewID(),
		Text:      text,
		CreatedAt: s.Now(),
	}
	s.quickNotes = append([]model.QuickNote{n}, s.quickNotes...)
	return n, s.p.SaveQuickNotes(s.quickNotes)
}

// ToggleQuickNoteStar flips the starred flag for the quick note.
func (s *Service) ToggleQuickNoteStar(id string) error {
	for i := range s.quickNotes {
		if s.quickNotes[i].ID == id {
			s.quickNotes[i].Starred = !s.quickNotes[i].Starred
			return s.p.SaveQuickNotes(s.quickNotes)
		}
	}
	return nil
}

// DeleteQuickNote removes the quick note by identity.
func (s *Service) DeleteQuickNote(id string) error {
	for i := range s.quickNotes {
		if s.quickNotes[i].ID == id {
			s.quickNotes = append(s.quickNotes[:i], s.quickNotes[i+1:]...)
			return s.p.SaveQuickNotes(s.quickNotes)
		}
	}
	return nil
}

// Reload re-hydrates every collection from the store. Used when the watcher
// reports an external change.
func (s *Service) Reload() {
	s.tasks = s.p.Tasks()
	s.notes = s.p.Notes()
	s.events = s.p.Events()
	s.quickNotes = s.p.QuickNotes()
	s.darkMode = s.p.DarkMode()
}

// ClearAll deletes every persisted entry and resets in-memory state.
func (s *Service) ClearAll() error {
	if err := s.p.Clear(); err != nil {
		return err
	}
	s.tasks = []model.Task{}
	s.notes = []model.Note{}
	s.events = []model.CalendarEvent{}
	s.quickNotes = []model.QuickNote{}
	s.darkMode = false
	return nil
}

// TaskByID returns the task and whether it exists.
func (s *Service) TaskByID(id string) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}
