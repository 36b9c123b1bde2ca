package model

import "sort"

// Note is a long-form text entry. CreatedAt is set once at creation and never
// changes; UpdatedAt is refreshed on every edit and is always >= CreatedAt.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
	Tags      []string  `json:"tags"`
	Category  string    `json:"category,omitempty"`
}

// QuickNote is a one-line scratch note kept in its own collection. Starred
// notes sort ahead of everything else, newest first within each group.
type QuickNote struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt Timestamp `json:"createdAt"`
	Starred   bool      `json:"isStarred"`
}

// SortQuickNotes returns the display order: starred first, then newest first.
// The input is not modified.
func SortQuickNotes(notes []QuickNote) []QuickNote {
	out := make([]QuickNote, len(notes))
	copy(out, notes)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Starred != out[j].Starred {
			return out[i].Starred
		}
		return out[i].CreatedAt.After(out[j].CreatedAt.Time)
	})
	return out
}
