package model

import (
	"fmt"
	"strings"
)

// Priority orders tasks by urgency.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts user input to a Priority, defaulting empty input to
// medium.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	switch p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, nil
	}
	return PriorityMedium, fmt.Errorf("model: unknown priority %q", raw)
}

// Task is a dated todo item.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        Timestamp `json:"date"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags"`
}

// NormalizeTags trims, drops empties, and removes duplicates while keeping
// first-seen order for display.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
