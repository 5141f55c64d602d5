// ABOUTME: JournalEntry model and the append-only JournalLog collection.
// ABOUTME: Mood is required; notes are free text and may be empty.
package models

import (
	"fmt"
	"strings"
	"time"
)

// JournalEntry is one mood log.
type JournalEntry struct {
	ID    int64     `json:"id" yaml:"id"`
	Mood  string    `json:"mood" yaml:"mood"`
	Notes string    `json:"notes" yaml:"notes,omitempty"`
	Date  time.Time `json:"date" yaml:"date"`
}

// NewJournalEntry creates an entry stamped with at.
func NewJournalEntry(mood, notes string, at time.Time) JournalEntry {
	return JournalEntry{
		ID:    at.UnixMilli(),
		Mood:  strings.TrimSpace(mood),
		Notes: strings.TrimSpace(notes),
		Date:  at,
	}
}

// Validate requires a non-empty mood.
func (e JournalEntry) Validate() error {
	if strings.TrimSpace(e.Mood) == "" {
		return Invalid("mood", "please select a mood")
	}
	return nil
}

// JournalLog is the persisted sequence of journal entries in insertion order.
type JournalLog []JournalEntry

// Validate checks every entry and id uniqueness.
func (l JournalLog) Validate() error {
	seen := make(map[int64]struct{}, len(l))
	for i, e := range l {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return Invalid("id", "duplicate id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

// NextID mirrors WorkoutLog.NextID.
func (l JournalLog) NextID(candidate int64) int64 {
	return nextID(candidate, len(l), func(i int) int64 { return l[i].ID })
}

// Without returns the log minus the entry with id, and whether it was present.
func (l JournalLog) Without(id int64) (JournalLog, bool) {
	out := make(JournalLog, 0, len(l))
	found := false
	for _, e := range l {
		if e.ID == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}

// Contains reports whether an entry with id exists.
func (l JournalLog) Contains(id int64) bool {
	for _, e := range l {
		if e.ID == id {
			return true
		}
	}
	return false
}
