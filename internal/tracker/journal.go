// ABOUTME: Mood journal operations: append, idempotent delete, newest-first view.
package tracker

import (
	"fmt"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/store"
)

// DefaultRecentLimit is how many journal entries list views show.
const DefaultRecentLimit = 10

// Journal manages the "journals" sequence.
type Journal struct {
	t *Tracker
}

// AddEntry appends a mood entry. Mood is required.
func (j *Journal) AddEntry(mood, notes string) (models.JournalEntry, error) {
	entry := models.NewJournalEntry(mood, notes, j.t.Now().UTC())
	if err := entry.Validate(); err != nil {
		return models.JournalEntry{}, err
	}
	err := store.Update(j.t.store, KeyJournals, func(log *models.JournalLog) error {
		entry.ID = log.NextID(entry.ID)
		*log = append(*log, entry)
		return nil
	})
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("add journal entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes the entry with id; unknown ids are a no-op.
func (j *Journal) DeleteEntry(id int64) (bool, error) {
	removed := false
	err := store.UpdateIfChanged(j.t.store, KeyJournals, func(log *models.JournalLog) error {
		var found bool
		*log, found = log.Without(id)
		if !found {
			return store.ErrNoChange
		}
		removed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete journal entry: %w", err)
	}
	return removed, nil
}

// Entries returns every entry in insertion order.
func (j *Journal) Entries() (models.JournalLog, error) {
	var log models.JournalLog
	if _, err := j.t.store.Read(KeyJournals, &log); err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	return log, nil
}

// RecentEntries returns up to limit entries, newest first. limit <= 0 means all.
func (j *Journal) RecentEntries(limit int) ([]models.JournalEntry, error) {
	log, err := j.Entries()
	if err != nil {
		return nil, err
	}
	n := len(log)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.JournalEntry, 0, n)
	for i := len(log) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, log[i])
	}
	return out, nil
}
