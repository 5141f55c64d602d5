// ABOUTME: Workout log operations: append, idempotent delete, and date grouping.
// ABOUTME: Ids come from the clock and are bumped to stay unique within the log.
package tracker

import (
	"fmt"
	"iter"
	"slices"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/store"
	"github.com/sirupsen/logrus"
)

// WorkoutLog manages the "workouts" sequence.
type WorkoutLog struct {
	t *Tracker
}

// AddEntry validates and appends a new entry, returning it with its final id.
func (w *WorkoutLog) AddEntry(name string, sets, reps int, weight float64) (models.WorkoutEntry, error) {
	entry := models.NewWorkoutEntry(name, sets, reps, weight, w.t.Now().UTC())
	if err := entry.Validate(); err != nil {
		return models.WorkoutEntry{}, err
	}
	err := store.Update(w.t.store, KeyWorkouts, func(log *models.WorkoutLog) error {
		entry.ID = log.NextID(entry.ID)
		*log = append(*log, entry)
		return nil
	})
	if err != nil {
		return models.WorkoutEntry{}, fmt.Errorf("add workout: %w", err)
	}
	w.t.log.WithFields(logrus.Fields{"id": entry.ID, "name": entry.Name}).Info("workout logged")
	return entry, nil
}

// DeleteEntry removes the entry with id. Unknown ids are a no-op; the result
// reports whether anything was removed.
func (w *WorkoutLog) DeleteEntry(id int64) (bool, error) {
	removed := false
	err := store.UpdateIfChanged(w.t.store, KeyWorkouts, func(log *models.WorkoutLog) error {
		var found bool
		*log, found = log.Without(id)
		if !found {
			return store.ErrNoChange
		}
		removed = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("delete workout: %w", err)
	}
	return removed, nil
}

// Entries returns every entry in insertion order.
func (w *WorkoutLog) Entries() (models.WorkoutLog, error) {
	var log models.WorkoutLog
	if _, err := w.t.store.Read(KeyWorkouts, &log); err != nil {
		return nil, fmt.Errorf("read workouts: %w", err)
	}
	return log, nil
}

// GroupByDate yields (YYYY-MM-DD, entries) with the most recent calendar day
// first. Entries within a day keep insertion order. The sequence iterates a
// snapshot taken at call time.
func (w *WorkoutLog) GroupByDate() (iter.Seq2[string, []models.WorkoutEntry], error) {
	log, err := w.Entries()
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]models.WorkoutEntry)
	for _, e := range log {
		day := w.t.dayKey(e.Date)
		groups[day] = append(groups[day], e)
	}
	days := make([]string, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	slices.Sort(days)
	slices.Reverse(days)

	return func(yield func(string, []models.WorkoutEntry) bool) {
		for _, day := range days {
			if !yield(day, slices.Clone(groups[day])) {
				return
			}
		}
	}, nil
}

// On returns the entries logged on day (YYYY-MM-DD, local time).
func (w *WorkoutLog) On(day string) ([]models.WorkoutEntry, error) {
	log, err := w.Entries()
	if err != nil {
		return nil, err
	}
	var out []models.WorkoutEntry
	for _, e := range log {
		if w.t.dayKey(e.Date) == day {
			out = append(out, e)
		}
	}
	return out, nil
}
