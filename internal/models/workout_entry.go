// ABOUTME: WorkoutEntry model and the append-only WorkoutLog collection.
// ABOUTME: Entries are identified by a clock-derived integer id unique within the log.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WorkoutEntry is one logged exercise performance.
type WorkoutEntry struct {
	ID     int64     `json:"id" yaml:"id"`
	Name   string    `json:"name" yaml:"name"`
	Sets   int       `json:"sets" yaml:"sets"`
	Reps   int       `json:"reps" yaml:"reps"`
	Weight float64   `json:"weight" yaml:"weight"`
	Date   time.Time `json:"date" yaml:"date"`
}

// NewWorkoutEntry creates an entry stamped with at. The id is the Unix
// millisecond reading of at; the log may bump it to keep ids unique.
func NewWorkoutEntry(name string, sets, reps int, weight float64, at time.Time) WorkoutEntry {
	return WorkoutEntry{
		ID:     at.UnixMilli(),
		Name:   strings.TrimSpace(name),
		Sets:   sets,
		Reps:   reps,
		Weight: weight,
		Date:   at,
	}
}

// Volume is weight x sets x reps.
func (e WorkoutEntry) Volume() float64 {
	return e.Weight * float64(e.Sets) * float64(e.Reps)
}

// Validate checks the field invariants of a single entry.
func (e WorkoutEntry) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return Invalid("name", "exercise name is required")
	}
	if e.Sets <= 0 {
		return Invalid("sets", "must be a positive integer, got %d", e.Sets)
	}
	if e.Reps <= 0 {
		return Invalid("reps", "must be a positive integer, got %d", e.Reps)
	}
	if !isFinite(e.Weight) || e.Weight < 0 {
		return Invalid("weight", "must be a number >= 0, got %g", e.Weight)
	}
	return nil
}

// ParseWorkoutInput converts raw form values into a validated entry shape.
// Sets and reps must parse as integers; an empty weight means bodyweight (0).
func ParseWorkoutInput(name, sets, reps, weight string) (string, int, int, float64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", 0, 0, 0, Invalid("name", "exercise name is required")
	}
	s, err := strconv.Atoi(strings.TrimSpace(sets))
	if err != nil {
		return "", 0, 0, 0, Invalid("sets", "%q is not an integer", sets)
	}
	r, err := strconv.Atoi(strings.TrimSpace(reps))
	if err != nil {
		return "", 0, 0, 0, Invalid("reps", "%q is not an integer", reps)
	}
	var w float64
	if strings.TrimSpace(weight) != "" {
		w, err = strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil || !isFinite(w) {
			return "", 0, 0, 0, Invalid("weight", "%q is not a number", weight)
		}
	}
	return name, s, r, w, nil
}

// WorkoutLog is the persisted sequence of workout entries in insertion order.
type WorkoutLog []WorkoutEntry

// Validate checks every entry and id uniqueness.
func (l WorkoutLog) Validate() error {
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

// NextID returns candidate if it is greater than every id in the log,
// otherwise one past the largest id.
func (l WorkoutLog) NextID(candidate int64) int64 {
	return nextID(candidate, len(l), func(i int) int64 { return l[i].ID })
}

// Without returns the log minus the entry with id, and whether it was present.
func (l WorkoutLog) Without(id int64) (WorkoutLog, bool) {
	out := make(WorkoutLog, 0, len(l))
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
func (l WorkoutLog) Contains(id int64) bool {
	for _, e := range l {
		if e.ID == id {
			return true
		}
	}
	return false
}

func nextID(candidate int64, n int, idAt func(int) int64) int64 {
	var max int64
	for i := 0; i < n; i++ {
		if id := idAt(i); id > max {
			max = id
		}
	}
	if candidate > max {
		return candidate
	}
	return max + 1
}
