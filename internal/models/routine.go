// ABOUTME: RoutinePlan model: per-weekday ordered lists of planned exercises.
// ABOUTME: An absent or empty day is a rest day; exercises carry no identity.
package models

import (
	"fmt"
	"strings"
)

// PlannedExercise is one line of a day's routine.
type PlannedExercise struct {
	Name string `json:"name" yaml:"name"`
	Sets int    `json:"sets" yaml:"sets"`
	Reps int    `json:"reps" yaml:"reps"`
}

// Validate checks the name and positive sets/reps.
func (p PlannedExercise) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return Invalid("name", "exercise name is required")
	}
	if p.Sets <= 0 {
		return Invalid("sets", "must be a positive integer, got %d", p.Sets)
	}
	if p.Reps <= 0 {
		return Invalid("reps", "must be a positive integer, got %d", p.Reps)
	}
	return nil
}

// RoutinePlan maps weekdays to their planned exercises.
type RoutinePlan map[Weekday][]PlannedExercise

// Validate checks every key is a weekday and every exercise is well formed.
func (p RoutinePlan) Validate() error {
	for day, exercises := range p {
		if !day.IsValid() {
			return Invalid("day", "unknown weekday %q", string(day))
		}
		for i, ex := range exercises {
			if err := ex.Validate(); err != nil {
				return fmt.Errorf("%s exercise %d: %w", day, i, err)
			}
		}
	}
	return nil
}

// Day returns the exercises planned for d (nil on a rest day).
func (p RoutinePlan) Day(d Weekday) []PlannedExercise {
	return p[d]
}

// IsRestDay reports whether nothing is planned for d.
func (p RoutinePlan) IsRestDay(d Weekday) bool {
	return len(p[d]) == 0
}

// Clone returns a deep copy.
func (p RoutinePlan) Clone() RoutinePlan {
	out := make(RoutinePlan, len(p))
	for day, exercises := range p {
		out[day] = append([]PlannedExercise(nil), exercises...)
	}
	return out
}
