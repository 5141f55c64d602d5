// ABOUTME: Weekly routine planner: whole-plan presets, clearing, and per-day appends.
// ABOUTME: Destructive changes require a confirmation from the caller.
package tracker

import (
	"fmt"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/store"
)

const (
	promptApplyRoutine = "Apply the suggested weekly routine? This will overwrite any saved routine."
	promptClearRoutine = "Clear saved routine? This will remove all exercises from the routine planner."
)

// RoutinePlanner manages the "routines" record.
type RoutinePlanner struct {
	t *Tracker
}

// Plan returns the saved plan, or an empty plan when none exists.
func (r *RoutinePlanner) Plan() (models.RoutinePlan, error) {
	plan := models.RoutinePlan{}
	if _, err := r.t.store.Read(KeyRoutines, &plan); err != nil {
		return nil, fmt.Errorf("read routine: %w", err)
	}
	if plan == nil {
		plan = models.RoutinePlan{}
	}
	return plan, nil
}

// ApplyPreset replaces the whole plan with plan once confirmed. A declined
// confirmation writes nothing and reports false.
func (r *RoutinePlanner) ApplyPreset(plan models.RoutinePlan, confirm Confirm) (bool, error) {
	if err := plan.Validate(); err != nil {
		return false, err
	}
	if !confirm.ask(promptApplyRoutine) {
		return false, nil
	}
	if err := r.t.store.Write(KeyRoutines, plan.Clone()); err != nil {
		return false, fmt.Errorf("apply routine: %w", err)
	}
	return true, nil
}

// ApplySuggested applies the built-in fat-loss split.
func (r *RoutinePlanner) ApplySuggested(confirm Confirm) (bool, error) {
	return r.ApplyPreset(SuggestedRoutine(), confirm)
}

// Clear replaces the plan with an empty one once confirmed.
func (r *RoutinePlanner) Clear(confirm Confirm) (bool, error) {
	if !confirm.ask(promptClearRoutine) {
		return false, nil
	}
	if err := r.t.store.Write(KeyRoutines, models.RoutinePlan{}); err != nil {
		return false, fmt.Errorf("clear routine: %w", err)
	}
	return true, nil
}

// AddExerciseToDay appends an exercise to day and returns the updated plan.
func (r *RoutinePlanner) AddExerciseToDay(day models.Weekday, name string, sets, reps int) (models.RoutinePlan, error) {
	if !day.IsValid() {
		return nil, models.Invalid("day", "unknown weekday %q", string(day))
	}
	ex := models.PlannedExercise{Name: name, Sets: sets, Reps: reps}
	if err := ex.Validate(); err != nil {
		return nil, err
	}

	var updated models.RoutinePlan
	err := store.Update(r.t.store, KeyRoutines, func(plan *models.RoutinePlan) error {
		if *plan == nil {
			*plan = models.RoutinePlan{}
		}
		(*plan)[day] = append((*plan)[day], ex)
		updated = plan.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add routine exercise: %w", err)
	}
	return updated, nil
}
