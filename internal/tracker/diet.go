// ABOUTME: Diet planner: named presets, clearing, and per-day lookup with placeholders.
package tracker

import (
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/models"
)

const promptClearDiet = "Clear saved diet plan?"

// DietPlanner manages the "dietPlan" record.
type DietPlanner struct {
	t *Tracker
}

// Plan returns the saved plan (empty when absent).
func (d *DietPlanner) Plan() (models.DietPlan, error) {
	var plan models.DietPlan
	if _, err := d.t.store.Read(KeyDietPlan, &plan); err != nil {
		return models.DietPlan{}, fmt.Errorf("read diet plan: %w", err)
	}
	return plan, nil
}

// ApplyPreset replaces the plan with the named preset once confirmed.
func (d *DietPlanner) ApplyPreset(name string, confirm Confirm) (bool, error) {
	preset, ok := DietPreset(name)
	if !ok {
		return false, models.Invalid("preset", "unknown diet preset %q (use %s)", name, strings.Join(DietPresetNames(), " or "))
	}
	prompt := fmt.Sprintf("Apply the %s diet plan? This will overwrite any saved diet.", strings.ToLower(strings.TrimSpace(name)))
	if !confirm.ask(prompt) {
		return false, nil
	}
	if err := d.t.store.Write(KeyDietPlan, preset); err != nil {
		return false, fmt.Errorf("apply diet plan: %w", err)
	}
	return true, nil
}

// Clear replaces the plan with an empty one once confirmed.
func (d *DietPlanner) Clear(confirm Confirm) (bool, error) {
	if !confirm.ask(promptClearDiet) {
		return false, nil
	}
	if err := d.t.store.Write(KeyDietPlan, models.DietPlan{}); err != nil {
		return false, fmt.Errorf("clear diet plan: %w", err)
	}
	return true, nil
}

// GetDay returns the meals for day with empty slots filled by placeholders.
func (d *DietPlanner) GetDay(day models.Weekday) (models.Meals, error) {
	if !day.IsValid() {
		return models.Meals{}, models.Invalid("day", "unknown weekday %q", string(day))
	}
	plan, err := d.Plan()
	if err != nil {
		return models.Meals{}, err
	}
	return plan.Days[day].WithPlaceholders(), nil
}
