// ABOUTME: DietPlan model: per-weekday meals plus an optional notes block.
// ABOUTME: Serialized flat, with weekday keys and a reserved "_notes" key.
package models

import (
	"encoding/json"
	"fmt"
)

// Placeholder is shown for a meal slot that has no value.
const Placeholder = "—"

// notesKey is the reserved key holding free-text notes in the flat encoding.
const notesKey = "_notes"

// Meals is one day of the diet plan.
type Meals struct {
	Breakfast string `json:"breakfast,omitempty" yaml:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty" yaml:"lunch,omitempty"`
	Snack     string `json:"snack,omitempty" yaml:"snack,omitempty"`
	Dinner    string `json:"dinner,omitempty" yaml:"dinner,omitempty"`
	BeforeBed string `json:"beforeBed,omitempty" yaml:"beforeBed,omitempty"`
}

// WithPlaceholders fills empty slots with Placeholder.
func (m Meals) WithPlaceholders() Meals {
	fill := func(s string) string {
		if s == "" {
			return Placeholder
		}
		return s
	}
	return Meals{
		Breakfast: fill(m.Breakfast),
		Lunch:     fill(m.Lunch),
		Snack:     fill(m.Snack),
		Dinner:    fill(m.Dinner),
		BeforeBed: fill(m.BeforeBed),
	}
}

// DietPlan is the whole diet record. It is always replaced as a unit.
type DietPlan struct {
	Days  map[Weekday]Meals
	Notes string
}

// IsEmpty reports whether the plan has no days and no notes.
func (p DietPlan) IsEmpty() bool {
	return len(p.Days) == 0 && p.Notes == ""
}

// Validate checks every key is a weekday.
func (p DietPlan) Validate() error {
	for day := range p.Days {
		if !day.IsValid() {
			return Invalid("day", "unknown weekday %q", string(day))
		}
	}
	return nil
}

// Clone returns a deep copy.
func (p DietPlan) Clone() DietPlan {
	out := DietPlan{Notes: p.Notes}
	if p.Days != nil {
		out.Days = make(map[Weekday]Meals, len(p.Days))
		for d, m := range p.Days {
			out.Days[d] = m
		}
	}
	return out
}

func (p DietPlan) flat() map[string]any {
	out := make(map[string]any, len(p.Days)+1)
	for day, meals := range p.Days {
		out[string(day)] = meals
	}
	if p.Notes != "" {
		out[notesKey] = p.Notes
	}
	return out
}

// MarshalJSON writes {"Monday": {...}, ..., "_notes": "..."}.
func (p DietPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.flat())
}

// UnmarshalJSON reads the flat encoding. Unknown keys are rejected.
func (p *DietPlan) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	plan := DietPlan{}
	for key, value := range raw {
		if key == notesKey {
			if err := json.Unmarshal(value, &plan.Notes); err != nil {
				return fmt.Errorf("decode %s: %w", notesKey, err)
			}
			continue
		}
		day := Weekday(key)
		if !day.IsValid() {
			return fmt.Errorf("unknown diet plan key %q", key)
		}
		var meals Meals
		if err := json.Unmarshal(value, &meals); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		if plan.Days == nil {
			plan.Days = make(map[Weekday]Meals)
		}
		plan.Days[day] = meals
	}
	*p = plan
	return nil
}

// MarshalYAML uses the same flat layout as JSON.
func (p DietPlan) MarshalYAML() (interface{}, error) {
	return p.flat(), nil
}
