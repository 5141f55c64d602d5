// ABOUTME: MacroPreset model: the last-used macro calculator inputs.
// ABOUTME: Defines the Gender and Goal enums used by the BMR formula.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Gender selects the BMR constant.
type Gender string

const (
	GenderMale  Gender = "male"
	GenderOther Gender = "other"
)

// ParseGender accepts "male", "other", and "female" (stored as other).
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale, nil
	case "other", "female", "f":
		return GenderOther, nil
	case "":
		return "", Invalid("gender", "gender is required")
	default:
		return "", Invalid("gender", "unknown gender %q (use male or other)", s)
	}
}

// UnmarshalText lets records written with "female" decode as GenderOther.
func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Goal adjusts calories relative to TDEE.
type Goal string

const (
	GoalCut      Goal = "cut"
	GoalBulk     Goal = "bulk"
	GoalMaintain Goal = "maintain"
)

// ParseGoal validates a goal name.
func ParseGoal(s string) (Goal, error) {
	switch g := Goal(strings.ToLower(strings.TrimSpace(s))); g {
	case GoalCut, GoalBulk, GoalMaintain:
		return g, nil
	case "":
		return "", Invalid("goal", "goal is required")
	default:
		return "", Invalid("goal", "unknown goal %q (use cut, bulk, or maintain)", s)
	}
}

// MacroPreset holds the anthropometric inputs of one calculation.
type MacroPreset struct {
	Age      int     `json:"age" yaml:"age"`
	Weight   float64 `json:"weight" yaml:"weight"`
	Height   int     `json:"height" yaml:"height"`
	Gender   Gender  `json:"gender" yaml:"gender"`
	Activity float64 `json:"activity" yaml:"activity"`
	Goal     Goal    `json:"goal" yaml:"goal"`
}

// Validate requires positive numbers and known enum values.
func (p MacroPreset) Validate() error {
	if p.Age <= 0 {
		return Invalid("age", "must be a positive integer")
	}
	if !isFinite(p.Weight) || p.Weight <= 0 {
		return Invalid("weight", "must be a positive number")
	}
	if p.Height <= 0 {
		return Invalid("height", "must be a positive integer")
	}
	if p.Gender != GenderMale && p.Gender != GenderOther {
		return Invalid("gender", "unknown gender %q", string(p.Gender))
	}
	if !isFinite(p.Activity) || p.Activity <= 0 {
		return Invalid("activity", "must be a positive multiplier")
	}
	if _, err := ParseGoal(string(p.Goal)); err != nil {
		return err
	}
	return nil
}

// ParseMacroPreset converts raw form values into a preset.
func ParseMacroPreset(age, weight, height, gender, activity, goal string) (MacroPreset, error) {
	var p MacroPreset
	var err error
	if p.Age, err = strconv.Atoi(strings.TrimSpace(age)); err != nil {
		return MacroPreset{}, Invalid("age", "%q is not an integer", age)
	}
	if p.Weight, err = strconv.ParseFloat(strings.TrimSpace(weight), 64); err != nil || !isFinite(p.Weight) {
		return MacroPreset{}, Invalid("weight", "%q is not a number", weight)
	}
	if p.Height, err = strconv.Atoi(strings.TrimSpace(height)); err != nil {
		return MacroPreset{}, Invalid("height", "%q is not an integer", height)
	}
	if p.Gender, err = ParseGender(gender); err != nil {
		return MacroPreset{}, err
	}
	if p.Activity, err = strconv.ParseFloat(strings.TrimSpace(activity), 64); err != nil || !isFinite(p.Activity) {
		return MacroPreset{}, Invalid("activity", "%q is not a number", activity)
	}
	if p.Goal, err = ParseGoal(goal); err != nil {
		return MacroPreset{}, err
	}
	return p, p.Validate()
}

// isFinite rejects NaN and both infinities, which compare false against any bound.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
