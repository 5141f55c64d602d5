// ABOUTME: Macro calculator: Mifflin-St Jeor BMR, activity TDEE, goal calories, gram targets.
// ABOUTME: Pure functions; persistence of the last inputs lives in the tracker.
package macros

import (
	"math"

	"github.com/harperreed/fitness/internal/models"
)

const (
	cutDeficit  = 500
	bulkSurplus = 300

	proteinPerKg = 2.2
	fatPerKg     = 0.9

	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarb    = 4
)

// Result holds unrounded daily targets.
type Result struct {
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
}

// Rounded is Result rounded for display.
type Rounded struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
	CarbsG   int `json:"carbs_g"`
}

// Calculate validates in and computes daily targets.
func Calculate(in models.MacroPreset) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	bmr := 10*in.Weight + 6.25*float64(in.Height) - 5*float64(in.Age)
	if in.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	tdee := bmr * in.Activity

	calories := tdee
	switch in.Goal {
	case models.GoalCut:
		calories -= cutDeficit
	case models.GoalBulk:
		calories += bulkSurplus
	}

	protein := in.Weight * proteinPerKg
	fat := in.Weight * fatPerKg
	carbs := (calories - kcalPerGramProtein*protein - kcalPerGramFat*fat) / kcalPerGramCarb

	return Result{
		BMR:      bmr,
		TDEE:     tdee,
		Calories: calories,
		ProteinG: protein,
		FatG:     fat,
		CarbsG:   carbs,
	}, nil
}

// Rounded rounds each displayed target to the nearest integer.
func (r Result) Rounded() Rounded {
	return Rounded{
		Calories: int(math.Round(r.Calories)),
		ProteinG: int(math.Round(r.ProteinG)),
		FatG:     int(math.Round(r.FatG)),
		CarbsG:   int(math.Round(r.CarbsG)),
	}
}

// ParseInput converts raw form values into a validated preset.
func ParseInput(age, weight, height, gender, activity, goal string) (models.MacroPreset, error) {
	return models.ParseMacroPreset(age, weight, height, gender, activity, goal)
}
