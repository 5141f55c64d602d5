// ABOUTME: Tests for the macro formula.
// ABOUTME: Uses the reference 80kg/180cm/30y male maintenance example.
package macros

import (
	"math"
	"testing"

	"github.com/harperreed/fitness/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reference() models.MacroPreset {
	return models.MacroPreset{
		Age:      30,
		Weight:   80,
		Height:   180,
		Gender:   models.GenderMale,
		Activity: 1.55,
		Goal:     models.GoalMaintain,
	}
}

func TestCalculateReferenceMaintain(t *testing.T) {
	r, err := Calculate(reference())
	require.NoError(t, err)

	assert.InDelta(t, 1780, r.BMR, 0.001)
	assert.InDelta(t, 2759, r.TDEE, 0.001)
	assert.InDelta(t, 2759, r.Calories, 0.001)
	assert.InDelta(t, 176, r.ProteinG, 0.001)
	assert.InDelta(t, 72, r.FatG, 0.001)
	assert.InDelta(t, 351.75, r.CarbsG, 0.001)

	rounded := r.Rounded()
	assert.Equal(t, 2759, rounded.Calories)
	assert.Equal(t, 176, rounded.ProteinG)
	assert.Equal(t, 72, rounded.FatG)
	assert.Equal(t, 352, rounded.CarbsG)
}

func TestCalculateGoals(t *testing.T) {
	maintain, err := Calculate(reference())
	require.NoError(t, err)

	cut := reference()
	cut.Goal = models.GoalCut
	rc, err := Calculate(cut)
	require.NoError(t, err)
	assert.InDelta(t, maintain.Calories-500, rc.Calories, 0.001)

	bulk := reference()
	bulk.Goal = models.GoalBulk
	rb, err := Calculate(bulk)
	require.NoError(t, err)
	assert.InDelta(t, maintain.Calories+300, rb.Calories, 0.001)

	assert.Equal(t, maintain.ProteinG, rc.ProteinG)
	assert.Equal(t, maintain.FatG, rb.FatG)
}

func TestCalculateOtherGender(t *testing.T) {
	in := reference()
	in.Gender = models.GenderOther

	r, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 1780-166, r.BMR, 0.001)
}

func TestCalculateRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.MacroPreset)
	}{
		{"zero age", func(p *models.MacroPreset) { p.Age = 0 }},
		{"negative weight", func(p *models.MacroPreset) { p.Weight = -1 }},
		{"missing height", func(p *models.MacroPreset) { p.Height = 0 }},
		{"unknown gender", func(p *models.MacroPreset) { p.Gender = "robot" }},
		{"zero activity", func(p *models.MacroPreset) { p.Activity = 0 }},
		{"NaN weight", func(p *models.MacroPreset) { p.Weight = math.NaN() }},
		{"infinite weight", func(p *models.MacroPreset) { p.Weight = math.Inf(1) }},
		{"NaN activity", func(p *models.MacroPreset) { p.Activity = math.NaN() }},
		{"infinite activity", func(p *models.MacroPreset) { p.Activity = math.Inf(1) }},
		{"unknown goal", func(p *models.MacroPreset) { p.Goal = "shred" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := reference()
			tt.mutate(&in)
			_, err := Calculate(in)
			assert.True(t, models.IsValidation(err), "got %v", err)
		})
	}
}

func TestParseInput(t *testing.T) {
	in, err := ParseInput("30", "80", "180", "male", "1.55", "maintain")
	require.NoError(t, err)
	assert.Equal(t, reference(), in)

	_, err = ParseInput("", "80", "180", "male", "1.55", "maintain")
	assert.Error(t, err)

	for _, bad := range []string{"nan", "NaN", "inf", "-Inf"} {
		_, err = ParseInput("30", bad, "180", "male", "1.55", "maintain")
		assert.True(t, models.IsValidation(err), "weight %q: got %v", bad, err)
		_, err = ParseInput("30", "80", "180", "male", bad, "maintain")
		assert.True(t, models.IsValidation(err), "activity %q: got %v", bad, err)
	}
}

func TestMacroEnergyBalance(t *testing.T) {
	for _, goal := range []models.Goal{models.GoalCut, models.GoalMaintain, models.GoalBulk} {
		in := reference()
		in.Goal = goal
		r, err := Calculate(in)
		require.NoError(t, err)

		kcal := r.ProteinG*4 + r.FatG*9 + r.CarbsG*4
		assert.InDelta(t, r.Calories, kcal, 0.001, "goal %s", goal)

		again, err := Calculate(in)
		require.NoError(t, err)
		assert.Equal(t, r, again)
	}
}
