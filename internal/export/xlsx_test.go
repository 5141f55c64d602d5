// ABOUTME: Tests for the XLSX export by reading the workbook back.
package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleData() *tracker.ExportData {
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	diet := tracker.RegionalDiet()
	return &tracker.ExportData{
		Version:    tracker.ExportVersion,
		ExportedAt: at,
		Tool:       "fitness",
		Workouts: models.WorkoutLog{
			models.NewWorkoutEntry("Squat", 4, 8, 100, at),
			models.NewWorkoutEntry("Plank", 3, 1, 0, at.Add(time.Minute)),
		},
		Routine: tracker.SuggestedRoutine(),
		Diet:    &diet,
		Journal: models.JournalLog{models.NewJournalEntry("🙂", "good", at)},
		MacroPreset: &models.MacroPreset{
			Age: 30, Weight: 80, Height: 180,
			Gender: models.GenderMale, Activity: 1.55, Goal: models.GoalMaintain,
		},
	}
}

func readBack(t *testing.T, data *tracker.ExportData) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, data, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWriteXLSXSheets(t *testing.T) {
	f := readBack(t, sampleData())

	assert.Equal(t, []string{SheetWorkouts, SheetRoutine, SheetDiet, SheetJournal, SheetMacros}, f.GetSheetList())
}

func TestWriteXLSXWorkouts(t *testing.T) {
	f := readBack(t, sampleData())

	rows, err := f.GetRows(SheetWorkouts)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Exercise", "Sets", "Reps", "Weight", "Volume"}, rows[0])
	assert.Equal(t, "2025-03-10 09:00", rows[1][0])
	assert.Equal(t, "Squat", rows[1][1])
	assert.Equal(t, "3200", rows[1][5])
}

func TestWriteXLSXRoutineRestDay(t *testing.T) {
	f := readBack(t, sampleData())

	rows, err := f.GetRows(SheetRoutine)
	require.NoError(t, err)
	last := rows[len(rows)-1]
	assert.Equal(t, []string{"Sunday", "Rest day"}, last)
	assert.Len(t, rows, 1+6*5+1)
}

func TestWriteXLSXDietNotes(t *testing.T) {
	f := readBack(t, sampleData())

	rows, err := f.GetRows(SheetDiet)
	require.NoError(t, err)
	assert.Equal(t, "Monday", rows[1][0])
	notes := rows[len(rows)-1]
	assert.Equal(t, "Notes", notes[0])
	assert.Contains(t, notes[1], "Hydration")
}

func TestWriteXLSXMacros(t *testing.T) {
	f := readBack(t, sampleData())

	rows, err := f.GetRows(SheetMacros)
	require.NoError(t, err)
	got := map[string]string{}
	for _, r := range rows[1:] {
		got[r[0]] = r[1]
	}
	assert.Equal(t, "2759", got["Calories"])
	assert.Equal(t, "176", got["Protein (g)"])
}

func TestWriteXLSXEmpty(t *testing.T) {
	f := readBack(t, &tracker.ExportData{Version: tracker.ExportVersion, Tool: "fitness"})

	rows, err := f.GetRows(SheetMacros)
	require.NoError(t, err)
	assert.Equal(t, "No calculation saved", rows[1][0])

	rows, err = f.GetRows(SheetDiet)
	require.NoError(t, err)
	assert.Equal(t, models.Placeholder, rows[1][1])
}
