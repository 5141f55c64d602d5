// ABOUTME: XLSX workbook export of every fitness record, one sheet per record type.
// ABOUTME: Built with excelize; headers are bold on a filled row.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/harperreed/fitness/internal/macros"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/tracker"
	"github.com/xuri/excelize/v2"
)

// Sheet names in workbook order.
const (
	SheetWorkouts = "Workouts"
	SheetRoutine  = "Routine"
	SheetDiet     = "Diet"
	SheetJournal  = "Journal"
	SheetMacros   = "Macros"
)

const dateTimeLayout = "2006-01-02 15:04"

type sheetWriter struct {
	f      *excelize.File
	header int
}

// WriteXLSX renders data as a workbook to w. Timestamps are shown in loc.
func WriteXLSX(w io.Writer, data *tracker.ExportData, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	sw := &sheetWriter{f: f, header: header}

	if err := f.SetSheetName("Sheet1", SheetWorkouts); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{SheetRoutine, SheetDiet, SheetJournal, SheetMacros} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	if err := sw.workouts(data.Workouts, loc); err != nil {
		return err
	}
	if err := sw.routine(data.Routine); err != nil {
		return err
	}
	if err := sw.diet(data.Diet); err != nil {
		return err
	}
	if err := sw.journal(data.Journal, loc); err != nil {
		return err
	}
	if err := sw.macros(data.MacroPreset); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (s *sheetWriter) row(sheet string, n int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := s.f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, n, err)
	}
	return nil
}

func (s *sheetWriter) headerRow(sheet string, widths []float64, titles ...interface{}) error {
	if err := s.row(sheet, 1, titles...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		return err
	}
	if err := s.f.SetCellStyle(sheet, "A1", last, s.header); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := s.f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("size %s column %s: %w", sheet, col, err)
		}
	}
	return nil
}

func (s *sheetWriter) workouts(log models.WorkoutLog, loc *time.Location) error {
	if err := s.headerRow(SheetWorkouts, []float64{18, 24, 8, 8, 10, 12},
		"Date", "Exercise", "Sets", "Reps", "Weight", "Volume"); err != nil {
		return err
	}
	for i, e := range log {
		if err := s.row(SheetWorkouts, i+2,
			e.Date.In(loc).Format(dateTimeLayout), e.Name, e.Sets, e.Reps, e.Weight, e.Volume()); err != nil {
			return err
		}
	}
	return nil
}

func (s *sheetWriter) routine(plan models.RoutinePlan) error {
	if err := s.headerRow(SheetRoutine, []float64{12, 28, 8, 8},
		"Day", "Exercise", "Sets", "Reps"); err != nil {
		return err
	}
	n := 2
	for _, day := range models.Weekdays {
		exercises := plan.Day(day)
		if len(exercises) == 0 {
			if err := s.row(SheetRoutine, n, string(day), "Rest day"); err != nil {
				return err
			}
			n++
			continue
		}
		for _, ex := range exercises {
			if err := s.row(SheetRoutine, n, string(day), ex.Name, ex.Sets, ex.Reps); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

func (s *sheetWriter) diet(plan *models.DietPlan) error {
	if err := s.headerRow(SheetDiet, []float64{12, 36, 36, 28, 36, 28},
		"Day", "Breakfast", "Lunch", "Snack", "Dinner", "Before Bed"); err != nil {
		return err
	}
	var p models.DietPlan
	if plan != nil {
		p = *plan
	}
	for i, day := range models.Weekdays {
		m := p.Days[day].WithPlaceholders()
		if err := s.row(SheetDiet, i+2, string(day), m.Breakfast, m.Lunch, m.Snack, m.Dinner, m.BeforeBed); err != nil {
			return err
		}
	}
	if p.Notes != "" {
		if err := s.row(SheetDiet, len(models.Weekdays)+3, "Notes", p.Notes); err != nil {
			return err
		}
	}
	return nil
}

func (s *sheetWriter) journal(log models.JournalLog, loc *time.Location) error {
	if err := s.headerRow(SheetJournal, []float64{18, 8, 60}, "Date", "Mood", "Notes"); err != nil {
		return err
	}
	for i, e := range log {
		if err := s.row(SheetJournal, i+2, e.Date.In(loc).Format(dateTimeLayout), e.Mood, e.Notes); err != nil {
			return err
		}
	}
	return nil
}

func (s *sheetWriter) macros(preset *models.MacroPreset) error {
	if err := s.headerRow(SheetMacros, []float64{16, 14}, "Field", "Value"); err != nil {
		return err
	}
	if preset == nil {
		return s.row(SheetMacros, 2, "No calculation saved")
	}
	rows := [][]interface{}{
		{"Age", preset.Age},
		{"Weight (kg)", preset.Weight},
		{"Height (cm)", preset.Height},
		{"Gender", string(preset.Gender)},
		{"Activity", preset.Activity},
		{"Goal", string(preset.Goal)},
	}
	if res, err := macros.Calculate(*preset); err == nil {
		r := res.Rounded()
		rows = append(rows,
			[]interface{}{"Calories", r.Calories},
			[]interface{}{"Protein (g)", r.ProteinG},
			[]interface{}{"Fat (g)", r.FatG},
			[]interface{}{"Carbs (g)", r.CarbsG},
		)
	}
	for i, r := range rows {
		if err := s.row(SheetMacros, i+2, r...); err != nil {
			return err
		}
	}
	return nil
}
