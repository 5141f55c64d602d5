// ABOUTME: Export and import of every persisted record.
// ABOUTME: Supports JSON, YAML, and Markdown; import accepts JSON.
package tracker

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/store"
	"gopkg.in/yaml.v3"
)

// ExportVersion is written into every export.
const ExportVersion = "1.0"

// ExportData is the full export format.
type ExportData struct {
	Version     string              `json:"version" yaml:"version"`
	ExportedAt  time.Time           `json:"exported_at" yaml:"exported_at"`
	Tool        string              `json:"tool" yaml:"tool"`
	Workouts    models.WorkoutLog   `json:"workouts" yaml:"workouts"`
	Routine     models.RoutinePlan  `json:"routine,omitempty" yaml:"routine,omitempty"`
	Diet        *models.DietPlan    `json:"diet,omitempty" yaml:"diet,omitempty"`
	Journal     models.JournalLog   `json:"journal" yaml:"journal"`
	MacroPreset *models.MacroPreset `json:"macro_preset,omitempty" yaml:"macro_preset,omitempty"`
	Theme       models.ThemeMode    `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// ImportResult counts what an import changed.
type ImportResult struct {
	Workouts int `json:"workouts"`
	Journal  int `json:"journal"`
	Skipped  int `json:"skipped"`
	Records  int `json:"records"`
}

// GetAllData collects every record for export.
func (t *Tracker) GetAllData() (*ExportData, error) {
	workouts, err := t.Workouts.Entries()
	if err != nil {
		return nil, err
	}
	journal, err := t.Journal.Entries()
	if err != nil {
		return nil, err
	}
	routine, err := t.Routine.Plan()
	if err != nil {
		return nil, err
	}
	diet, err := t.Diet.Plan()
	if err != nil {
		return nil, err
	}
	theme, err := t.Theme()
	if err != nil {
		return nil, err
	}
	data := &ExportData{
		Version:    ExportVersion,
		ExportedAt: t.Now().UTC(),
		Tool:       "fitness",
		Workouts:   workouts,
		Routine:    routine,
		Journal:    journal,
		Theme:      theme,
	}
	if data.Workouts == nil {
		data.Workouts = models.WorkoutLog{}
	}
	if data.Journal == nil {
		data.Journal = models.JournalLog{}
	}
	if !diet.IsEmpty() {
		data.Diet = &diet
	}
	if preset, found, err := t.LastMacroPreset(); err != nil {
		return nil, err
	} else if found {
		data.MacroPreset = &preset
	}
	return data, nil
}

// ExportJSON exports all data as indented JSON.
func (t *Tracker) ExportJSON() ([]byte, error) {
	data, err := t.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (t *Tracker) ExportYAML() ([]byte, error) {
	data, err := t.GetAllData()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ExportMarkdown renders a human-readable summary of every record.
func (t *Tracker) ExportMarkdown() (string, error) {
	data, err := t.GetAllData()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	now := data.ExportedAt.In(t.loc)
	fmt.Fprintf(&sb, "# Fitness Export - %s\n\n", now.Format(time.DateOnly))
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format(time.RFC3339))

	if len(data.Workouts) > 0 {
		sb.WriteString("## Workouts\n\n")
		sb.WriteString("| Date | Exercise | Sets | Reps | Weight |\n")
		sb.WriteString("|------|----------|------|------|--------|\n")
		for _, w := range data.Workouts {
			fmt.Fprintf(&sb, "| %s | %s | %d | %d | %g |\n",
				w.Date.In(t.loc).Format("2006-01-02 15:04"), w.Name, w.Sets, w.Reps, w.Weight)
		}
		sb.WriteString("\n")
	}

	if len(data.Routine) > 0 {
		sb.WriteString("## Routine\n\n")
		for _, day := range models.Weekdays {
			exercises := data.Routine.Day(day)
			if len(exercises) == 0 {
				fmt.Fprintf(&sb, "- **%s**: rest day\n", day)
				continue
			}
			parts := make([]string, len(exercises))
			for i, ex := range exercises {
				parts[i] = fmt.Sprintf("%s %dx%d", ex.Name, ex.Sets, ex.Reps)
			}
			fmt.Fprintf(&sb, "- **%s**: %s\n", day, strings.Join(parts, ", "))
		}
		sb.WriteString("\n")
	}

	if data.Diet != nil {
		sb.WriteString("## Diet\n\n")
		sb.WriteString("| Day | Breakfast | Lunch | Snack | Dinner | Before Bed |\n")
		sb.WriteString("|-----|-----------|-------|-------|--------|------------|\n")
		for _, day := range models.Weekdays {
			m := data.Diet.Days[day].WithPlaceholders()
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s |\n",
				day, m.Breakfast, m.Lunch, m.Snack, m.Dinner, m.BeforeBed)
		}
		if data.Diet.Notes != "" {
			fmt.Fprintf(&sb, "\n%s\n", data.Diet.Notes)
		}
		sb.WriteString("\n")
	}

	if len(data.Journal) > 0 {
		sb.WriteString("## Journal\n\n")
		for i := len(data.Journal) - 1; i >= 0; i-- {
			j := data.Journal[i]
			fmt.Fprintf(&sb, "- %s %s", j.Date.In(t.loc).Format("2006-01-02 15:04"), j.Mood)
			if j.Notes != "" {
				fmt.Fprintf(&sb, " %s", j.Notes)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// ImportData merges data into the store. Log entries are merged by id with
// existing ids skipped; whole records present in data replace the stored ones.
func (t *Tracker) ImportData(data *ExportData) (ImportResult, error) {
	var res ImportResult
	if err := data.Workouts.Validate(); err != nil {
		return res, fmt.Errorf("import workouts: %w", err)
	}
	if err := data.Journal.Validate(); err != nil {
		return res, fmt.Errorf("import journal: %w", err)
	}
	// Whole records are checked before the first write so a rejected
	// import leaves every key untouched.
	if data.Routine != nil {
		if err := data.Routine.Validate(); err != nil {
			return res, fmt.Errorf("import routine: %w", err)
		}
	}
	if data.Diet != nil {
		if err := data.Diet.Validate(); err != nil {
			return res, fmt.Errorf("import diet: %w", err)
		}
	}
	if data.MacroPreset != nil {
		if err := data.MacroPreset.Validate(); err != nil {
			return res, fmt.Errorf("import macro preset: %w", err)
		}
	}
	if data.Theme != "" {
		if err := data.Theme.Validate(); err != nil {
			return res, fmt.Errorf("import theme: %w", err)
		}
	}

	err := store.Update(t.store, KeyWorkouts, func(log *models.WorkoutLog) error {
		for _, e := range data.Workouts {
			if log.Contains(e.ID) {
				res.Skipped++
				continue
			}
			*log = append(*log, e)
			res.Workouts++
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("import workouts: %w", err)
	}

	err = store.Update(t.store, KeyJournals, func(log *models.JournalLog) error {
		for _, e := range data.Journal {
			if log.Contains(e.ID) {
				res.Skipped++
				continue
			}
			*log = append(*log, e)
			res.Journal++
		}
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("import journal: %w", err)
	}

	if data.Routine != nil {
		if err := t.store.Write(KeyRoutines, data.Routine); err != nil {
			return res, fmt.Errorf("import routine: %w", err)
		}
		res.Records++
	}
	if data.Diet != nil {
		if err := t.store.Write(KeyDietPlan, *data.Diet); err != nil {
			return res, fmt.Errorf("import diet: %w", err)
		}
		res.Records++
	}
	if data.MacroPreset != nil {
		if err := t.store.Write(KeyMacroPreset, *data.MacroPreset); err != nil {
			return res, fmt.Errorf("import macro preset: %w", err)
		}
		res.Records++
	}
	if data.Theme != "" {
		if err := t.SetTheme(data.Theme); err != nil {
			return res, fmt.Errorf("import theme: %w", err)
		}
		res.Records++
	}
	return res, nil
}

// ImportJSON imports data from JSON bytes.
func (t *Tracker) ImportJSON(raw []byte) (ImportResult, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ImportResult{}, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return t.ImportData(&data)
}
