// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Covers workout and journal logging, routine and diet plans, macros, and the exercise library.
package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fitness/internal/library"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a strength workout entry (exercise, sets, reps, weight in kg)",
	}, s.handleLogWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List logged workouts grouped by day, most recent day first",
	}, s.handleListWorkouts)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout entry by ID",
	}, s.handleDeleteWorkout)

	// add_journal_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_journal_entry",
		Description: "Record a mood journal entry with optional notes",
	}, s.handleAddJournalEntry)

	// list_journal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_journal",
		Description: "List recent journal entries, newest first",
	}, s.handleListJournal)

	// delete_journal_entry
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_journal_entry",
		Description: "Delete a journal entry by ID",
	}, s.handleDeleteJournalEntry)

	// get_routine
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_routine",
		Description: "Get the weekly workout routine, or a single day of it",
	}, s.handleGetRoutine)

	// add_routine_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_routine_exercise",
		Description: "Append an exercise to one weekday of the routine",
	}, s.handleAddRoutineExercise)

	// apply_suggested_routine
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "apply_suggested_routine",
		Description: "Replace the routine with the suggested six-day split, Sunday rest (requires confirm=true)",
	}, s.handleApplySuggestedRoutine)

	// clear_routine
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "clear_routine",
		Description: "Remove every exercise from the routine (requires confirm=true)",
	}, s.handleClearRoutine)

	// get_diet
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_diet",
		Description: "Get the weekly diet plan, or a single day of it",
	}, s.handleGetDiet)

	// apply_diet_preset
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "apply_diet_preset",
		Description: "Replace the diet plan with a preset: general or regional (requires confirm=true)",
	}, s.handleApplyDietPreset)

	// clear_diet
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "clear_diet",
		Description: "Remove the saved diet plan (requires confirm=true)",
	}, s.handleClearDiet)

	// calculate_macros
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_macros",
		Description: "Calculate daily calorie and macro targets; the inputs are saved as the macro preset",
	}, s.handleCalculateMacros)

	// search_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_exercises",
		Description: "Search the built-in exercise library by name and muscle group",
	}, s.handleSearchExercises)

	// workout_volume
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_volume",
		Description: "Volume (weight x sets x reps) history per exercise",
	}, s.handleWorkoutVolume)
}

// Tool input/output types

type logWorkoutInput struct {
	Name   string  `json:"name" jsonschema:"Exercise name"`
	Sets   int     `json:"sets" jsonschema:"Number of sets (positive)"`
	Reps   int     `json:"reps" jsonschema:"Reps per set (positive)"`
	Weight float64 `json:"weight,omitempty" jsonschema:"Weight in kg (0 for bodyweight)"`
}

type workoutOutput struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Sets    int     `json:"sets"`
	Reps    int     `json:"reps"`
	Weight  float64 `json:"weight"`
	Date    string  `json:"date"`
	Message string  `json:"message"`
}

type listWorkoutsInput struct {
	Date  string `json:"date,omitempty" jsonschema:"Only this day (YYYY-MM-DD, local time)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max days to return (default 7)"`
}

type workoutDay struct {
	Date    string                `json:"date"`
	Entries []models.WorkoutEntry `json:"entries"`
}

type deleteByIDInput struct {
	ID int64 `json:"id" jsonschema:"Entry ID"`
}

type deleteOutput struct {
	Removed bool   `json:"removed"`
	Message string `json:"message"`
}

type addJournalInput struct {
	Mood  string `json:"mood" jsonschema:"Mood label, e.g. Great, Good, Okay, Tired, Stressed"`
	Notes string `json:"notes,omitempty" jsonschema:"Free-text notes"`
}

type journalOutput struct {
	ID      int64  `json:"id"`
	Mood    string `json:"mood"`
	Notes   string `json:"notes"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type listJournalInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

type dayInput struct {
	Day string `json:"day,omitempty" jsonschema:"Weekday name, e.g. Monday; omit for the whole week"`
}

type addRoutineExerciseInput struct {
	Day  string `json:"day" jsonschema:"Weekday name, e.g. Monday"`
	Name string `json:"name" jsonschema:"Exercise name"`
	Sets int    `json:"sets" jsonschema:"Number of sets (positive)"`
	Reps int    `json:"reps" jsonschema:"Reps per set (positive)"`
}

type confirmInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to overwrite saved data"`
}

type applyDietPresetInput struct {
	Preset  string `json:"preset" jsonschema:"Preset name: general or regional (alias pakistani)"`
	Confirm bool   `json:"confirm" jsonschema:"Must be true to overwrite the saved diet"`
}

type applyOutput struct {
	Applied bool   `json:"applied"`
	Message string `json:"message"`
}

type dietDay struct {
	Day   string       `json:"day"`
	Meals models.Meals `json:"meals"`
}

type dietOutput struct {
	Days  []dietDay `json:"days"`
	Notes string    `json:"notes,omitempty"`
}

type calculateMacrosInput struct {
	Age      int     `json:"age" jsonschema:"Age in years"`
	Weight   float64 `json:"weight" jsonschema:"Body weight in kg"`
	Height   int     `json:"height" jsonschema:"Height in cm"`
	Gender   string  `json:"gender" jsonschema:"male or other"`
	Activity float64 `json:"activity" jsonschema:"Activity multiplier: 1.2, 1.375, 1.55, 1.725 or 1.9"`
	Goal     string  `json:"goal" jsonschema:"cut, bulk, or maintain"`
}

type macrosOutput struct {
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
	Calories int     `json:"calories"`
	ProteinG int     `json:"protein_g"`
	FatG     int     `json:"fat_g"`
	CarbsG   int     `json:"carbs_g"`
	Message  string  `json:"message"`
}

type searchExercisesInput struct {
	Search string `json:"search,omitempty" jsonschema:"Case-insensitive name substring"`
	Muscle string `json:"muscle,omitempty" jsonschema:"Muscle group, e.g. chest; omit for all"`
}

type searchExercisesOutput struct {
	Exercises    []library.Exercise `json:"exercises"`
	MuscleGroups []string           `json:"muscle_groups"`
}

type workoutVolumeInput struct {
	Exercise string `json:"exercise,omitempty" jsonschema:"Only this exercise"`
	Top      int    `json:"top,omitempty" jsonschema:"Max exercises to return (default 3)"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, workoutOutput, error) {
	e, err := s.tracker.Workouts.AddEntry(input.Name, input.Sets, input.Reps, input.Weight)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, workoutOutput{
		ID:      e.ID,
		Name:    e.Name,
		Sets:    e.Sets,
		Reps:    e.Reps,
		Weight:  e.Weight,
		Date:    e.Date.Format(time.RFC3339),
		Message: fmt.Sprintf("Logged %s: %d x %d @ %g kg (ID: %d)", e.Name, e.Sets, e.Reps, e.Weight, e.ID),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	if input.Date != "" {
		if _, err := time.Parse(time.DateOnly, input.Date); err != nil {
			return nil, nil, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", input.Date)
		}
		entries, err := s.tracker.Workouts.On(input.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
		}
		if len(entries) == 0 {
			return nil, map[string]interface{}{"message": fmt.Sprintf("No workouts logged on %s.", input.Date)}, nil
		}
		return nil, []workoutDay{{Date: input.Date, Entries: entries}}, nil
	}

	if input.Limit <= 0 {
		input.Limit = 7
	}
	groups, err := s.tracker.Workouts.GroupByDate()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	var days []workoutDay
	for date, entries := range groups {
		days = append(days, workoutDay{Date: date, Entries: entries})
		if len(days) == input.Limit {
			break
		}
	}

	if len(days) == 0 {
		return nil, map[string]interface{}{"message": "No workouts logged yet."}, nil
	}
	return nil, days, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input deleteByIDInput) (*mcp.CallToolResult, deleteOutput, error) {
	removed, err := s.tracker.Workouts.DeleteEntry(input.ID)
	if err != nil {
		return nil, deleteOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	msg := fmt.Sprintf("Deleted workout: %d", input.ID)
	if !removed {
		msg = fmt.Sprintf("No workout with ID %d", input.ID)
	}
	return nil, deleteOutput{Removed: removed, Message: msg}, nil
}

func (s *Server) handleAddJournalEntry(ctx context.Context, req *mcp.CallToolRequest, input addJournalInput) (*mcp.CallToolResult, journalOutput, error) {
	e, err := s.tracker.Journal.AddEntry(input.Mood, input.Notes)
	if err != nil {
		return nil, journalOutput{}, fmt.Errorf("failed to add journal entry: %w", err)
	}

	return nil, journalOutput{
		ID:      e.ID,
		Mood:    e.Mood,
		Notes:   e.Notes,
		Date:    e.Date.Format(time.RFC3339),
		Message: fmt.Sprintf("Journal entry saved: %s (ID: %d)", e.Mood, e.ID),
	}, nil
}

func (s *Server) handleListJournal(ctx context.Context, req *mcp.CallToolRequest, input listJournalInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = tracker.DefaultRecentLimit
	}

	entries, err := s.tracker.Journal.RecentEntries(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal: %w", err)
	}

	if len(entries) == 0 {
		return nil, map[string]interface{}{"message": "No journal entries yet."}, nil
	}
	return nil, entries, nil
}

func (s *Server) handleDeleteJournalEntry(ctx context.Context, req *mcp.CallToolRequest, input deleteByIDInput) (*mcp.CallToolResult, deleteOutput, error) {
	removed, err := s.tracker.Journal.DeleteEntry(input.ID)
	if err != nil {
		return nil, deleteOutput{}, fmt.Errorf("failed to delete journal entry: %w", err)
	}
	msg := fmt.Sprintf("Deleted journal entry: %d", input.ID)
	if !removed {
		msg = fmt.Sprintf("No journal entry with ID %d", input.ID)
	}
	return nil, deleteOutput{Removed: removed, Message: msg}, nil
}

func (s *Server) handleGetRoutine(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, any, error) {
	plan, err := s.tracker.Routine.Plan()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read routine: %w", err)
	}

	if input.Day != "" {
		day, err := models.ParseWeekday(input.Day)
		if err != nil {
			return nil, nil, err
		}
		if plan.IsRestDay(day) {
			return nil, map[string]interface{}{"day": day, "rest_day": true, "message": fmt.Sprintf("%s is a rest day.", day)}, nil
		}
		return nil, map[string]interface{}{"day": day, "exercises": plan.Day(day)}, nil
	}

	if len(plan) == 0 {
		return nil, map[string]interface{}{"message": "No routine saved. Use apply_suggested_routine or add_routine_exercise."}, nil
	}
	return nil, plan, nil
}

func (s *Server) handleAddRoutineExercise(ctx context.Context, req *mcp.CallToolRequest, input addRoutineExerciseInput) (*mcp.CallToolResult, any, error) {
	day, err := models.ParseWeekday(input.Day)
	if err != nil {
		return nil, nil, err
	}

	plan, err := s.tracker.Routine.AddExerciseToDay(day, input.Name, input.Sets, input.Reps)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add routine exercise: %w", err)
	}

	return nil, map[string]interface{}{
		"day":       day,
		"exercises": plan.Day(day),
		"message":   fmt.Sprintf("Added %s (%d x %d) to %s", strings.TrimSpace(input.Name), input.Sets, input.Reps, day),
	}, nil
}

func (s *Server) handleApplySuggestedRoutine(ctx context.Context, req *mcp.CallToolRequest, input confirmInput) (*mcp.CallToolResult, applyOutput, error) {
	applied, err := s.tracker.Routine.ApplySuggested(confirmFrom(input.Confirm))
	if err != nil {
		return nil, applyOutput{}, fmt.Errorf("failed to apply routine: %w", err)
	}
	if !applied {
		return nil, applyOutput{Message: "Not applied: set confirm=true to overwrite the saved routine."}, nil
	}
	return nil, applyOutput{Applied: true, Message: "Suggested routine applied."}, nil
}

func (s *Server) handleClearRoutine(ctx context.Context, req *mcp.CallToolRequest, input confirmInput) (*mcp.CallToolResult, applyOutput, error) {
	cleared, err := s.tracker.Routine.Clear(confirmFrom(input.Confirm))
	if err != nil {
		return nil, applyOutput{}, fmt.Errorf("failed to clear routine: %w", err)
	}
	if !cleared {
		return nil, applyOutput{Message: "Not cleared: set confirm=true to remove all routine exercises."}, nil
	}
	return nil, applyOutput{Applied: true, Message: "Routine cleared."}, nil
}

func (s *Server) handleGetDiet(ctx context.Context, req *mcp.CallToolRequest, input dayInput) (*mcp.CallToolResult, dietOutput, error) {
	if input.Day != "" {
		day, err := models.ParseWeekday(input.Day)
		if err != nil {
			return nil, dietOutput{}, err
		}
		meals, err := s.tracker.Diet.GetDay(day)
		if err != nil {
			return nil, dietOutput{}, fmt.Errorf("failed to read diet: %w", err)
		}
		return nil, dietOutput{Days: []dietDay{{Day: string(day), Meals: meals}}}, nil
	}

	plan, err := s.tracker.Diet.Plan()
	if err != nil {
		return nil, dietOutput{}, fmt.Errorf("failed to read diet: %w", err)
	}
	out := dietOutput{Days: []dietDay{}, Notes: plan.Notes}
	for _, day := range models.Weekdays {
		if meals, ok := plan.Days[day]; ok {
			out.Days = append(out.Days, dietDay{Day: string(day), Meals: meals.WithPlaceholders()})
		}
	}
	return nil, out, nil
}

func (s *Server) handleApplyDietPreset(ctx context.Context, req *mcp.CallToolRequest, input applyDietPresetInput) (*mcp.CallToolResult, applyOutput, error) {
	applied, err := s.tracker.Diet.ApplyPreset(input.Preset, confirmFrom(input.Confirm))
	if err != nil {
		return nil, applyOutput{}, fmt.Errorf("failed to apply diet preset: %w", err)
	}
	if !applied {
		return nil, applyOutput{Message: "Not applied: set confirm=true to overwrite the saved diet."}, nil
	}
	return nil, applyOutput{Applied: true, Message: fmt.Sprintf("Applied %s diet plan.", strings.ToLower(input.Preset))}, nil
}

func (s *Server) handleClearDiet(ctx context.Context, req *mcp.CallToolRequest, input confirmInput) (*mcp.CallToolResult, applyOutput, error) {
	cleared, err := s.tracker.Diet.Clear(confirmFrom(input.Confirm))
	if err != nil {
		return nil, applyOutput{}, fmt.Errorf("failed to clear diet: %w", err)
	}
	if !cleared {
		return nil, applyOutput{Message: "Not cleared: set confirm=true to remove the saved diet."}, nil
	}
	return nil, applyOutput{Applied: true, Message: "Diet plan cleared."}, nil
}

func (s *Server) handleCalculateMacros(ctx context.Context, req *mcp.CallToolRequest, input calculateMacrosInput) (*mcp.CallToolResult, macrosOutput, error) {
	gender, err := models.ParseGender(input.Gender)
	if err != nil {
		return nil, macrosOutput{}, err
	}
	goal, err := models.ParseGoal(input.Goal)
	if err != nil {
		return nil, macrosOutput{}, err
	}

	res, err := s.tracker.CalculateMacros(models.MacroPreset{
		Age:      input.Age,
		Weight:   input.Weight,
		Height:   input.Height,
		Gender:   gender,
		Activity: input.Activity,
		Goal:     goal,
	})
	if err != nil {
		return nil, macrosOutput{}, fmt.Errorf("failed to calculate macros: %w", err)
	}

	r := res.Rounded()
	return nil, macrosOutput{
		BMR:      res.BMR,
		TDEE:     res.TDEE,
		Calories: r.Calories,
		ProteinG: r.ProteinG,
		FatG:     r.FatG,
		CarbsG:   r.CarbsG,
		Message:  fmt.Sprintf("%d kcal: %dg protein, %dg fat, %dg carbs", r.Calories, r.ProteinG, r.FatG, r.CarbsG),
	}, nil
}

func (s *Server) handleSearchExercises(ctx context.Context, req *mcp.CallToolRequest, input searchExercisesInput) (*mcp.CallToolResult, searchExercisesOutput, error) {
	return nil, searchExercisesOutput{
		Exercises:    library.Filter(input.Search, input.Muscle),
		MuscleGroups: library.MuscleGroups(),
	}, nil
}

func (s *Server) handleWorkoutVolume(ctx context.Context, req *mcp.CallToolRequest, input workoutVolumeInput) (*mcp.CallToolResult, any, error) {
	if input.Top <= 0 {
		input.Top = 3
	}

	var series []tracker.VolumeSeries
	var err error
	if input.Exercise != "" {
		all, lerr := s.tracker.Workouts.VolumeByExercise()
		err = lerr
		for _, vs := range all {
			if strings.EqualFold(vs.Exercise, strings.TrimSpace(input.Exercise)) {
				series = append(series, vs)
			}
		}
	} else {
		series, err = s.tracker.Workouts.TopExercises(input.Top)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute volume: %w", err)
	}

	if len(series) == 0 {
		return nil, map[string]interface{}{"message": "No workout data yet."}, nil
	}
	return nil, series, nil
}

// confirmFrom turns an explicit tool argument into a Confirm.
func confirmFrom(ok bool) tracker.Confirm {
	return func(string) bool { return ok }
}
