// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fitness://today, fitness://week, and fitness://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fitness/internal/macros"
	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	uriToday   = "fitness://today"
	uriWeek    = "fitness://week"
	uriSummary = "fitness://summary"
)

func (s *Server) registerResources() {
	// fitness://today - today's plan and what was logged
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriToday,
		Name:        "Today's Training",
		Description: "Today's planned routine and meals plus workouts logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// fitness://week - last seven days of workouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriWeek,
		Name:        "This Week's Workouts",
		Description: "Workouts from the last seven calendar days, grouped by day",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	// fitness://summary - dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         uriSummary,
		Name:        "Fitness Summary Dashboard",
		Description: "Record counts, top exercises by volume, recent journal, and macro targets",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := s.tracker.Now().In(s.tracker.Location())
	today := now.Format(time.DateOnly)
	weekday := models.WeekdayOf(now)

	workouts, err := s.tracker.Workouts.On(today)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	routine, err := s.tracker.Routine.Plan()
	if err != nil {
		return nil, fmt.Errorf("failed to read routine: %w", err)
	}
	meals, err := s.tracker.Diet.GetDay(weekday)
	if err != nil {
		return nil, fmt.Errorf("failed to read diet: %w", err)
	}

	result := map[string]interface{}{
		"date":     today,
		"weekday":  weekday,
		"rest_day": routine.IsRestDay(weekday),
		"planned":  routine.Day(weekday),
		"meals":    meals,
		"workouts": workouts,
		"counts": map[string]int{
			"planned":  len(routine.Day(weekday)),
			"workouts": len(workouts),
		},
	}

	return jsonResource(uriToday, result)
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := s.tracker.Now().In(s.tracker.Location())
	cutoff := now.AddDate(0, 0, -6).Format(time.DateOnly)

	groups, err := s.tracker.Workouts.GroupByDate()
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	days := []workoutDay{}
	var volume float64
	for date, entries := range groups {
		// Days arrive newest first.
		if date < cutoff {
			break
		}
		days = append(days, workoutDay{Date: date, Entries: entries})
		for _, e := range entries {
			volume += e.Volume()
		}
	}

	result := map[string]interface{}{
		"from":         cutoff,
		"to":           now.Format(time.DateOnly),
		"days":         days,
		"active_days":  len(days),
		"total_volume": volume,
	}

	return jsonResource(uriWeek, result)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	workouts, err := s.tracker.Workouts.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	top, err := s.tracker.Workouts.TopExercises(3)
	if err != nil {
		return nil, fmt.Errorf("failed to compute volume: %w", err)
	}
	journal, err := s.tracker.Journal.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}
	recent, err := s.tracker.Journal.RecentEntries(5)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}
	routine, err := s.tracker.Routine.Plan()
	if err != nil {
		return nil, fmt.Errorf("failed to read routine: %w", err)
	}
	diet, err := s.tracker.Diet.Plan()
	if err != nil {
		return nil, fmt.Errorf("failed to read diet: %w", err)
	}

	trainingDays := []models.Weekday{}
	for _, d := range models.Weekdays {
		if !routine.IsRestDay(d) {
			trainingDays = append(trainingDays, d)
		}
	}

	result := map[string]interface{}{
		"generated_at":   s.tracker.Now().Format(time.RFC3339),
		"counts":         map[string]int{"workouts": len(workouts), "journal": len(journal)},
		"top_exercises":  exerciseTotals(top),
		"recent_journal": recent,
		"training_days":  trainingDays,
		"diet_planned":   !diet.IsEmpty(),
	}

	preset, found, err := s.tracker.LastMacroPreset()
	if err != nil {
		return nil, fmt.Errorf("failed to read macro preset: %w", err)
	}
	if found {
		if res, err := macros.Calculate(preset); err == nil {
			result["macros"] = map[string]interface{}{
				"preset":  preset,
				"targets": res.Rounded(),
			}
		}
	}

	return jsonResource(uriSummary, result)
}

// exerciseTotals sums each series into a single figure for the dashboard.
func exerciseTotals(series []tracker.VolumeSeries) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(series))
	for _, vs := range series {
		var total float64
		for _, p := range vs.Points {
			total += p.Volume
		}
		out = append(out, map[string]interface{}{
			"exercise":     vs.Exercise,
			"sessions":     len(vs.Points),
			"total_volume": total,
		})
	}
	return out
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
