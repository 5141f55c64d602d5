// ABOUTME: Tests for WorkoutEntry, WorkoutLog, and form input parsing.
// ABOUTME: Covers validation, id allocation, and identity-based removal.
package models

import (
	"math"
	"testing"
	"time"
)

func TestNewWorkoutEntry(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	e := NewWorkoutEntry("  Bench Press ", 4, 8, 60, at)

	if e.ID != at.UnixMilli() {
		t.Errorf("ID = %d, want %d", e.ID, at.UnixMilli())
	}
	if e.Name != "Bench Press" {
		t.Errorf("Name = %q, want trimmed name", e.Name)
	}
	if !e.Date.Equal(at) {
		t.Errorf("Date = %v, want %v", e.Date, at)
	}
	if e.Volume() != 60*4*8 {
		t.Errorf("Volume = %v, want %v", e.Volume(), 60*4*8)
	}
}

func TestWorkoutEntryValidate(t *testing.T) {
	at := time.Now()
	tests := []struct {
		name    string
		entry   WorkoutEntry
		wantErr bool
	}{
		{"valid", NewWorkoutEntry("Squat", 3, 5, 100, at), false},
		{"bodyweight", NewWorkoutEntry("Push-ups", 3, 20, 0, at), false},
		{"empty name", NewWorkoutEntry("  ", 3, 5, 100, at), true},
		{"zero sets", NewWorkoutEntry("Squat", 0, 5, 100, at), true},
		{"negative reps", NewWorkoutEntry("Squat", 3, -1, 100, at), true},
		{"negative weight", NewWorkoutEntry("Squat", 3, 5, -2.5, at), true},
		{"NaN weight", NewWorkoutEntry("Squat", 3, 5, math.NaN(), at), true},
		{"infinite weight", NewWorkoutEntry("Squat", 3, 5, math.Inf(1), at), true},
		{"negative infinite weight", NewWorkoutEntry("Squat", 3, 5, math.Inf(-1), at), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsValidation(err) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestParseWorkoutInput(t *testing.T) {
	tests := []struct {
		name                     string
		in                       [4]string
		wantSets, wantReps       int
		wantWeight               float64
		wantErr                  bool
	}{
		{"all fields", [4]string{"Deadlift", "4", "6", "140.5"}, 4, 6, 140.5, false},
		{"empty weight", [4]string{"Pull-ups", "3", "10", ""}, 3, 10, 0, false},
		{"non numeric sets", [4]string{"Deadlift", "four", "6", ""}, 0, 0, 0, true},
		{"non numeric reps", [4]string{"Deadlift", "4", "", ""}, 0, 0, 0, true},
		{"bad weight", [4]string{"Deadlift", "4", "6", "heavy"}, 0, 0, 0, true},
		{"empty name", [4]string{"", "4", "6", ""}, 0, 0, 0, true},
		{"nan weight", [4]string{"Deadlift", "4", "6", "nan"}, 0, 0, 0, true},
		{"inf weight", [4]string{"Deadlift", "4", "6", "inf"}, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, sets, reps, weight, err := ParseWorkoutInput(tt.in[0], tt.in[1], tt.in[2], tt.in[3])
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !IsValidation(err) {
					t.Errorf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sets != tt.wantSets || reps != tt.wantReps || weight != tt.wantWeight {
				t.Errorf("got %d/%d/%v, want %d/%d/%v", sets, reps, weight, tt.wantSets, tt.wantReps, tt.wantWeight)
			}
		})
	}
}

func TestWorkoutLogNextID(t *testing.T) {
	log := WorkoutLog{{ID: 100}, {ID: 250}, {ID: 180}}

	if got := log.NextID(300); got != 300 {
		t.Errorf("NextID(300) = %d, want 300", got)
	}
	if got := log.NextID(250); got != 251 {
		t.Errorf("NextID(250) = %d, want 251", got)
	}
	if got := (WorkoutLog{}).NextID(5); got != 5 {
		t.Errorf("empty NextID(5) = %d, want 5", got)
	}
}

func TestWorkoutLogWithout(t *testing.T) {
	log := WorkoutLog{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}

	out, found := log.Without(2)
	if !found {
		t.Error("expected id 2 to be found")
	}
	if len(out) != 2 || out[0].ID != 1 || out[1].ID != 3 {
		t.Errorf("unexpected remaining entries: %+v", out)
	}

	same, found := log.Without(42)
	if found {
		t.Error("expected id 42 to be missing")
	}
	if len(same) != 3 {
		t.Errorf("expected log unchanged, got %d entries", len(same))
	}
}

func TestWorkoutLogValidateDuplicateIDs(t *testing.T) {
	at := time.Now()
	e := NewWorkoutEntry("Squat", 3, 5, 100, at)
	log := WorkoutLog{e, e}

	if err := log.Validate(); err == nil {
		t.Error("expected duplicate id error")
	}
}
