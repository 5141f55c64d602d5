// ABOUTME: Integration tests for fitness CLI.
// ABOUTME: Builds the binary and runs full workflows against each local backend.
package test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func buildBinary(t *testing.T) string {
	t.Helper()
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "fitness")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fitness")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}
	return binary
}

func TestFullWorkflow(t *testing.T) {
	binary := buildBinary(t)

	for _, backend := range []string{"sqlite", "badger"} {
		t.Run(backend, func(t *testing.T) {
			tmpDir := t.TempDir()

			run := func(args ...string) (string, error) {
				cmd := exec.Command(binary, args...)
				cmd.Env = append(os.Environ(),
					"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
					"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
					"FITNESS_BACKEND="+backend,
					"NO_COLOR=1",
				)
				output, err := cmd.CombinedOutput()
				return string(output), err
			}

			// Test logging workouts
			output, err := run("workout", "add", "Bench Press", "3", "10", "60")
			if err != nil {
				t.Fatalf("Failed to add workout: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Logged Bench Press") {
				t.Errorf("Expected 'Logged Bench Press' in output, got: %s", output)
			}

			output, err = run("workout", "add", "Dips", "3", "12")
			if err != nil {
				t.Fatalf("Failed to add bodyweight workout: %v\n%s", err, output)
			}

			// Test listing
			output, err = run("workout", "list")
			if err != nil {
				t.Fatalf("Failed to list: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Bench Press") || !strings.Contains(output, "Dips") {
				t.Errorf("Expected both exercises in list output, got: %s", output)
			}

			// Test routine and diet
			output, err = run("routine", "suggest", "--yes")
			if err != nil {
				t.Fatalf("Failed to apply routine: %v\n%s", err, output)
			}
			output, err = run("routine", "show", "sunday")
			if err != nil {
				t.Fatalf("Failed to show routine: %v\n%s", err, output)
			}
			if !strings.Contains(output, "Rest day") {
				t.Errorf("Expected Sunday rest day, got: %s", output)
			}

			output, err = run("diet", "apply", "pakistani", "--yes")
			if err != nil {
				t.Fatalf("Failed to apply diet: %v\n%s", err, output)
			}

			// Test macros
			output, err = run("macros", "--age", "30", "--weight", "80", "--height", "180", "--gender", "male")
			if err != nil {
				t.Fatalf("Failed to calculate macros: %v\n%s", err, output)
			}
			if !strings.Contains(output, "2759 kcal") {
				t.Errorf("Expected '2759 kcal' in output, got: %s", output)
			}

			// Test journal
			if output, err = run("journal", "add", "Great", "--notes", "felt strong"); err != nil {
				t.Fatalf("Failed to add journal entry: %v\n%s", err, output)
			}

			// Test export round trip
			output, err = run("export", "json")
			if err != nil {
				t.Fatalf("Failed to export: %v\n%s", err, output)
			}
			var exported map[string]any
			if err := json.Unmarshal([]byte(output), &exported); err != nil {
				t.Fatalf("Export is not JSON: %v\n%s", err, output)
			}
			for _, key := range []string{"workouts", "routine", "diet", "journal", "macro_preset"} {
				if _, ok := exported[key]; !ok {
					t.Errorf("Export missing %q", key)
				}
			}
		})
	}
}
