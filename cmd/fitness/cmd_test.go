// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Runs commands end to end against a temp SQLite or Badger data directory.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/harperreed/fitness/internal/tracker"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// setupCLI points config and data at a temp directory and selects backend.
func setupCLI(t *testing.T, backend string) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	t.Setenv("FITNESS_BACKEND", backend)
	return tmp
}

// resetFlags restores every flag to its default between runs; cobra keeps
// flag state on the package-level commands.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCLI(t, "", args...)
	if err != nil {
		t.Fatalf("fitness %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string no truncation", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world this is a long string", 10, "hello w..."},
		{"empty string", "", 10, ""},
		{"very short maxLen", "hello", 3, "..."},
		{"multi-byte not split", "Überzug Kniebeuge", 6, "Übe..."},
		{"multi-byte fits", "Крук", 4, "Крук"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.input, tt.maxLen)
			}
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"hi", 5, "hi   "},
		{"hello", 5, "hello"},
		{"hello world", 5, "hello world"},
		{"", 3, "   "},
		{"Übung", 7, "Übung  "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestParseTimerDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"90", 90, false},
		{"0", 0, false},
		{"1:30", 90, false},
		{"10:05", 605, false},
		{"1:75", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := parseTimerDuration(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTimerDuration(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseTimerDuration(%q) = %d, %v; want %d", tt.input, got, err, tt.want)
		}
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "fitness" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "fitness")
	}
	for _, name := range []string{"backend", "data-dir", "verbose"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected --%s persistent flag", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"workout", "routine", "diet", "journal", "macros", "timer",
		"exercises", "progress", "theme", "export", "import", "mcp", "sync", "install-skill"}

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, n := range want {
		if !names[n] {
			t.Errorf("Expected command %q", n)
		}
	}
}

func TestWorkoutCmdSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range workoutCmd.Commands() {
		names[c.Name()] = true
	}
	for _, n := range []string{"add", "list", "delete"} {
		if !names[n] {
			t.Errorf("Expected workout subcommand %q", n)
		}
	}
}

func TestWorkoutAddListDelete(t *testing.T) {
	setupCLI(t, "sqlite")

	out := mustRun(t, "workout", "add", "Bench Press", "3", "10", "60")
	if !strings.Contains(out, "Logged Bench Press") {
		t.Errorf("Unexpected add output: %s", out)
	}
	mustRun(t, "workout", "add", "Pull-Ups", "4", "8")

	out = mustRun(t, "workout", "list")
	if !strings.Contains(out, "Bench Press") || !strings.Contains(out, "Pull-Ups") {
		t.Errorf("List missing entries: %s", out)
	}

	entries, err := openTestTracker(t).Workouts.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Weight != 0 {
		t.Errorf("Expected bodyweight entry, got %v kg", entries[1].Weight)
	}

	id := entries[0].ID
	out = mustRun(t, "workout", "delete", jsonNumber(id))
	if !strings.Contains(out, "Deleted workout") {
		t.Errorf("Unexpected delete output: %s", out)
	}
	out = mustRun(t, "workout", "delete", jsonNumber(id))
	if !strings.Contains(out, "No workout") {
		t.Errorf("Expected idempotent delete message, got: %s", out)
	}
}

func TestWorkoutAddRejectsBadInput(t *testing.T) {
	setupCLI(t, "sqlite")

	tests := [][]string{
		{"workout", "add", "Squat", "three", "5", "100"},
		{"workout", "add", "Squat", "0", "5", "100"},
		{"workout", "add", "", "3", "5", "100"},
		{"workout", "add", "--", "Squat", "3", "5", "-10"},
		{"workout", "add", "Squat", "3", "5", "inf"},
		{"workout", "add", "Squat", "3", "5", "NaN"},
	}
	for _, args := range tests {
		if _, err := runCLI(t, "", args...); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}

	out := mustRun(t, "workout", "list")
	if !strings.Contains(out, "No workouts logged yet.") {
		t.Errorf("Invalid input must not be stored: %s", out)
	}
}

func TestRoutineConfirmation(t *testing.T) {
	setupCLI(t, "badger")

	out, err := runCLI(t, "n\n", "routine", "suggest")
	if err != nil {
		t.Fatalf("routine suggest: %v", err)
	}
	if !strings.Contains(out, "Canceled.") {
		t.Errorf("Expected cancel on 'n', got: %s", out)
	}

	out, err = runCLI(t, "y\n", "routine", "suggest")
	if err != nil {
		t.Fatalf("routine suggest: %v", err)
	}
	if !strings.Contains(out, "Suggested routine applied") {
		t.Errorf("Expected apply on 'y', got: %s", out)
	}

	out = mustRun(t, "routine", "show", "sun")
	if !strings.Contains(out, "Rest day") {
		t.Errorf("Expected Sunday rest day, got: %s", out)
	}

	mustRun(t, "routine", "add", "Sunday", "Plank", "3", "60")
	out = mustRun(t, "routine", "show", "Sunday")
	if !strings.Contains(out, "Plank") {
		t.Errorf("Expected Plank on Sunday, got: %s", out)
	}

	mustRun(t, "routine", "clear", "--yes")
	out = mustRun(t, "routine", "show")
	if !strings.Contains(out, "No routine saved") {
		t.Errorf("Expected empty routine after clear, got: %s", out)
	}
}

func TestDietCommands(t *testing.T) {
	setupCLI(t, "sqlite")

	out := mustRun(t, "diet", "show")
	if !strings.Contains(out, "No diet plan saved") {
		t.Errorf("Expected empty diet message, got: %s", out)
	}

	if _, err := runCLI(t, "", "diet", "apply", "keto", "--yes"); err == nil {
		t.Error("Expected error for unknown preset")
	}

	mustRun(t, "diet", "apply", "general", "--yes")
	out = mustRun(t, "diet", "show", "monday")
	if !strings.Contains(out, "Monday") || !strings.Contains(out, "Breakfast") {
		t.Errorf("Unexpected day output: %s", out)
	}

	mustRun(t, "diet", "clear", "--yes")
	out = mustRun(t, "diet", "show", "monday")
	if strings.Count(out, "—") != 5 {
		t.Errorf("Expected five placeholders after clear, got: %s", out)
	}
}

func TestJournalCommands(t *testing.T) {
	setupCLI(t, "sqlite")

	if _, err := runCLI(t, "", "journal", "add", " "); err == nil {
		t.Error("Expected error for empty mood")
	}

	mustRun(t, "journal", "add", "Good", "--notes", "Solid session")
	mustRun(t, "journal", "add", "Great")

	out := mustRun(t, "journal", "list")
	if strings.Index(out, "Great") > strings.Index(out, "Good") {
		t.Errorf("Expected newest first, got: %s", out)
	}
	if !strings.Contains(out, "Solid session") {
		t.Errorf("Expected notes in list, got: %s", out)
	}
}

func TestMacrosUsesSavedPreset(t *testing.T) {
	setupCLI(t, "sqlite")

	out := mustRun(t, "macros", "--age", "30", "--weight", "80", "--height", "180", "--gender", "male", "--activity", "1.55")
	if !strings.Contains(out, "2759 kcal") {
		t.Errorf("Expected 2759 kcal maintenance target, got: %s", out)
	}
	if !strings.Contains(out, "176 g") {
		t.Errorf("Expected 176 g protein, got: %s", out)
	}

	// Only the goal changes; the rest comes from the saved preset.
	out = mustRun(t, "macros", "--goal", "cut")
	if !strings.Contains(out, "2259 kcal") {
		t.Errorf("Expected 2259 kcal cut target, got: %s", out)
	}

	if _, err := runCLI(t, "", "macros", "--age=-1"); err == nil {
		t.Error("Expected error for negative age")
	}
	for _, bad := range []string{"--weight=NaN", "--weight=inf", "--activity=NaN"} {
		if _, err := runCLI(t, "", "macros", bad); err == nil {
			t.Errorf("Expected error for %s", bad)
		}
	}

	// Rejected inputs leave the saved preset alone.
	out = mustRun(t, "macros")
	if !strings.Contains(out, "2259 kcal") {
		t.Errorf("Expected saved cut preset to survive, got: %s", out)
	}
}

func TestMacrosRequiresInputsFirstTime(t *testing.T) {
	setupCLI(t, "sqlite")

	if _, err := runCLI(t, "", "macros"); err == nil {
		t.Error("Expected error without inputs or a saved preset")
	}
}

func TestThemeCommand(t *testing.T) {
	setupCLI(t, "sqlite")
	t.Setenv("FITNESS_DARK", "1")

	out := mustRun(t, "theme")
	if !strings.Contains(out, "system (dark)") {
		t.Errorf("Expected default system theme, got: %s", out)
	}

	mustRun(t, "theme", "light")
	out = mustRun(t, "theme", "cycle")
	if !strings.Contains(out, "Theme set to dark") {
		t.Errorf("Expected light -> dark, got: %s", out)
	}

	if _, err := runCLI(t, "", "theme", "sepia"); err == nil {
		t.Error("Expected error for unknown theme")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	tmp := setupCLI(t, "sqlite")

	mustRun(t, "workout", "add", "Squat", "5", "5", "100")
	mustRun(t, "journal", "add", "Tired")
	mustRun(t, "diet", "apply", "regional", "--yes")

	backup := filepath.Join(tmp, "backup.json")
	mustRun(t, "export", "json", "-o", backup)

	raw, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var data tracker.ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if data.Version != tracker.ExportVersion || len(data.Workouts) != 1 || len(data.Journal) != 1 {
		t.Errorf("Unexpected export contents: %+v", data)
	}

	// Import into a fresh data dir.
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data2"))
	out := mustRun(t, "import", backup)
	if !strings.Contains(out, "Workouts: 1") {
		t.Errorf("Unexpected import output: %s", out)
	}

	// Importing again skips duplicates.
	out = mustRun(t, "import", backup)
	if !strings.Contains(out, "Skipped duplicates: 2") {
		t.Errorf("Expected duplicates skipped, got: %s", out)
	}

	out = mustRun(t, "export", "markdown")
	if !strings.Contains(out, "Squat") {
		t.Errorf("Markdown export missing workout: %s", out)
	}

	xlsx := filepath.Join(tmp, "fitness.xlsx")
	mustRun(t, "export", "xlsx", "-o", xlsx)
	if info, err := os.Stat(xlsx); err != nil || info.Size() == 0 {
		t.Errorf("Expected xlsx file, err=%v", err)
	}

	if _, err := runCLI(t, "", "export", "xlsx"); err == nil {
		t.Error("Expected xlsx export to require --output")
	}
	if _, err := runCLI(t, "", "export", "csv"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestExercisesCommands(t *testing.T) {
	setupCLI(t, "sqlite")

	out := mustRun(t, "exercises", "list", "--muscle", "arms")
	if !strings.Contains(out, "Bicep Curls") || strings.Contains(out, "Push-ups") {
		t.Errorf("Unexpected filter output: %s", out)
	}

	out = mustRun(t, "exercises", "show", "push-ups")
	if !strings.Contains(out, "1.") {
		t.Errorf("Expected numbered instructions, got: %s", out)
	}

	if _, err := runCLI(t, "", "exercises", "show", "Moonwalk"); err == nil {
		t.Error("Expected error for unknown exercise")
	}
}

func TestProgressCommand(t *testing.T) {
	setupCLI(t, "sqlite")

	out := mustRun(t, "progress")
	if !strings.Contains(out, "No workout data yet.") {
		t.Errorf("Expected empty message, got: %s", out)
	}

	mustRun(t, "workout", "add", "Squat", "5", "5", "100")
	mustRun(t, "workout", "add", "Squat", "5", "5", "110")
	out = mustRun(t, "progress", "squat")
	if !strings.Contains(out, "2500") || !strings.Contains(out, "2750") {
		t.Errorf("Expected both volumes, got: %s", out)
	}
}

func TestTimerZeroCompletesImmediately(t *testing.T) {
	setupCLI(t, "sqlite")

	out := mustRun(t, "timer", "0", "--sound=false")
	if !strings.Contains(out, "00:00") {
		t.Errorf("Expected 00:00, got: %s", out)
	}
}

func TestBackendFlagOverridesEnv(t *testing.T) {
	tmp := setupCLI(t, "charm")

	mustRun(t, "--backend", "sqlite", "workout", "add", "Row", "3", "10", "40")
	if _, err := os.Stat(filepath.Join(tmp, "data", "fitness", "fitness.db")); err != nil {
		t.Errorf("Expected sqlite database in data dir: %v", err)
	}
}

// openTestTracker opens the store the CLI just used.
func openTestTracker(t *testing.T) *tracker.Tracker {
	t.Helper()
	c, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	s, err := c.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	tr := tracker.New(s)
	t.Cleanup(func() { _ = tr.Close() })
	return tr
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
