// ABOUTME: CLI commands for the workout log.
// ABOUTME: Adds, lists (grouped by day), and deletes workout entries.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/fitness/internal/models"
	"github.com/spf13/cobra"
)

var (
	workoutListDate  string
	workoutListLimit int
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log and review workouts",
	Long: `Log strength workouts and review them by day.

COMMANDS:

  add       Log an exercise (name, sets, reps, weight in kg)
  list      Show workouts grouped by day, most recent first
  delete    Delete an entry by ID

EXAMPLES:

  fitness workout add "Bench Press" 3 10 60
  fitness workout add Pull-Ups 4 8           # bodyweight (weight 0)
  fitness workout list
  fitness workout list --date 2025-03-10
  fitness workout delete 1741597200000`,
}

var workoutAddCmd = &cobra.Command{
	Use:     "add <name> <sets> <reps> [weight]",
	Aliases: []string{"a"},
	Short:   "Log a workout entry",
	Long: `Log a workout entry. Sets and reps must be positive integers.
Weight is in kg and may be omitted for bodyweight exercises.

Examples:
  fitness workout add "Bench Press" 3 10 60
  fitness workout add Squat 5 5 102.5
  fitness workout add Dips 3 12`,
	Args: cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight := ""
		if len(args) == 4 {
			weight = args[3]
		}
		name, sets, reps, kg, err := models.ParseWorkoutInput(args[0], args[1], args[2], weight)
		if err != nil {
			return err
		}

		e, err := trk.Workouts.AddEntry(name, sets, reps, kg)
		if err != nil {
			return fmt.Errorf("failed to log workout: %w", err)
		}

		success(cmd, "Logged %s", e.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %d x %d @ %g kg\n", faint(fmt.Sprint(e.ID)), e.Sets, e.Reps, e.Weight)
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List workouts grouped by day",
	Long: `List logged workouts grouped by calendar day, most recent day first.
Entries within a day are shown in the order they were logged.

OUTPUT FORMAT:

  Each line shows: ID  TIME  EXERCISE  SETS x REPS  WEIGHT

EXAMPLES:

  fitness workout list                 # Last 7 days with workouts
  fitness workout list -n 30           # Last 30 days with workouts
  fitness workout list --date 2025-03-10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if workoutListDate != "" {
			if _, err := time.Parse(time.DateOnly, workoutListDate); err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", workoutListDate)
			}
			entries, err := trk.Workouts.On(workoutListDate)
			if err != nil {
				return fmt.Errorf("failed to list workouts: %w", err)
			}
			if len(entries) == 0 {
				fmt.Fprintf(out, "No workouts on %s.\n", workoutListDate)
				return nil
			}
			printWorkoutDay(cmd, workoutListDate, entries)
			return nil
		}

		groups, err := trk.Workouts.GroupByDate()
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		shown := 0
		for day, entries := range groups {
			if workoutListLimit > 0 && shown == workoutListLimit {
				break
			}
			printWorkoutDay(cmd, day, entries)
			shown++
		}
		if shown == 0 {
			fmt.Fprintln(out, "No workouts logged yet.")
		}
		return nil
	},
}

func printWorkoutDay(cmd *cobra.Command, day string, entries []models.WorkoutEntry) {
	out := cmd.OutOrStdout()
	label := day
	if d, err := time.ParseInLocation(time.DateOnly, day, trk.Location()); err == nil {
		label = d.Format("Monday, Jan 2 2006")
	}
	fmt.Fprintln(out, bold(label))
	for _, e := range entries {
		fmt.Fprintf(out, "  %s %s %s %2d x %-3d %g kg\n",
			faint(fmt.Sprint(e.ID)),
			faint(e.Date.In(trk.Location()).Format("15:04")),
			padRight(truncate(e.Name, 28), 28),
			e.Sets, e.Reps, e.Weight)
	}
}

var workoutDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a workout entry",
	Long: `Delete a workout entry by its ID (shown in 'fitness workout list').

Deleting an ID that does not exist is not an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ok, err := trk.Workouts.DeleteEntry(id)
		if err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		if !ok {
			notice(cmd, "No workout with ID %d", id)
			return nil
		}
		removed(cmd, "Deleted workout %d", id)
		return nil
	},
}

func init() {
	workoutListCmd.Flags().StringVar(&workoutListDate, "date", "", "only this day (YYYY-MM-DD)")
	workoutListCmd.Flags().IntVarP(&workoutListLimit, "limit", "n", 7, "max number of days")

	workoutCmd.AddCommand(workoutAddCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}
