// ABOUTME: CLI commands for the weekly routine plan.
// ABOUTME: Shows the plan, adds exercises to a day, applies the suggested split, or clears it.
package main

import (
	"fmt"

	"github.com/harperreed/fitness/internal/models"
	"github.com/spf13/cobra"
)

var routineYes bool

var routineCmd = &cobra.Command{
	Use:     "routine",
	Aliases: []string{"r"},
	Short:   "Plan your training week",
	Long: `Plan which exercises to do on each weekday. Days with nothing planned
are rest days.

EXAMPLES:

  fitness routine show             # Whole week
  fitness routine show mon         # One day
  fitness routine add Monday "Bench Press" 4 8
  fitness routine suggest          # Load the suggested 6-day split
  fitness routine clear --yes`,
}

var routineShowCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show the routine",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := trk.Routine.Plan()
		if err != nil {
			return fmt.Errorf("failed to read routine: %w", err)
		}

		days := models.Weekdays
		if len(args) == 1 {
			day, err := models.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			days = []models.Weekday{day}
		} else if len(plan) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No routine saved. Try 'fitness routine suggest'.")
			return nil
		}

		for _, day := range days {
			printRoutineDay(cmd, day, plan.Day(day))
		}
		return nil
	},
}

func printRoutineDay(cmd *cobra.Command, day models.Weekday, exercises []models.PlannedExercise) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold(string(day)))
	if len(exercises) == 0 {
		fmt.Fprintln(out, faint("  Rest day"))
		return
	}
	for _, ex := range exercises {
		fmt.Fprintf(out, "  %s %d x %d\n", padRight(ex.Name, 28), ex.Sets, ex.Reps)
	}
}

var routineAddCmd = &cobra.Command{
	Use:   "add <day> <name> <sets> <reps>",
	Short: "Add an exercise to a weekday",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := models.ParseWeekday(args[0])
		if err != nil {
			return err
		}
		name, sets, reps, _, err := models.ParseWorkoutInput(args[1], args[2], args[3], "")
		if err != nil {
			return err
		}
		plan, err := trk.Routine.AddExerciseToDay(day, name, sets, reps)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}
		success(cmd, "Added %s to %s", name, day)
		printRoutineDay(cmd, day, plan.Day(day))
		return nil
	},
}

var routineSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Replace the routine with the suggested split",
	RunE: func(cmd *cobra.Command, args []string) error {
		applied, err := trk.Routine.ApplySuggested(confirmer(cmd, routineYes))
		if err != nil {
			return fmt.Errorf("failed to apply routine: %w", err)
		}
		if !applied {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
		success(cmd, "Suggested routine applied")
		return nil
	},
}

var routineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all planned exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		cleared, err := trk.Routine.Clear(confirmer(cmd, routineYes))
		if err != nil {
			return fmt.Errorf("failed to clear routine: %w", err)
		}
		if !cleared {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
		removed(cmd, "Routine cleared")
		return nil
	},
}

func init() {
	routineCmd.PersistentFlags().BoolVarP(&routineYes, "yes", "y", false, "skip confirmation prompt")

	routineCmd.AddCommand(routineShowCmd)
	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineSuggestCmd)
	routineCmd.AddCommand(routineClearCmd)
	rootCmd.AddCommand(routineCmd)
}
