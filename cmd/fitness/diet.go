// ABOUTME: CLI commands for the weekly diet plan.
// ABOUTME: Shows the plan or one day, applies a preset, or clears it.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/tracker"
	"github.com/spf13/cobra"
)

var dietYes bool

var dietCmd = &cobra.Command{
	Use:     "diet",
	Aliases: []string{"d"},
	Short:   "Plan your meals for the week",
	Long: `Plan breakfast, lunch, snack, dinner, and a before-bed meal for each weekday.

PRESETS:

  general      Balanced plan with a slight calorie deficit
  regional     Pakistani plan built on desi staples, with notes
               (also accepted as "pakistani")

EXAMPLES:

  fitness diet show
  fitness diet show friday
  fitness diet apply general
  fitness diet clear --yes`,
}

var dietShowCmd = &cobra.Command{
	Use:   "show [day]",
	Short: "Show the diet plan",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 1 {
			day, err := models.ParseWeekday(args[0])
			if err != nil {
				return err
			}
			meals, err := trk.Diet.GetDay(day)
			if err != nil {
				return fmt.Errorf("failed to read diet: %w", err)
			}
			printMeals(cmd, day, meals)
			return nil
		}

		plan, err := trk.Diet.Plan()
		if err != nil {
			return fmt.Errorf("failed to read diet: %w", err)
		}
		if plan.IsEmpty() {
			fmt.Fprintf(out, "No diet plan saved. Try 'fitness diet apply %s'.\n", strings.Join(tracker.DietPresetNames(), "|"))
			return nil
		}
		for _, day := range models.Weekdays {
			if meals, ok := plan.Days[day]; ok {
				printMeals(cmd, day, meals.WithPlaceholders())
			}
		}
		if plan.Notes != "" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, plan.Notes)
		}
		return nil
	},
}

func printMeals(cmd *cobra.Command, day models.Weekday, m models.Meals) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold(string(day)))
	rows := [][2]string{
		{"Breakfast", m.Breakfast},
		{"Lunch", m.Lunch},
		{"Snack", m.Snack},
		{"Dinner", m.Dinner},
		{"Before bed", m.BeforeBed},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "  %s %s\n", faint(padRight(r[0], 11)), r[1])
	}
}

var dietApplyCmd = &cobra.Command{
	Use:       "apply <preset>",
	Short:     "Replace the diet plan with a preset",
	Args:      cobra.ExactArgs(1),
	ValidArgs: tracker.DietPresetNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		applied, err := trk.Diet.ApplyPreset(args[0], confirmer(cmd, dietYes))
		if err != nil {
			return err
		}
		if !applied {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
		success(cmd, "Applied %s diet plan", strings.ToLower(args[0]))
		return nil
	},
}

var dietClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the saved diet plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		cleared, err := trk.Diet.Clear(confirmer(cmd, dietYes))
		if err != nil {
			return fmt.Errorf("failed to clear diet: %w", err)
		}
		if !cleared {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}
		removed(cmd, "Diet plan cleared")
		return nil
	},
}

func init() {
	dietCmd.PersistentFlags().BoolVarP(&dietYes, "yes", "y", false, "skip confirmation prompt")

	dietCmd.AddCommand(dietShowCmd)
	dietCmd.AddCommand(dietApplyCmd)
	dietCmd.AddCommand(dietClearCmd)
	rootCmd.AddCommand(dietCmd)
}
