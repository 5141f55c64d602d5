// ABOUTME: CLI command for the macro calculator.
// ABOUTME: Flags override the last saved inputs; results are rounded for display.
package main

import (
	"fmt"

	"github.com/harperreed/fitness/internal/models"
	"github.com/spf13/cobra"
)

var (
	macroAge      int
	macroWeight   float64
	macroHeight   int
	macroGender   string
	macroActivity float64
	macroGoal     string
)

var macrosCmd = &cobra.Command{
	Use:     "macros",
	Aliases: []string{"m"},
	Short:   "Calculate daily calorie and macro targets",
	Long: `Calculate BMR (Mifflin-St Jeor), TDEE, and daily protein, fat, and
carb targets. The inputs are saved, so later runs only need the flags that
changed.

ACTIVITY MULTIPLIERS:

  1.2     sedentary
  1.375   light exercise 1-3 days/week
  1.55    moderate exercise 3-5 days/week
  1.725   hard exercise 6-7 days/week
  1.9     very hard exercise or physical job

GOALS:

  cut (-500 kcal), maintain, bulk (+300 kcal)

EXAMPLES:

  fitness macros --age 30 --weight 80 --height 180 --gender male
  fitness macros --goal cut            # reuse the saved inputs
  fitness macros --weight 78.5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, found, err := trk.LastMacroPreset()
		if err != nil {
			return err
		}
		if !found {
			in = models.MacroPreset{Activity: 1.55, Goal: models.GoalMaintain}
		}

		flags := cmd.Flags()
		if flags.Changed("age") {
			in.Age = macroAge
		}
		if flags.Changed("weight") {
			in.Weight = macroWeight
		}
		if flags.Changed("height") {
			in.Height = macroHeight
		}
		if flags.Changed("gender") || in.Gender == "" {
			if in.Gender, err = models.ParseGender(macroGender); err != nil {
				return err
			}
		}
		if flags.Changed("activity") {
			in.Activity = macroActivity
		}
		if flags.Changed("goal") {
			if in.Goal, err = models.ParseGoal(macroGoal); err != nil {
				return err
			}
		}

		res, err := trk.CalculateMacros(in)
		if err != nil {
			return err
		}

		r := res.Rounded()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %d y, %g kg, %d cm, %s, x%g, %s\n", faint("Inputs:"),
			in.Age, in.Weight, in.Height, in.Gender, in.Activity, in.Goal)
		fmt.Fprintf(out, "  %s %.0f kcal\n", padRight("BMR", 10), res.BMR)
		fmt.Fprintf(out, "  %s %.0f kcal\n", padRight("TDEE", 10), res.TDEE)
		fmt.Fprintf(out, "  %s %s\n", padRight("Target", 10), bold(fmt.Sprintf("%d kcal", r.Calories)))
		fmt.Fprintf(out, "  %s %d g\n", padRight("Protein", 10), r.ProteinG)
		fmt.Fprintf(out, "  %s %d g\n", padRight("Fat", 10), r.FatG)
		fmt.Fprintf(out, "  %s %d g\n", padRight("Carbs", 10), r.CarbsG)
		return nil
	},
}

func init() {
	macrosCmd.Flags().IntVar(&macroAge, "age", 0, "age in years")
	macrosCmd.Flags().Float64Var(&macroWeight, "weight", 0, "body weight in kg")
	macrosCmd.Flags().IntVar(&macroHeight, "height", 0, "height in cm")
	macrosCmd.Flags().StringVar(&macroGender, "gender", "male", "male or other")
	macrosCmd.Flags().Float64Var(&macroActivity, "activity", 1.55, "activity multiplier")
	macrosCmd.Flags().StringVar(&macroGoal, "goal", "maintain", "cut, maintain, or bulk")
	rootCmd.AddCommand(macrosCmd)
}
