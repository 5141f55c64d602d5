// ABOUTME: CLI commands for the built-in exercise library.
// ABOUTME: Lists exercises filtered by name and muscle group, or shows one in detail.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/library"
	"github.com/spf13/cobra"
)

var (
	exerciseSearch string
	exerciseMuscle string
)

var exercisesCmd = &cobra.Command{
	Use:         "exercises",
	Aliases:     []string{"ex"},
	Short:       "Browse the exercise library",
	Annotations: map[string]string{skipStoreAnnotation: "true"},
}

var exercisesListCmd = &cobra.Command{
	Use:         "list",
	Aliases:     []string{"ls"},
	Short:       "List exercises",
	Long:        "List library exercises. Muscle groups: " + strings.Join(library.MuscleGroups(), ", ") + ".",
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		found := library.Filter(exerciseSearch, exerciseMuscle)
		if len(found) == 0 {
			fmt.Fprintln(out, "No exercises match.")
			return nil
		}
		for _, e := range found {
			fmt.Fprintf(out, "%s %s %s\n", padRight(e.Name, 26), padRight(e.Muscle, 10), faint(e.Difficulty))
		}
		return nil
	},
}

var exercisesShowCmd = &cobra.Command{
	Use:         "show <name>",
	Short:       "Show instructions for an exercise",
	Args:        cobra.MinimumNArgs(1),
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		e, ok := library.Find(name)
		if !ok {
			return fmt.Errorf("exercise not found: %s", name)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, bold(e.Name))
		fmt.Fprintf(out, "%s %s  %s %s\n", faint("Muscle:"), e.Muscle, faint("Difficulty:"), e.Difficulty)
		fmt.Fprintln(out, e.Description)
		fmt.Fprintln(out)
		for i, step := range e.Instructions {
			fmt.Fprintf(out, "  %d. %s\n", i+1, step)
		}
		if e.Media != "" {
			fmt.Fprintf(out, "\n%s %s\n", faint(e.MediaType+":"), e.Media)
		}
		return nil
	},
}

func init() {
	exercisesListCmd.Flags().StringVarP(&exerciseSearch, "search", "s", "", "filter by name")
	exercisesListCmd.Flags().StringVarP(&exerciseMuscle, "muscle", "m", "", "filter by muscle group")

	exercisesCmd.AddCommand(exercisesListCmd)
	exercisesCmd.AddCommand(exercisesShowCmd)
	rootCmd.AddCommand(exercisesCmd)
}
