// ABOUTME: CLI command for training progress.
// ABOUTME: Prints per-exercise volume history with a text bar per session.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/fitness/internal/tracker"
	"github.com/spf13/cobra"
)

var progressTop int

const progressBarWidth = 30

var progressCmd = &cobra.Command{
	Use:   "progress [exercise]",
	Short: "Show volume progress per exercise",
	Long: `Show training volume (weight x sets x reps) for each logged session.

Without an argument the first --top exercises you logged are shown.

EXAMPLES:

  fitness progress
  fitness progress --top 5
  fitness progress "Bench Press"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var series []tracker.VolumeSeries
		var err error
		if len(args) > 0 {
			name := strings.Join(args, " ")
			var all []tracker.VolumeSeries
			all, err = trk.Workouts.VolumeByExercise()
			for _, vs := range all {
				if strings.EqualFold(vs.Exercise, name) {
					series = append(series, vs)
				}
			}
		} else {
			series, err = trk.Workouts.TopExercises(progressTop)
		}
		if err != nil {
			return fmt.Errorf("failed to compute progress: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(series) == 0 {
			fmt.Fprintln(out, "No workout data yet.")
			return nil
		}

		for _, vs := range series {
			var peak float64
			for _, p := range vs.Points {
				peak = max(peak, p.Volume)
			}
			fmt.Fprintln(out, bold(vs.Exercise))
			for _, p := range vs.Points {
				width := 0
				if peak > 0 {
					width = int(p.Volume / peak * progressBarWidth)
				}
				fmt.Fprintf(out, "  %s %s %g\n",
					faint(p.Date.In(trk.Location()).Format("Jan 02")),
					padRight(strings.Repeat("█", width), progressBarWidth),
					p.Volume)
			}
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().IntVarP(&progressTop, "top", "n", 3, "number of exercises to show")
	rootCmd.AddCommand(progressCmd)
}
