// ABOUTME: CLI command for the rest countdown timer.
// ABOUTME: Counts down in place, rings the bell on completion, and resets on Ctrl-C.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/harperreed/fitness/internal/timer"
	"github.com/spf13/cobra"
)

var timerSound bool

var timerCmd = &cobra.Command{
	Use:     "timer <duration>",
	Aliases: []string{"t", "rest"},
	Short:   "Run a rest timer",
	Long: `Count down a rest period between sets. The duration is either a number of
seconds or MM:SS. Press Ctrl-C to cancel.

The terminal bell rings when the timer finishes. Disable it with --sound=false
or "timer_sound": false in the config file.

EXAMPLES:

  fitness timer 90
  fitness timer 2:30
  fitness timer 60 --sound=false`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := parseTimerDuration(args[0])
		if err != nil {
			return err
		}

		sound := timerSound
		if !cmd.Flags().Changed("sound") {
			if c, err := loadConfig(); err == nil {
				sound = c.GetTimerSound()
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runTimer(ctx, cmd, seconds, sound)
	},
}

// runTimer blocks until the countdown finishes or ctx is canceled.
func runTimer(ctx context.Context, cmd *cobra.Command, seconds int, sound bool) error {
	out := cmd.OutOrStdout()
	done := make(chan timer.Completion, 1)

	opts := []timer.Option{
		timer.OnTick(func(remaining int) {
			fmt.Fprintf(out, "\r%s ", timer.Format(remaining))
		}),
		timer.OnComplete(func(c timer.Completion) { done <- c }),
	}
	if sound {
		opts = append(opts, timer.WithNotifier(timer.Bell{W: out}))
	}

	cd := timer.New(opts...)
	if err := cd.SetDuration(seconds); err != nil {
		return err
	}
	if seconds == 0 {
		fmt.Fprintln(out, timer.Format(0))
		return nil
	}

	fmt.Fprintf(out, "%s ", cd.Display())
	cd.Start()

	select {
	case <-done:
		fmt.Fprintln(out)
		success(cmd, "Rest over")
		return nil
	case <-ctx.Done():
		cd.Reset()
		fmt.Fprintln(out)
		notice(cmd, "Timer canceled")
		return nil
	}
}

// parseTimerDuration accepts "90" or "1:30".
func parseTimerDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if m, sec, ok := strings.Cut(s, ":"); ok {
		mins, err1 := strconv.Atoi(m)
		secs, err2 := strconv.Atoi(sec)
		if err1 != nil || err2 != nil || mins < 0 || secs < 0 || secs > 59 {
			return 0, fmt.Errorf("invalid duration: %s (use seconds or MM:SS)", s)
		}
		return mins*60 + secs, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid duration: %s (use seconds or MM:SS)", s)
	}
	return n, nil
}

func init() {
	timerCmd.Flags().BoolVar(&timerSound, "sound", true, "ring the terminal bell when done")
	rootCmd.AddCommand(timerCmd)
}
