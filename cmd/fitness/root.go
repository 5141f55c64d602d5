// ABOUTME: Root Cobra command for the fitness CLI.
// ABOUTME: Handles config, logging, and record store lifecycle via PersistentPre/PostRunE.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitness/internal/config"
	"github.com/harperreed/fitness/internal/logging"
	"github.com/harperreed/fitness/internal/tracker"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// skipStoreAnnotation marks commands that run without opening the record store.
const skipStoreAnnotation = "fitness/skip-store"

var (
	cfg       *config.Config
	trk       *tracker.Tracker
	logCloser io.Closer

	flagBackend string
	flagDataDir string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "Personal workout, routine, and diet tracker",
	Long: `Fitness is a CLI tool for logging workouts and planning your training week.

WHAT IT TRACKS:

  Workouts     exercise, sets, reps, and weight, grouped by day
  Routine      planned exercises per weekday (empty days are rest days)
  Diet         breakfast, lunch, snack, dinner, and before-bed meals per weekday
  Journal      mood and notes
  Macros       BMR, TDEE, and daily protein/fat/carb targets

QUICK START:

  $ fitness workout add "Bench Press" 3 10 60   # Log 3x10 at 60 kg
  $ fitness workout list                        # See workouts by day
  $ fitness routine suggest                     # Load the suggested split
  $ fitness diet apply general                  # Load a diet preset
  $ fitness macros --age 30 --weight 80 --height 180 --gender male
  $ fitness timer 90                            # 90 second rest timer

MORE:

  $ fitness journal add Great --notes "PR on squats"
  $ fitness exercises list --muscle Chest
  $ fitness progress                            # Volume per exercise
  $ fitness export json -o backup.json

STORAGE BACKENDS:

  badger (default)   embedded key-value store in the data directory
  sqlite             single-file database in the data directory
  charm              Charm KV, synced across devices and E2E encrypted

  Select with --backend, the FITNESS_BACKEND environment variable, or the
  "backend" key in ~/.config/fitness/config.json.

MCP INTEGRATION:

  Run 'fitness mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "fitness": { "command": "fitness", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in ~/.local/share/fitness (or $XDG_DATA_HOME/fitness).
  Logs are written to fitness.log in the same directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "help" || cmd.Annotations[skipStoreAnnotation] == "true" {
			return nil
		}
		return openTracker()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeTracker()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: badger, sqlite, or charm")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/fitness)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "also write logs to stderr")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	c, err := config.Load()
	if err != nil {
		return nil, err
	}
	c.BackendOverride = flagBackend
	if flagDataDir != "" {
		c.DataDir = flagDataDir
	}
	return c, nil
}

func openTracker() error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logCloser = logging.Setup(logging.Params{
		LogFileName:   cfg.LogPath(),
		LogToStderr:   flagVerbose,
		LogLevel:      cfg.GetLogLevel(),
		LogFormatJSON: cfg.LogJSON,
	})

	backend := cfg.GetBackend()
	s, err := cfg.OpenStore()
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", backend, err)
	}
	trk = tracker.New(s)
	logrus.WithFields(logrus.Fields{"backend": backend, "data_dir": cfg.GetDataDir()}).Debug("store opened")
	return nil
}

func closeTracker() error {
	var err error
	if trk != nil {
		err = multierr.Append(err, trk.Close())
		trk = nil
	}
	if logCloser != nil {
		err = multierr.Append(err, logCloser.Close())
		logCloser = nil
	}
	return err
}

// confirmer returns a Confirm that approves everything when yes is set and
// otherwise asks on the command's input.
func confirmer(cmd *cobra.Command, yes bool) tracker.Confirm {
	if yes {
		return tracker.Confirmed
	}
	return func(prompt string) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
		reader := bufio.NewReader(cmd.InOrStdin())
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			return false
		}
		response = strings.TrimSpace(strings.ToLower(response))
		return response == "y" || response == "yes"
	}
}

// Output helpers write to the command's stdout so tests can capture them.

func success(cmd *cobra.Command, format string, a ...interface{}) {
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ "+format+"\n", a...)
}

func removed(cmd *cobra.Command, format string, a ...interface{}) {
	color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✗ "+format+"\n", a...)
}

func notice(cmd *cobra.Command, format string, a ...interface{}) {
	color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), format+"\n", a...)
}

func faint(s string) string {
	return color.New(color.Faint).Sprint(s)
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
