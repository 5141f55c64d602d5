// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fitness/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to log workouts and read your plans through
a standardized protocol. The server communicates via stdin/stdout; logs go to
the log file only.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fitness": {
        "command": "fitness",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_workout              Log an exercise with sets, reps, and weight
  list_workouts            Workouts grouped by day
  delete_workout           Delete a workout entry
  add_journal_entry        Record mood and notes
  list_journal             Recent journal entries
  delete_journal_entry     Delete a journal entry
  get_routine              Weekly routine or one day
  add_routine_exercise     Add an exercise to a weekday
  apply_suggested_routine  Load the suggested split
  clear_routine            Remove all planned exercises
  get_diet                 Weekly diet or one day
  apply_diet_preset        Load a diet preset
  clear_diet               Remove the diet plan
  calculate_macros         Calorie and macro targets
  search_exercises         Browse the exercise library
  workout_volume           Volume history per exercise

AVAILABLE RESOURCES:

  fitness://today      Today's plan and logged workouts
  fitness://week       Last seven days of workouts
  fitness://summary    Dashboard`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(trk)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
