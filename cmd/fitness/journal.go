// ABOUTME: CLI commands for the mood journal.
// ABOUTME: Adds, lists (newest first), and deletes journal entries.
package main

import (
	"fmt"

	"github.com/harperreed/fitness/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	journalNotes string
	journalLimit int
)

var journalCmd = &cobra.Command{
	Use:     "journal",
	Aliases: []string{"j"},
	Short:   "Record how training feels",
	Long: `Keep a short mood journal alongside your workouts.

EXAMPLES:

  fitness journal add Great --notes "Hit a squat PR"
  fitness journal add Tired
  fitness journal list
  fitness journal delete 1741597200000`,
}

var journalAddCmd = &cobra.Command{
	Use:     "add <mood>",
	Aliases: []string{"a"},
	Short:   "Add a journal entry",
	Long: `Add a journal entry. Mood is required; common choices are
Great, Good, Okay, Tired, and Stressed, but any label works.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := trk.Journal.AddEntry(args[0], journalNotes)
		if err != nil {
			return err
		}
		success(cmd, "Journal entry saved")
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", faint(fmt.Sprint(e.ID)), e.Mood)
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recent journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		entries, err := trk.Journal.RecentEntries(journalLimit)
		if err != nil {
			return fmt.Errorf("failed to list journal: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(out, "No journal entries yet.")
			return nil
		}
		for _, e := range entries {
			notes := ""
			if e.Notes != "" {
				notes = faint(fmt.Sprintf(" (%s)", truncate(e.Notes, 50)))
			}
			fmt.Fprintf(out, "%s %s %s%s\n",
				faint(fmt.Sprint(e.ID)),
				faint(e.Date.In(trk.Location()).Format("2006-01-02 15:04")),
				padRight(e.Mood, 10),
				notes)
		}
		return nil
	},
}

var journalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a journal entry",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ok, err := trk.Journal.DeleteEntry(id)
		if err != nil {
			return fmt.Errorf("failed to delete journal entry: %w", err)
		}
		if !ok {
			notice(cmd, "No journal entry with ID %d", id)
			return nil
		}
		removed(cmd, "Deleted journal entry %d", id)
		return nil
	},
}

func init() {
	journalAddCmd.Flags().StringVar(&journalNotes, "notes", "", "notes for the entry")
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", tracker.DefaultRecentLimit, "max number of results")

	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalDeleteCmd)
	rootCmd.AddCommand(journalCmd)
}
