// ABOUTME: CLI commands for Charm-based sync.
// ABOUTME: Supports link, unlink, status, repair, reset, and wipe operations.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/charm/kv"
	"github.com/harperreed/fitness/internal/charm"
	"github.com/harperreed/fitness/internal/store"
	"github.com/harperreed/fitness/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var syncYes bool

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync fitness data across devices",
	Long: `Sync fitness data across devices using Charm Cloud.

Your data is E2E encrypted with your SSH key before upload.
The server never sees your unencrypted records.

Sync applies when the charm backend is selected:

  fitness --backend charm workout list
  export FITNESS_BACKEND=charm

GETTING STARTED:

  1. Link your device (creates/uses SSH key automatically):
     fitness sync link

  2. On other devices, link with the same Charm account:
     fitness sync link

  3. Check sync status:
     fitness sync status

COMMANDS:

  link        Link this device to your Charm account
  unlink      Disconnect this device from Charm
  status      Show sync status and account info
  repair      Repair database corruption
  reset       Reset local data and restore from cloud (destructive)
  wipe        Delete cloud and local data (destructive)

Data syncs automatically after each write with the charm backend.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
}

func runCharm(cmd *cobra.Command, arg string) error {
	charmCmd := exec.Command("charm", arg)
	charmCmd.Stdin = cmd.InOrStdin()
	charmCmd.Stdout = cmd.OutOrStdout()
	charmCmd.Stderr = cmd.ErrOrStderr()
	return charmCmd.Run()
}

var syncLinkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link this device to Charm",
	Long: `Link this device to your Charm account.

If you don't have a Charm account, one will be created using your SSH key.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm(cmd, "link"); err != nil {
			return fmt.Errorf("failed to link: %w\n\nMake sure 'charm' CLI is installed: go install github.com/charmbracelet/charm@latest", err)
		}

		success(cmd, "Device linked to Charm")

		// Sync immediately after linking
		c, err := charm.Open(charm.DefaultDBName)
		if err != nil {
			notice(cmd, "⚠ Initial sync failed: %v", err)
			return nil
		}
		defer c.Close()
		if err := c.Sync(); err != nil {
			notice(cmd, "⚠ Initial sync failed: %v", err)
		} else {
			success(cmd, "Initial sync complete")
		}
		return nil
	},
}

var syncUnlinkCmd = &cobra.Command{
	Use:         "unlink",
	Short:       "Disconnect from Charm",
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCharm(cmd, "unlink"); err != nil {
			return fmt.Errorf("failed to unlink: %w", err)
		}
		success(cmd, "Device unlinked from Charm")
		fmt.Fprintln(cmd.OutOrStdout(), "Your local fitness data is preserved.")
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:         "status",
	Short:       "Show sync status",
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		c, err := charm.Open(charm.DefaultDBName)
		if err != nil {
			notice(cmd, "Charm client not initialized")
			fmt.Fprintln(out, "\nRun 'fitness sync link' to connect to Charm.")
			return nil
		}
		t := tracker.New(store.New(c))
		defer t.Close()

		id, err := c.ID()
		if err != nil {
			notice(cmd, "Not linked to Charm")
			fmt.Fprintln(out, "\nRun 'fitness sync link' to connect to Charm.")
			return nil
		}

		fmt.Fprintln(out, "Charm ID:", id)
		fmt.Fprintln(out, "Server:", os.Getenv("CHARM_HOST"))
		if c.IsReadOnly() {
			notice(cmd, "Read-only: another process holds the database")
		}
		fmt.Fprintln(out)

		workouts, _ := t.Workouts.Entries()
		journal, _ := t.Journal.Entries()

		success(cmd, "Connected to Charm")
		fmt.Fprintf(out, "  Workouts: %d\n", len(workouts))
		fmt.Fprintf(out, "  Journal: %d\n", len(journal))
		return nil
	},
}

var syncRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repair database corruption",
	Long: `Repair database corruption by checkpointing WAL, removing SHM files, checking integrity, and vacuuming.

Run with --force to attempt recovery even if integrity checks fail.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		fmt.Fprintln(cmd.OutOrStdout(), "Repairing fitness database...")
		result, err := kv.Repair(charm.DefaultDBName, force)

		if result.WalCheckpointed {
			success(cmd, "WAL checkpointed")
		}
		if result.ShmRemoved {
			success(cmd, "SHM file removed")
		}
		if result.IntegrityOK {
			success(cmd, "Integrity check passed")
		} else {
			removed(cmd, "Integrity check failed")
		}
		if result.Vacuumed {
			success(cmd, "Database vacuumed")
		}

		if err != nil {
			if !force {
				notice(cmd, "\nRun with --force to attempt recovery.")
			}
			return fmt.Errorf("repair failed: %w", err)
		}

		success(cmd, "Repair complete")
		return nil
	},
}

var syncResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local data and restore from cloud",
	Long: `Delete all local data and restore from Charm Cloud.

This is a destructive operation. All local changes that have not synced are lost.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := confirmer(cmd, syncYes)("This will DELETE all local fitness data and restore from cloud. Continue?")
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
			return nil
		}

		c, err := charm.Open(charm.DefaultDBName)
		if err != nil {
			return err
		}
		err = multierr.Append(c.Reset(), c.Close())
		if err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}

		success(cmd, "Local data reset and restored from cloud")
		return nil
	},
}

var syncWipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all cloud and local data",
	Long: `Delete every fitness record, all cloud backups, and local data files.

This is a DESTRUCTIVE operation. ALL data will be permanently deleted.`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !syncYes {
			fmt.Fprintln(out, "This will PERMANENTLY DELETE all cloud backups and local fitness data.")
			fmt.Fprint(out, "Type 'wipe' to confirm: ")
			confirm, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if strings.TrimSpace(confirm) != "wipe" {
				fmt.Fprintln(out, "Canceled.")
				return nil
			}
		}

		deleted := 0
		if c, err := charm.Open(charm.DefaultDBName); err == nil {
			n, werr := c.Wipe()
			if cerr := c.Close(); werr == nil {
				werr = cerr
			}
			if werr != nil {
				return fmt.Errorf("wipe failed: %w", werr)
			}
			deleted = n
		}

		result, err := kv.Wipe(charm.DefaultDBName)
		if err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		success(cmd, "Data wiped successfully")
		fmt.Fprintf(out, "  Records deleted: %d\n", deleted)
		fmt.Fprintf(out, "  Cloud backups deleted: %d\n", result.CloudBackupsDeleted)
		fmt.Fprintf(out, "  Local files deleted: %d\n", result.LocalFilesDeleted)
		return nil
	},
}

func init() {
	syncCmd.PersistentFlags().BoolVarP(&syncYes, "yes", "y", false, "skip confirmation prompt")
	syncRepairCmd.Flags().Bool("force", false, "Attempt recovery even if integrity checks fail")

	syncCmd.AddCommand(syncLinkCmd)
	syncCmd.AddCommand(syncUnlinkCmd)
	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncRepairCmd)
	syncCmd.AddCommand(syncResetCmd)
	syncCmd.AddCommand(syncWipeCmd)
	rootCmd.AddCommand(syncCmd)
}
