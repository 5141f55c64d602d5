// ABOUTME: CLI commands for exporting and importing fitness data.
// ABOUTME: Supports JSON, YAML, Markdown, and Excel export; imports JSON backups.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/harperreed/fitness/internal/export"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fitness data",
	Long: `Export fitness data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)
  xlsx       Excel workbook with one sheet per record (requires --output)

OPTIONS:

  --output, -o   Write to file instead of stdout

EXAMPLES:

  fitness export json                     # Export all data as JSON
  fitness export json -o backup.json      # Save to file
  fitness export yaml                     # Export as YAML
  fitness export markdown > fitness.md
  fitness export xlsx -o fitness.xlsx`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown", "xlsx"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = trk.ExportJSON()
		case "yaml":
			data, err = trk.ExportYAML()
		case "markdown", "md":
			var md string
			md, err = trk.ExportMarkdown()
			data = []byte(md)
		case "xlsx", "excel":
			if exportOutput == "" {
				return fmt.Errorf("xlsx export needs --output")
			}
			data, err = exportWorkbook()
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, markdown, or xlsx)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			success(cmd, "Exported to %s", exportOutput)
			return nil
		}

		_, err = cmd.OutOrStdout().Write(data)
		if err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
			_, err = io.WriteString(cmd.OutOrStdout(), "\n")
		}
		return err
	},
}

func exportWorkbook() ([]byte, error) {
	all, err := trk.GetAllData()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, all, trk.Location()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import fitness data from JSON",
	Long: `Import fitness data from a JSON backup file.

Workout and journal entries are merged by ID; entries already present are
skipped. Routine, diet, macro preset, and theme records in the file replace
the saved ones.

EXAMPLES:

  fitness import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		res, err := trk.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		success(cmd, "Imported from %s", filename)
		fmt.Fprintf(cmd.OutOrStdout(), "  Workouts: %d\n  Journal: %d\n  Records replaced: %d\n  Skipped duplicates: %d\n",
			res.Workouts, res.Journal, res.Records, res.Skipped)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
