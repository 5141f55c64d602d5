// ABOUTME: CLI command for the stored appearance preference.
// ABOUTME: Shows, sets, or cycles light/dark/system mode.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/tracker"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system|cycle]",
	Short: "Show or change the theme preference",
	Long: `Show or change the stored theme preference.

"system" follows the host setting (COLORFGBG or FITNESS_DARK=1 in a terminal).
"cycle" steps light -> dark -> system -> light.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "system", "cycle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var mode models.ThemeMode
		var err error

		switch {
		case len(args) == 0:
			mode, err = trk.Theme()
		case strings.EqualFold(args[0], "cycle"):
			mode, err = trk.CycleTheme()
		default:
			if mode, err = models.ParseThemeMode(args[0]); err != nil {
				return err
			}
			err = trk.SetTheme(mode)
		}
		if err != nil {
			return err
		}

		effective := tracker.EffectiveTheme(mode, systemPrefersDark())
		if len(args) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s (%s)\n", mode, effective)
			return nil
		}
		success(cmd, "Theme set to %s (%s)", mode, effective)
		return nil
	},
}

// systemPrefersDark guesses the terminal background. COLORFGBG is "fg;bg"
// with bg 0-6 or 8 meaning dark.
func systemPrefersDark() bool {
	if v := os.Getenv("FITNESS_DARK"); v != "" {
		return v == "1" || strings.EqualFold(v, "true")
	}
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	switch parts[len(parts)-1] {
	case "0", "1", "2", "3", "4", "5", "6", "8":
		return true
	}
	return false
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
