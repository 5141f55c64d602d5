// ABOUTME: ThemeMode model for the light/dark/system preference.
// ABOUTME: System mode defers to the host's dark-mode setting.
package models

import "strings"

// ThemeMode is the stored appearance preference.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// ThemeModes is the cycle order.
var ThemeModes = []ThemeMode{ThemeLight, ThemeDark, ThemeSystem}

// Validate rejects unknown modes.
func (m ThemeMode) Validate() error {
	for _, mode := range ThemeModes {
		if m == mode {
			return nil
		}
	}
	return Invalid("theme", "unknown mode %q (use light, dark, or system)", string(m))
}

// ParseThemeMode normalizes and validates s.
func ParseThemeMode(s string) (ThemeMode, error) {
	m := ThemeMode(strings.ToLower(strings.TrimSpace(s)))
	return m, m.Validate()
}

// Next returns the mode after m in the cycle.
func (m ThemeMode) Next() ThemeMode {
	for i, mode := range ThemeModes {
		if mode == m {
			return ThemeModes[(i+1)%len(ThemeModes)]
		}
	}
	return ThemeLight
}

// Effective resolves system mode against the host preference.
func (m ThemeMode) Effective(systemDark bool) ThemeMode {
	if m == ThemeSystem {
		if systemDark {
			return ThemeDark
		}
		return ThemeLight
	}
	return m
}
