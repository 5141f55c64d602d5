// ABOUTME: Theme preference stored under "themeMode".
package tracker

import (
	"fmt"

	"github.com/harperreed/fitness/internal/models"
	"github.com/harperreed/fitness/internal/store"
)

// Theme returns the stored mode, defaulting to system.
func (t *Tracker) Theme() (models.ThemeMode, error) {
	mode := models.ThemeSystem
	if _, err := t.store.Read(KeyThemeMode, &mode); err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	return mode, nil
}

// SetTheme stores mode.
func (t *Tracker) SetTheme(mode models.ThemeMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if err := t.store.Write(KeyThemeMode, mode); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// CycleTheme advances light -> dark -> system -> light and returns the new mode.
func (t *Tracker) CycleTheme() (models.ThemeMode, error) {
	var next models.ThemeMode
	err := store.Update(t.store, KeyThemeMode, func(mode *models.ThemeMode) error {
		if *mode == "" {
			*mode = models.ThemeSystem
		}
		*mode = mode.Next()
		next = *mode
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("cycle theme: %w", err)
	}
	return next, nil
}

// EffectiveTheme resolves mode against the host dark-mode preference.
func EffectiveTheme(mode models.ThemeMode, systemDark bool) models.ThemeMode {
	return mode.Effective(systemDark)
}
