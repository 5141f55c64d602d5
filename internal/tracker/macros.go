// ABOUTME: Macro calculation entry point that persists the last-used inputs.
package tracker

import (
	"fmt"

	"github.com/harperreed/fitness/internal/macros"
	"github.com/harperreed/fitness/internal/models"
)

// CalculateMacros computes targets for in and saves in as the macro preset.
// Invalid input is rejected before anything is written.
func (t *Tracker) CalculateMacros(in models.MacroPreset) (macros.Result, error) {
	res, err := macros.Calculate(in)
	if err != nil {
		return macros.Result{}, err
	}
	if err := t.store.Write(KeyMacroPreset, in); err != nil {
		return macros.Result{}, fmt.Errorf("save macro preset: %w", err)
	}
	return res, nil
}

// LastMacroPreset returns the inputs of the most recent calculation.
func (t *Tracker) LastMacroPreset() (models.MacroPreset, bool, error) {
	var p models.MacroPreset
	found, err := t.store.Read(KeyMacroPreset, &p)
	if err != nil {
		return models.MacroPreset{}, false, fmt.Errorf("read macro preset: %w", err)
	}
	return p, found, nil
}
