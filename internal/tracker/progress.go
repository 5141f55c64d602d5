// ABOUTME: Progress series derived from the workout log.
// ABOUTME: One volume point per logged entry, grouped by exercise name.
package tracker

import (
	"time"
)

// VolumePoint is one entry's total volume (weight x sets x reps).
type VolumePoint struct {
	Date   time.Time `json:"date"`
	Volume float64   `json:"volume"`
}

// VolumeSeries is the chronological volume history of one exercise.
type VolumeSeries struct {
	Exercise string        `json:"exercise"`
	Points   []VolumePoint `json:"points"`
}

// VolumeByExercise returns one series per exercise name, ordered by the
// exercise's first appearance in the log.
func (w *WorkoutLog) VolumeByExercise() ([]VolumeSeries, error) {
	log, err := w.Entries()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	var series []VolumeSeries
	for _, e := range log {
		i, ok := index[e.Name]
		if !ok {
			i = len(series)
			index[e.Name] = i
			series = append(series, VolumeSeries{Exercise: e.Name})
		}
		series[i].Points = append(series[i].Points, VolumePoint{Date: e.Date, Volume: e.Volume()})
	}
	return series, nil
}

// TopExercises returns the first n series by first appearance.
func (w *WorkoutLog) TopExercises(n int) ([]VolumeSeries, error) {
	series, err := w.VolumeByExercise()
	if err != nil {
		return nil, err
	}
	if n > 0 && n < len(series) {
		series = series[:n]
	}
	return series, nil
}
