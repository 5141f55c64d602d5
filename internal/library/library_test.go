// ABOUTME: Tests for the exercise catalog queries.
// ABOUTME: Verifies lookup, filtering, and that callers cannot mutate the catalog.
package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllHasUniqueNames(t *testing.T) {
	all := All()
	require.Len(t, all, 12)

	seen := map[string]bool{}
	for _, e := range all {
		assert.False(t, seen[e.Name], "duplicate %s", e.Name)
		seen[e.Name] = true
		assert.NotEmpty(t, e.Instructions)
	}
}

func TestFindIgnoresCase(t *testing.T) {
	e, ok := Find("  bench press ")
	require.True(t, ok)
	assert.Equal(t, "Bench Press", e.Name)
	assert.Equal(t, "chest", e.Muscle)

	_, ok = Find("Turkish Get-up")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		search string
		muscle string
		want   []string
	}{
		{"everything", "", "", nil},
		{"muscle only", "", "arms", []string{"Bicep Curls", "Tricep Dips"}},
		{"search name", "PRESS", "", []string{"Bench Press", "Overhead Press"}},
		{"search description", "posterior", "", []string{"Deadlift"}},
		{"search and muscle", "bodyweight", "chest", []string{"Push-ups"}},
		{"no match", "zumba", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.search, tt.muscle)
			if tt.want == nil {
				assert.Len(t, got, 12)
				return
			}
			names := []string{}
			for _, e := range got {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestMuscleGroups(t *testing.T) {
	assert.Equal(t, []string{"chest", "legs", "back", "shoulders", "arms", "core"}, MuscleGroups())
}

func TestCallersGetCopies(t *testing.T) {
	e, ok := Find("Squat")
	require.True(t, ok)
	e.Instructions[0] = "changed"

	again, _ := Find("Squat")
	assert.Equal(t, "Position bar on upper back", again.Instructions[0])
}
