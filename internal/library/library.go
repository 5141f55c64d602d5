// ABOUTME: Static exercise demonstration catalog.
// ABOUTME: Supports case-insensitive lookup, search, and muscle-group filtering.
package library

import (
	"slices"
	"strings"
)

// Exercise is one catalog entry.
type Exercise struct {
	Name         string   `json:"name" yaml:"name"`
	Muscle       string   `json:"muscle" yaml:"muscle"`
	Difficulty   string   `json:"difficulty" yaml:"difficulty"`
	Description  string   `json:"description" yaml:"description"`
	Media        string   `json:"media" yaml:"media"`
	MediaType    string   `json:"mediaType" yaml:"mediaType"`
	Instructions []string `json:"instructions" yaml:"instructions"`
}

var catalog = []Exercise{
	{
		Name:         "Bench Press",
		Muscle:       "chest",
		Difficulty:   "Intermediate",
		Description:  "Classic chest exercise for building upper body strength",
		Media:        "images/barbell-bench-press.gif",
		MediaType:    "gif",
		Instructions: []string{"Lie flat on bench", "Grip bar slightly wider than shoulders", "Lower bar to chest", "Press up explosively"},
	},
	{
		Name:         "Squat",
		Muscle:       "legs",
		Difficulty:   "Intermediate",
		Description:  "Compound exercise for building leg strength and mass",
		Media:        "images/squat-tempo-4010.gif",
		MediaType:    "gif",
		Instructions: []string{"Position bar on upper back", "Feet shoulder-width apart", "Lower by bending knees", "Drive through heels to stand"},
	},
	{
		Name:         "Deadlift",
		Muscle:       "back",
		Difficulty:   "Advanced",
		Description:  "Full-body compound movement for posterior chain",
		Media:        "images/barbell-deadlift.gif",
		MediaType:    "gif",
		Instructions: []string{"Stand with feet hip-width", "Grip bar outside legs", "Keep back straight", "Lift by extending hips and knees"},
	},
	{
		Name:         "Overhead Press",
		Muscle:       "shoulders",
		Difficulty:   "Intermediate",
		Description:  "Vertical pressing movement for shoulder development",
		Media:        "images/overhead-press.gif",
		MediaType:    "gif",
		Instructions: []string{"Start bar at shoulders", "Press overhead", "Lock out arms", "Lower with control"},
	},
	{
		Name:         "Pull-ups",
		Muscle:       "back",
		Difficulty:   "Intermediate",
		Description:  "Bodyweight exercise for back and biceps",
		Media:        "images/pullups.gif",
		MediaType:    "gif",
		Instructions: []string{"Hang from bar", "Pull chest to bar", "Control descent", "Repeat"},
	},
	{
		Name:         "Bicep Curls",
		Muscle:       "arms",
		Difficulty:   "Beginner",
		Description:  "Isolation exercise for bicep development",
		Media:        "images/dumbbellbicepcurls.gif",
		MediaType:    "gif",
		Instructions: []string{"Hold dumbbells at sides", "Curl weight up", "Squeeze at top", "Lower slowly"},
	},
	{
		Name:         "Plank",
		Muscle:       "core",
		Difficulty:   "Beginner",
		Description:  "Isometric core strengthening exercise",
		Media:        "images/body-saw-plank.gif",
		MediaType:    "gif",
		Instructions: []string{"Forearms on ground", "Body in straight line", "Hold position", "Engage core"},
	},
	{
		Name:         "Dumbbell Rows",
		Muscle:       "back",
		Difficulty:   "Beginner",
		Description:  "Unilateral back exercise for muscle balance",
		Media:        "images/dumbell-rows.gif",
		MediaType:    "gif",
		Instructions: []string{"Support on bench", "Pull dumbbell to hip", "Squeeze shoulder blade", "Lower with control"},
	},
	{
		Name:         "Lunges",
		Muscle:       "legs",
		Difficulty:   "Beginner",
		Description:  "Unilateral leg exercise for balance and strength",
		Media:        "images/bodyweight-lunges.gif",
		MediaType:    "gif",
		Instructions: []string{"Step forward", "Lower back knee", "Push back to start", "Alternate legs"},
	},
	{
		Name:         "Lateral Raises",
		Muscle:       "shoulders",
		Difficulty:   "Beginner",
		Description:  "Isolation for shoulder width (lateral deltoids)",
		Media:        "images/DB_LAT_RAISE.gif",
		MediaType:    "gif",
		Instructions: []string{"Hold dumbbells at sides", "Raise arms to sides", "Stop at shoulder height", "Lower slowly"},
	},
	{
		Name:         "Push-ups",
		Muscle:       "chest",
		Difficulty:   "Beginner",
		Description:  "Bodyweight chest, shoulder, and tricep builder",
		Media:        "images/anim-push-ups.gif",
		MediaType:    "gif",
		Instructions: []string{"Hands shoulder-width", "Lower chest to ground", "Keep body straight", "Push back up"},
	},
	{
		Name:         "Tricep Dips",
		Muscle:       "arms",
		Difficulty:   "Intermediate",
		Description:  "Bodyweight tricep and chest exercise",
		Media:        "images/Chest-Dips.gif",
		MediaType:    "gif",
		Instructions: []string{"Support on parallel bars", "Lower body down", "Elbows at 90 degrees", "Push back up"},
	},
}

func clone(e Exercise) Exercise {
	e.Instructions = slices.Clone(e.Instructions)
	return e
}

// All returns the whole catalog in display order.
func All() []Exercise {
	out := make([]Exercise, len(catalog))
	for i, e := range catalog {
		out[i] = clone(e)
	}
	return out
}

// Find looks up an exercise by name, ignoring case.
func Find(name string) (Exercise, bool) {
	name = strings.TrimSpace(name)
	for _, e := range catalog {
		if strings.EqualFold(e.Name, name) {
			return clone(e), true
		}
	}
	return Exercise{}, false
}

// Filter returns exercises whose name or description contains search
// (case-insensitive) and whose muscle group equals muscle. Empty arguments
// match everything.
func Filter(search, muscle string) []Exercise {
	search = strings.ToLower(strings.TrimSpace(search))
	muscle = strings.ToLower(strings.TrimSpace(muscle))

	var out []Exercise
	for _, e := range catalog {
		if muscle != "" && e.Muscle != muscle {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.Description), search) {
			continue
		}
		out = append(out, clone(e))
	}
	return out
}

// MuscleGroups lists the distinct muscle groups in first-seen order.
func MuscleGroups() []string {
	var groups []string
	for _, e := range catalog {
		if !slices.Contains(groups, e.Muscle) {
			groups = append(groups, e.Muscle)
		}
	}
	return groups
}
