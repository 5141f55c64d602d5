// ABOUTME: Tracker ties the record store to the domain operations.
// ABOUTME: Each sub-object (workouts, routine, diet, journal) owns one persisted key.
package tracker

import (
	"time"

	"github.com/harperreed/fitness/internal/store"
	"github.com/sirupsen/logrus"
)

// Persisted record keys.
const (
	KeyWorkouts    = "workouts"
	KeyRoutines    = "routines"
	KeyDietPlan    = "dietPlan"
	KeyJournals    = "journals"
	KeyMacroPreset = "macroPreset"
	KeyThemeMode   = "themeMode"
)

// Clock supplies timestamps for new entries.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Confirm asks the user to approve a destructive change. A nil Confirm declines.
type Confirm func(prompt string) bool

// Confirmed approves every prompt.
func Confirmed(string) bool { return true }

func (c Confirm) ask(prompt string) bool {
	return c != nil && c(prompt)
}

// Tracker is the application core.
type Tracker struct {
	store *store.Store
	clock Clock
	loc   *time.Location
	log   *logrus.Entry

	Workouts *WorkoutLog
	Routine  *RoutinePlanner
	Diet     *DietPlanner
	Journal  *Journal
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(t *Tracker) { t.clock = c }
}

// WithLocation sets the zone used to bucket entries by calendar day.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) { t.loc = loc }
}

// New builds a Tracker over s.
func New(s *store.Store, opts ...Option) *Tracker {
	t := &Tracker{
		store: s,
		clock: ClockFunc(time.Now),
		loc:   time.Local,
		log:   logrus.WithField("component", "tracker"),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.Workouts = &WorkoutLog{t: t}
	t.Routine = &RoutinePlanner{t: t}
	t.Diet = &DietPlanner{t: t}
	t.Journal = &Journal{t: t}
	return t
}

// Store exposes the underlying record store.
func (t *Tracker) Store() *store.Store { return t.store }

// Location is the zone used for calendar-day grouping.
func (t *Tracker) Location() *time.Location { return t.loc }

// Now returns the tracker clock's current time.
func (t *Tracker) Now() time.Time { return t.clock.Now() }

// Close closes the store.
func (t *Tracker) Close() error { return t.store.Close() }

// dayKey buckets ts into a local calendar day.
func (t *Tracker) dayKey(ts time.Time) string {
	return ts.In(t.loc).Format(time.DateOnly)
}
