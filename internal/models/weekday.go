// ABOUTME: Weekday names used as keys of the routine and diet plans.
// ABOUTME: Accepts full names or three-letter abbreviations, case-insensitively.
package models

import (
	"strings"
	"time"
)

// Weekday is one of the seven fixed plan keys.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the plan days in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid reports whether d is one of the seven plan days.
func (d Weekday) IsValid() bool {
	for _, w := range Weekdays {
		if w == d {
			return true
		}
	}
	return false
}

// ParseWeekday resolves "monday", "Mon", "MONDAY" etc. to a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", Invalid("day", "weekday is required")
	}
	for _, w := range Weekdays {
		name := strings.ToLower(string(w))
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			return w, nil
		}
	}
	return "", Invalid("day", "unknown weekday %q", s)
}

// WeekdayOf returns the plan day t falls on, in t's location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday().String())
}
