// Package valueobject contains domain value objects for the budget engine.
package valueobject

import "time"

// monthKeyLayout is the time layout for month keys ("YYYY-MM").
const monthKeyLayout = "2006-01"

// MonthKey scopes manual paid-status overrides to a calendar month.
// It rotates every month, so manual flags reset when a new month starts.
type MonthKey string

// MonthKeyFor returns the month key for the month containing the given date.
func MonthKeyFor(date time.Time) MonthKey {
	return MonthKey(date.Format(monthKeyLayout))
}

// String returns the "YYYY-MM" representation.
func (k MonthKey) String() string {
	return string(k)
}

// Contains reports whether the given date falls inside this key's month.
func (k MonthKey) Contains(date time.Time) bool {
	return MonthKeyFor(date) == k
}

// Valid reports whether the key parses as "YYYY-MM".
func (k MonthKey) Valid() bool {
	_, err := time.Parse(monthKeyLayout, string(k))
	return err == nil
}
