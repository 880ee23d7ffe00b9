package timeutil

import (
	"math"
	"time"
)

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the difference between the calendar days of a and b,
// in a's location. The result is positive when a's day is after b's day,
// regardless of the time of day on either side.
func DaysBetween(a, b time.Time) int {
	da := StartOfDay(a)
	db := StartOfDay(b.In(a.Location()))
	// Rounding absorbs the 23h and 25h days around DST transitions.
	return int(math.Round(da.Sub(db).Hours() / 24))
}
