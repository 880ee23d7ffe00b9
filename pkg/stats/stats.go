// Package stats derives streak and heatmap figures from journal entries.
// Everything here is a pure function over a snapshot the caller obtained
// from the store; nothing reads or writes persistence.
package stats

import (
	"sort"
	"time"

	"tableflip.dev/gratitude/pkg/entry"
	"tableflip.dev/gratitude/pkg/timeutil"
)

// Day keys one calendar day in the local calendar of the times it was
// built from.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar-day key for t.
func DayOf(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight of the day in loc.
func (d Day) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before orders day keys chronologically.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Streak counts consecutive qualifying calendar days of journaling ending at
// now. Entries are walked newest first; an entry on the same day as the
// cursor or the immediately preceding day extends the streak and moves the
// cursor, a gap of two or more days breaks it.
//
// Several entries on one day each extend the count, so a streak can exceed
// the number of distinct days. Intentional.
func Streak(entries []*entry.Entry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	sorted := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e != nil && !e.Created.IsZero() {
			sorted = append(sorted, e)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Created.After(sorted[j].Created.Time)
	})

	streak := 0
	cursor := now
	for _, e := range sorted {
		gap := timeutil.DaysBetween(cursor, e.Created.Time)
		if gap != 0 && gap != 1 {
			break
		}
		streak++
		cursor = e.Created.Time
	}
	return streak
}

// Heatmap buckets entries into per-day activity counts over the inclusive
// window. Every day in the window is present in the result, zero-count days
// included, so a renderer can draw empty cells without probing for absence.
// Entries outside the window are ignored.
func Heatmap(entries []*entry.Entry, windowStart, windowEnd time.Time) map[Day]int {
	counts := make(map[Day]int)

	first := DayOf(windowStart)
	last := DayOf(windowEnd)
	if last.Before(first) {
		return counts
	}

	for t := timeutil.StartOfDay(windowStart); ; t = t.AddDate(0, 0, 1) {
		d := DayOf(t)
		counts[d] = 0
		if d == last {
			break
		}
	}

	loc := windowStart.Location()
	for _, e := range entries {
		if e == nil || e.Created.IsZero() {
			continue
		}
		d := DayOf(e.Created.In(loc))
		if d.Before(first) || last.Before(d) {
			continue
		}
		counts[d]++
	}
	return counts
}

// Days returns the keys of a heatmap in chronological order.
func Days(counts map[Day]int) []Day {
	days := make([]Day, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// TrailingWindow returns the inclusive day window covering the given
// duration and ending at now, mirroring the journal's default 365-day view.
func TrailingWindow(now time.Time, d time.Duration) (time.Time, time.Time) {
	days := int(d.Hours() / 24)
	if days < 1 {
		days = 1
	}
	start := timeutil.StartOfDay(now).AddDate(0, 0, -(days - 1))
	return start, now
}
