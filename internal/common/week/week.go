// Package week derives the canonical weekly-cycle identity from a timestamp
// in a fixed reference time zone. All attendance state is keyed by the ID
// this package produces.
package week

import (
	"fmt"
	"time"
)

// DefaultZoneName is the reference time zone when none is configured
const DefaultZoneName = "Asia/Seoul"

// ID identifies one weekly attendance cycle. IDs are formatted YYYY-Wnn
// from the ISO-8601 week, so lexical order matches chronological order and
// an ID is never reused once its week has passed.
type ID string

// FromTime returns the cycle ID for the week containing t in the given zone.
// Any two instants within the same local ISO week map to the same ID.
func FromTime(t time.Time, loc *time.Location) ID {
	year, wk := t.In(loc).ISOWeek()
	return ID(fmt.Sprintf("%04d-W%02d", year, wk))
}

// DayIndex returns the 0-based weekday index of t in the given zone, with
// Monday as 0 and Sunday as 6. The index addresses one slot of a week's
// mark sequence.
func DayIndex(t time.Time, loc *time.Location) int {
	return (int(t.In(loc).Weekday()) + 6) % 7
}

// IsWeekend reports whether t falls on Saturday or Sunday in the given zone
func IsWeekend(t time.Time, loc *time.Location) bool {
	return DayIndex(t, loc) >= 5
}

// SameDay reports whether a and b fall on the same calendar day in the
// given zone
func SameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// MonthAndOrdinalWeek returns the month of t and the ordinal week of t
// within that month: ISO week(t) minus ISO week(first of month) plus one.
// An ISO year boundary inside the month (a January opening in the previous
// year's week 52/53, or December days carried into next year's week 1) is
// normalized into the month-start year's continuous week numbering.
func MonthAndOrdinalWeek(t time.Time, loc *time.Location) (time.Month, int) {
	lt := t.In(loc)
	year, wk := lt.ISOWeek()

	startOfMonth := time.Date(lt.Year(), lt.Month(), 1, 0, 0, 0, 0, loc)
	startYear, startWk := startOfMonth.ISOWeek()
	if startYear < year {
		wk += isoWeeksIn(startYear)
	}

	return lt.Month(), wk - startWk + 1
}

// isoWeeksIn returns the number of ISO weeks in the given year (52 or 53).
// December 28 is always in the final ISO week of its year.
func isoWeeksIn(year int) int {
	_, wk := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return wk
}
