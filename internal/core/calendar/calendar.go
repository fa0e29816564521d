// Package calendar provides naive calendar-date arithmetic.
//
// Dates are carried as time.Time values pinned to midnight UTC. Only the
// year, month and day are meaningful; time of day and location are dropped
// by DateOf before any comparison or stepping. Stepping uses time.AddDate,
// so a day-of-month that does not exist in the target month overflows into
// the following month (2025-01-31 plus one month is 2025-03-03).
package calendar

import (
	"fmt"
	"time"
)

// Layout is the wire format for calendar dates.
const Layout = "2006-01-02"

// New builds a calendar date, normalizing out-of-range month and day values.
func New(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf returns the calendar date of t as observed in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return New(y, m, d)
}

// Today returns the calendar date of now.
func Today(now time.Time) time.Time {
	return DateOf(now)
}

// Parse accepts either YYYY-MM-DD or an RFC 3339 timestamp.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(Layout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, Layout)
	}
	return DateOf(t), nil
}

func AddDays(d time.Time, n int) time.Time {
	return DateOf(d).AddDate(0, 0, n)
}

func AddWeeks(d time.Time, n int) time.Time {
	return AddDays(d, 7*n)
}

func AddMonths(d time.Time, n int) time.Time {
	return DateOf(d).AddDate(0, n, 0)
}

func AddYears(d time.Time, n int) time.Time {
	return DateOf(d).AddDate(n, 0, 0)
}

// SetDay replaces the day-of-month, overflowing into the next month when
// the month is too short.
func SetDay(d time.Time, day int) time.Time {
	y, m, _ := d.Date()
	return New(y, m, day)
}

// SetMonth replaces the month while keeping the day-of-month, overflowing
// when that day does not exist in the new month.
func SetMonth(d time.Time, month time.Month) time.Time {
	y, _, day := d.Date()
	return New(y, month, day)
}

// NextWeekday advances d by zero to six days until it falls on wd.
func NextWeekday(d time.Time, wd time.Weekday) time.Time {
	d = DateOf(d)
	diff := (int(wd) - int(d.Weekday()) + 7) % 7
	return AddDays(d, diff)
}

// IsBefore reports whether a falls on an earlier day than b.
func IsBefore(a, b time.Time) bool {
	return DateOf(a).Before(DateOf(b))
}

// IsAfter reports whether a falls on a later day than b.
func IsAfter(a, b time.Time) bool {
	return DateOf(a).After(DateOf(b))
}

// IsAfterOrEqual reports whether a falls on the same day as b or later.
func IsAfterOrEqual(a, b time.Time) bool {
	return !IsBefore(a, b)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// MonthRange returns the first and last calendar day of a month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := New(year, month, 1)
	last := New(year, month+1, 0)
	return first, last
}
