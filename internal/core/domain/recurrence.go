package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
)

// Frequency is the cadence of a recurring schedule.
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
	Yearly  Frequency = "yearly"
)

func (f Frequency) IsValid() bool {
	switch f {
	case Daily, Weekly, Monthly, Yearly:
		return true
	}
	return false
}

// step advances d by one unit of f.
func (f Frequency) step(d time.Time) time.Time {
	switch f {
	case Daily:
		return calendar.AddDays(d, 1)
	case Weekly:
		return calendar.AddWeeks(d, 1)
	case Monthly:
		return calendar.AddMonths(d, 1)
	case Yearly:
		return calendar.AddYears(d, 1)
	}
	// Unknown frequencies are rejected by NewRecurrence; never loop forever.
	return calendar.AddDays(d, 1)
}

// Recurrence is the cadence of a schedule together with the anchor fields
// that cadence needs. The concrete cases are EveryDay, EveryWeek,
// EveryMonth, EveryYear and Unanchored.
type Recurrence interface {
	Frequency() Frequency
	// initialDue places the first occurrence relative to start and today.
	initialDue(start, today time.Time) time.Time
}

// EveryDay recurs daily starting on the start date.
type EveryDay struct{}

// EveryWeek recurs on a fixed weekday.
type EveryWeek struct {
	Weekday time.Weekday
}

// EveryMonth recurs on a fixed day of the month (1-31).
type EveryMonth struct {
	Day int
}

// EveryYear recurs on a fixed month and day.
type EveryYear struct {
	Month time.Month
	Day   int
}

// Unanchored is a non-daily schedule created without the field its
// frequency needs. Its first occurrence is the start date as given; later
// occurrences step by the plain frequency unit.
type Unanchored struct {
	Freq Frequency
}

func (EveryDay) Frequency() Frequency     { return Daily }
func (EveryWeek) Frequency() Frequency    { return Weekly }
func (EveryMonth) Frequency() Frequency   { return Monthly }
func (EveryYear) Frequency() Frequency    { return Yearly }
func (u Unanchored) Frequency() Frequency { return u.Freq }

func (EveryDay) initialDue(start, _ time.Time) time.Time {
	return calendar.DateOf(start)
}

func (r EveryWeek) initialDue(start, _ time.Time) time.Time {
	return calendar.NextWeekday(start, r.Weekday)
}

// A day of month earlier than the start date's day moves to the next month,
// so the first occurrence is never before the start date.
func (r EveryMonth) initialDue(start, today time.Time) time.Time {
	due := calendar.SetDay(start, r.Day)
	if calendar.IsBefore(due, today) {
		due = calendar.AddMonths(due, 1)
	}
	for calendar.IsBefore(due, start) {
		due = calendar.AddMonths(due, 1)
	}
	return due
}

// The month is applied before the day, so a start date on the 31st moved
// into a shorter month overflows first and the day is then set within the
// overflowed month.
func (r EveryYear) initialDue(start, today time.Time) time.Time {
	due := calendar.SetDay(calendar.SetMonth(start, r.Month), r.Day)
	if calendar.IsBefore(due, today) {
		due = calendar.AddYears(due, 1)
	}
	for calendar.IsBefore(due, start) {
		due = calendar.AddYears(due, 1)
	}
	return due
}

func (Unanchored) initialDue(start, _ time.Time) time.Time {
	return calendar.DateOf(start)
}

// NewRecurrence builds the recurrence case for a frequency and its optional
// anchor fields. Fields that do not apply to the frequency are ignored.
// A missing anchor yields Unanchored rather than an error.
func NewRecurrence(freq Frequency, dayOfWeek, dayOfMonth, monthOfYear *int) (Recurrence, error) {
	if !freq.IsValid() {
		return nil, apperrors.NewValidationError("unsupported frequency %q", freq)
	}
	if dayOfWeek != nil && (*dayOfWeek < 0 || *dayOfWeek > 6) {
		return nil, apperrors.NewValidationError("dayOfWeek must be between 0 and 6")
	}
	if dayOfMonth != nil && (*dayOfMonth < 1 || *dayOfMonth > 31) {
		return nil, apperrors.NewValidationError("dayOfMonth must be between 1 and 31")
	}
	if monthOfYear != nil && (*monthOfYear < 1 || *monthOfYear > 12) {
		return nil, apperrors.NewValidationError("monthOfYear must be between 1 and 12")
	}

	switch freq {
	case Daily:
		return EveryDay{}, nil
	case Weekly:
		if dayOfWeek == nil {
			return Unanchored{Freq: Weekly}, nil
		}
		return EveryWeek{Weekday: time.Weekday(*dayOfWeek)}, nil
	case Monthly:
		if dayOfMonth == nil {
			return Unanchored{Freq: Monthly}, nil
		}
		return EveryMonth{Day: *dayOfMonth}, nil
	default:
		if monthOfYear == nil || dayOfMonth == nil {
			return Unanchored{Freq: Yearly}, nil
		}
		return EveryYear{Month: time.Month(*monthOfYear), Day: *dayOfMonth}, nil
	}
}

// RecurrenceFields flattens a recurrence back into its optional anchor fields.
func RecurrenceFields(r Recurrence) (dayOfWeek, dayOfMonth, monthOfYear *int) {
	switch v := r.(type) {
	case EveryWeek:
		wd := int(v.Weekday)
		return &wd, nil, nil
	case EveryMonth:
		d := v.Day
		return nil, &d, nil
	case EveryYear:
		d, m := v.Day, int(v.Month)
		return nil, &d, &m
	}
	return nil, nil, nil
}

// IsUnanchored reports whether r is missing the anchor its frequency needs.
func IsUnanchored(r Recurrence) bool {
	_, ok := r.(Unanchored)
	return ok
}

// InitialDueDate computes the first due date for a schedule created at now.
func InitialDueDate(r Recurrence, start, now time.Time) time.Time {
	return r.initialDue(start, calendar.Today(now))
}

// NextDueDate steps current forward by whole frequency units while it is on
// or before today, so the result is always strictly after today. Missed
// periods are skipped, not replayed.
func NextDueDate(r Recurrence, current, now time.Time) time.Time {
	today := calendar.Today(now)
	next := calendar.DateOf(current)
	freq := r.Frequency()
	for !calendar.IsAfter(next, today) {
		next = freq.step(next)
	}
	return next
}

// RecurrenceString renders the recurrence for logs.
func RecurrenceString(r Recurrence) string {
	switch v := r.(type) {
	case EveryDay:
		return "daily"
	case EveryWeek:
		return fmt.Sprintf("weekly on %s", v.Weekday)
	case EveryMonth:
		return fmt.Sprintf("monthly on day %d", v.Day)
	case EveryYear:
		return fmt.Sprintf("yearly on %s %d", v.Month, v.Day)
	case Unanchored:
		return fmt.Sprintf("%s (unanchored)", v.Freq)
	}
	return "unknown"
}
