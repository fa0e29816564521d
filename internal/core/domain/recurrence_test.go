package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func date(y int, m time.Month, d int) time.Time { return calendar.New(y, m, d) }

// at returns a wall-clock instant during the given day.
func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 30, 0, 0, time.UTC)
}

func TestNewRecurrence(t *testing.T) {
	tests := []struct {
		name    string
		freq    domain.Frequency
		dow     *int
		dom     *int
		moy     *int
		want    domain.Recurrence
		wantErr bool
	}{
		{name: "daily ignores anchors", freq: domain.Daily, dom: intPtr(3), want: domain.EveryDay{}},
		{name: "weekly", freq: domain.Weekly, dow: intPtr(3), want: domain.EveryWeek{Weekday: time.Wednesday}},
		{name: "weekly sunday", freq: domain.Weekly, dow: intPtr(0), want: domain.EveryWeek{Weekday: time.Sunday}},
		{name: "weekly without weekday", freq: domain.Weekly, want: domain.Unanchored{Freq: domain.Weekly}},
		{name: "monthly", freq: domain.Monthly, dom: intPtr(31), want: domain.EveryMonth{Day: 31}},
		{name: "monthly without day", freq: domain.Monthly, dow: intPtr(2), want: domain.Unanchored{Freq: domain.Monthly}},
		{name: "yearly", freq: domain.Yearly, dom: intPtr(15), moy: intPtr(3), want: domain.EveryYear{Month: time.March, Day: 15}},
		{name: "yearly without month", freq: domain.Yearly, dom: intPtr(15), want: domain.Unanchored{Freq: domain.Yearly}},
		{name: "unknown frequency", freq: domain.Frequency("hourly"), wantErr: true},
		{name: "weekday out of range", freq: domain.Weekly, dow: intPtr(7), wantErr: true},
		{name: "day out of range", freq: domain.Monthly, dom: intPtr(0), wantErr: true},
		{name: "month out of range", freq: domain.Yearly, dom: intPtr(1), moy: intPtr(13), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewRecurrence(tt.freq, tt.dow, tt.dom, tt.moy)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecurrenceFieldsRoundTrip(t *testing.T) {
	dow, dom, moy := domain.RecurrenceFields(domain.EveryYear{Month: time.December, Day: 25})
	assert.Nil(t, dow)
	assert.Equal(t, 25, *dom)
	assert.Equal(t, 12, *moy)

	rec, err := domain.NewRecurrence(domain.Yearly, dow, dom, moy)
	require.NoError(t, err)
	assert.Equal(t, domain.EveryYear{Month: time.December, Day: 25}, rec)

	dow, dom, moy = domain.RecurrenceFields(domain.Unanchored{Freq: domain.Weekly})
	assert.Nil(t, dow)
	assert.Nil(t, dom)
	assert.Nil(t, moy)
}

func TestInitialDueDate(t *testing.T) {
	tests := []struct {
		name  string
		rec   domain.Recurrence
		start time.Time
		now   time.Time
		want  time.Time
	}{
		{"daily starts on start date", domain.EveryDay{}, date(2025, 1, 10), at(2025, 1, 1), date(2025, 1, 10)},
		{"daily start in the past is kept", domain.EveryDay{}, date(2024, 12, 1), at(2025, 1, 1), date(2024, 12, 1)},
		{"weekly on matching weekday", domain.EveryWeek{Weekday: time.Wednesday}, date(2025, 1, 1), at(2024, 12, 20), date(2025, 1, 1)},
		{"weekly advances to weekday", domain.EveryWeek{Weekday: time.Monday}, date(2025, 1, 1), at(2024, 12, 20), date(2025, 1, 6)},
		{"monthly day later this month", domain.EveryMonth{Day: 15}, date(2025, 3, 1), at(2025, 3, 10), date(2025, 3, 15)},
		{"monthly day already passed", domain.EveryMonth{Day: 5}, date(2025, 3, 1), at(2025, 3, 10), date(2025, 4, 5)},
		{"monthly day is today", domain.EveryMonth{Day: 10}, date(2025, 3, 1), at(2025, 3, 10), date(2025, 3, 10)},
		{"monthly 31 in february overflows", domain.EveryMonth{Day: 31}, date(2025, 2, 1), at(2025, 1, 1), date(2025, 3, 3)},
		{"yearly later this year", domain.EveryYear{Month: time.September, Day: 1}, date(2025, 1, 10), at(2025, 1, 10), date(2025, 9, 1)},
		{"yearly already passed", domain.EveryYear{Month: time.March, Day: 15}, date(2025, 6, 1), at(2025, 6, 1), date(2026, 3, 15)},
		{"yearly month applied before day", domain.EveryYear{Month: time.February, Day: 10}, date(2025, 1, 31), at(2025, 1, 1), date(2025, 3, 10)},
		{"monthly day before start day moves past start", domain.EveryMonth{Day: 5}, date(2025, 1, 20), at(2025, 1, 1), date(2025, 2, 5)},
		{"monthly future start is never preceded", domain.EveryMonth{Day: 1}, date(2025, 6, 15), at(2025, 1, 1), date(2025, 7, 1)},
		{"yearly date before future start moves a year", domain.EveryYear{Month: time.January, Day: 5}, date(2026, 6, 1), at(2025, 1, 1), date(2027, 1, 5)},
		{"unanchored keeps start", domain.Unanchored{Freq: domain.Weekly}, date(2025, 1, 2), at(2025, 1, 20), date(2025, 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.InitialDueDate(tt.rec, tt.start, tt.now))
		})
	}
}

func TestInitialDueDate_NeverBeforeStart(t *testing.T) {
	recs := []domain.Recurrence{
		domain.EveryDay{},
		domain.EveryWeek{Weekday: time.Friday},
		domain.EveryMonth{Day: 1},
		domain.EveryMonth{Day: 31},
		domain.EveryYear{Month: time.January, Day: 1},
		domain.EveryYear{Month: time.December, Day: 31},
	}
	now := at(2025, 1, 1)
	for _, rec := range recs {
		for _, start := range []time.Time{date(2025, 1, 20), date(2025, 8, 31), date(2026, 6, 1)} {
			got := domain.InitialDueDate(rec, start, now)
			assert.False(t, calendar.IsBefore(got, start), "%s from %s gave %s", domain.RecurrenceString(rec), start.Format(calendar.Layout), got.Format(calendar.Layout))
		}
	}
}

func TestInitialDueDate_WeeklyRoundTrip(t *testing.T) {
	rec, err := domain.NewRecurrence(domain.Weekly, intPtr(3), nil, nil)
	require.NoError(t, err)

	start := date(2025, 1, 1)
	got := domain.InitialDueDate(rec, start, at(2024, 12, 31))

	assert.Equal(t, time.Wednesday, got.Weekday())
	assert.False(t, got.Before(start))
	assert.True(t, got.Sub(start) < 7*24*time.Hour)
	assert.Equal(t, date(2025, 1, 1), got)
}

func TestNextDueDate_DailyCatchUpInOneCall(t *testing.T) {
	now := at(2025, 3, 10)
	for _, missed := range []int{0, 1, 5, 40} {
		current := calendar.AddDays(now, -missed)
		got := domain.NextDueDate(domain.EveryDay{}, current, now)
		assert.Equal(t, date(2025, 3, 11), got, "missed %d days", missed)
		assert.True(t, calendar.IsAfter(got, now))
	}
}

func TestNextDueDate_FutureDateUnchanged(t *testing.T) {
	got := domain.NextDueDate(domain.EveryMonth{Day: 5}, date(2025, 4, 5), at(2025, 3, 10))
	assert.Equal(t, date(2025, 4, 5), got)
}

func TestNextDueDate_Monthly31Rollover(t *testing.T) {
	got := domain.NextDueDate(domain.EveryMonth{Day: 31}, date(2025, 1, 31), at(2025, 1, 31))
	assert.Equal(t, date(2025, 3, 3), got)

	// Stepping continues from the overflowed date.
	got = domain.NextDueDate(domain.EveryMonth{Day: 31}, date(2025, 1, 31), at(2025, 3, 3))
	assert.Equal(t, date(2025, 4, 3), got)
}

func TestNextDueDate_WeeklyAndYearly(t *testing.T) {
	got := domain.NextDueDate(domain.EveryWeek{Weekday: time.Wednesday}, date(2025, 1, 1), at(2025, 1, 20))
	assert.Equal(t, date(2025, 1, 22), got)

	got = domain.NextDueDate(domain.EveryYear{Month: time.February, Day: 29}, date(2024, 2, 29), at(2024, 3, 1))
	assert.Equal(t, date(2025, 3, 1), got)
}

func TestNextDueDate_UnanchoredStepsByFrequency(t *testing.T) {
	got := domain.NextDueDate(domain.Unanchored{Freq: domain.Monthly}, date(2025, 1, 20), at(2025, 1, 20))
	assert.Equal(t, date(2025, 2, 20), got)
}
