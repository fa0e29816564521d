package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecurringScheduleMapping(t *testing.T) {
	end := calendar.New(2025, time.December, 31)
	d := domain.RecurringSchedule{
		ScheduleID:  "s1",
		Type:        domain.Expense,
		Amount:      decimal.NewFromInt(1200),
		CategoryID:  "c1",
		Account:     domain.AccountCash,
		Currency:    "LAK",
		Recurrence:  domain.EveryYear{Month: time.March, Day: 15},
		StartDate:   calendar.New(2025, time.January, 1),
		EndDate:     &end,
		NextDueDate: calendar.New(2025, time.March, 15),
		IsActive:    true,
		Version:     3,
	}

	m := ToModelRecurringSchedule(d)
	assert.Equal(t, "yearly", m.Frequency)
	assert.Nil(t, m.DayOfWeek)
	require.NotNil(t, m.DayOfMonth)
	assert.Equal(t, 15, *m.DayOfMonth)
	require.NotNil(t, m.MonthOfYear)
	assert.Equal(t, 3, *m.MonthOfYear)

	name, icon := "Rent", "🏠"
	m.CategoryRef = models.CategoryRef{Name: &name, Icon: &icon}

	back, err := ToDomainRecurringSchedule(m)
	require.NoError(t, err)
	assert.Equal(t, d.Recurrence, back.Recurrence)
	assert.Equal(t, int64(3), back.Version)
	require.NotNil(t, back.Category)
	assert.Equal(t, "Rent", back.Category.Name)
	assert.Equal(t, "c1", back.Category.CategoryID)
}

func TestRecurringScheduleMapping_MissingCategoryAndBadFrequency(t *testing.T) {
	m := models.RecurringSchedule{ScheduleID: "s1", Frequency: "weekly"}
	d, err := ToDomainRecurringSchedule(m)
	require.NoError(t, err)
	assert.Nil(t, d.Category)
	assert.Equal(t, domain.Unanchored{Freq: domain.Weekly}, d.Recurrence)

	m.Frequency = "hourly"
	_, err = ToDomainRecurringSchedule(m)
	assert.Error(t, err)
}
