package domain_test

import (
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlySchedule() domain.RecurringSchedule {
	return domain.RecurringSchedule{
		ScheduleID:  "sched-1",
		Type:        domain.Expense,
		Amount:      decimal.NewFromInt(500000),
		CategoryID:  "cat-rent",
		Category:    &domain.CategoryRef{CategoryID: "cat-rent", Name: "Rent", Type: domain.Expense},
		Account:     domain.AccountBank,
		Currency:    "LAK",
		Note:        "landlord",
		Recurrence:  domain.EveryMonth{Day: 5},
		StartDate:   date(2025, 1, 5),
		NextDueDate: date(2025, 1, 5),
		IsActive:    true,
	}
}

func TestIsDue(t *testing.T) {
	today := at(2025, 3, 10)

	s := monthlySchedule()
	assert.True(t, s.IsDue(today))

	s.NextDueDate = date(2025, 3, 10)
	assert.True(t, s.IsDue(today), "due on the day itself")

	s.NextDueDate = date(2025, 3, 11)
	assert.False(t, s.IsDue(today))

	s = monthlySchedule()
	s.IsActive = false
	assert.False(t, s.IsDue(today))

	s = monthlySchedule()
	end := date(2025, 3, 10)
	s.EndDate = &end
	assert.True(t, s.IsDue(today), "end date is inclusive")

	end = date(2025, 3, 9)
	s.EndDate = &end
	assert.False(t, s.IsDue(today))
}

func TestNewTransaction(t *testing.T) {
	now := at(2025, 3, 10)
	s := monthlySchedule()

	txn, err := s.NewTransaction("txn-1", now)
	require.NoError(t, err)

	assert.Equal(t, "txn-1", txn.TransactionID)
	assert.Equal(t, domain.Expense, txn.Type)
	assert.True(t, decimal.NewFromInt(500000).Equal(txn.Amount))
	assert.Equal(t, "cat-rent", txn.CategoryID)
	assert.Equal(t, date(2025, 1, 5), txn.Date, "dated on the due occurrence, not now")
	assert.Equal(t, domain.AccountBank, txn.Account)
	assert.Equal(t, "LAK", txn.Currency)
	assert.Equal(t, "landlord", txn.Note)
	assert.Equal(t, "Recurring: Rent", txn.Description)
	assert.True(t, txn.IsRecurring)
	require.NotNil(t, txn.RecurringScheduleID)
	assert.Equal(t, "sched-1", *txn.RecurringScheduleID)

	s.Description = "Monthly rent"
	txn, err = s.NewTransaction("txn-2", now)
	require.NoError(t, err)
	assert.Equal(t, "Monthly rent", txn.Description)
}

func TestNewTransaction_MissingCategory(t *testing.T) {
	s := monthlySchedule()
	s.Category = nil

	txn, err := s.NewTransaction("txn-1", at(2025, 3, 10))
	assert.Nil(t, txn)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAdvance_CollapsesMissedPeriods(t *testing.T) {
	s := monthlySchedule()

	s.Advance(at(2025, 3, 10))

	require.NotNil(t, s.LastProcessed)
	assert.Equal(t, date(2025, 1, 5), *s.LastProcessed)
	assert.Equal(t, date(2025, 4, 5), s.NextDueDate)
	assert.True(t, s.IsActive)
}

func TestAdvance_EndDateBoundary(t *testing.T) {
	s := monthlySchedule()
	end := date(2025, 4, 5)
	s.EndDate = &end

	s.Advance(at(2025, 3, 10))
	assert.Equal(t, date(2025, 4, 5), s.NextDueDate)
	assert.True(t, s.IsActive, "next due equal to end date stays active")

	s = monthlySchedule()
	end = date(2025, 4, 4)
	s.EndDate = &end

	s.Advance(at(2025, 3, 10))
	assert.False(t, s.IsActive, "next due after end date deactivates")
}

func TestAdvance_NeverMovesBehindLastProcessed(t *testing.T) {
	s := monthlySchedule()
	s.Recurrence = domain.EveryDay{}
	s.NextDueDate = date(2025, 3, 1)

	s.Advance(at(2025, 3, 10))

	assert.True(t, s.NextDueDate.After(*s.LastProcessed))
	assert.Equal(t, date(2025, 3, 11), s.NextDueDate)
}
