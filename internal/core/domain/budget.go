package domain

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/shopspring/decimal"
)

// Budget caps expense spending for one category in one month.
// (CategoryID, Month, Year) is unique.
type Budget struct {
	BudgetID   string          `json:"budgetID"`
	CategoryID string          `json:"categoryID"`
	Category   *CategoryRef    `json:"category,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int             `json:"month"` // 1-12
	Year       int             `json:"year"`
	Currency   string          `json:"currency"`
	AuditFields
}

// Period returns the first and last calendar day covered by the budget.
func (b Budget) Period() (time.Time, time.Time) {
	return calendar.MonthRange(b.Year, time.Month(b.Month))
}

// BudgetStatus is a budget together with what has been spent against it.
type BudgetStatus struct {
	Budget
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"` // 0 when the budget amount is zero
}

var hundred = decimal.NewFromInt(100)

// NewBudgetStatus derives remaining and percentage from spent. A zero
// budget reports 0%, never an infinite or undefined value.
func NewBudgetStatus(b Budget, spent decimal.Decimal) BudgetStatus {
	percentage := decimal.Zero
	if !b.Amount.IsZero() {
		percentage = spent.Div(b.Amount).Mul(hundred).Round(2)
	}
	return BudgetStatus{
		Budget:     b,
		Spent:      spent,
		Remaining:  b.Amount.Sub(spent),
		Percentage: percentage,
	}
}
