package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter scopes the summary, by-category and trend reports.
type ReportFilter struct {
	Type      *TransactionType
	StartDate *time.Time
	EndDate   *time.Time
	Currency  string
}

// Summary is the income/expense totals for a period in one currency.
type Summary struct {
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	Balance      decimal.Decimal `json:"balance"`
	IncomeCount  int             `json:"incomeCount"`
	ExpenseCount int             `json:"expenseCount"`
	Currency     string          `json:"currency"`
}

// CategoryTotal is the sum of transactions for one category.
type CategoryTotal struct {
	CategoryRef
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// TrendPeriod is the bucket size of a trend report.
type TrendPeriod string

const (
	TrendDaily   TrendPeriod = "daily"
	TrendWeekly  TrendPeriod = "weekly"
	TrendMonthly TrendPeriod = "monthly"
)

func (p TrendPeriod) IsValid() bool {
	switch p {
	case TrendDaily, TrendWeekly, TrendMonthly:
		return true
	}
	return false
}

// TrendPoint is the total of one transaction type within one bucket.
type TrendPoint struct {
	PeriodStart time.Time       `json:"periodStart"`
	Type        TransactionType `json:"type"`
	Total       decimal.Decimal `json:"total"`
}

// NewSummary folds per-type totals into a Summary.
func NewSummary(currency string, totals map[TransactionType]decimal.Decimal, counts map[TransactionType]int) Summary {
	s := Summary{
		Income:       totals[Income],
		Expense:      totals[Expense],
		IncomeCount:  counts[Income],
		ExpenseCount: counts[Expense],
		Currency:     currency,
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}
