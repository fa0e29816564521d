package models

import "github.com/shopspring/decimal"

// Budget is the row shape of the budgets table.
type Budget struct {
	BudgetID   string          `db:"budget_id"`
	CategoryID string          `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Month      int             `db:"month"`
	Year       int             `db:"year"`
	Currency   string          `db:"currency"`
	AuditFields
	CategoryRef
}
