package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
type Transaction struct {
	TransactionID       string          `db:"transaction_id"`
	Type                string          `db:"type"`
	Amount              decimal.Decimal `db:"amount"`
	CategoryID          string          `db:"category_id"`
	Description         string          `db:"description"`
	Date                time.Time       `db:"date"`
	Account             string          `db:"account"`
	Currency            string          `db:"currency"`
	Tags                []string        `db:"tags"`
	Note                string          `db:"note"`
	IsRecurring         bool            `db:"is_recurring"`
	RecurringScheduleID *string         `db:"recurring_schedule_id"`
	AuditFields
	CategoryRef
}
