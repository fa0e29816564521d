package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringSchedule is the row shape of the recurring_schedules table. The
// recurrence is stored flat; DayOfWeek, DayOfMonth and MonthOfYear are
// NULL when the frequency does not use them.
type RecurringSchedule struct {
	ScheduleID    string          `db:"schedule_id"`
	Type          string          `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	CategoryID    string          `db:"category_id"`
	Description   string          `db:"description"`
	Note          string          `db:"note"`
	Account       string          `db:"account"`
	Currency      string          `db:"currency"`
	Frequency     string          `db:"frequency"`
	DayOfWeek     *int            `db:"day_of_week"`
	DayOfMonth    *int            `db:"day_of_month"`
	MonthOfYear   *int            `db:"month_of_year"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       *time.Time      `db:"end_date"`
	NextDueDate   time.Time       `db:"next_due_date"`
	LastProcessed *time.Time      `db:"last_processed"`
	IsActive      bool            `db:"is_active"`
	Version       int64           `db:"version"`
	AuditFields
	CategoryRef
}
