package domain

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/shopspring/decimal"
)

// RecurringDescriptionPrefix labels materialized transactions whose
// schedule has no description of its own.
const RecurringDescriptionPrefix = "Recurring: "

// RecurringSchedule is a template that spawns transactions on a cadence.
// NextDueDate, LastProcessed and IsActive are advanced only by materialization
// or by explicit user edits.
type RecurringSchedule struct {
	ScheduleID    string          `json:"scheduleID"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"categoryID"`
	Category      *CategoryRef    `json:"category,omitempty"` // Nil when the category no longer exists
	Description   string          `json:"description"`
	Note          string          `json:"note"`
	Account       AccountKind     `json:"account"`
	Currency      string          `json:"currency"`
	Recurrence    Recurrence      `json:"-"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	NextDueDate   time.Time       `json:"nextDueDate"`
	LastProcessed *time.Time      `json:"lastProcessed,omitempty"`
	IsActive      bool            `json:"isActive"`
	Version       int64           `json:"version"` // Bumped on every write
	AuditFields
}

// ScheduleFilter narrows schedule listings. Nil fields are ignored.
type ScheduleFilter struct {
	Type     *TransactionType
	IsActive *bool
}

// Frequency is a shortcut for s.Recurrence.Frequency().
func (s RecurringSchedule) Frequency() Frequency {
	if s.Recurrence == nil {
		return ""
	}
	return s.Recurrence.Frequency()
}

// IsDue reports whether the schedule should be materialized as of asOf:
// active, due on or before that day, and not past its end date.
func (s RecurringSchedule) IsDue(asOf time.Time) bool {
	if !s.IsActive {
		return false
	}
	if calendar.IsAfter(s.NextDueDate, asOf) {
		return false
	}
	if s.EndDate != nil && calendar.IsBefore(*s.EndDate, asOf) {
		return false
	}
	return true
}

// NewTransaction builds the transaction for the schedule's current due
// occurrence. It fails when the schedule's category is gone.
func (s RecurringSchedule) NewTransaction(transactionID string, now time.Time) (*Transaction, error) {
	if s.Category == nil || s.Category.Name == "" {
		return nil, apperrors.NewNotFoundError("category", s.CategoryID)
	}

	description := s.Description
	if description == "" {
		description = RecurringDescriptionPrefix + s.Category.Name
	}
	scheduleID := s.ScheduleID
	ref := *s.Category

	return &Transaction{
		TransactionID:       transactionID,
		Type:                s.Type,
		Amount:              s.Amount,
		CategoryID:          s.CategoryID,
		Category:            &ref,
		Description:         description,
		Date:                calendar.DateOf(s.NextDueDate),
		Account:             s.Account,
		Currency:            s.Currency,
		Tags:                []string{},
		Note:                s.Note,
		IsRecurring:         true,
		RecurringScheduleID: &scheduleID,
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// Advance records the current occurrence as processed and moves NextDueDate
// past today. The schedule deactivates once NextDueDate is after EndDate;
// landing exactly on EndDate keeps it active.
func (s *RecurringSchedule) Advance(now time.Time) {
	processed := calendar.DateOf(s.NextDueDate)
	s.LastProcessed = &processed
	s.NextDueDate = NextDueDate(s.Recurrence, processed, now)
	if s.EndDate != nil && calendar.IsAfter(s.NextDueDate, *s.EndDate) {
		s.IsActive = false
	}
	s.LastUpdatedAt = now
}

// MaterializedItem describes one transaction created by a processing run.
type MaterializedItem struct {
	ScheduleID    string          `json:"scheduleID"`
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryName  string          `json:"categoryName"`
	Date          time.Time       `json:"date"`
}

// ProcessingFailure records a schedule that could not be materialized.
// The schedule is left untouched so the next run retries it.
type ProcessingFailure struct {
	ScheduleID string `json:"scheduleID"`
	Error      string `json:"error"`
}

// ProcessingResult is the outcome of one processing run.
type ProcessingResult struct {
	RanAt       time.Time           `json:"ranAt"`
	Processed   int                 `json:"processed"`
	Created     []MaterializedItem  `json:"created"`
	Errors      []ProcessingFailure `json:"errors"`
	Interrupted bool                `json:"interrupted"` // Deadline hit before the batch finished
	Remaining   int                 `json:"remaining"`   // Due schedules not attempted
}

// NewProcessingResult returns an empty result with non-nil lists.
func NewProcessingResult(now time.Time) *ProcessingResult {
	return &ProcessingResult{
		RanAt:   now,
		Created: []MaterializedItem{},
		Errors:  []ProcessingFailure{},
	}
}

// MaterializedEvent is published after a recurring transaction is committed.
type MaterializedEvent struct {
	ScheduleID    string          `json:"scheduleId"`
	TransactionID string          `json:"transactionId"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CategoryID    string          `json:"categoryId"`
	Date          string          `json:"date"`
	OccurredAt    time.Time       `json:"occurredAt"`
}
