package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RecurringReader defines read operations for recurring schedules
type RecurringReader interface {
	// FindScheduleByID retrieves a schedule. Category is nil when the referenced
	// category has been deleted.
	FindScheduleByID(ctx context.Context, scheduleID string) (*domain.RecurringSchedule, error)

	// ListSchedules returns schedules ordered by next due date.
	ListSchedules(ctx context.Context, filter domain.ScheduleFilter) ([]domain.RecurringSchedule, error)

	// SelectDue returns active schedules due on or before asOf whose end date
	// has not passed, in ascending next-due order.
	SelectDue(ctx context.Context, asOf time.Time) ([]domain.RecurringSchedule, error)

	// SelectUpcoming returns active schedules due on or before until.
	SelectUpcoming(ctx context.Context, until time.Time) ([]domain.RecurringSchedule, error)
}

// RecurringWriter defines write operations for recurring schedules
type RecurringWriter interface {
	SaveSchedule(ctx context.Context, schedule domain.RecurringSchedule) error

	// UpdateSchedule overwrites the editable fields and bumps the version.
	UpdateSchedule(ctx context.Context, schedule domain.RecurringSchedule) error

	// DeleteSchedule removes the schedule. Transactions it produced are kept.
	DeleteSchedule(ctx context.Context, scheduleID string) error

	// ToggleSchedule flips is_active and returns the updated schedule.
	ToggleSchedule(ctx context.Context, scheduleID string, at time.Time) (*domain.RecurringSchedule, error)
}

// RecurringTxWriter advances schedules inside a caller-managed database transaction.
type RecurringTxWriter interface {
	// AdvanceScheduleTx stores next_due_date, last_processed and is_active only
	// if the stored version still equals expectedVersion. Otherwise it returns
	// apperrors.ErrConflict.
	AdvanceScheduleTx(ctx context.Context, tx pgx.Tx, schedule domain.RecurringSchedule, expectedVersion int64) error
}

// RecurringRepositoryFacade combines all schedule-related repository interfaces
type RecurringRepositoryFacade interface {
	RecurringReader
	RecurringWriter
	RecurringTxWriter
}

// RecurringRepositoryWithTx extends RecurringRepositoryFacade with transaction capabilities
type RecurringRepositoryWithTx interface {
	RecurringRepositoryFacade
	TransactionManager
}
