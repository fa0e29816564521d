package services

import (
	"context"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// RecurringReaderSvc defines read operations for recurring schedules
type RecurringReaderSvc interface {
	ListSchedules(ctx context.Context, params dto.ListRecurringParams) ([]domain.RecurringSchedule, error)
	GetScheduleByID(ctx context.Context, scheduleID string) (*domain.RecurringSchedule, error)

	// ListUpcoming returns active schedules due within the next days days.
	ListUpcoming(ctx context.Context, days int) ([]domain.RecurringSchedule, error)
}

// RecurringWriterSvc defines write operations for recurring schedules
type RecurringWriterSvc interface {
	CreateSchedule(ctx context.Context, req dto.CreateRecurringRequest) (*domain.RecurringSchedule, error)
	UpdateSchedule(ctx context.Context, scheduleID string, req dto.UpdateRecurringRequest) (*domain.RecurringSchedule, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
	ToggleSchedule(ctx context.Context, scheduleID string) (*domain.RecurringSchedule, error)
}

// RecurringProcessorSvc runs the materialization batch.
type RecurringProcessorSvc interface {
	// ProcessDue materializes every schedule due as of now. Per-schedule
	// failures are reported in the result; only a failed due-set query
	// returns an error.
	ProcessDue(ctx context.Context, now time.Time) (*domain.ProcessingResult, error)
}

// RecurringSvcFacade combines all schedule-related service interfaces
type RecurringSvcFacade interface {
	RecurringReaderSvc
	RecurringWriterSvc
	RecurringProcessorSvc
}
