package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/platform/lock"
	"github.com/google/uuid"
)

const (
	scheduleLockPrefix = "recurring:schedule:"
	defaultLockTTL     = 30 * time.Second
)

// TransactionPublisher announces transactions created by a processing run.
type TransactionPublisher interface {
	PublishMaterialized(ctx context.Context, event domain.MaterializedEvent) error
}

type recurringService struct {
	BaseService
	recurringRepo   portsrepo.RecurringRepositoryWithTx
	transactionRepo portsrepo.TransactionTxWriter
	categoryRepo    portsrepo.CategoryReader
	locker          lock.Locker
	publisher       TransactionPublisher
	lockTTL         time.Duration
	now             func() time.Time
}

// RecurringServiceOption is a functional option for configuring the recurring service
type RecurringServiceOption func(*recurringService)

// WithLocker replaces the in-process locker, e.g. with a redis-backed one.
func WithLocker(l lock.Locker) RecurringServiceOption {
	return func(s *recurringService) {
		s.locker = l
	}
}

// WithTransactionPublisher enables materialization events.
func WithTransactionPublisher(p TransactionPublisher) RecurringServiceOption {
	return func(s *recurringService) {
		s.publisher = p
	}
}

// WithClock overrides time.Now for create, update and toggle.
func WithClock(now func() time.Time) RecurringServiceOption {
	return func(s *recurringService) {
		s.now = now
	}
}

// WithLockTTL sets how long a per-schedule lock may be held.
func WithLockTTL(ttl time.Duration) RecurringServiceOption {
	return func(s *recurringService) {
		s.lockTTL = ttl
	}
}

// NewRecurringService creates a new recurring schedule service with the provided options
func NewRecurringService(
	recurringRepo portsrepo.RecurringRepositoryWithTx,
	transactionRepo portsrepo.TransactionTxWriter,
	categoryRepo portsrepo.CategoryReader,
	options ...RecurringServiceOption,
) portssvc.RecurringSvcFacade {
	svc := &recurringService{
		recurringRepo:   recurringRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		locker:          lock.NewLocalLocker(),
		lockTTL:         defaultLockTTL,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RecurringSvcFacade = (*recurringService)(nil)

func (s *recurringService) ListSchedules(ctx context.Context, params dto.ListRecurringParams) ([]domain.RecurringSchedule, error) {
	filter := domain.ScheduleFilter{IsActive: params.IsActive}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		filter.Type = &t
	}
	schedules, err := s.recurringRepo.ListSchedules(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recurring schedules")
		return nil, fmt.Errorf("failed to list recurring schedules: %w", err)
	}
	return schedules, nil
}

func (s *recurringService) GetScheduleByID(ctx context.Context, scheduleID string) (*domain.RecurringSchedule, error) {
	schedule, err := s.recurringRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring schedule %s: %w", scheduleID, err)
	}
	return schedule, nil
}

func (s *recurringService) ListUpcoming(ctx context.Context, days int) ([]domain.RecurringSchedule, error) {
	if days < 0 {
		return nil, apperrors.NewValidationError("days must not be negative")
	}
	until := calendar.AddDays(calendar.Today(s.now()), days)
	schedules, err := s.recurringRepo.SelectUpcoming(ctx, until)
	if err != nil {
		s.LogError(ctx, err, "Failed to list upcoming schedules", slog.Int("days", days))
		return nil, fmt.Errorf("failed to list upcoming schedules: %w", err)
	}
	return schedules, nil
}

func (s *recurringService) CreateSchedule(ctx context.Context, req dto.CreateRecurringRequest) (*domain.RecurringSchedule, error) {
	rec, err := domain.NewRecurrence(req.Frequency, req.DayOfWeek, req.DayOfMonth, req.MonthOfYear)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := calendar.Today(now)
	if req.StartDate != "" {
		if start, err = parseDate("startDate", req.StartDate); err != nil {
			return nil, err
		}
	}
	var endDate *time.Time
	if req.EndDate != nil {
		if endDate, err = parseOptionalDate("endDate", *req.EndDate); err != nil {
			return nil, err
		}
	}

	schedule := domain.RecurringSchedule{
		ScheduleID:  uuid.NewString(),
		Type:        req.Type,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Note:        req.Note,
		Account:     accountOrDefault(req.Account),
		Currency:    currencyOrDefault(req.Currency),
		Recurrence:  rec,
		StartDate:   start,
		EndDate:     endDate,
		NextDueDate: domain.InitialDueDate(rec, start, now),
		IsActive:    true,
		Version:     1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := validateEntity(schedule); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, schedule.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	ref := category.Ref()
	schedule.Category = &ref

	if domain.IsUnanchored(rec) {
		s.LogWarn(ctx, "Recurring schedule has no anchor for its frequency; first occurrence is the start date",
			slog.String("schedule_id", schedule.ScheduleID),
			slog.String("frequency", string(rec.Frequency())))
	}

	if err := s.recurringRepo.SaveSchedule(ctx, schedule); err != nil {
		s.LogError(ctx, err, "Failed to save recurring schedule", slog.String("schedule_id", schedule.ScheduleID))
		return nil, fmt.Errorf("failed to create recurring schedule: %w", err)
	}
	s.LogInfo(ctx, "Recurring schedule created",
		slog.String("schedule_id", schedule.ScheduleID),
		slog.String("recurrence", domain.RecurrenceString(rec)),
		slog.String("next_due_date", schedule.NextDueDate.Format(calendar.Layout)))
	return &schedule, nil
}

// UpdateSchedule applies a field patch. The next due date is only changed
// when the request supplies one.
func (s *recurringService) UpdateSchedule(ctx context.Context, scheduleID string, req dto.UpdateRecurringRequest) (*domain.RecurringSchedule, error) {
	schedule, err := s.recurringRepo.FindScheduleByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring schedule %s: %w", scheduleID, err)
	}

	if req.Type != nil {
		schedule.Type = *req.Type
	}
	if req.Amount != nil {
		schedule.Amount = *req.Amount
	}
	if req.Description != nil {
		schedule.Description = *req.Description
	}
	if req.Note != nil {
		schedule.Note = *req.Note
	}
	if req.Account != nil {
		schedule.Account = *req.Account
	}
	if req.Currency != nil {
		schedule.Currency = *req.Currency
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}

	if req.Frequency != nil || req.DayOfWeek != nil || req.DayOfMonth != nil || req.MonthOfYear != nil {
		freq := schedule.Frequency()
		if req.Frequency != nil {
			freq = *req.Frequency
		}
		dow, dom, moy := domain.RecurrenceFields(schedule.Recurrence)
		if req.DayOfWeek != nil {
			dow = req.DayOfWeek
		}
		if req.DayOfMonth != nil {
			dom = req.DayOfMonth
		}
		if req.MonthOfYear != nil {
			moy = req.MonthOfYear
		}
		rec, err := domain.NewRecurrence(freq, dow, dom, moy)
		if err != nil {
			return nil, err
		}
		schedule.Recurrence = rec
	}

	if req.StartDate != nil {
		if schedule.StartDate, err = parseDate("startDate", *req.StartDate); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if schedule.EndDate, err = parseOptionalDate("endDate", *req.EndDate); err != nil {
			return nil, err
		}
	}
	if req.NextDueDate != nil {
		if schedule.NextDueDate, err = parseDate("nextDueDate", *req.NextDueDate); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil && *req.CategoryID != schedule.CategoryID {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category: %w", err)
		}
		ref := category.Ref()
		schedule.CategoryID = category.CategoryID
		schedule.Category = &ref
	}

	if err := validateEntity(*schedule); err != nil {
		return nil, err
	}
	schedule.LastUpdatedAt = s.now()

	if err := s.recurringRepo.UpdateSchedule(ctx, *schedule); err != nil {
		s.LogError(ctx, err, "Failed to update recurring schedule", slog.String("schedule_id", scheduleID))
		return nil, fmt.Errorf("failed to update recurring schedule: %w", err)
	}
	schedule.Version++
	return schedule, nil
}

// DeleteSchedule removes the schedule; transactions it already produced stay.
func (s *recurringService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	if err := s.recurringRepo.DeleteSchedule(ctx, scheduleID); err != nil {
		return fmt.Errorf("failed to delete recurring schedule %s: %w", scheduleID, err)
	}
	s.LogInfo(ctx, "Recurring schedule deleted", slog.String("schedule_id", scheduleID))
	return nil
}

func (s *recurringService) ToggleSchedule(ctx context.Context, scheduleID string) (*domain.RecurringSchedule, error) {
	schedule, err := s.recurringRepo.ToggleSchedule(ctx, scheduleID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to toggle recurring schedule %s: %w", scheduleID, err)
	}
	s.LogInfo(ctx, "Recurring schedule toggled",
		slog.String("schedule_id", scheduleID),
		slog.Bool("is_active", schedule.IsActive))
	return schedule, nil
}

// ProcessDue materializes one transaction for every schedule due as of now
// and advances each schedule past today. Items run in due order; a failed
// item is recorded and left untouched for the next run.
func (s *recurringService) ProcessDue(ctx context.Context, now time.Time) (*domain.ProcessingResult, error) {
	result := domain.NewProcessingResult(now)

	due, err := s.recurringRepo.SelectDue(ctx, calendar.Today(now))
	if err != nil {
		s.LogError(ctx, err, "Failed to select due recurring schedules")
		return nil, fmt.Errorf("failed to select due schedules: %w", err)
	}

	for i, schedule := range due {
		if ctx.Err() != nil {
			result.Interrupted = true
			result.Remaining = len(due) - i
			s.LogWarn(ctx, "Recurring processing interrupted",
				slog.Int("remaining", result.Remaining),
				slog.String("reason", ctx.Err().Error()))
			break
		}

		if !schedule.IsDue(now) {
			s.LogDebug(ctx, "Skipping schedule that is no longer due",
				slog.String("schedule_id", schedule.ScheduleID))
			continue
		}

		item, err := s.materialize(ctx, schedule, now)
		if err != nil {
			s.LogError(ctx, err, "Failed to materialize recurring schedule",
				slog.String("schedule_id", schedule.ScheduleID))
			result.Errors = append(result.Errors, domain.ProcessingFailure{
				ScheduleID: schedule.ScheduleID,
				Error:      apperrors.Message(err, err.Error()),
			})
			continue
		}
		result.Processed++
		result.Created = append(result.Created, *item)
	}

	s.LogInfo(ctx, "Recurring processing finished",
		slog.Int("due", len(due)),
		slog.Int("processed", result.Processed),
		slog.Int("failed", len(result.Errors)),
		slog.Bool("interrupted", result.Interrupted))
	return result, nil
}

// materialize writes the due occurrence and advances the schedule in one
// database transaction, holding the schedule's lock throughout.
func (s *recurringService) materialize(ctx context.Context, schedule domain.RecurringSchedule, now time.Time) (*domain.MaterializedItem, error) {
	held, err := s.locker.TryObtain(ctx, scheduleLockPrefix+schedule.ScheduleID, s.lockTTL)
	if err != nil {
		if errors.Is(err, lock.ErrNotObtained) {
			return nil, apperrors.NewConflictError("locked by another run")
		}
		return nil, fmt.Errorf("failed to obtain schedule lock: %w", err)
	}
	defer func() {
		if err := held.Release(context.WithoutCancel(ctx)); err != nil {
			s.LogError(ctx, err, "Failed to release schedule lock", slog.String("schedule_id", schedule.ScheduleID))
		}
	}()

	txn, err := schedule.NewTransaction(uuid.NewString(), now)
	if err != nil {
		return nil, err
	}
	readVersion := schedule.Version
	schedule.Advance(now)

	tx, err := s.recurringRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.recurringRepo.Rollback(ctx, tx)

	if err := s.transactionRepo.SaveTransactionTx(ctx, tx, *txn); err != nil {
		return nil, err
	}
	if err := s.recurringRepo.AdvanceScheduleTx(ctx, tx, schedule, readVersion); err != nil {
		return nil, err
	}
	if err := s.recurringRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.publish(ctx, schedule, *txn, now)

	return &domain.MaterializedItem{
		ScheduleID:    schedule.ScheduleID,
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		CategoryName:  txn.Category.Name,
		Date:          txn.Date,
	}, nil
}

func (s *recurringService) publish(ctx context.Context, schedule domain.RecurringSchedule, txn domain.Transaction, now time.Time) {
	if s.publisher == nil {
		return
	}
	event := domain.MaterializedEvent{
		ScheduleID:    schedule.ScheduleID,
		TransactionID: txn.TransactionID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		CategoryID:    txn.CategoryID,
		Date:          txn.Date.Format(calendar.Layout),
		OccurredAt:    now,
	}
	if err := s.publisher.PublishMaterialized(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish materialized transaction",
			slog.String("transaction_id", txn.TransactionID))
	}
}
