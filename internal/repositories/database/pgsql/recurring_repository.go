package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const scheduleColumns = `
	s.schedule_id, s.type, s.amount, s.category_id, s.description, s.note, s.account, s.currency,
	s.frequency, s.day_of_week, s.day_of_month, s.month_of_year, s.start_date, s.end_date,
	s.next_due_date, s.last_processed, s.is_active, s.version, s.created_at, s.last_updated_at,
	c.name AS category_name, c.icon AS category_icon, c.color AS category_color, c.type AS category_type`

const scheduleSelect = `SELECT ` + scheduleColumns + `
	FROM recurring_schedules s
	LEFT JOIN categories c ON c.category_id = s.category_id`

const scheduleOrder = ` ORDER BY s.next_due_date, s.created_at, s.schedule_id`

// Due: active, reached its next due date, end date not passed.
const dueScheduleWhere = `
		WHERE s.is_active
		  AND s.next_due_date <= $1
		  AND (s.end_date IS NULL OR s.end_date >= $1)`

// Upcoming: active and due within the window, overdue included.
const upcomingScheduleWhere = `
		WHERE s.is_active
		  AND s.next_due_date <= $1`

type PgxRecurringRepository struct {
	BaseRepository
}

// newPgxRecurringRepository creates a new repository for recurring schedules.
func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepositoryWithTx {
	return &PgxRecurringRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RecurringRepositoryWithTx = (*PgxRecurringRepository)(nil)

func (r *PgxRecurringRepository) collectOne(rows pgx.Rows, scheduleID string) (*domain.RecurringSchedule, error) {
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.RecurringSchedule])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("recurring schedule", scheduleID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan recurring schedule", err)
	}
	schedule, err := mapping.ToDomainRecurringSchedule(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode recurring schedule", err)
	}
	return &schedule, nil
}

func (r *PgxRecurringRepository) collectMany(rows pgx.Rows) ([]domain.RecurringSchedule, error) {
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.RecurringSchedule])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan recurring schedules", err)
	}
	schedules, err := mapping.ToDomainRecurringScheduleSlice(ms)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode recurring schedules", err)
	}
	return schedules, nil
}

func (r *PgxRecurringRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.RecurringSchedule, error) {
	rows, err := r.Pool.Query(ctx, scheduleSelect+` WHERE s.schedule_id = $1;`, scheduleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query recurring schedule", err)
	}
	return r.collectOne(rows, scheduleID)
}

func (r *PgxRecurringRepository) ListSchedules(ctx context.Context, filter domain.ScheduleFilter) ([]domain.RecurringSchedule, error) {
	c := &conditions{}
	if filter.Type != nil {
		c.add("s.type = %s", string(*filter.Type))
	}
	if filter.IsActive != nil {
		c.add("s.is_active = %s", *filter.IsActive)
	}

	rows, err := r.Pool.Query(ctx, scheduleSelect+c.where()+scheduleOrder, c.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list recurring schedules", err)
	}
	return r.collectMany(rows)
}

func (r *PgxRecurringRepository) SelectDue(ctx context.Context, asOf time.Time) ([]domain.RecurringSchedule, error) {
	query := scheduleSelect + dueScheduleWhere + scheduleOrder

	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to select due schedules", err)
	}
	return r.collectMany(rows)
}

func (r *PgxRecurringRepository) SelectUpcoming(ctx context.Context, until time.Time) ([]domain.RecurringSchedule, error) {
	query := scheduleSelect + upcomingScheduleWhere + scheduleOrder

	rows, err := r.Pool.Query(ctx, query, until)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to select upcoming schedules", err)
	}
	return r.collectMany(rows)
}

func (r *PgxRecurringRepository) SaveSchedule(ctx context.Context, schedule domain.RecurringSchedule) error {
	m := mapping.ToModelRecurringSchedule(schedule)
	query := `
		INSERT INTO recurring_schedules (
			schedule_id, type, amount, category_id, description, note, account, currency,
			frequency, day_of_week, day_of_month, month_of_year, start_date, end_date,
			next_due_date, last_processed, is_active, version, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ScheduleID, m.Type, m.Amount, m.CategoryID, m.Description, m.Note, m.Account, m.Currency,
		m.Frequency, m.DayOfWeek, m.DayOfMonth, m.MonthOfYear, m.StartDate, m.EndDate,
		m.NextDueDate, m.LastProcessed, m.IsActive, m.Version, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save recurring schedule "+m.ScheduleID, err)
	}
	return nil
}

// UpdateSchedule writes the schedule only if nobody else wrote it since it
// was read at schedule.Version.
func (r *PgxRecurringRepository) UpdateSchedule(ctx context.Context, schedule domain.RecurringSchedule) error {
	m := mapping.ToModelRecurringSchedule(schedule)
	query := `
		UPDATE recurring_schedules
		SET type = $3, amount = $4, category_id = $5, description = $6, note = $7, account = $8,
		    currency = $9, frequency = $10, day_of_week = $11, day_of_month = $12, month_of_year = $13,
		    start_date = $14, end_date = $15, next_due_date = $16, is_active = $17,
		    last_updated_at = $18, version = version + 1
		WHERE schedule_id = $1 AND version = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ScheduleID, m.Version, m.Type, m.Amount, m.CategoryID, m.Description, m.Note, m.Account,
		m.Currency, m.Frequency, m.DayOfWeek, m.DayOfMonth, m.MonthOfYear,
		m.StartDate, m.EndDate, m.NextDueDate, m.IsActive, m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update recurring schedule "+m.ScheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingOrConflict(ctx, m.ScheduleID)
	}
	return nil
}

func (r *PgxRecurringRepository) missingOrConflict(ctx context.Context, scheduleID string) error {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM recurring_schedules WHERE schedule_id = $1);`, scheduleID).Scan(&exists)
	if err != nil {
		return apperrors.NewAppError(500, "failed to check recurring schedule "+scheduleID, err)
	}
	if !exists {
		return apperrors.NewNotFoundError("recurring schedule", scheduleID)
	}
	return apperrors.NewConflictError("recurring schedule " + scheduleID + " was modified concurrently")
}

func (r *PgxRecurringRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM recurring_schedules WHERE schedule_id = $1;`, scheduleID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete recurring schedule "+scheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("recurring schedule", scheduleID)
	}
	return nil
}

func (r *PgxRecurringRepository) ToggleSchedule(ctx context.Context, scheduleID string, at time.Time) (*domain.RecurringSchedule, error) {
	query := `
		WITH s AS (
			UPDATE recurring_schedules
			SET is_active = NOT is_active, last_updated_at = $2, version = version + 1
			WHERE schedule_id = $1
			RETURNING *
		)
		SELECT ` + scheduleColumns + `
		FROM s
		LEFT JOIN categories c ON c.category_id = s.category_id;
	`
	rows, err := r.Pool.Query(ctx, query, scheduleID, at)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to toggle recurring schedule", err)
	}
	return r.collectOne(rows, scheduleID)
}

// AdvanceScheduleTx stores the post-materialization state on the caller's
// database transaction, guarded by the version read before processing.
func (r *PgxRecurringRepository) AdvanceScheduleTx(ctx context.Context, tx pgx.Tx, schedule domain.RecurringSchedule, expectedVersion int64) error {
	query := `
		UPDATE recurring_schedules
		SET next_due_date = $3, last_processed = $4, is_active = $5, last_updated_at = $6, version = version + 1
		WHERE schedule_id = $1 AND version = $2;
	`
	tag, err := tx.Exec(ctx, query,
		schedule.ScheduleID, expectedVersion,
		schedule.NextDueDate, schedule.LastProcessed, schedule.IsActive, schedule.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to advance recurring schedule "+schedule.ScheduleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("recurring schedule " + schedule.ScheduleID + " was advanced concurrently")
	}
	return nil
}
