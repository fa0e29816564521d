package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const budgetSelect = `
	SELECT b.budget_id, b.category_id, b.amount, b.month, b.year, b.currency, b.created_at, b.last_updated_at,
	       c.name AS category_name, c.icon AS category_icon, c.color AS category_color, c.type AS category_type
	FROM budgets b
	LEFT JOIN categories c ON c.category_id = b.category_id`

type PgxBudgetRepository struct {
	BaseRepository
}

func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	rows, err := r.Pool.Query(ctx, budgetSelect+` WHERE b.budget_id = $1;`, budgetID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budget", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("budget", budgetID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan budget", err)
	}
	budget := mapping.ToDomainBudget(m)
	return &budget, nil
}

func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, month, year *int) ([]domain.Budget, error) {
	c := &conditions{}
	if month != nil {
		c.add("b.month = %s", *month)
	}
	if year != nil {
		c.add("b.year = %s", *year)
	}

	rows, err := r.Pool.Query(ctx, budgetSelect+c.where()+` ORDER BY b.year DESC, b.month DESC, category_name;`, c.args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list budgets", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan budgets", err)
	}
	return mapping.ToDomainBudgetSlice(ms), nil
}

func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		INSERT INTO budgets (budget_id, category_id, amount, month, year, currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID, m.CategoryID, m.Amount, m.Month, m.Year, m.Currency, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("a budget for this category and month already exists")
		}
		return apperrors.NewAppError(500, "failed to save budget "+m.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := mapping.ToModelBudget(budget)
	query := `
		UPDATE budgets
		SET category_id = $2, amount = $3, month = $4, year = $5, currency = $6, last_updated_at = $7
		WHERE budget_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.BudgetID, m.CategoryID, m.Amount, m.Month, m.Year, m.Currency, m.LastUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("a budget for this category and month already exists")
		}
		return apperrors.NewAppError(500, "failed to update budget "+m.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget", m.BudgetID)
	}
	return nil
}

func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budget "+budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget", budgetID)
	}
	return nil
}
