package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `category_id, name, type, icon, color, is_default, created_at, last_updated_at`

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	rows, err := r.Pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query category", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category", categoryID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan category", err)
	}

	category := mapping.ToDomainCategory(m)
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, categoryType *domain.TransactionType) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	args := []any{}
	if categoryType != nil {
		query += ` WHERE type = $1`
		args = append(args, string(*categoryType))
	}
	query += ` ORDER BY type, name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list categories", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan categories", err)
	}
	return mapping.ToDomainCategorySlice(ms), nil
}

func (r *PgxCategoryRepository) CountCategories(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count categories", err)
	}
	return count, nil
}

const insertCategoryQuery = `
	INSERT INTO categories (category_id, name, type, icon, color, is_default, created_at, last_updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	_, err := r.Pool.Exec(ctx, insertCategoryQuery,
		m.CategoryID, m.Name, m.Type, m.Icon, m.Color, m.IsDefault, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError(fmt.Sprintf("%s category %q already exists", m.Type, m.Name))
		}
		return apperrors.NewAppError(500, "failed to save category "+m.CategoryID, err)
	}
	return nil
}

// SaveCategories inserts all categories in one batch. A failure leaves no rows behind.
func (r *PgxCategoryRepository) SaveCategories(ctx context.Context, categories []domain.Category) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, c := range categories {
		m := mapping.ToModelCategory(c)
		batch.Queue(insertCategoryQuery,
			m.CategoryID, m.Name, m.Type, m.Icon, m.Color, m.IsDefault, m.CreatedAt, m.LastUpdatedAt,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError("category already exists")
		}
		return apperrors.NewAppError(500, "failed to insert category batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)
	query := `
		UPDATE categories
		SET name = $2, icon = $3, color = $4, last_updated_at = $5
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.CategoryID, m.Name, m.Icon, m.Color, m.LastUpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError(fmt.Sprintf("%s category %q already exists", m.Type, m.Name))
		}
		return apperrors.NewAppError(500, "failed to update category "+m.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category", m.CategoryID)
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category "+categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category", categoryID)
	}
	return nil
}
