package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories returns categories sorted by type then name. A nil type returns both.
	ListCategories(ctx context.Context, categoryType *domain.TransactionType) ([]domain.Category, error)

	// CountCategories returns the number of stored categories.
	CountCategories(ctx context.Context) (int, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category. A (name, type) clash returns apperrors.ErrDuplicate.
	SaveCategory(ctx context.Context, category domain.Category) error

	// SaveCategories persists a batch of categories in one round trip.
	SaveCategories(ctx context.Context, categories []domain.Category) error

	UpdateCategory(ctx context.Context, category domain.Category) error

	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
