package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name  string                 `json:"name" binding:"required,max=50"`
	Type  domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Icon  string                 `json:"icon" binding:"omitempty,max=16"`
	Color string                 `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the fields that can be changed on a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=50"`
	Icon  *string `json:"icon" binding:"omitempty,max=16"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Type string `form:"type" binding:"omitempty,oneof=income expense"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string                 `json:"categoryID"`
	Name       string                 `json:"name"`
	Type       domain.TransactionType `json:"type"`
	Icon       string                 `json:"icon"`
	Color      string                 `json:"color"`
	IsDefault  bool                   `json:"isDefault"`
	CreatedAt  time.Time              `json:"createdAt"`
}

// CategoryRefResponse is the category summary embedded in transactions,
// schedules and budgets.
type CategoryRefResponse struct {
	CategoryID string                 `json:"categoryID"`
	Name       string                 `json:"name"`
	Icon       string                 `json:"icon"`
	Color      string                 `json:"color"`
	Type       domain.TransactionType `json:"type"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Count      int                `json:"count"`
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Type:       c.Type,
		Icon:       c.Icon,
		Color:      c.Color,
		IsDefault:  c.IsDefault,
		CreatedAt:  c.CreatedAt,
	}
}

// ToListCategoriesResponse converts a slice of domain.Category to ListCategoriesResponse.
func ToListCategoriesResponse(categories []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return ListCategoriesResponse{Count: len(res), Categories: res}
}

// ToCategoryRefResponse returns nil when the referenced category no longer exists.
func ToCategoryRefResponse(ref *domain.CategoryRef) *CategoryRefResponse {
	if ref == nil {
		return nil
	}
	return &CategoryRefResponse{
		CategoryID: ref.CategoryID,
		Name:       ref.Name,
		Icon:       ref.Icon,
		Color:      ref.Color,
		Type:       ref.Type,
	}
}
