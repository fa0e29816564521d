package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a monthly budget.
type CreateBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Year       int             `json:"year" binding:"required,min=2000,max=2100"`
	Currency   string          `json:"currency" binding:"omitempty,oneof=LAK THB USD"`
}

// UpdateBudgetRequest defines the fields that can be changed on a budget.
type UpdateBudgetRequest struct {
	CategoryID *string          `json:"categoryID" binding:"omitempty,min=1"`
	Amount     *decimal.Decimal `json:"amount"`
	Month      *int             `json:"month" binding:"omitempty,min=1,max=12"`
	Year       *int             `json:"year" binding:"omitempty,min=2000,max=2100"`
	Currency   *string          `json:"currency" binding:"omitempty,oneof=LAK THB USD"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=2000,max=2100"`
}

// BudgetResponse defines the data returned for a budget and its spending.
type BudgetResponse struct {
	BudgetID   string               `json:"budgetID"`
	CategoryID string               `json:"categoryID"`
	Category   *CategoryRefResponse `json:"category,omitempty"`
	Amount     decimal.Decimal      `json:"amount"`
	Month      int                  `json:"month"`
	Year       int                  `json:"year"`
	Currency   string               `json:"currency"`
	Spent      decimal.Decimal      `json:"spent"`
	Remaining  decimal.Decimal      `json:"remaining"`
	Percentage decimal.Decimal      `json:"percentage"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// ListBudgetsResponse wraps a list of budgets.
type ListBudgetsResponse struct {
	Count   int              `json:"count"`
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain.BudgetStatus to BudgetResponse DTO.
func ToBudgetResponse(s *domain.BudgetStatus) BudgetResponse {
	return BudgetResponse{
		BudgetID:   s.BudgetID,
		CategoryID: s.CategoryID,
		Category:   ToCategoryRefResponse(s.Category),
		Amount:     s.Amount,
		Month:      s.Month,
		Year:       s.Year,
		Currency:   s.Currency,
		Spent:      s.Spent,
		Remaining:  s.Remaining,
		Percentage: s.Percentage,
		CreatedAt:  s.CreatedAt,
	}
}

// ToListBudgetsResponse converts budget statuses to ListBudgetsResponse.
func ToListBudgetsResponse(statuses []domain.BudgetStatus) ListBudgetsResponse {
	res := make([]BudgetResponse, len(statuses))
	for i, s := range statuses {
		res[i] = ToBudgetResponse(&s)
	}
	return ListBudgetsResponse{Count: len(res), Budgets: res}
}
