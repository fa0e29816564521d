package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// BudgetSvcFacade defines operations on monthly category budgets. Every
// returned budget carries its spent, remaining and percentage figures.
type BudgetSvcFacade interface {
	ListBudgets(ctx context.Context, params dto.ListBudgetsParams) ([]domain.BudgetStatus, error)
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.BudgetStatus, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.BudgetStatus, error)
	DeleteBudget(ctx context.Context, budgetID string) error
}
