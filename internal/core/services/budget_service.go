package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// spentQueryLimit bounds concurrent spent-amount queries per listing.
const spentQueryLimit = 4

type budgetService struct {
	BaseService
	budgetRepo      portsrepo.BudgetRepositoryFacade
	transactionRepo portsrepo.TransactionReader
	categoryRepo    portsrepo.CategoryReader
	now             func() time.Time
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, transactionRepo portsrepo.TransactionReader, categoryRepo portsrepo.CategoryReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		now:             time.Now,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// status computes what has been spent against b within its month.
func (s *budgetService) status(ctx context.Context, b domain.Budget) (domain.BudgetStatus, error) {
	from, to := b.Period()
	spent, err := s.transactionRepo.SumExpenses(ctx, b.CategoryID, b.Currency, from, to)
	if err != nil {
		return domain.BudgetStatus{}, fmt.Errorf("failed to compute spent for budget %s: %w", b.BudgetID, err)
	}
	return domain.NewBudgetStatus(b, spent), nil
}

func (s *budgetService) ListBudgets(ctx context.Context, params dto.ListBudgetsParams) ([]domain.BudgetStatus, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, params.Month, params.Year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	statuses := make([]domain.BudgetStatus, len(budgets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(spentQueryLimit)
	for i, b := range budgets {
		g.Go(func() error {
			st, err := s.status(gctx, b)
			if err != nil {
				return err
			}
			statuses[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute budget statuses")
		return nil, err
	}
	return statuses, nil
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.BudgetStatus, error) {
	now := s.now()
	budget := domain.Budget{
		BudgetID:   uuid.NewString(),
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Month:      req.Month,
		Year:       req.Year,
		Currency:   currencyOrDefault(req.Currency),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := validateEntity(budget); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, budget.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	ref := category.Ref()
	budget.Category = &ref

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("category_id", budget.CategoryID))
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	st, err := s.status(ctx, budget)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.BudgetStatus, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget %s: %w", budgetID, err)
	}
	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	if req.Currency != nil {
		budget.Currency = *req.Currency
	}
	if req.Month != nil {
		budget.Month = *req.Month
	}
	if req.Year != nil {
		budget.Year = *req.Year
	}
	if req.CategoryID != nil && *req.CategoryID != budget.CategoryID {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category: %w", err)
		}
		ref := category.Ref()
		budget.CategoryID = category.CategoryID
		budget.Category = &ref
	}
	if err := validateEntity(*budget); err != nil {
		return nil, err
	}
	budget.LastUpdatedAt = s.now()

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	st, err := s.status(ctx, *budget)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}
	return nil
}
