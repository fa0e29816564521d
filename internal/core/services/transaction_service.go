package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/utils/pagination"
	"github.com/google/uuid"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryReader
	now             func() time.Time
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, categoryRepo portsrepo.CategoryReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: repo,
		categoryRepo:    categoryRepo,
		now:             time.Now,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// transactionFilter converts query parameters into a repository filter.
func transactionFilter(params dto.ListTransactionsParams) (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{Sort: domain.TransactionSort(params.Sort)}
	if !filter.Sort.IsValid() {
		filter.Sort = domain.SortDateDesc
	}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		filter.Type = &t
	}
	if params.CategoryID != "" {
		filter.CategoryID = &params.CategoryID
	}
	if params.Account != "" {
		a := domain.AccountKind(params.Account)
		filter.Account = &a
	}
	if params.Currency != "" {
		filter.Currency = &params.Currency
	}
	var err error
	if filter.StartDate, err = parseOptionalDate("startDate", params.StartDate); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseOptionalDate("endDate", params.EndDate); err != nil {
		return filter, err
	}
	return filter, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	filter, err := transactionFilter(params)
	if err != nil {
		return nil, err
	}
	page := pagination.Normalize(params.Page, params.Limit)
	filter.Limit = page.Limit
	filter.Offset = page.Offset()

	txns, total, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &domain.TransactionPage{
		Transactions: txns,
		Total:        total,
		Page:         page.Page,
		Limit:        page.Limit,
	}, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := s.now()
	date := calendar.Today(now)
	if req.Date != "" {
		d, err := parseDate("date", req.Date)
		if err != nil {
			return nil, err
		}
		date = d
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		Amount:        req.Amount,
		CategoryID:    req.CategoryID,
		Description:   req.Description,
		Date:          date,
		Account:       accountOrDefault(req.Account),
		Currency:      currencyOrDefault(req.Currency),
		Tags:          req.Tags,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if txn.Tags == nil {
		txn.Tags = []string{}
	}
	if err := validateEntity(txn); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, txn.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	ref := category.Ref()
	txn.Category = &ref

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}

	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Date != nil {
		d, err := parseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		txn.Date = d
	}
	if req.Account != nil {
		txn.Account = *req.Account
	}
	if req.Currency != nil {
		txn.Currency = *req.Currency
	}
	if req.Tags != nil {
		txn.Tags = req.Tags
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}
	if req.CategoryID != nil && *req.CategoryID != txn.CategoryID {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category: %w", err)
		}
		ref := category.Ref()
		txn.CategoryID = category.CategoryID
		txn.Category = &ref
	}
	if err := validateEntity(*txn); err != nil {
		return nil, err
	}
	txn.LastUpdatedAt = s.now()

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
