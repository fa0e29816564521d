package pgsql

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		RecurringRepo:   newPgxRecurringRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
