package services

import (
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// Recurring options carry the optional infrastructure (redis locker, event publisher).
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, recurringOpts ...RecurringServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo)
	container.Recurring = NewRecurringService(
		repos.RecurringRepo,
		repos.TransactionRepo,
		repos.CategoryRepo,
		recurringOpts...,
	)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo, repos.CategoryRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Export = NewExportService(repos.TransactionRepo, cfg.ExportFontPath)
	container.Auth = NewAuthService(cfg)

	return container
}
