package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines operations for retrieving aggregated transaction data
type ReportingRepository interface {
	// GetTotalsByType returns per-type sums and counts for the filter.
	GetTotalsByType(ctx context.Context, filter domain.ReportFilter) (map[domain.TransactionType]decimal.Decimal, map[domain.TransactionType]int, error)

	// GetTotalsByCategory returns per-category sums, largest first.
	GetTotalsByCategory(ctx context.Context, filter domain.ReportFilter) ([]domain.CategoryTotal, error)

	// GetTrend buckets totals by period start and type.
	GetTrend(ctx context.Context, filter domain.ReportFilter, period domain.TrendPeriod) ([]domain.TrendPoint, error)
}
