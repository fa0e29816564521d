package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// ReportingService defines operations for generating transaction reports
type ReportingService interface {
	// Summary totals income and expense for a period in one currency
	Summary(ctx context.Context, params dto.ReportParams) (*domain.Summary, error)

	// ByCategory totals transactions per category, largest first
	ByCategory(ctx context.Context, params dto.ReportParams) ([]domain.CategoryTotal, error)

	// Trend buckets totals by day, week or month
	Trend(ctx context.Context, params dto.TrendParams) ([]domain.TrendPoint, error)
}
