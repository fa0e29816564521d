package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// reportFilter converts query parameters into a report filter.
func reportFilter(params dto.ReportParams) (domain.ReportFilter, error) {
	filter := domain.ReportFilter{Currency: currencyOrDefault(params.Currency)}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		filter.Type = &t
	}
	var err error
	if filter.StartDate, err = parseOptionalDate("startDate", params.StartDate); err != nil {
		return filter, err
	}
	if filter.EndDate, err = parseOptionalDate("endDate", params.EndDate); err != nil {
		return filter, err
	}
	if filter.StartDate != nil && filter.EndDate != nil && calendar.IsBefore(*filter.EndDate, *filter.StartDate) {
		return filter, apperrors.NewValidationError("endDate must not be before startDate")
	}
	return filter, nil
}

// Summary totals income and expense for a period
func (s *reportingService) Summary(ctx context.Context, params dto.ReportParams) (*domain.Summary, error) {
	filter, err := reportFilter(params)
	if err != nil {
		return nil, err
	}
	// The summary always covers both types.
	filter.Type = nil

	totals, counts, err := s.reportingRepo.GetTotalsByType(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to get totals by type", slog.String("currency", filter.Currency))
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}
	summary := domain.NewSummary(filter.Currency, totals, counts)
	return &summary, nil
}

// ByCategory totals transactions per category
func (s *reportingService) ByCategory(ctx context.Context, params dto.ReportParams) ([]domain.CategoryTotal, error) {
	filter, err := reportFilter(params)
	if err != nil {
		return nil, err
	}
	totals, err := s.reportingRepo.GetTotalsByCategory(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to get totals by category")
		return nil, fmt.Errorf("failed to generate category report: %w", err)
	}
	return totals, nil
}

// Trend buckets totals by period
func (s *reportingService) Trend(ctx context.Context, params dto.TrendParams) ([]domain.TrendPoint, error) {
	filter, err := reportFilter(params.ReportParams)
	if err != nil {
		return nil, err
	}
	period := domain.TrendPeriod(params.Period)
	if period == "" {
		period = domain.TrendDaily
	}
	if !period.IsValid() {
		return nil, apperrors.NewValidationError("period must be daily, weekly or monthly")
	}

	points, err := s.reportingRepo.GetTrend(ctx, filter, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to get trend", slog.String("period", string(period)))
		return nil, fmt.Errorf("failed to generate trend report: %w", err)
	}
	return points, nil
}
