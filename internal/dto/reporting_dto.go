package dto

import (
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportParams defines query parameters shared by the report endpoints.
type ReportParams struct {
	Type      string `form:"type" binding:"omitempty,oneof=income expense"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Currency  string `form:"currency,default=LAK" binding:"omitempty,oneof=LAK THB USD"`
}

// TrendParams defines query parameters for the trend report.
type TrendParams struct {
	ReportParams
	Period string `form:"period,default=daily" binding:"omitempty,oneof=daily weekly monthly"`
}

// CategoryTotalResponse is one row of the by-category report.
type CategoryTotalResponse struct {
	CategoryRefResponse
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// TrendPointResponse is one bucket of the trend report.
type TrendPointResponse struct {
	Period string                 `json:"period"`
	Type   domain.TransactionType `json:"type"`
	Total  decimal.Decimal        `json:"total"`
}

// ToCategoryTotalResponses converts category totals to DTOs.
func ToCategoryTotalResponses(totals []domain.CategoryTotal) []CategoryTotalResponse {
	res := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CategoryTotalResponse{
			CategoryRefResponse: *ToCategoryRefResponse(&t.CategoryRef),
			Total:               t.Total,
			Count:               t.Count,
		}
	}
	return res
}

// ToTrendResponses converts trend points to DTOs keyed by bucket start date.
func ToTrendResponses(points []domain.TrendPoint) []TrendPointResponse {
	res := make([]TrendPointResponse, len(points))
	for i, p := range points {
		res[i] = TrendPointResponse{
			Period: p.PeriodStart.Format(calendar.Layout),
			Type:   p.Type,
			Total:  p.Total,
		}
	}
	return res
}
