package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	reportingRepo *MockReportingRepository
	service       portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.reportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.reportingRepo)
}

func (suite *ReportingServiceTestSuite) TearDownTest() {
	suite.reportingRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_IgnoresTypeFilter() {
	suite.reportingRepo.On("GetTotalsByType", mock.Anything, mock.MatchedBy(func(f domain.ReportFilter) bool {
		return f.Type == nil && f.Currency == "LAK"
	})).Return(
		map[domain.TransactionType]decimal.Decimal{domain.Income: decimal.NewFromInt(5000000), domain.Expense: decimal.NewFromInt(1250000)},
		map[domain.TransactionType]int{domain.Income: 2, domain.Expense: 9},
		nil,
	).Once()

	summary, err := suite.service.Summary(context.Background(), dto.ReportParams{Type: "expense"})

	suite.Require().NoError(err)
	suite.True(summary.Balance.Equal(decimal.NewFromInt(3750000)))
	suite.Equal(9, summary.ExpenseCount)
}

func (suite *ReportingServiceTestSuite) TestSummary_EmptyPeriod() {
	suite.reportingRepo.On("GetTotalsByType", mock.Anything, mock.Anything).
		Return(map[domain.TransactionType]decimal.Decimal{}, map[domain.TransactionType]int{}, nil).Once()

	summary, err := suite.service.Summary(context.Background(), dto.ReportParams{Currency: "THB"})

	suite.Require().NoError(err)
	suite.True(summary.Balance.IsZero())
	suite.Equal("THB", summary.Currency)
}

func (suite *ReportingServiceTestSuite) TestByCategory_RejectsInvertedRange() {
	_, err := suite.service.ByCategory(context.Background(), dto.ReportParams{StartDate: "2025-05-01", EndDate: "2025-04-01"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportingServiceTestSuite) TestTrend_DefaultsToDaily() {
	suite.reportingRepo.On("GetTrend", mock.Anything, mock.Anything, domain.TrendDaily).Return([]domain.TrendPoint{}, nil).Once()

	points, err := suite.service.Trend(context.Background(), dto.TrendParams{})

	suite.Require().NoError(err)
	suite.Empty(points)
}

func (suite *ReportingServiceTestSuite) TestTrend_UnknownPeriod() {
	_, err := suite.service.Trend(context.Background(), dto.TrendParams{Period: "hourly"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
