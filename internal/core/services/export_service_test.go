package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/core/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: "t1", Type: domain.Income, Amount: decimal.NewFromInt(5000000),
			Category: &domain.CategoryRef{Name: "Salary"}, Date: calendar.New(2025, time.March, 1),
			Account: domain.AccountBank, Currency: "LAK", Description: "March salary",
		},
		{
			TransactionID: "t2", Type: domain.Expense, Amount: decimal.NewFromInt(45000),
			Category: &domain.CategoryRef{Name: "Food"}, Date: calendar.New(2025, time.March, 2),
			Account: domain.AccountCash, Currency: "LAK", Description: "Lunch",
		},
	}
}

func TestExportService_ExportExcel(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("ListTransactions", mock.Anything, mock.MatchedBy(func(f domain.TransactionFilter) bool {
		return f.Sort == domain.SortDateAsc && f.Limit == 0 && f.StartDate != nil
	})).Return(exportFixture(), 2, nil).Once()
	svc := services.NewExportService(repo, "")

	var buf bytes.Buffer
	err := svc.ExportExcel(context.Background(), dto.ExportParams{StartDate: "2025-03-01"}, &buf)
	require.NoError(t, err)
	repo.AssertExpectations(t)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2025-03-01", rows[1][0])
	assert.Equal(t, "Salary", rows[1][2])
	assert.Equal(t, "Lunch", rows[2][6])

	var labels []string
	for _, r := range rows[3:] {
		if len(r) > 2 && r[2] != "" {
			labels = append(labels, r[2])
		}
	}
	assert.Equal(t, []string{"Total income", "Total expense", "Balance"}, labels)
}

func TestExportService_ExportPDF(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("ListTransactions", mock.Anything, mock.Anything).Return(exportFixture(), 2, nil).Once()
	svc := services.NewExportService(repo, "")

	var buf bytes.Buffer
	err := svc.ExportPDF(context.Background(), dto.ExportParams{}, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestExportService_BadDate(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewExportService(repo, "")

	var buf bytes.Buffer
	err := svc.ExportExcel(context.Background(), dto.ExportParams{EndDate: "soon"}, &buf)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
	repo.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
}
