package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount positivity is checked by the service.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount"`
	CategoryID  string                 `json:"categoryID" binding:"required"`
	Description string                 `json:"description" binding:"max=200"`
	Date        string                 `json:"date"` // YYYY-MM-DD, defaults to today
	Account     domain.AccountKind     `json:"account" binding:"omitempty,oneof=cash bank ewallet"`
	Currency    string                 `json:"currency" binding:"omitempty,oneof=LAK THB USD"`
	Tags        []string               `json:"tags" binding:"omitempty,dive,max=30"`
	Note        string                 `json:"note" binding:"max=500"`
}

// UpdateTransactionRequest defines the fields that can be changed on a transaction.
type UpdateTransactionRequest struct {
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal        `json:"amount"`
	CategoryID  *string                 `json:"categoryID" binding:"omitempty,min=1"`
	Description *string                 `json:"description" binding:"omitempty,max=200"`
	Date        *string                 `json:"date"`
	Account     *domain.AccountKind     `json:"account" binding:"omitempty,oneof=cash bank ewallet"`
	Currency    *string                 `json:"currency" binding:"omitempty,oneof=LAK THB USD"`
	Tags        []string                `json:"tags" binding:"omitempty,dive,max=30"`
	Note        *string                 `json:"note" binding:"omitempty,max=500"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Type       string `form:"type" binding:"omitempty,oneof=income expense"`
	CategoryID string `form:"category"`
	Account    string `form:"account" binding:"omitempty,oneof=cash bank ewallet"`
	Currency   string `form:"currency"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
	Sort       string `form:"sort,default=-date" binding:"omitempty,oneof=date -date amount -amount"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID       string                 `json:"transactionID"`
	Type                domain.TransactionType `json:"type"`
	Amount              decimal.Decimal        `json:"amount"`
	CategoryID          string                 `json:"categoryID"`
	Category            *CategoryRefResponse   `json:"category,omitempty"`
	Description         string                 `json:"description"`
	Date                string                 `json:"date"`
	Account             domain.AccountKind     `json:"account"`
	Currency            string                 `json:"currency"`
	Tags                []string               `json:"tags"`
	Note                string                 `json:"note"`
	IsRecurring         bool                   `json:"isRecurring"`
	RecurringScheduleID *string                `json:"recurringScheduleID,omitempty"`
	CreatedAt           time.Time              `json:"createdAt"`
	LastUpdatedAt       time.Time              `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps one page of transactions.
type ListTransactionsResponse struct {
	Count        int                   `json:"count"`
	Total        int                   `json:"total"`
	TotalPages   int                   `json:"totalPages"`
	CurrentPage  int                   `json:"currentPage"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	tags := txn.Tags
	if tags == nil {
		tags = []string{}
	}
	return TransactionResponse{
		TransactionID:       txn.TransactionID,
		Type:                txn.Type,
		Amount:              txn.Amount,
		CategoryID:          txn.CategoryID,
		Category:            ToCategoryRefResponse(txn.Category),
		Description:         txn.Description,
		Date:                txn.Date.Format(calendar.Layout),
		Account:             txn.Account,
		Currency:            txn.Currency,
		Tags:                tags,
		Note:                txn.Note,
		IsRecurring:         txn.IsRecurring,
		RecurringScheduleID: txn.RecurringScheduleID,
		CreatedAt:           txn.CreatedAt,
		LastUpdatedAt:       txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}
