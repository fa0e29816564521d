package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// AccountKind is where the money sits.
type AccountKind string

const (
	AccountCash    AccountKind = "cash"
	AccountBank    AccountKind = "bank"
	AccountEWallet AccountKind = "ewallet"
)

func (a AccountKind) IsValid() bool {
	switch a {
	case AccountCash, AccountBank, AccountEWallet:
		return true
	}
	return false
}

// Transaction is a single income or expense record.
type Transaction struct {
	TransactionID       string          `json:"transactionID"`
	Type                TransactionType `json:"type"`
	Amount              decimal.Decimal `json:"amount"` // Always positive
	CategoryID          string          `json:"categoryID"`
	Category            *CategoryRef    `json:"category,omitempty"` // Populated on reads
	Description         string          `json:"description"`
	Date                time.Time       `json:"date"` // Calendar date
	Account             AccountKind     `json:"account"`
	Currency            string          `json:"currency"` // Opaque label, never converted
	Tags                []string        `json:"tags"`
	Note                string          `json:"note"`
	IsRecurring         bool            `json:"isRecurring"`
	RecurringScheduleID *string         `json:"recurringScheduleID,omitempty"` // Non-owning back-reference
	AuditFields
}

// TransactionSort is an allow-listed ordering for transaction listings.
type TransactionSort string

const (
	SortDateDesc   TransactionSort = "-date"
	SortDateAsc    TransactionSort = "date"
	SortAmountDesc TransactionSort = "-amount"
	SortAmountAsc  TransactionSort = "amount"
)

func (s TransactionSort) IsValid() bool {
	switch s {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return true
	}
	return false
}

// TransactionFilter narrows transaction queries. Nil fields are ignored.
// A zero Limit means no limit.
type TransactionFilter struct {
	Type       *TransactionType
	CategoryID *string
	Account    *AccountKind
	Currency   *string
	StartDate  *time.Time
	EndDate    *time.Time
	Sort       TransactionSort
	Limit      int
	Offset     int
}

// TransactionPage is one page of a filtered listing plus the unpaged total.
type TransactionPage struct {
	Transactions []Transaction
	Total        int
	Page         int
	Limit        int
}
