package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringRequest defines the data needed to create a recurring schedule.
// DayOfWeek, DayOfMonth and MonthOfYear are read according to Frequency.
type CreateRecurringRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount"`
	CategoryID  string                 `json:"categoryID" binding:"required"`
	Description string                 `json:"description" binding:"max=200"`
	Account     domain.AccountKind     `json:"account" binding:"omitempty,oneof=cash bank ewallet"`
	Currency    string                 `json:"currency" binding:"omitempty,oneof=LAK THB USD"`
	Frequency   domain.Frequency       `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	DayOfWeek   *int                   `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	DayOfMonth  *int                   `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
	MonthOfYear *int                   `json:"monthOfYear" binding:"omitempty,min=1,max=12"`
	StartDate   string                 `json:"startDate"` // YYYY-MM-DD, defaults to today
	EndDate     *string                `json:"endDate"`
	Note        string                 `json:"note" binding:"max=500"`
}

// UpdateRecurringRequest is a field patch. NextDueDate is only changed when supplied.
// Supplying any of Frequency, DayOfWeek, DayOfMonth or MonthOfYear rebuilds the
// recurrence from the merged values.
type UpdateRecurringRequest struct {
	Type        *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Amount      *decimal.Decimal        `json:"amount"`
	CategoryID  *string                 `json:"categoryID" binding:"omitempty,min=1"`
	Description *string                 `json:"description" binding:"omitempty,max=200"`
	Account     *domain.AccountKind     `json:"account" binding:"omitempty,oneof=cash bank ewallet"`
	Currency    *string                 `json:"currency" binding:"omitempty,oneof=LAK THB USD"`
	Frequency   *domain.Frequency       `json:"frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	DayOfWeek   *int                    `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	DayOfMonth  *int                    `json:"dayOfMonth" binding:"omitempty,min=1,max=31"`
	MonthOfYear *int                    `json:"monthOfYear" binding:"omitempty,min=1,max=12"`
	StartDate   *string                 `json:"startDate"`
	EndDate     *string                 `json:"endDate"` // Empty string clears the end date
	NextDueDate *string                 `json:"nextDueDate"`
	IsActive    *bool                   `json:"isActive"`
	Note        *string                 `json:"note" binding:"omitempty,max=500"`
}

// ListRecurringParams defines query parameters for listing schedules.
type ListRecurringParams struct {
	Type     string `form:"type" binding:"omitempty,oneof=income expense"`
	IsActive *bool  `form:"isActive"`
}

// UpcomingRecurringParams defines query parameters for the upcoming listing.
type UpcomingRecurringParams struct {
	Days int `form:"days,default=7" binding:"min=0,max=366"`
}

// RecurringResponse defines the data returned for a recurring schedule.
type RecurringResponse struct {
	ScheduleID    string                 `json:"scheduleID"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	CategoryID    string                 `json:"categoryID"`
	Category      *CategoryRefResponse   `json:"category,omitempty"`
	Description   string                 `json:"description"`
	Account       domain.AccountKind     `json:"account"`
	Currency      string                 `json:"currency"`
	Frequency     domain.Frequency       `json:"frequency"`
	DayOfWeek     *int                   `json:"dayOfWeek,omitempty"`
	DayOfMonth    *int                   `json:"dayOfMonth,omitempty"`
	MonthOfYear   *int                   `json:"monthOfYear,omitempty"`
	StartDate     string                 `json:"startDate"`
	EndDate       *string                `json:"endDate,omitempty"`
	NextDueDate   string                 `json:"nextDueDate"`
	LastProcessed *string                `json:"lastProcessed,omitempty"`
	IsActive      bool                   `json:"isActive"`
	Note          string                 `json:"note"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ListRecurringResponse wraps a list of schedules.
type ListRecurringResponse struct {
	Count     int                 `json:"count"`
	Schedules []RecurringResponse `json:"schedules"`
}

// ProcessRecurringResponse is returned by an on-demand processing run.
type ProcessRecurringResponse struct {
	Message string                   `json:"message"`
	Result  *domain.ProcessingResult `json:"result"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(calendar.Layout)
	return &s
}

// ToRecurringResponse converts a domain.RecurringSchedule to RecurringResponse DTO.
func ToRecurringResponse(s *domain.RecurringSchedule) RecurringResponse {
	dow, dom, moy := domain.RecurrenceFields(s.Recurrence)
	return RecurringResponse{
		ScheduleID:    s.ScheduleID,
		Type:          s.Type,
		Amount:        s.Amount,
		CategoryID:    s.CategoryID,
		Category:      ToCategoryRefResponse(s.Category),
		Description:   s.Description,
		Account:       s.Account,
		Currency:      s.Currency,
		Frequency:     s.Frequency(),
		DayOfWeek:     dow,
		DayOfMonth:    dom,
		MonthOfYear:   moy,
		StartDate:     s.StartDate.Format(calendar.Layout),
		EndDate:       formatDatePtr(s.EndDate),
		NextDueDate:   s.NextDueDate.Format(calendar.Layout),
		LastProcessed: formatDatePtr(s.LastProcessed),
		IsActive:      s.IsActive,
		Note:          s.Note,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListRecurringResponse converts a slice of schedules to ListRecurringResponse.
func ToListRecurringResponse(schedules []domain.RecurringSchedule) ListRecurringResponse {
	res := make([]RecurringResponse, len(schedules))
	for i, s := range schedules {
		res[i] = ToRecurringResponse(&s)
	}
	return ListRecurringResponse{Count: len(res), Schedules: res}
}
