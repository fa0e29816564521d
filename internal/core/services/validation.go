package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// entityValidator holds the struct-level rules for entities about to be
// written. Binding tags on DTOs cannot express these because amounts are
// decimals and dates arrive as strings.
var entityValidator = newEntityValidator()

func newEntityValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateTransaction, domain.Transaction{})
	v.RegisterStructValidation(validateSchedule, domain.RecurringSchedule{})
	v.RegisterStructValidation(validateBudget, domain.Budget{})
	return v
}

func validateTransaction(sl validator.StructLevel) {
	txn := sl.Current().Interface().(domain.Transaction)
	if !txn.Amount.IsPositive() {
		sl.ReportError(txn.Amount, "amount", "Amount", "positive", "")
	}
	if !txn.Type.IsValid() {
		sl.ReportError(txn.Type, "type", "Type", "txntype", "")
	}
	if !txn.Account.IsValid() {
		sl.ReportError(txn.Account, "account", "Account", "account", "")
	}
}

func validateSchedule(sl validator.StructLevel) {
	s := sl.Current().Interface().(domain.RecurringSchedule)
	if !s.Amount.IsPositive() {
		sl.ReportError(s.Amount, "amount", "Amount", "positive", "")
	}
	if !s.Type.IsValid() {
		sl.ReportError(s.Type, "type", "Type", "txntype", "")
	}
	if !s.Account.IsValid() {
		sl.ReportError(s.Account, "account", "Account", "account", "")
	}
	if s.Recurrence == nil {
		sl.ReportError(s.Recurrence, "frequency", "Recurrence", "required", "")
	}
	if s.EndDate != nil && calendar.IsBefore(*s.EndDate, s.StartDate) {
		sl.ReportError(s.EndDate, "endDate", "EndDate", "afterstart", "")
	}
}

func validateBudget(sl validator.StructLevel) {
	b := sl.Current().Interface().(domain.Budget)
	if b.Amount.IsNegative() {
		sl.ReportError(b.Amount, "amount", "Amount", "nonnegative", "")
	}
	if b.Month < 1 || b.Month > 12 {
		sl.ReportError(b.Month, "month", "Month", "month", "")
	}
}

// validateEntity runs the struct-level rules and folds violations into a
// single validation error.
func validateEntity(entity any) error {
	err := entityValidator.Struct(entity)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewAppError(500, "failed to validate input", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return apperrors.NewValidationError("%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "positive":
		return fmt.Sprintf("%s must be greater than 0", fe.Field())
	case "nonnegative":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	case "afterstart":
		return "endDate must not be before startDate"
	case "txntype":
		return "type must be income or expense"
	case "account":
		return "account must be cash, bank or ewallet"
	case "month":
		return "month must be between 1 and 12"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

// parseDate parses a YYYY-MM-DD request field, naming the field on failure.
func parseDate(field, value string) (time.Time, error) {
	d, err := calendar.Parse(value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("%s must be a date in YYYY-MM-DD format", field)
	}
	return d, nil
}

// parseOptionalDate returns nil for an empty value.
func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func currencyOrDefault(code string) string {
	if code == "" {
		return domain.DefaultCurrency
	}
	return code
}

func accountOrDefault(account domain.AccountKind) domain.AccountKind {
	if account == "" {
		return domain.AccountCash
	}
	return account
}
