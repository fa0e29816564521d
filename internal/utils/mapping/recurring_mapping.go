package mapping

import (
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

// ToModelRecurringSchedule flattens the schedule's recurrence into columns.
func ToModelRecurringSchedule(d domain.RecurringSchedule) models.RecurringSchedule {
	dow, dom, moy := domain.RecurrenceFields(d.Recurrence)
	return models.RecurringSchedule{
		ScheduleID:    d.ScheduleID,
		Type:          string(d.Type),
		Amount:        d.Amount,
		CategoryID:    d.CategoryID,
		Description:   d.Description,
		Note:          d.Note,
		Account:       string(d.Account),
		Currency:      d.Currency,
		Frequency:     string(d.Frequency()),
		DayOfWeek:     dow,
		DayOfMonth:    dom,
		MonthOfYear:   moy,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		NextDueDate:   d.NextDueDate,
		LastProcessed: d.LastProcessed,
		IsActive:      d.IsActive,
		Version:       d.Version,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringSchedule rebuilds the tagged recurrence from its columns.
func ToDomainRecurringSchedule(m models.RecurringSchedule) (domain.RecurringSchedule, error) {
	rec, err := domain.NewRecurrence(domain.Frequency(m.Frequency), m.DayOfWeek, m.DayOfMonth, m.MonthOfYear)
	if err != nil {
		return domain.RecurringSchedule{}, fmt.Errorf("schedule %s has invalid recurrence: %w", m.ScheduleID, err)
	}
	return domain.RecurringSchedule{
		ScheduleID:    m.ScheduleID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		CategoryID:    m.CategoryID,
		Category:      ToDomainCategoryRef(m.CategoryID, m.CategoryRef),
		Description:   m.Description,
		Note:          m.Note,
		Account:       domain.AccountKind(m.Account),
		Currency:      m.Currency,
		Recurrence:    rec,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		NextDueDate:   m.NextDueDate,
		LastProcessed: m.LastProcessed,
		IsActive:      m.IsActive,
		Version:       m.Version,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainRecurringScheduleSlice converts rows, failing on the first corrupt one.
func ToDomainRecurringScheduleSlice(ms []models.RecurringSchedule) ([]domain.RecurringSchedule, error) {
	ds := make([]domain.RecurringSchedule, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainRecurringSchedule(m)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}
