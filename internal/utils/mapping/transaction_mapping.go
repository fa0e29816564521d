package mapping

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Transaction{
		TransactionID:       d.TransactionID,
		Type:                string(d.Type),
		Amount:              d.Amount,
		CategoryID:          d.CategoryID,
		Description:         d.Description,
		Date:                d.Date,
		Account:             string(d.Account),
		Currency:            d.Currency,
		Tags:                tags,
		Note:                d.Note,
		IsRecurring:         d.IsRecurring,
		RecurringScheduleID: d.RecurringScheduleID,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		Type:                domain.TransactionType(m.Type),
		Amount:              m.Amount,
		CategoryID:          m.CategoryID,
		Category:            ToDomainCategoryRef(m.CategoryID, m.CategoryRef),
		Description:         m.Description,
		Date:                m.Date,
		Account:             domain.AccountKind(m.Account),
		Currency:            m.Currency,
		Tags:                m.Tags,
		Note:                m.Note,
		IsRecurring:         m.IsRecurring,
		RecurringScheduleID: m.RecurringScheduleID,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transaction to a slice of domain Transaction
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
