package mapping

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToDomainCategoryRef rebuilds the joined category. It returns nil when the
// join found no category.
func ToDomainCategoryRef(categoryID string, m models.CategoryRef) *domain.CategoryRef {
	if m.Name == nil {
		return nil
	}
	ref := &domain.CategoryRef{CategoryID: categoryID, Name: *m.Name}
	if m.Icon != nil {
		ref.Icon = *m.Icon
	}
	if m.Color != nil {
		ref.Color = *m.Color
	}
	if m.Type != nil {
		ref.Type = domain.TransactionType(*m.Type)
	}
	return ref
}
