package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// DefaultCurrency is used when a request does not name one.
const DefaultCurrency = "LAK"

// CategoryRef is the display projection of a category joined onto other entities.
type CategoryRef struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	Type       TransactionType `json:"type"`
}
