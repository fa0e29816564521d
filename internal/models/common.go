package models

import "time"

// AuditFields are the timestamp columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// CategoryRef holds the LEFT JOINed category columns. All fields are nil
// when the referenced category no longer exists.
type CategoryRef struct {
	Name  *string `db:"category_name"`
	Icon  *string `db:"category_icon"`
	Color *string `db:"category_color"`
	Type  *string `db:"category_type"`
}
