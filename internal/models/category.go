package models

// Category is the row shape of the categories table.
type Category struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	Type       string `db:"type"`
	Icon       string `db:"icon"`
	Color      string `db:"color"`
	IsDefault  bool   `db:"is_default"`
	AuditFields
}
