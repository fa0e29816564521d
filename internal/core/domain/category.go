package domain

const (
	DefaultCategoryIcon  = "📁"
	DefaultCategoryColor = "#6366f1"
)

// Category groups transactions for reporting and budgeting.
// Name is unique within Type.
type Category struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
	Icon       string          `json:"icon"`
	Color      string          `json:"color"`
	IsDefault  bool            `json:"isDefault"` // Protected from deletion
	AuditFields
}

// Ref projects the category for embedding in other entities.
func (c Category) Ref() CategoryRef {
	return CategoryRef{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		Icon:       c.Icon,
		Color:      c.Color,
		Type:       c.Type,
	}
}

// DefaultCategories is the starter set inserted into an empty store.
// IDs and audit fields are left for the caller to assign.
func DefaultCategories() []Category {
	return []Category{
		{Name: "ເງິນເດືອນ", Type: Income, Icon: "💰", Color: "#22c55e", IsDefault: true},
		{Name: "ທຸລະກິດ", Type: Income, Icon: "🏢", Color: "#3b82f6", IsDefault: true},
		{Name: "ການລົງທຶນ", Type: Income, Icon: "📈", Color: "#8b5cf6", IsDefault: true},
		{Name: "ໂບນັດ", Type: Income, Icon: "🎁", Color: "#f59e0b", IsDefault: true},
		{Name: "ລາຍຮັບອື່ນໆ", Type: Income, Icon: "💵", Color: "#6366f1", IsDefault: true},

		{Name: "ອາຫານ", Type: Expense, Icon: "🍜", Color: "#ef4444", IsDefault: true},
		{Name: "ເດີນທາງ", Type: Expense, Icon: "🚗", Color: "#f97316", IsDefault: true},
		{Name: "ທີ່ຢູ່ອາໄສ", Type: Expense, Icon: "🏠", Color: "#84cc16", IsDefault: true},
		{Name: "ສຸຂະພາບ", Type: Expense, Icon: "🏥", Color: "#06b6d4", IsDefault: true},
		{Name: "ການສຶກສາ", Type: Expense, Icon: "📚", Color: "#8b5cf6", IsDefault: true},
		{Name: "ບັນເທີງ", Type: Expense, Icon: "🎬", Color: "#ec4899", IsDefault: true},
		{Name: "ຊ໊ອບປິ້ງ", Type: Expense, Icon: "🛒", Color: "#14b8a6", IsDefault: true},
		{Name: "ຄ່ານ້ຳ-ໄຟ", Type: Expense, Icon: "💡", Color: "#eab308", IsDefault: true},
		{Name: "ໂທລະສັບ/ອິນເຕີເນັດ", Type: Expense, Icon: "📱", Color: "#6366f1", IsDefault: true},
		{Name: "ລາຍຈ່າຍອື່ນໆ", Type: Expense, Icon: "📝", Color: "#94a3b8", IsDefault: true},
	}
}
