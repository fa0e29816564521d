package pagination

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is a normalized page/limit pair. Page is 1-based.
type Page struct {
	Page  int
	Limit int
}

// Normalize clamps a requested page and limit: pages below 1 become 1,
// a non-positive limit becomes DefaultLimit and limits above MaxLimit are capped.
func Normalize(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns the page count needed for total rows.
func TotalPages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
