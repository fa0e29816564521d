package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		expected  Page
		expOffset int
	}{
		{"Defaults", 0, 0, Page{Page: 1, Limit: DefaultLimit}, 0},
		{"ThirdPage", 3, 10, Page{Page: 3, Limit: 10}, 20},
		{"CapsLimit", 2, 500, Page{Page: 2, Limit: MaxLimit}, MaxLimit},
		{"NegativeValues", -4, -1, Page{Page: 1, Limit: DefaultLimit}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.page, tt.limit)
			assert.Equal(t, tt.expected, p)
			assert.Equal(t, tt.expOffset, p.Offset())
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(5, 0))
}
