package pgsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleSelectionPredicates(t *testing.T) {
	normalize := func(s string) string { return strings.Join(strings.Fields(s), " ") }

	assert.Equal(t,
		"WHERE s.is_active AND s.next_due_date <= $1 AND (s.end_date IS NULL OR s.end_date >= $1)",
		normalize(dueScheduleWhere))

	// The upcoming window only looks at the active flag and the due date.
	assert.Equal(t, "WHERE s.is_active AND s.next_due_date <= $1", normalize(upcomingScheduleWhere))
	assert.NotContains(t, upcomingScheduleWhere, "end_date")
}
