package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNow(t *testing.T) {
	fixed := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return fixed }

	got, err := parseNow("", clock)
	require.NoError(t, err)
	assert.Equal(t, fixed, got)

	got, err = parseNow("2025-03-05", clock)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC), got)

	got, err = parseNow("2025-03-05T23:30:00+07:00", clock)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, time.March, 5, 16, 30, 0, 0, time.UTC)))

	_, err = parseNow("yesterday", clock)
	assert.Error(t, err)
}
