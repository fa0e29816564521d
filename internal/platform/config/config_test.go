package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "expense-tracker", cfg.JWTIssuer)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.RecurringInterval)
	assert.Equal(t, "00:01", cfg.RecurringRunAt)
	assert.Equal(t, 5*time.Minute, cfg.RecurringRunTimeout)
	assert.True(t, cfg.RecurringEnabled)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RECURRING_INTERVAL", "not-a-duration")
	t.Setenv("RECURRING_RUN_TIMEOUT", "30s")
	t.Setenv("RECURRING_RUN_AT", "25:99")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.RecurringInterval, "invalid duration falls back")
	assert.Equal(t, 30*time.Second, cfg.RecurringRunTimeout)
	assert.Equal(t, "00:01", cfg.RecurringRunAt)
}

func TestParseClock(t *testing.T) {
	h, m, err := ParseClock("07:45")
	require.NoError(t, err)
	assert.Equal(t, 7, h)
	assert.Equal(t, 45, m)

	_, _, err = ParseClock("7pm")
	assert.Error(t, err)
}
