package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseAccessToken(t *testing.T) {
	now := time.Now()
	token, expiresAt, err := IssueAccessToken("admin", "secret", "expense-tracker", time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := ParseAccessToken(token, "secret", "expense-tracker")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)

	_, err = ParseAccessToken(token, "other-secret", "expense-tracker")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = ParseAccessToken(token, "secret", "someone-else")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestParseAccessToken_Expired(t *testing.T) {
	token, _, err := IssueAccessToken("admin", "secret", "", time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ParseAccessToken(token, "secret", "")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret", ""))

	_, err = HashPassword(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
