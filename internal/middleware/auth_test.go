package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "middleware-test-secret"
	testIssuer = "expense-tracker"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(testSecret, testIssuer), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func serve(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, _, err := utils.IssueAccessToken("admin", testSecret, testIssuer, time.Hour, time.Now())
	require.NoError(t, err)

	w := serve(newAuthRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	expired, _, err := utils.IssueAccessToken("admin", testSecret, testIssuer, time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	wrongIssuer, _, err := utils.IssueAccessToken("admin", testSecret, "someone-else", time.Hour, time.Now())
	require.NoError(t, err)
	wrongSecret, _, err := utils.IssueAccessToken("admin", "other-secret", testIssuer, time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{"Missing", "", "Authorization header required"},
		{"NotBearer", "Basic abc", "Authorization header format must be Bearer {token}"},
		{"Expired", "Bearer " + expired, "Token has expired"},
		{"WrongIssuer", "Bearer " + wrongIssuer, "Invalid token"},
		{"WrongSecret", "Bearer " + wrongSecret, "Invalid token"},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}

func TestRateLimit_InMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := NewLimiter("2-M", "limiter:test", nil)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/ping", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_BadRate(t *testing.T) {
	_, err := NewLimiter("lots", "limiter:test", nil)
	assert.Error(t, err)
}
