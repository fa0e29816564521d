package services

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/utils"
)

// authService verifies the single configured operator.
type authService struct {
	BaseService
	cfg *config.Config
	now func() time.Time
}

// NewAuthService creates the login service for the configured operator.
func NewAuthService(cfg *config.Config) portssvc.AuthService {
	return &authService{cfg: cfg, now: time.Now}
}

var _ portssvc.AuthService = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" {
		s.LogWarn(ctx, "Login attempted while no admin password hash is configured")
		return nil, apperrors.NewAppError(401, "login is disabled", apperrors.ErrUnauthorized)
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1
	passOK := utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		s.LogWarn(ctx, "Failed login attempt", slog.String("username", req.Username))
		return nil, apperrors.NewAppError(401, "invalid username or password", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.IssueAccessToken(s.cfg.AdminUsername, s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTExpiryDuration, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token")
		return nil, apperrors.NewAppError(500, "failed to issue access token", err)
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("username", req.Username))
	return &dto.LoginResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}
