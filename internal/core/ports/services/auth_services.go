package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/dto"
)

// AuthService authenticates the configured operator and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
