package auth

import (
	"context"
)

//go:generate mockgen -destination=mock/service_mock.go -package=mock . AuthService

type AuthService interface {
	// Register creates a company and its first Admin.
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	// Login accepts an email address or an employee code.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
}
