package ports

import (
	"context"

	"github.com/walletbase/account-api/internal/core/domain"
)

// TokenPair is an access/refresh token set minted for one authentication.
// The two tokens share payload shape and differ only in expiry.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult is the outcome of a successful login or refresh.
type AuthResult struct {
	TokenPair
	User *domain.User `json:"user"`
}

// AuthService orchestrates registration, credential verification and the
// token lifecycle.
type AuthService interface {
	Register(ctx context.Context, name, email, password string, age int) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	AdminLogin(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	// ValidateUser is a non-throwing probe: (nil, nil) on any authentication
	// failure, a non-nil error only for infrastructure faults.
	ValidateUser(ctx context.Context, email, password string) (*domain.User, error)
}
