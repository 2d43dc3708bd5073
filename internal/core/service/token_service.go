package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/walletbase/account-api/internal/core/domain"
)

const (
	defaultAccessTTL  = 5 * time.Minute
	defaultRefreshTTL = 24 * time.Hour
)

// TokenClaims is the payload carried by both access and refresh tokens. The
// role travels in the token so coarse authorization does not need a directory
// round-trip; guards still re-fetch the user to catch post-issuance
// deactivation.
type TokenClaims struct {
	Sub   int64       `json:"sub"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 bearer tokens. The secret and both
// TTLs are fixed at construction; the clock is injectable for expiry tests.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// TokenOption customizes a TokenService.
type TokenOption func(*TokenService)

// WithClock replaces the time source. Test use only.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) { s.now = now }
}

// NewTokenService builds a TokenService. Non-positive TTLs fall back to the
// documented defaults (access 5m, refresh 24h).
func NewTokenService(secret string, accessTTL, refreshTTL time.Duration, opts ...TokenOption) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	s := &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AccessTTL returns the configured access-token lifetime (cookie max-age).
func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

// RefreshTTL returns the configured refresh-token lifetime.
func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

// GenerateAccessToken signs a short-lived token for request authentication.
func (s *TokenService) GenerateAccessToken(user *domain.User) (string, error) {
	return s.sign(user, s.accessTTL)
}

// GenerateRefreshToken signs a longer-lived token used only to mint new
// pairs. Payload shape is identical to the access token; the two differ only
// in expiry.
func (s *TokenService) GenerateRefreshToken(user *domain.User) (string, error) {
	return s.sign(user, s.refreshTTL)
}

func (s *TokenService) sign(user *domain.User, ttl time.Duration) (string, error) {
	now := s.now()
	claims := TokenClaims{
		Sub:   user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.ErrInvalidToken
	}
	return signed, nil
}

// Verify checks signature and expiry. Past-expiry tokens fail with
// domain.ErrExpiredToken; every other verification failure (bad signature,
// malformed structure, wrong algorithm) is domain.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Decode parses the payload without verifying the signature. Diagnostics
// only; never trust the result for an authorization decision.
func (s *TokenService) Decode(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
