package service

import (
	"context"
	"errors"
	"time"

	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/ports"
)

// AuthService orchestrates registration, credential verification and the
// token lifecycle against the user directory. Each operation is a single-shot
// transaction; no state is held between calls.
type AuthService struct {
	repo    ports.UserRepository
	tokens  *TokenService
	hasher  *Hasher
	limiter ports.LoginLimiter
}

// NewAuthService wires the service. The limiter may be nil, in which case
// login throttling is disabled (tests, single-tenant deployments).
func NewAuthService(repo ports.UserRepository, tokens *TokenService, hasher *Hasher, limiter ports.LoginLimiter) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, hasher: hasher, limiter: limiter}
}

// Register creates an account with the default role, active. The directory
// enforces email uniqueness; a duplicate surfaces unchanged as
// domain.ErrEmailExists. The returned user never carries the password hash.
func (s *AuthService) Register(ctx context.Context, name, email, password string, age int) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Age:          age,
		Role:         domain.DefaultRole,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	return created.Public(), nil
}

// Login verifies credentials and mints a token pair. Unknown email and wrong
// password are indistinguishable (both domain.ErrInvalidCredentials); an
// inactive account with correct credentials fails with domain.ErrUserInactive.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !user.EligibleForLogin() {
		return nil, domain.ErrUserInactive
	}
	return s.issue(user)
}

// AdminLogin is Login with an added role gate. Inactivity is checked before
// the role so an inactive admin reports inactivity, not access denial.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !user.EligibleForLogin() {
		return nil, domain.ErrUserInactive
	}
	if user.Role != domain.RoleAdmin {
		return nil, domain.ErrAdminAccessDenied
	}
	return s.issue(user)
}

// Refresh verifies the supplied refresh token, re-fetches the subject to
// catch deletion or deactivation since issuance, and mints a new pair. The
// old refresh token is not invalidated: tokens are stateless and simply
// expire.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, claims.Sub)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// A token for a vanished account is a bad token, not a 404.
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if !user.EligibleForLogin() {
		return nil, domain.ErrUserInactive
	}
	return s.issue(user)
}

// ValidateUser is a non-throwing credential probe for pluggable strategies:
// (nil, nil) on unknown email, wrong password or inactive account. Only
// infrastructure faults return an error.
func (s *AuthService) ValidateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, err
	}
	if !user.EligibleForLogin() {
		return nil, nil
	}
	return user.Public(), nil
}

// authenticate resolves the account and verifies the password, applying the
// login throttle around the attempt.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, email)
	}
	return user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter != nil {
		_ = s.limiter.RecordFailure(ctx, email)
	}
}

func (s *AuthService) issue(user *domain.User) (*ports.AuthResult, error) {
	access, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{
		TokenPair: ports.TokenPair{AccessToken: access, RefreshToken: refresh},
		User:      user.Public(),
	}, nil
}
