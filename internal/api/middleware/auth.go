package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/walletbase/account-api/internal/api/metrics"
	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/ports"
	"github.com/walletbase/account-api/internal/core/service"
)

// identityKey is the echo context key holding the verified token claims.
const identityKey = "identity"

// AccessTokenCookie is the cookie the guard reads the access token from.
const AccessTokenCookie = "accessToken"

// Auth is the request authentication guard. It extracts a bearer token
// (cookie first, Authorization header as fallback), verifies it, re-fetches
// the subject from the directory to catch post-issuance deactivation, and
// attaches the verified claims to the request context.
func Auth(tokens *service.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				metrics.GuardRejectionsTotal.WithLabelValues("no_token").Inc()
				return domain.ErrUnauthenticated
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrExpiredToken) {
					metrics.GuardRejectionsTotal.WithLabelValues("expired_token").Inc()
				} else {
					metrics.GuardRejectionsTotal.WithLabelValues("invalid_token").Inc()
				}
				return err
			}

			// Tokens are not revocable; freshness is approximated by
			// re-checking the directory, bounded by the access TTL.
			user, err := users.FindByID(c.Request().Context(), claims.Sub)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.GuardRejectionsTotal.WithLabelValues("invalid_token").Inc()
					return domain.ErrInvalidToken
				}
				return err
			}
			if !user.EligibleForLogin() {
				metrics.GuardRejectionsTotal.WithLabelValues("inactive").Inc()
				return domain.ErrUserInactive
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// extractToken prefers the HTTP-only cookie and falls back to the
// Authorization header for non-browser clients.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// Identity returns the verified claims attached by Auth, or nil when the
// guard has not run on this request.
func Identity(c echo.Context) *service.TokenClaims {
	claims, _ := c.Get(identityKey).(*service.TokenClaims)
	return claims
}
