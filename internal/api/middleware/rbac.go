package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/walletbase/account-api/internal/api/metrics"
	"github.com/walletbase/account-api/internal/core/domain"
)

// RequireRoles is the role authorization guard. With no roles it allows
// unconditionally; otherwise the authenticated identity's role must be a
// member of the set. Must run after Auth — a missing identity is a pipeline
// ordering violation and is rejected, not treated as anonymous access.
func RequireRoles(roles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}

			identity := Identity(c)
			if identity == nil {
				metrics.GuardRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			if _, ok := allowed[identity.Role]; !ok {
				metrics.GuardRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequirePermission gates on the static role→permission table instead of a
// raw role set.
func RequirePermission(p domain.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := Identity(c)
			if identity == nil || !identity.Role.Has(p) {
				metrics.GuardRejectionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
