package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/walletbase/account-api/internal/api/middleware"
	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/service"
)

// ctxIdentity extracts the identity injected by the Auth guard and performs a
// fast-fail check before any service call: presence proves the guard ran on
// this route.
func ctxIdentity(c echo.Context) (*service.TokenClaims, error) {
	identity := middleware.Identity(c)
	if identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	return identity, nil
}
