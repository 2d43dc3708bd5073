package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/walletbase/account-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Code is
// the stable machine-readable discriminant from the domain taxonomy.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// statusByCode maps every domain error code to its HTTP status. The taxonomy
// is closed, so an unknown *domain.Error indicates a programming error and
// falls through to 500.
var statusByCode = map[string]int{
	domain.ErrEmailExists.Code:        http.StatusConflict,
	domain.ErrInvalidCredentials.Code: http.StatusUnauthorized,
	domain.ErrInvalidToken.Code:       http.StatusUnauthorized,
	domain.ErrExpiredToken.Code:       http.StatusUnauthorized,
	domain.ErrAdminAccessDenied.Code:  http.StatusForbidden,
	domain.ErrUserInactive.Code:       http.StatusForbidden,
	domain.ErrUnauthenticated.Code:    http.StatusUnauthorized,
	domain.ErrForbidden.Code:          http.StatusForbidden,
	domain.ErrTooManyAttempts.Code:    http.StatusTooManyRequests,
	domain.ErrUserNotFound.Code:       http.StatusNotFound,
	domain.ErrInvalidWallet.Code:      http.StatusBadRequest,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status plus machine-readable code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "code": "<code>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var de *domain.Error
	if errors.As(err, &de) {
		if status, ok := statusByCode[de.Code]; ok {
			return status, errorResponse{Error: de.Message, Code: de.Code}
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Error: "internal server error",
		Code:  domain.ErrHashing.Code,
	}
}
