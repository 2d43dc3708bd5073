package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/walletbase/account-api/internal/api/middleware"
	"github.com/walletbase/account-api/internal/core/ports"
)

// RefreshTokenCookie is the cookie carrying the refresh token; the access
// token cookie name is owned by the auth guard.
const RefreshTokenCookie = "refreshToken"

// CookieConfig controls token-cookie attributes. Secure should be true in
// production; max-age always matches the corresponding token TTL.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// setAuthCookies delivers both tokens as HTTP-only strict-SameSite cookies.
func setAuthCookies(c echo.Context, cfg CookieConfig, pair ports.TokenPair) {
	c.SetCookie(tokenCookie(cfg, middleware.AccessTokenCookie, pair.AccessToken, cfg.AccessTTL))
	c.SetCookie(tokenCookie(cfg, RefreshTokenCookie, pair.RefreshToken, cfg.RefreshTTL))
}

// clearAuthCookies expires both token cookies with matching attributes so
// browsers actually drop them.
func clearAuthCookies(c echo.Context, cfg CookieConfig) {
	access := tokenCookie(cfg, middleware.AccessTokenCookie, "", 0)
	access.MaxAge = -1
	refresh := tokenCookie(cfg, RefreshTokenCookie, "", 0)
	refresh.MaxAge = -1
	c.SetCookie(access)
	c.SetCookie(refresh)
}

func tokenCookie(cfg CookieConfig, name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
