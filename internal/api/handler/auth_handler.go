package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/walletbase/account-api/internal/api/metrics"
	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	cookies     CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

// Register creates a new account with the default role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.Age)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates and delivers the token pair as HTTP-only cookies.
//
// @Summary      Login (cookie delivery)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	result, err := h.login(c, false)
	if err != nil {
		return err
	}
	setAuthCookies(c, h.cookies, result.TokenPair)
	return c.JSON(http.StatusOK, userResponse{User: result.User})
}

// AdminLogin is Login restricted to active admin accounts.
//
// @Summary      Admin login (cookie delivery)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	result, err := h.login(c, true)
	if err != nil {
		return err
	}
	setAuthCookies(c, h.cookies, result.TokenPair)
	return c.JSON(http.StatusOK, userResponse{User: result.User})
}

// Refresh rotates the token pair using the refresh-token cookie.
//
// @Summary      Refresh tokens (cookie delivery)
// @Tags         auth
// @Produce      json
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		metrics.TokenRefreshTotal.WithLabelValues("invalid").Inc()
		return domain.ErrUnauthenticated
	}

	result, err := h.refresh(c, cookie.Value)
	if err != nil {
		return err
	}
	setAuthCookies(c, h.cookies, result.TokenPair)
	return c.JSON(http.StatusOK, userResponse{User: result.User})
}

// Logout clears both token cookies. Tokens themselves stay valid until
// expiry; there is no server-side revocation.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200   {object}  messageResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearAuthCookies(c, h.cookies)
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// TokenLogin returns the token pair in the response body for non-browser
// clients.
//
// @Summary      Login (token response)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/token/login [post]
func (h *AuthHandler) TokenLogin(c echo.Context) error {
	result, err := h.login(c, false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	})
}

// TokenAdminLogin is the body-token variant of AdminLogin.
//
// @Summary      Admin login (token response)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/token/admin/login [post]
func (h *AuthHandler) TokenAdminLogin(c echo.Context) error {
	result, err := h.login(c, true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	})
}

// TokenRefresh exchanges a body-supplied refresh token for a new pair.
//
// @Summary      Refresh tokens (token response)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/token/refresh [post]
func (h *AuthHandler) TokenRefresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.refresh(c, req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		User:         result.User,
	})
}

func (h *AuthHandler) login(c echo.Context, admin bool) (*ports.AuthResult, error) {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	kind := "user"
	login := h.authService.Login
	if admin {
		kind = "admin"
		login = h.authService.AdminLogin
	}

	result, err := login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err), kind).Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("success", kind).Inc()
	return result, nil
}

func (h *AuthHandler) refresh(c echo.Context, token string) (*ports.AuthResult, error) {
	result, err := h.authService.Refresh(c.Request().Context(), token)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues(refreshResult(err)).Inc()
		return nil, err
	}
	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	return result, nil
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return "inactive"
	case errors.Is(err, domain.ErrAdminAccessDenied):
		return "denied"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}

func refreshResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrExpiredToken):
		return "expired"
	case errors.Is(err, domain.ErrInvalidToken):
		return "invalid"
	case errors.Is(err, domain.ErrUserInactive):
		return "inactive"
	default:
		return "error"
	}
}

func registerResult(err error) string {
	if errors.Is(err, domain.ErrEmailExists) {
		return "duplicate_email"
	}
	return "error"
}
