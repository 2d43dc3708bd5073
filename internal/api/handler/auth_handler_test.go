package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/walletbase/account-api/internal/api/middleware"
	"github.com/walletbase/account-api/internal/core/domain"
	"github.com/walletbase/account-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string, age int) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	adminFn    func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	refreshFn  func(ctx context.Context, refreshToken string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string, age int) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password, age)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) AdminLogin(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.adminFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (*ports.AuthResult, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *stubAuthService) ValidateUser(_ context.Context, _, _ string) (*domain.User, error) {
	return nil, nil
}

func testCookieConfig() CookieConfig {
	return CookieConfig{
		Secure:     false,
		AccessTTL:  5 * time.Minute,
		RefreshTTL: 24 * time.Hour,
	}
}

func testResult() *ports.AuthResult {
	return &ports.AuthResult{
		TokenPair: ports.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
		User: &domain.User{ID: 1, Name: "Kim", Email: "kim@test.com", Role: domain.RoleUser, IsActive: true},
	}
}

func newAuthContext(t *testing.T, method, path, body string, setup func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestRegister_Created(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, name, email, password string, age int) (*domain.User, error) {
			if name != "Kim" || email != "kim@test.com" || password != "hunter22!" || age != 30 {
				t.Fatalf("unexpected arguments: %s %s %s %d", name, email, password, age)
			}
			return &domain.User{ID: 1, Name: name, Email: email, Age: age, Role: domain.RoleUser, IsActive: true}, nil
		},
	}
	h := NewAuthHandler(svc, testCookieConfig())

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"name":"Kim","email":"kim@test.com","password":"hunter22!","age":30}`, nil)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if user.Email != "kim@test.com" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "hunter22") {
		t.Fatalf("password leaked in response body")
	}
}

func TestRegister_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCookieConfig())

	cases := []struct {
		name string
		body string
	}{
		{"missing email", `{"name":"Kim","password":"hunter22!"}`},
		{"bad email", `{"name":"Kim","email":"not-an-email","password":"hunter22!"}`},
		{"short password", `{"name":"Kim","email":"kim@test.com","password":"short"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthContext(t, http.MethodPost, "/auth/register", tc.body, nil)
			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, _, _, _ string, _ int) (*domain.User, error) {
			return nil, domain.ErrEmailExists
		},
	}
	h := NewAuthHandler(svc, testCookieConfig())

	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"name":"Kim","email":"kim@test.com","password":"hunter22!"}`, nil)

	if err := h.Register(c); !errors.Is(err, domain.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestLogin_SetsCookies(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "kim@test.com" || password != "hunter22!" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return testResult(), nil
		},
	}
	h := NewAuthHandler(svc, testCookieConfig())

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"kim@test.com","password":"hunter22!"}`, nil)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	access := findCookie(t, rec, middleware.AccessTokenCookie)
	refresh := findCookie(t, rec, RefreshTokenCookie)
	if access == nil || refresh == nil {
		t.Fatalf("expected both token cookies, got %v", rec.Result().Cookies())
	}
	if access.Value != "access-token" || refresh.Value != "refresh-token" {
		t.Fatalf("unexpected cookie values: %q %q", access.Value, refresh.Value)
	}
	if !access.HttpOnly || !refresh.HttpOnly {
		t.Fatalf("token cookies must be HTTP-only")
	}
	if access.MaxAge != int(5*time.Minute/time.Second) {
		t.Fatalf("access cookie max-age %d does not match TTL", access.MaxAge)
	}
	if refresh.MaxAge != int(24*time.Hour/time.Second) {
		t.Fatalf("refresh cookie max-age %d does not match TTL", refresh.MaxAge)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.Email != "kim@test.com" {
		t.Fatalf("unexpected body user: %+v", resp.User)
	}
	// Cookie flow must not leak tokens into the body.
	if strings.Contains(rec.Body.String(), "access-token") {
		t.Fatalf("token leaked in cookie-flow body")
	}
}

func TestLogin_PropagatesAuthError(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(svc, testCookieConfig())

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"kim@test.com","password":"wrong-password"}`, nil)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if findCookie(t, rec, middleware.AccessTokenCookie) != nil {
		t.Fatalf("failed login must not set cookies")
	}
}

func TestAdminLogin_UsesAdminPath(t *testing.T) {
	adminCalled := false
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.AuthResult, error) {
			t.Fatalf("plain login must not be called")
			return nil, nil
		},
		adminFn: func(_ context.Context, _, _ string) (*ports.AuthResult, error) {
			adminCalled = true
			return nil, domain.ErrAdminAccessDenied
		},
	}
	h := NewAuthHandler(svc, testCookieConfig())

	c, _ := newAuthContext(t, http.MethodPost, "/auth/admin/login",
		`{"email":"kim@test.com","password":"hunter22!"}`, nil)

	if err := h.AdminLogin(c); !errors.Is(err, domain.ErrAdminAccessDenied) {
		t.Fatalf("expected ErrAdminAccessDenied, got %v", err)
	}
	if !adminCalled {
		t.Fatalf("AdminLogin must delegate to the admin flow")
	}
}

func TestRefresh_FromCookie(t *testing.T) {
	svc := &stubAuthService{
		refreshFn: func(_ context.Context, token string) (*ports.AuthResult, error) {
			if token != "old-refresh" {
				t.Fatalf("unexpected refresh token %q", token)
			}
			return testResult(), nil
		},
	}
	h := NewAuthHandler(svc, testCookieConfig())

	c, rec := newAuthContext(t, http.MethodPost, "/auth/refresh", "", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "old-refresh"})
	})

	if err := h.Refresh(c); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	refresh := findCookie(t, rec, RefreshTokenCookie)
	if refresh == nil || refresh.Value != "refresh-token" {
		t.Fatalf("expected rotated refresh cookie, got %v", refresh)
	}
}

func TestRefresh_MissingCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCookieConfig())

	c, _ := newAuthContext(t, http.MethodPost, "/auth/refresh", "", nil)

	if err := h.Refresh(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestLogout_ClearsCookies(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, testCookieConfig())

	c, rec := newAuthContext(t, http.MethodPost, "/auth/logout", "", nil)

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	access := findCookie(t, rec, middleware.AccessTokenCookie)
	refresh := findCookie(t, rec, RefreshTokenCookie)
	if access == nil || refresh == nil {
		t.Fatalf("logout must emit both expiring cookies")
	}
	if access.MaxAge != -1 || refresh.MaxAge != -1 {
		t.Fatalf("expected MaxAge -1, got %d / %d", access.MaxAge, refresh.MaxAge)
	}
	if access.Value != "" || refresh.Value != "" {
		t.Fatalf("cleared cookies must carry empty values")
	}
}

func TestTokenLogin_TokensInBody(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (*ports.AuthResult, error) {
			return testResult(), nil
		},
	}
	h := NewAuthHandler(svc, testCookieConfig())

	c, rec := newAuthContext(t, http.MethodPost, "/auth/token/login",
		`{"email":"kim@test.com","password":"hunter22!"}`, nil)

	if err := h.TokenLogin(c); err != nil {
		t.Fatalf("TokenLogin: %v", err)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "access-token" || resp.RefreshToken != "refresh-token" {
		t.Fatalf("unexpected tokens in body: %+v", resp)
	}
	if findCookie(t, rec, middleware.AccessTokenCookie) != nil {
		t.Fatalf("token flow must not set cookies")
	}
}

func TestTokenRefresh_FromBody(t *testing.T) {
	svc := &stubAuthService{
		refreshFn: func(_ context.Context, token string) (*ports.AuthResult, error) {
			if token != "old-refresh" {
				t.Fatalf("unexpected refresh token %q", token)
			}
			return testResult(), nil
		},
	}
	h := NewAuthHandler(svc, testCookieConfig())

	c, rec := newAuthContext(t, http.MethodPost, "/auth/token/refresh",
		`{"refreshToken":"old-refresh"}`, nil)

	if err := h.TokenRefresh(c); err != nil {
		t.Fatalf("TokenRefresh: %v", err)
	}

	var resp tokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.AccessToken != "access-token" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
