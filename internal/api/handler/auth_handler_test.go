package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/api/middleware"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
	user        *domain.User
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if s.registerErr != nil {
		return "", nil, s.registerErr
	}
	user := &domain.User{ID: "u1", Name: input.Name, Email: input.Email, Role: domain.RoleUser}
	return "signed-token", user, nil
}

func (s *stubAuthService) Login(_ context.Context, email, _ string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return "signed-token", &domain.User{ID: "u1", Name: "alice", Email: email, Role: domain.RoleUser}, nil
}

func (s *stubAuthService) UpdateDetails(_ context.Context, input ports.UpdateDetailsInput) (*domain.User, error) {
	u := *s.user
	if input.Name != "" {
		u.Name = input.Name
	}
	return &u, nil
}

func (s *stubAuthService) UpdatePassword(_ context.Context, _, _, _ string) (string, error) {
	return "reissued-token", nil
}

func newAuthContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/register",
		`{"name":"alice","email":"alice@example.com","password":"pass123"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var body authResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	if !body.Success || body.Token != "signed-token" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if body.User.ID != "u1" || body.User.Email != "alice@example.com" {
		t.Fatalf("unexpected user projection: %+v", body.User)
	}

	cookie := findCookie(t, rec, middleware.TokenCookieName)
	if cookie.Value != "signed-token" {
		t.Fatalf("expected token cookie, got %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("token cookie must be HttpOnly")
	}
}

func TestAuthHandler_Register_ValidationEnumeratesAllFields(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	// Missing name, bad email, short password: all three reported at once.
	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"abc"}`)

	err := h.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 failing fields, got %d: %+v", len(ve.Fields), ve.Fields)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"pass123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if findCookie(t, rec, middleware.TokenCookieName).Value != "signed-token" {
		t.Fatalf("expected token cookie")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials}, time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_CountsWrappedCredentialFailure(t *testing.T) {
	before := testutil.ToFloat64(metrics.LoginsTotal.WithLabelValues("invalid_credentials"))

	// The sentinel arrives wrapped; the counter must still register it.
	wrapped := fmt.Errorf("login: %w", domain.ErrInvalidCredentials)
	h := NewAuthHandler(&stubAuthService{loginErr: wrapped}, time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected wrapped ErrInvalidCredentials, got %v", err)
	}

	after := testutil.ToFloat64(metrics.LoginsTotal.WithLabelValues("invalid_credentials"))
	if after != before+1 {
		t.Fatalf("invalid_credentials counter = %v, want %v", after, before+1)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newAuthContext(t, http.MethodGet, "/api/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	cookie := findCookie(t, rec, middleware.TokenCookieName)
	if cookie.Value != "none" {
		t.Fatalf("expected cleared cookie, got %q", cookie.Value)
	}
	if !cookie.Expires.Before(time.Now().Add(time.Minute)) {
		t.Fatalf("expected near-immediate expiry, got %v", cookie.Expires)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, rec := newAuthContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set(middleware.UserContextKey, &domain.User{ID: "u1", Name: "alice"})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"alice"`) {
		t.Fatalf("expected user in body, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	c, _ := newAuthContext(t, http.MethodGet, "/api/auth/me", "")

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
