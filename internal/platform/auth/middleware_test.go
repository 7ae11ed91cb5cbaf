package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func testHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func runGuard(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, mw(testHandler)(c)
}

func TestRequireToken_MissingHeader(t *testing.T) {
	ts := NewTokenService([]byte("test-secret"), time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := runGuard(t, RequireToken(ts), req)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
}

func TestRequireToken_InvalidToken(t *testing.T) {
	ts := NewTokenService([]byte("test-secret"), time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "garbage")

	_, err := runGuard(t, RequireToken(ts), req)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", httpErr.Code)
	}
}

func TestRequireToken_ExpiredToken(t *testing.T) {
	expired := NewTokenService([]byte("test-secret"), -time.Minute)
	token, _ := expired.Issue("patient@example.com")

	ts := NewTokenService([]byte("test-secret"), time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token)

	_, err := runGuard(t, RequireToken(ts), req)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", httpErr.Code)
	}
}

func TestRequireToken_AttachesEmail(t *testing.T) {
	ts := NewTokenService([]byte("test-secret"), time.Hour)
	token, _ := ts.Issue("patient@example.com")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	h := RequireToken(ts)(func(c echo.Context) error {
		got = EmailFromContext(c.Request().Context())
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "patient@example.com" {
		t.Errorf("expected patient@example.com in context, got %q", got)
	}
}

func TestRequireToken_AcceptsBearerPrefix(t *testing.T) {
	ts := NewTokenService([]byte("test-secret"), time.Hour)
	token, _ := ts.Issue("patient@example.com")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, err := runGuard(t, RequireToken(ts), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

type stubAdminChecker struct {
	admins map[string]bool
	err    error
}

func (s *stubAdminChecker) IsAdmin(_ context.Context, email string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.admins[email], nil
}

func adminRequest(t *testing.T, checker AdminChecker, email string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if email != "" {
		ctx := context.WithValue(req.Context(), EmailKey, email)
		req = req.WithContext(ctx)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return RequireAdmin(checker)(testHandler)(c)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	checker := &stubAdminChecker{admins: map[string]bool{"admin@example.com": true}}
	if err := adminRequest(t, checker, "admin@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRequireAdmin_RejectsNonAdmin(t *testing.T) {
	checker := &stubAdminChecker{admins: map[string]bool{}}
	err := adminRequest(t, checker, "patient@example.com")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", httpErr.Code)
	}
}

func TestRequireAdmin_NoIdentity(t *testing.T) {
	checker := &stubAdminChecker{admins: map[string]bool{}}
	err := adminRequest(t, checker, "")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", httpErr.Code)
	}
}

func TestRequireAdmin_LookupFailure(t *testing.T) {
	checker := &stubAdminChecker{err: fmt.Errorf("store down")}
	err := adminRequest(t, checker, "admin@example.com")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", httpErr.Code)
	}
}
