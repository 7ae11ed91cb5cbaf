package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const EmailKey contextKey = "auth_email"

// AdminChecker reports whether the given email identity has the admin role.
// The lookup happens per-request; admin status is never cached.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireToken rejects requests without an Authorization header (401) and
// requests whose token fails verification (403). On success the verified
// email identity is attached to the request context.
//
// The header may carry the raw token or the "Bearer <token>" form; the
// original clients send the raw form.
func RequireToken(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			tokenStr := header
			if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				tokenStr = parts[1]
			}

			email, err := tokens.Verify(tokenStr)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			ctx := context.WithValue(c.Request().Context(), EmailKey, email)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose verified identity does not have the
// admin role. It must be layered after RequireToken.
func RequireAdmin(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email := EmailFromContext(c.Request().Context())
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			isAdmin, err := checker.IsAdmin(c.Request().Context(), email)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "role lookup failed")
			}
			if !isAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			return next(c)
		}
	}
}

// EmailFromContext returns the verified email identity set by RequireToken,
// or an empty string when the request is unauthenticated.
func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}
