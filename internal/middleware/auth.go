package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"portfolio_app_echo/internal/handlers"
)

// SessionVerifier checks a firebase session cookie. *auth.Client satisfies it.
type SessionVerifier interface {
	VerifySessionCookie(ctx context.Context, sessionCookie string) (*auth.Token, error)
}

// RequireAuth returns a middleware that verifies Firebase session cookies
// and lets through only accounts in allowedEmails. An empty allowlist lets
// nobody through.
//
// Pages redirect to /login with 303 so the follow-up request is a GET.
// Paths under /admin/api/ get a 401 or 403 error instead, which the error
// handler renders as JSON.
func RequireAuth(verifier SessionVerifier, allowedEmails []string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(allowedEmails))
	for _, email := range allowedEmails {
		allowed[strings.ToLower(email)] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			api := strings.HasPrefix(c.Request().URL.Path, "/admin/api/")

			// Check if Firebase is initialized
			if verifier == nil {
				if api {
					return echo.NewHTTPError(http.StatusUnauthorized, "Sign-in is not configured")
				}
				return c.Redirect(http.StatusSeeOther, "/login?error=auth_not_configured")
			}

			cookie, err := c.Cookie(handlers.SessionCookieName)
			if err != nil || cookie.Value == "" {
				if api {
					return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			decodedToken, err := verifier.VerifySessionCookie(c.Request().Context(), cookie.Value)
			if err != nil {
				// Invalid session, clear cookie and redirect
				c.SetCookie(handlers.ClearedSessionCookie())
				if api {
					return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
				}
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			email, _ := decodedToken.Claims["email"].(string)
			if email == "" || !allowed[strings.ToLower(email)] {
				c.SetCookie(handlers.ClearedSessionCookie())
				if api {
					return echo.NewHTTPError(http.StatusForbidden, "Account not allowed")
				}
				return c.Redirect(http.StatusSeeOther, "/login?error=forbidden")
			}

			// Set user info in context for downstream handlers
			c.Set("userUID", decodedToken.UID)
			c.Set("userEmail", email)
			if name, ok := decodedToken.Claims["name"].(string); ok {
				c.Set("userName", name)
			}

			return next(c)
		}
	}
}
