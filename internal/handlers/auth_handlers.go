package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_app_echo/internal/config"
)

// SessionCookieName is the cookie holding the firebase session
const SessionCookieName = "session"

const sessionLifetime = 5 * 24 * time.Hour

// SessionIssuer exchanges a firebase ID token for a session cookie.
// *auth.Client satisfies it.
type SessionIssuer interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
}

// LoginPageData is rendered by login.html
type LoginPageData struct {
	Firebase config.FirebaseWeb
	Error    string
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	issuer       SessionIssuer
	renderer     Renderer
	firebase     config.FirebaseWeb
	secureCookie bool
	log          *zap.Logger
}

// NewAuthHandler creates a new AuthHandler. issuer is nil when firebase is
// not configured.
func NewAuthHandler(issuer SessionIssuer, renderer Renderer, firebase config.FirebaseWeb, secureCookie bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		issuer:       issuer,
		renderer:     renderer,
		firebase:     firebase,
		secureCookie: secureCookie,
		log:          log,
	}
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(c echo.Context) error {
	data := LoginPageData{Firebase: h.firebase}
	switch c.QueryParam("error") {
	case "auth_not_configured":
		data.Error = "Sign-in is not configured on this server."
	case "forbidden":
		data.Error = "This account is not allowed to view the dashboard."
	}

	html, err := h.renderer.RenderString("login.html", data)
	if err != nil {
		h.log.Error("Failed to render login page", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render page")
	}
	return c.HTML(http.StatusOK, html)
}

// HandleLogin verifies the Firebase ID token and creates a session cookie
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	if h.issuer == nil {
		return c.JSON(http.StatusInternalServerError, errorJSON("Firebase not initialized"))
	}

	// Get ID Token from Authorization Header
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return c.JSON(http.StatusUnauthorized, errorJSON("Missing authorization header"))
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid authorization format"))
	}

	ctx := c.Request().Context()
	token, err := h.issuer.VerifyIDToken(ctx, tokenString)
	if err != nil {
		h.log.Warn("Rejected ID token", zap.Error(err))
		return c.JSON(http.StatusUnauthorized, errorJSON("Invalid token"))
	}

	cookieValue, err := h.issuer.SessionCookie(ctx, tokenString, sessionLifetime)
	if err != nil {
		h.log.Error("Failed to create session cookie", zap.String("uid", token.UID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorJSON("Failed to create session"))
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    cookieValue,
		MaxAge:   int(sessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})

	h.log.Info("Admin signed in", zap.String("uid", token.UID))
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}

// HandleLogout clears the session cookie
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	c.SetCookie(ClearedSessionCookie())

	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// ClearedSessionCookie expires the session cookie
func ClearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	}
}
