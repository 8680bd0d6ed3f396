package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_app_echo/internal/views"
)

// errorText returns the page title, heading and message for a status code.
// A custom msg overrides the default message; echo's stock status text does not.
func errorText(code int, msg string) (title, heading, message string) {
	if msg == http.StatusText(code) {
		msg = ""
	}

	switch code {
	case http.StatusNotFound:
		title, heading = "Page Not Found", "404"
		if msg == "" {
			msg = "This page doesn't exist."
		}
	case http.StatusForbidden:
		title, heading = "Access Denied", "Access Denied"
		if msg == "" {
			msg = "You don't have permission to access this resource."
		}
	case http.StatusUnauthorized:
		title, heading = "Unauthorized", "Unauthorized"
		if msg == "" {
			msg = "Please log in to continue."
		}
	case http.StatusBadRequest:
		title, heading = "Bad Request", "Bad Request"
		if msg == "" {
			msg = "The request could not be processed."
		}
	case http.StatusMethodNotAllowed:
		title, heading = "Method Not Allowed", "Method Not Allowed"
		if msg == "" {
			msg = "This page does not accept that request."
		}
	default:
		title, heading = "Internal Server Error", "Something went wrong"
		if msg == "" || code >= http.StatusInternalServerError {
			msg = "Something went wrong. Please try again later."
		}
	}
	return title, heading, msg
}

func isJSONPath(path string) bool {
	return strings.HasPrefix(path, "/api/") || path == "/api" || strings.HasPrefix(path, "/admin/api/")
}

// NewErrorHandler creates the echo error handler. API paths get a JSON body,
// everything else the error page.
func NewErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := ""
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}

		req := c.Request()
		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("method", req.Method),
			zap.String("uri", req.RequestURI),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		}
		if code >= http.StatusInternalServerError {
			log.Error("Request failed", append(fields, zap.Error(err))...)
		} else {
			log.Debug("Request rejected", append(fields, zap.Error(err))...)
		}

		title, heading, message := errorText(code, msg)

		if req.Method == http.MethodHead {
			if err := c.NoContent(code); err != nil {
				log.Error("Failed to write error response", zap.Error(err))
			}
			return
		}

		if isJSONPath(req.URL.Path) {
			if err := c.JSON(code, map[string]string{"error": message}); err != nil {
				log.Error("Failed to write error response", zap.Error(err))
			}
			return
		}

		props := views.ErrorPageProps{
			Code:         code,
			Title:        title,
			ErrorTitle:   heading,
			ErrorMessage: message,
			NavLinks:     views.NavLinks(req.URL.Path),
		}

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(code)
		if renderErr := views.ErrorPage(props).Render(req.Context(), c.Response()); renderErr != nil {
			// Headers are already out; append plain text
			log.Error("Failed to render error page", zap.Error(fmt.Errorf("render error page: %w", renderErr)))
			_, _ = c.Response().Write([]byte(message))
		}
	}
}
