package handlers

import (
	"github.com/labstack/echo/v4"
)

// Helper to safely get string from context
func getStringFromContext(c echo.Context, key string) string {
	val := c.Get(key)
	if val == nil {
		return ""
	}
	strVal, ok := val.(string)
	if !ok {
		return ""
	}
	return strVal
}

// errorJSON is the body of every JSON error response
func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}
