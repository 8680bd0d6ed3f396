package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio_app_echo/internal/content"
	"portfolio_app_echo/internal/views"
	"portfolio_app_echo/web"
)

func newTestRenderer(t *testing.T) *views.TemplateRenderer {
	t.Helper()
	r, err := views.NewTemplateRenderer(web.Templates())
	require.NoError(t, err)
	return r
}

func newTestPageHandler(t *testing.T) *PageHandler {
	t.Helper()
	return NewPageHandler(content.Default(), newTestRenderer(t), nil, 0, nil, zap.NewNop())
}

func newContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
