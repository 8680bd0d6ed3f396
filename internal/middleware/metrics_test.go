package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"portfolio_app_echo/internal/services"
)

func TestMetricsObservesRoutes(t *testing.T) {
	m := services.NewMetrics(prometheus.NewRegistry())
	e := echo.New()
	e.Use(Metrics(m))
	e.GET("/api/projects/:id", func(c echo.Context) error {
		if c.Param("id") == "nope" {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return c.String(http.StatusOK, "ok")
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/projects/daq", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/projects/vicflex", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/projects/nope", nil))

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestRequestLoggerHandlesErrors(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorHandler(zap.NewNop())
	e.Use(RequestLogger(zap.NewNop()))
	e.GET("/", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The request could not be processed.")
}
