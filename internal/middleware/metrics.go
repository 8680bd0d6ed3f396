package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"portfolio_app_echo/internal/services"
)

// Metrics observes request latency by method, route and status
func Metrics(m *services.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			var he *echo.HTTPError
			if err != nil && errors.As(err, &he) {
				status = he.Code
			} else if err != nil && !c.Response().Committed {
				status = 500
			}

			m.RequestDuration.
				WithLabelValues(c.Request().Method, routeLabel(c), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// routeLabel is the matched route pattern, keeping label cardinality bounded
func routeLabel(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return "unmatched"
}
