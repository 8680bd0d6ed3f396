package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_app_echo/internal/models"
	"portfolio_app_echo/internal/services"
)

const recordTimeout = 5 * time.Second

// untrackedPrefixes are never recorded as page views
var untrackedPrefixes = []string{
	"/static/",
	"/api/",
	"/admin",
	"/auth/",
	"/login",
	"/metrics",
	"/favicon",
}

// PageViewRecorder stores page views
type PageViewRecorder interface {
	Record(ctx context.Context, view *models.PageView) error
}

// Tracked reports whether a request path counts as a page view
func Tracked(path string) bool {
	for _, prefix := range untrackedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// TrackPageViews records successful GET page views. The client address is
// stored only as a salted hash and requests carrying DNT: 1 are skipped.
// metrics may be nil.
func TrackPageViews(recorder PageViewRecorder, salt string, metrics *services.Metrics, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			req := c.Request()
			if err != nil || req.Method != http.MethodGet || c.Response().Status >= http.StatusBadRequest {
				return err
			}
			path := req.URL.Path
			if !Tracked(path) || req.Header.Get("DNT") == "1" {
				return nil
			}

			if metrics != nil {
				metrics.PageViews.WithLabelValues(routeLabel(c)).Inc()
			}
			if recorder == nil {
				return nil
			}

			view := &models.PageView{
				HashedIP:  services.HashIP(c.RealIP(), salt),
				UserAgent: req.UserAgent(),
				Path:      path,
				Referrer:  req.Referer(),
			}
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
				defer cancel()
				if err := recorder.Record(ctx, view); err != nil {
					log.Warn("Failed to record page view", zap.String("path", view.Path), zap.Error(err))
				}
			}()
			return nil
		}
	}
}
