package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// RequestLogger writes one structured access log entry per request
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("request_id", v.RequestID),
			}
			// Add user agent for non-health endpoints
			if !strings.HasPrefix(v.URI, "/api/health") {
				fields = append(fields, zap.String("user_agent", v.UserAgent))
			}

			switch {
			case v.Status >= 500:
				log.Error("HTTP request", append(fields, zap.Error(v.Error))...)
			case v.Error != nil:
				log.Warn("HTTP request", append(fields, zap.Error(v.Error))...)
			default:
				log.Info("HTTP request", fields...)
			}
			return nil
		},
	})
}
