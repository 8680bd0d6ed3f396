package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_app_echo/internal/services"
	"portfolio_app_echo/internal/views"
)

// StatsSource summarises recorded page views
type StatsSource interface {
	Stats(ctx context.Context) (*services.AnalyticsStats, error)
}

// AdminHandler serves the analytics dashboard
type AdminHandler struct {
	stats    StatsSource
	cache    *services.RedisCache
	renderer Renderer
	log      *zap.Logger
}

// NewAdminHandler creates a new AdminHandler. stats and cache may be nil.
func NewAdminHandler(stats StatsSource, cache *services.RedisCache, renderer Renderer, log *zap.Logger) *AdminHandler {
	return &AdminHandler{stats: stats, cache: cache, renderer: renderer, log: log}
}

// Dashboard renders the admin dashboard
func (h *AdminHandler) Dashboard(c echo.Context) error {
	view := AdminView{}
	if h.stats != nil {
		stats, err := h.stats.Stats(c.Request().Context())
		if err != nil {
			h.log.Error("Failed to load analytics", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load analytics")
		}
		view.Stats = stats
	}

	nav, err := views.NavbarHTML(c.Request().Context(), views.NavLinks(c.Request().URL.Path))
	if err != nil {
		return err
	}
	data := &PageData{
		Title:       "Admin",
		Path:        c.Request().URL.Path,
		Navbar:      nav,
		BodyClass:   "admin-page",
		Breadcrumbs: []Breadcrumb{{Title: "Home", URL: "/"}, {Title: "Admin"}},
		UserEmail:   getStringFromContext(c, "userEmail"),
		Data:        view,
	}
	html, err := h.renderer.RenderString("admin_dashboard.html", data)
	if err != nil {
		h.log.Error("Failed to render admin dashboard", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render page")
	}
	return c.HTML(http.StatusOK, html)
}

// Stats handles GET /admin/api/stats
func (h *AdminHandler) Stats(c echo.Context) error {
	if h.stats == nil {
		return c.JSON(http.StatusServiceUnavailable, errorJSON("Analytics storage is not configured"))
	}
	stats, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		h.log.Error("Failed to load analytics", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorJSON("Failed to load analytics"))
	}
	return c.JSON(http.StatusOK, stats)
}

// FlushCache handles POST /admin/api/cache/flush
func (h *AdminHandler) FlushCache(c echo.Context) error {
	if h.cache == nil {
		return c.JSON(http.StatusServiceUnavailable, errorJSON("Page cache is not configured"))
	}
	removed, err := h.cache.DeletePrefix(c.Request().Context(), services.PageKeyPrefix)
	if err != nil {
		h.log.Error("Failed to flush page cache", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorJSON("Failed to flush page cache"))
	}

	h.log.Info("Page cache flushed", zap.Int64("keys", removed), zap.String("by", getStringFromContext(c, "userEmail")))
	return c.JSON(http.StatusOK, map[string]interface{}{"status": "flushed", "keys": removed})
}
