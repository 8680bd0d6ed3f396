package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio_app_echo/internal/content"
	"portfolio_app_echo/internal/navigation"
)

// APIHandler serves the catalog as JSON
type APIHandler struct {
	catalog *content.Catalog
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(catalog *content.Catalog) *APIHandler {
	return &APIHandler{catalog: catalog}
}

// Health handles GET /api/health
func (h *APIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// ListProjects handles GET /api/projects
func (h *APIHandler) ListProjects(c echo.Context) error {
	status := content.Status(c.QueryParam("status"))
	if status == "" {
		return c.JSON(http.StatusOK, h.catalog.Projects)
	}
	if !status.Valid() {
		return c.JSON(http.StatusBadRequest, errorJSON("Invalid status filter"))
	}
	return c.JSON(http.StatusOK, h.catalog.ProjectsByStatus(status))
}

// GetProject handles GET /api/projects/:id
func (h *APIHandler) GetProject(c echo.Context) error {
	project, ok := h.catalog.Project(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("Project not found"))
	}
	return c.JSON(http.StatusOK, project)
}

// ListSlides handles GET /api/slides
func (h *APIHandler) ListSlides(c echo.Context) error {
	return c.JSON(http.StatusOK, h.catalog.Slides)
}

// GetSlide handles GET /api/slides/:id
func (h *APIHandler) GetSlide(c echo.Context) error {
	slide, ok := h.catalog.Slide(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("Slide not found"))
	}
	return c.JSON(http.StatusOK, slide)
}

// DeckConfig handles GET /api/deck/config
func (h *APIHandler) DeckConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, navigation.DeckConfig(len(h.catalog.Slides)))
}
