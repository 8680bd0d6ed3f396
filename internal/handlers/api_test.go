package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_app_echo/internal/content"
	"portfolio_app_echo/internal/navigation"
)

func TestAPIHealth(t *testing.T) {
	h := NewAPIHandler(content.Default())
	c, rec := newContext(http.MethodGet, "/api/health", "")

	require.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAPIListProjects(t *testing.T) {
	tests := []struct {
		name   string
		target string
		code   int
		count  int
	}{
		{"all", "/api/projects", http.StatusOK, 9},
		{"current", "/api/projects?status=current", http.StatusOK, 3},
		{"completed", "/api/projects?status=completed", http.StatusOK, 6},
		{"invalid", "/api/projects?status=archived", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAPIHandler(content.Default())
			c, rec := newContext(http.MethodGet, tt.target, "")

			require.NoError(t, h.ListProjects(c))
			assert.Equal(t, tt.code, rec.Code)
			if tt.code != http.StatusOK {
				assert.JSONEq(t, `{"error":"Invalid status filter"}`, rec.Body.String())
				return
			}

			var projects []content.Project
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
			assert.Len(t, projects, tt.count)
		})
	}
}

func TestAPIGetProject(t *testing.T) {
	h := NewAPIHandler(content.Default())

	c, rec := newContext(http.MethodGet, "/api/projects/daq", "")
	c.SetParamNames("id")
	c.SetParamValues("daq")
	require.NoError(t, h.GetProject(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var p content.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "daq", p.ID)

	c, rec = newContext(http.MethodGet, "/api/projects/nope", "")
	c.SetParamNames("id")
	c.SetParamValues("nope")
	require.NoError(t, h.GetProject(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Project not found"}`, rec.Body.String())
}

func TestAPISlides(t *testing.T) {
	h := NewAPIHandler(content.Default())

	c, rec := newContext(http.MethodGet, "/api/slides", "")
	require.NoError(t, h.ListSlides(c))
	var slides []content.Slide
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slides))
	require.Len(t, slides, 11)
	assert.Equal(t, content.LayoutHero, slides[0].Layout)

	c, rec = newContext(http.MethodGet, "/api/slides/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")
	require.NoError(t, h.GetSlide(c))
	var slide content.Slide
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &slide))
	assert.Equal(t, content.LayoutProcessLoop, slide.Layout)

	c, rec = newContext(http.MethodGet, "/api/slides/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.GetSlide(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIDeckConfig(t *testing.T) {
	h := NewAPIHandler(content.Default())
	c, rec := newContext(http.MethodGet, "/api/deck/config", "")

	require.NoError(t, h.DeckConfig(c))

	var cfg navigation.ClientConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cfg))
	assert.Equal(t, 11, cfg.Sections)
	assert.Equal(t, navigation.ActionToggleNotes, cfg.Keys["n"])
	require.NotNil(t, cfg.Carousel)
	assert.Equal(t, 6, cfg.Carousel.Steps)
	assert.Len(t, cfg.StageDurationsMS, navigation.PlatformStages)
}
