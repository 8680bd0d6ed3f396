package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio_app_echo/internal/content"
	"portfolio_app_echo/internal/navigation"
	"portfolio_app_echo/internal/services"
	"portfolio_app_echo/internal/views"
)

const deckTitle = "From Workflow Friction to Validated Systems"

// query parameters that change the rendered page, and so the cache key
var (
	projectParams = []string{"at", "i", "key"}
	deckParams    = []string{"slide", "key", "notes", "phase", "hover", "stage", "elapsed"}
)

// Renderer renders a named template to a string
type Renderer interface {
	RenderString(name string, data interface{}) (string, error)
}

// PageHandler serves the public HTML pages
type PageHandler struct {
	catalog  *content.Catalog
	renderer Renderer
	cache    *services.RedisCache
	cacheTTL time.Duration
	metrics  *services.Metrics
	log      *zap.Logger
}

// NewPageHandler creates a new PageHandler. cache and metrics may be nil.
func NewPageHandler(catalog *content.Catalog, renderer Renderer, cache *services.RedisCache, cacheTTL time.Duration, metrics *services.Metrics, log *zap.Logger) *PageHandler {
	return &PageHandler{
		catalog:  catalog,
		renderer: renderer,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		log:      log,
	}
}

// Home renders the landing page
func (h *PageHandler) Home(c echo.Context) error {
	return h.page(c, "home.html", nil, func(data *PageData) error {
		data.Title = h.catalog.Profile.Name
		data.Description = h.catalog.Profile.ValueStatement
		data.Data = HomeView{Profile: h.catalog.Profile}
		return nil
	})
}

// Projects renders the timeline with one section active
func (h *PageHandler) Projects(c echo.Context) error {
	projects := h.catalog.Projects
	cursor := navigation.NewCursor(len(projects))

	if at := c.QueryParam("at"); at != "" {
		if i, ok := h.catalog.ProjectIndex(at); ok {
			cursor.Jump(i)
		}
	} else if i, err := strconv.Atoi(c.QueryParam("i")); err == nil {
		cursor.Jump(i)
	}
	if key := c.QueryParam("key"); key != "" {
		cursor.Apply(navigation.ProjectKeys.Lookup(key))
	}

	return h.page(c, "projects.html", projectParams, func(data *PageData) error {
		view := ProjectsView{
			Groups: h.catalog.RoleGroups(),
			Active: cursor.Index(),
			Total:  cursor.Len(),
			Config: navigation.ProjectsConfig(len(projects)),
		}
		for i, p := range projects {
			view.Sections = append(view.Sections, ProjectSection{
				Index:   i,
				Number:  i + 1,
				Project: p,
				Active:  i == cursor.Index(),
				Href:    projectHref(p.ID),
			})
		}
		if !cursor.IsFirst() {
			view.PrevHref = projectHref(projects[cursor.Index()-1].ID)
		}
		if !cursor.IsLast() {
			view.NextHref = projectHref(projects[cursor.Index()+1].ID)
		}

		data.Title = "Projects"
		data.BodyClass = "projects-page"
		data.Data = view
		return nil
	})
}

// Summary renders the capability pillars
func (h *PageHandler) Summary(c echo.Context) error {
	return h.page(c, "summary.html", nil, func(data *PageData) error {
		data.Title = "Skillset Summary"
		data.Data = SummaryView{Profile: h.catalog.Profile, Pillars: h.catalog.Pillars}
		return nil
	})
}

// Presentations renders the presentation index
func (h *PageHandler) Presentations(c echo.Context) error {
	return h.page(c, "presentations.html", nil, func(data *PageData) error {
		data.Title = "Presentations"
		data.Breadcrumbs = []Breadcrumb{{Title: "Home", URL: "/"}, {Title: "Presentations"}}
		data.Data = PresentationsView{Presentations: h.catalog.Presentations}
		return nil
	})
}

// LunchAndLearn renders the scrollytelling deck
func (h *PageHandler) LunchAndLearn(c echo.Context) error {
	slides := h.catalog.Slides
	cursor := navigation.NewCursor(len(slides))
	q := c.QueryParams()

	if s := q.Get("slide"); s != "" {
		if i, ok := h.catalog.SlideIndex(s); ok {
			cursor.Jump(i)
		} else if n, err := strconv.Atoi(s); err == nil {
			cursor.Jump(n - 1)
		}
	}

	notes := q.Get("notes") == "1"
	if key := q.Get("key"); key != "" {
		switch action := navigation.DeckKeys.Lookup(key); action {
		case navigation.ActionToggleNotes:
			notes = !notes
		default:
			cursor.Apply(action)
		}
	}

	// elapsed is milliseconds of animation time since the deck opened
	var elapsed time.Duration
	if ms, err := strconv.ParseInt(q.Get("elapsed"), 10, 64); err == nil && ms > 0 {
		elapsed = time.Duration(ms) * time.Millisecond
	}

	carousel := navigation.NewCarousel(navigation.DefaultCarouselSteps, navigation.DefaultCarouselInterval)
	if p, err := strconv.Atoi(q.Get("phase")); err == nil {
		carousel.Activate(p)
	}
	if i, err := strconv.Atoi(q.Get("hover")); err == nil && i >= 0 && i < carousel.Steps() {
		carousel.Enter(i)
	}
	carousel.Tick(elapsed)

	stage := navigation.PlatformStages - 1
	if s, err := strconv.Atoi(q.Get("stage")); err == nil && s >= 0 && s < navigation.PlatformStages {
		stage = s
	} else if elapsed > 0 {
		stage = navigation.StageCycle{}.At(elapsed)
	}

	seen := navigation.NewVisibilitySet(0)
	seen.Observe(cursor.Index(), 1)

	return h.page(c, "lunchandlearn.html", deckParams, func(data *PageData) error {
		active := cursor.Index()
		path := c.Request().URL.Path

		heroNav, err := views.NavbarHTML(c.Request().Context(), views.NavLinks(path))
		if err != nil {
			return err
		}

		carouselView := h.carouselView(carousel, path, notes)
		stages := stageView(stage)

		view := DeckView{
			Title:     deckTitle,
			Presenter: h.catalog.Profile.Presenter,
			Active:    active,
			Total:     cursor.Len(),
			Percent:   views.Percent(active, cursor.Len()),
			Current:   slides[active],
			Notes:     notes,
			NotesHref: deckHref(path, active, !notes),
			Config:    navigation.DeckConfig(len(slides)),
		}
		for i, s := range slides {
			sv := SlideView{
				Index:      i,
				Number:     i + 1,
				Total:      len(slides),
				Dots:       progressDots(i, len(slides)),
				Slide:      s,
				Active:     i == active,
				Visible:    seen.Has(i),
				ShowHeader: content.ShowHeader(i),
				Href:       deckHref(path, i, notes),
			}
			switch s.Layout {
			case content.LayoutHero:
				sv.Navbar = heroNav
			case content.LayoutProcessLoop:
				sv.Carousel = &carouselView
			case content.LayoutPlatformOrchestration:
				sv.Stage = &stages
			}
			view.Slides = append(view.Slides, sv)
		}
		if !cursor.IsFirst() {
			view.PrevHref = deckHref(path, active-1, notes)
		}
		if !cursor.IsLast() {
			view.NextHref = deckHref(path, active+1, notes)
		}

		data.Title = "Lunch & Learn"
		data.Description = deckTitle
		data.BodyClass = "deck-page"
		data.Data = view
		return nil
	})
}

func (h *PageHandler) carouselView(carousel *navigation.Carousel, path string, notes bool) CarouselView {
	view := CarouselView{
		Active:     carousel.Active(),
		Rotation:   carousel.Rotation(),
		Cumulative: carousel.Cumulative(),
		Paused:     carousel.Hovered(),
	}

	slideIndex, ok := h.catalog.SlideIndex("3")
	var steps []content.ProcessStep
	if ok && h.catalog.Slides[slideIndex].Content.Process != nil {
		steps = h.catalog.Slides[slideIndex].Content.Process.Steps
	}

	for i, p := range carousel.Nodes(navigation.CarouselRadius) {
		node := CarouselNode{Index: i, X: p.X, Y: p.Y, Active: i == carousel.Active()}
		if i < len(steps) {
			node.Step = steps[i]
		}
		node.Href = deckHref(path, slideIndex, notes) + "&phase=" + strconv.Itoa(i) + "#slide-" + h.catalog.Slides[slideIndex].ID
		view.Nodes = append(view.Nodes, node)
	}
	if carousel.Active() < len(steps) {
		view.ActiveStep = steps[carousel.Active()]
	}
	return view
}

// progressDots marks the dot for the slide at index among total
func progressDots(index, total int) []bool {
	dots := make([]bool, total)
	if index >= 0 && index < total {
		dots[index] = true
	}
	return dots
}

func stageView(stage int) StageView {
	reveal := make([]bool, navigation.PlatformStages)
	for i := range reveal {
		reveal[i] = navigation.Visible(stage, i)
	}
	return StageView{
		Stage:        stage,
		Reveal:       reveal,
		BeforeActive: navigation.BeforeActive(stage),
		AfterActive:  navigation.AfterActive(stage),
	}
}

// page fills the shared page data, renders the named template and serves
// it through the page cache when one is configured. params are the query
// parameters build reads; all others are left out of the cache key.
func (h *PageHandler) page(c echo.Context, name string, params []string, build func(*PageData) error) error {
	ctx := c.Request().Context()
	render := func() (string, error) {
		path := c.Request().URL.Path
		data := &PageData{
			Path:       path,
			HideNavbar: views.NavbarHidden(path),
			UserEmail:  getStringFromContext(c, "userEmail"),
		}
		if !data.HideNavbar {
			nav, err := views.NavbarHTML(ctx, views.NavLinks(path))
			if err != nil {
				return "", err
			}
			data.Navbar = nav
		}
		if err := build(data); err != nil {
			return "", err
		}
		return h.renderer.RenderString(name, data)
	}

	html, err := h.cached(ctx, cacheURI(c.Request().URL, params), render)
	if err != nil {
		h.log.Error("Failed to render page", zap.String("template", name), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render page")
	}
	return c.HTML(http.StatusOK, html)
}

func (h *PageHandler) cached(ctx context.Context, uri string, render func() (string, error)) (string, error) {
	if h.cache == nil {
		return render()
	}

	missed := false
	html, err := services.GetOrSet(h.cache, ctx, services.PageKey(uri), h.cacheTTL, func() (string, error) {
		missed = true
		return render()
	})
	if h.metrics != nil && err == nil {
		result := "hit"
		if missed {
			result = "miss"
		}
		h.metrics.CacheResults.WithLabelValues(result).Inc()
	}
	return html, err
}

// cacheURI is the request path plus the given query parameters in a stable
// order
func cacheURI(u *url.URL, params []string) string {
	q := u.Query()
	kept := url.Values{}
	for _, p := range params {
		if v, ok := q[p]; ok {
			kept[p] = v
		}
	}
	if len(kept) == 0 {
		return u.Path
	}
	return u.Path + "?" + kept.Encode()
}

func projectHref(id string) string {
	return "/projects?at=" + url.QueryEscape(id) + "#" + id
}

func deckHref(path string, index int, notes bool) string {
	href := fmt.Sprintf("%s?slide=%d", path, index+1)
	if notes {
		href += "&notes=1"
	}
	return href
}
