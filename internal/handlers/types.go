package handlers

import (
	"html/template"

	"portfolio_app_echo/internal/content"
	"portfolio_app_echo/internal/navigation"
	"portfolio_app_echo/internal/services"
)

// Breadcrumb represents a navigation trail
type Breadcrumb struct {
	Title string
	URL   string
}

// PageData represents the common data structure passed to templates
type PageData struct {
	Title       string
	Description string
	Path        string
	Navbar      template.HTML
	HideNavbar  bool
	BodyClass   string
	Breadcrumbs []Breadcrumb
	UserEmail   string
	Data        interface{} // Page-specific data
}

type HomeView struct {
	Profile content.Profile
}

// ProjectSection is one project as laid out on the timeline page
type ProjectSection struct {
	Index   int
	Number  int
	Project content.Project
	Active  bool
	Href    string
}

type ProjectsView struct {
	Sections []ProjectSection
	Groups   []content.RoleGroup
	Active   int
	Total    int
	PrevHref string
	NextHref string
	Config   navigation.ClientConfig
}

type SummaryView struct {
	Profile content.Profile
	Pillars []content.Pillar
}

type PresentationsView struct {
	Presentations []content.Presentation
}

// SlideView is one slide as laid out in the deck
type SlideView struct {
	Index      int
	Number     int
	Total      int
	Dots       []bool
	Slide      content.Slide
	Active     bool
	Visible    bool
	ShowHeader bool
	Href       string

	// set only on the slides that animate
	Carousel *CarouselView
	Stage    *StageView
	Navbar   template.HTML
}

// CarouselNode is one process step placed on the loop
type CarouselNode struct {
	Index  int
	Step   content.ProcessStep
	X      float64
	Y      float64
	Active bool
	Href   string
}

type CarouselView struct {
	Active     int
	ActiveStep content.ProcessStep
	Rotation   float64
	Cumulative int
	Paused     bool
	Nodes      []CarouselNode
}

type StageView struct {
	Stage        int
	Reveal       []bool
	BeforeActive bool
	AfterActive  bool
}

type DeckView struct {
	Title     string
	Presenter string
	Slides    []SlideView
	Active    int
	Total     int
	Percent   int
	Current   content.Slide
	Notes     bool
	NotesHref string
	PrevHref  string
	NextHref  string
	Config    navigation.ClientConfig
}

type AdminView struct {
	Stats *services.AnalyticsStats
}
