package views

//go:generate templ generate

import (
	"context"
	"html/template"

	"github.com/a-h/templ"
)

// NavLink is one entry of the top navigation
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

var navItems = []struct {
	label string
	href  string
}{
	{"Home", "/"},
	{"Projects", "/projects"},
	{"Summary", "/summary"},
	{"Presentations", "/presentations"},
}

var deckPaths = map[string]bool{
	"/lunchandlearn":               true,
	"/presentations/lunchandlearn": true,
}

// NavLinks returns the navigation with the entry for currentPath marked active
func NavLinks(currentPath string) []NavLink {
	links := make([]NavLink, 0, len(navItems))
	for _, item := range navItems {
		links = append(links, NavLink{
			Label:  item.label,
			Href:   item.href,
			Active: item.href == currentPath,
		})
	}
	return links
}

// NavbarHidden reports whether the page chrome omits the navbar. The deck
// renders its own copy inside the hero slide instead.
func NavbarHidden(currentPath string) bool {
	return deckPaths[currentPath]
}

// NavbarHTML renders the navbar for use inside html/template layouts
func NavbarHTML(ctx context.Context, links []NavLink) (template.HTML, error) {
	return templ.ToGoHTML(ctx, Navbar(links))
}
