package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavLinksActiveState(t *testing.T) {
	tests := []struct {
		path   string
		active string
	}{
		{"/", "Home"},
		{"/projects", "Projects"},
		{"/summary", "Summary"},
		{"/presentations", "Presentations"},
		{"/missing", ""},
		{"/presentations/lunchandlearn", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			links := NavLinks(tt.path)
			require.Len(t, links, 4)
			for _, l := range links {
				assert.Equal(t, l.Label == tt.active, l.Active, l.Label)
			}
		})
	}
}

func TestNavbarHidden(t *testing.T) {
	assert.True(t, NavbarHidden("/lunchandlearn"))
	assert.True(t, NavbarHidden("/presentations/lunchandlearn"))
	assert.False(t, NavbarHidden("/presentations"))
	assert.False(t, NavbarHidden("/"))
}

func TestNavbarRendersActiveAsCurrentPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Navbar(NavLinks("/summary")).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `<span class="nav-link active" aria-current="page">Summary</span>`)
	assert.Contains(t, html, `<a class="nav-link" href="/projects">Projects</a>`)
	assert.NotContains(t, html, `href="/summary"`)
	assert.Equal(t, 3, strings.Count(html, `class="nav-link" href=`))
}

func TestNavbarEscapes(t *testing.T) {
	var buf bytes.Buffer
	links := []NavLink{{Label: "<b>x</b>", Href: `/"x"`}}
	require.NoError(t, Navbar(links).Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "<b>")
	assert.Contains(t, buf.String(), "&lt;b&gt;")
}

func TestNavbarHTML(t *testing.T) {
	html, err := NavbarHTML(context.Background(), NavLinks("/"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `aria-current="page">Home`)
}

func TestErrorPage(t *testing.T) {
	var buf bytes.Buffer
	props := ErrorPageProps{
		Code:         404,
		Title:        "404",
		ErrorTitle:   "404",
		ErrorMessage: "This page doesn't exist.",
		NavLinks:     NavLinks("/nowhere"),
	}
	require.NoError(t, ErrorPage(props).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `<h1 class="error-title">404</h1>`)
	assert.Contains(t, html, "This page doesn&#39;t exist.")
	assert.Contains(t, html, `<a class="error-back" href="/">Back to Home</a>`)
	assert.Contains(t, html, `class="navbar"`)
}
