package views

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

// TemplateRenderer renders html/template pages to strings so handlers can
// cache the output. Uses per-page template cloning to allow each page to
// define its own blocks.
type TemplateRenderer struct {
	templates map[string]*template.Template
}

// Funcs are available to every template
var Funcs = template.FuncMap{
	"add":     func(a, b int) int { return a + b },
	"pad2":    func(n int) string { return fmt.Sprintf("%02d", n) },
	"percent": Percent,
	"lower":   strings.ToLower,
}

// Percent is the progress through n items when item i (zero based) is current
func Percent(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) * 100 / n
}

// NewTemplateRenderer parses templates from fsys. The layout lives in
// layouts/, shared blocks in partials/, pages in pages/, and top level
// files are standalone documents that skip the layout.
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	templates := make(map[string]*template.Template)

	// Parse base layout and partials as the foundation
	base, err := template.New("").Funcs(Funcs).ParseFS(fsys, "layouts/*.html", "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return nil, err
	}
	for _, page := range pages {
		pageTemplate, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := pageTemplate.ParseFS(fsys, page); err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		templates[path.Base(page)] = pageTemplate
	}

	standalone, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, err
	}
	for _, page := range standalone {
		name := path.Base(page)
		if _, exists := templates[name]; exists {
			continue
		}
		tmpl, err := template.New(name).Funcs(Funcs).ParseFS(fsys, page)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		templates[name] = tmpl
	}

	return &TemplateRenderer{templates: templates}, nil
}

// Execute renders name into w. Page templates are executed through the base
// layout, standalone templates directly.
func (t *TemplateRenderer) Execute(w io.Writer, name string, data interface{}) error {
	tmpl, ok := t.templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}
	if tmpl.Lookup("base") != nil {
		return tmpl.ExecuteTemplate(w, "base", data)
	}
	return tmpl.ExecuteTemplate(w, name, data)
}

// RenderString renders name to a string, for caching
func (t *TemplateRenderer) RenderString(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
