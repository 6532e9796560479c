// Package web holds the HTML presentation layer: the embedded page
// templates and the echo.Renderer that executes them inside the shared
// base layout.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pages rendered inside the base layout. Every page file defines a
// "content" block and optionally a "title" block.
var pages = []string{
	"index.html",
	"signup.html",
	"signin.html",
	"events.html",
	"event_detail.html",
	"quote_form.html",
	"request_view.html",
	"my_requests.html",
}

// Renderer implements echo.Renderer over html/template. Each page is
// parsed together with the base layout once at startup.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		t, err := template.ParseFS(templatesFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// MustRenderer is NewRenderer for main and tests, where a broken
// embedded template is a programming error.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes the named page inside the base layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template: %s", name)
	}
	return t.ExecuteTemplate(w, "base", data)
}
