// Package view renders the console's HTML pages from embedded templates.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// Renderer implements echo.Renderer on top of the embedded template set.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. A malformed template is a programming
// error, so it fails the process at startup rather than at request time.
func New() *Renderer {
	return &Renderer{
		templates: template.Must(template.New("").ParseFS(files, "templates/*.html")),
	}
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
