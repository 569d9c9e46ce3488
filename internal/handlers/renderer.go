package handlers

import (
	"html/template"
	"io"

	"github.com/agamariel/paymall-console/internal/templates"
	"github.com/labstack/echo/v4"
)

// TemplateRenderer отрисовывает страницы встроенными шаблонами.
type TemplateRenderer struct {
	templates *template.Template
}

func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

// Render реализует echo.Renderer.
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
