package templates

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html
var embedTemplates embed.FS

const (
	OrderList = "order_list.html"
	Callback  = "callback.html"
)

// Parse разбирает все встроенные шаблоны страниц.
func Parse() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(embedTemplates, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
