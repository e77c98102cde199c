// Package views holds the HTML templates rendered by the handlers.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates
var files embed.FS

// Template names understood by Load's result
const (
	Home            = "home"
	CampgroundIndex = "campgrounds/index"
	CampgroundNew   = "campgrounds/new"
	CampgroundShow  = "campgrounds/show"
	CampgroundEdit  = "campgrounds/edit"
	Error           = "error"
)

var funcs = template.FuncMap{
	"price": func(p float64) string {
		return fmt.Sprintf("$%.2f", p)
	},
	"stars": func(n int) string {
		if n < 0 {
			n = 0
		}
		return strings.Repeat("★", n)
	},
	"deref": func(p interface{}) interface{} {
		switch v := p.(type) {
		case *float64:
			if v == nil {
				return ""
			}
			return *v
		case *int:
			if v == nil {
				return ""
			}
			return *v
		default:
			return p
		}
	},
}

// Load parses every embedded template
func Load() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(files,
		"templates/*.tmpl",
		"templates/campgrounds/*.tmpl",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// MustLoad is like Load but panics on error
func MustLoad() *template.Template {
	tmpl, err := Load()
	if err != nil {
		panic(err)
	}
	return tmpl
}
