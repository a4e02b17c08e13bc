package web

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/clcmanhattan/lectionary/internal/propers"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// parseTemplates loads the page templates with the color helpers the views
// use for styling.
func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"colorClass":  colorClass,
		"titleClass":  titleClass,
		"borderClass": borderClass,
		"bgClass":     bgClass,
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// colorClass styles text in the grid; colorless days get no class.
func colorClass(color string) string {
	if color == "" || color == propers.ColorNone {
		return ""
	}
	return "liturgical-" + color
}

// titleClass styles the day page headings; colorless days fall back to
// white.
func titleClass(color string) string {
	if color == "" || color == propers.ColorNone {
		return "liturgical-white"
	}
	return "liturgical-" + color
}

func borderClass(color string) string {
	if color == "" || color == propers.ColorNone {
		return "border-gray"
	}
	return "border-liturgical-" + color
}

func bgClass(color string) string {
	if color == "" || color == propers.ColorNone {
		return ""
	}
	return "bg-liturgical-" + color
}
