// Package web embeds the HTML templates and static assets for
// server-side rendering.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var TemplatesFS embed.FS

//go:embed static/*
var StaticFS embed.FS

// funcs are the helpers available to all templates.
var funcs = template.FuncMap{
	"inc": func(n int) int { return n + 1 },
	"dec": func(n int) int { return n - 1 },
}

// Templates parses the embedded template set.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(TemplatesFS, "templates/*.html"))
}
