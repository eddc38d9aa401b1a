// Package renderer renders the dashboard as markdown, and markdown as HTML.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.md
var templates embed.FS

// RenderDashboard renders the metric cards to a markdown string.
func RenderDashboard(d *Dashboard) string {
	partials := map[string]string{
		"metrics_table": "templates/metrics_table.md",
	}
	return renderTemplate("dashboard", "templates/dashboard.md", partials, d)
}

// RenderPositions renders the positions table to a markdown string.
func RenderPositions(p *Positions) string {
	return renderTemplate("positions", "templates/positions.md", nil, p)
}

// RenderPnL renders the period-to-date P&L table to a markdown string.
func RenderPnL(p *PnL) string {
	return renderTemplate("pnl", "templates/pnl.md", nil, p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// HTML converts a markdown document to a standalone HTML page.
func HTML(title, md string) ([]byte, error) {
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := converter.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("convert markdown to html: %w", err)
	}
	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		template.HTMLEscapeString(title))
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
