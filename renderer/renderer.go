// Package renderer turns a finished simulation into human-facing output:
// a markdown report and a PNG chart of the trajectory.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/mfcarvalho/simulador"
)

//go:embed templates/*.md
var templates embed.FS

// Report is the data a rendered report is built from: the simulation result
// plus the instrument it was run against.
type Report struct {
	Symbol string
	Name   string
	Result *simulador.Result
}

// RenderReport renders the report to a markdown string.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"report_title":      "templates/report_title.md",
		"report_summary":    "templates/report_summary.md",
		"report_metrics":    "templates/report_metrics.md",
		"report_trajectory": "templates/report_trajectory.md",
	}
	return renderTemplate("report", "templates/report.md", partials, r)
}

// renderTemplate renders a main template that depends on several partials.
// Template errors surface in the output rather than as an error value: a
// report that names its own defect is more useful on a terminal than an
// empty one.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(helpers).Parse(string(mainContent))
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

// helpers are the formatting functions available inside the templates.
// ratio formats a fraction (0.25) as "25.00%", num a plain number; both
// render undefined (NaN) values as "n/a".
var helpers = template.FuncMap{
	"ratio": ratio,
	"num":   num,
	"yesno": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
}
