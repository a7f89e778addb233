// Package renderer turns projection results into markdown reports for the
// presentation layer.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// NetWorthMarkdown renders the net-worth projection report.
func NetWorthMarkdown(nw *NetWorth) string {
	return renderTemplate("networth", "templates/networth.md", nw)
}

// SeriesMarkdown renders the horizon time-series report.
func SeriesMarkdown(s *Series) string {
	return renderTemplate("series", "templates/series.md", s)
}

// MortgageMarkdown renders a mortgage quote.
func MortgageMarkdown(m *Mortgage) string {
	return renderTemplate("mortgage", "templates/mortgage.md", m)
}

// ProfileMarkdown renders the plan summary.
func ProfileMarkdown(p *Profile) string {
	return renderTemplate("profile", "templates/profile.md", p)
}

// renderTemplate is a generic utility to render one of the embedded
// templates. Template failures render as an error string rather than
// failing the command; a report is best-effort output.
func renderTemplate(name, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
