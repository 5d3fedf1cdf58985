package routemap

import (
	"github.com/flosch/pongo2/v6"
)

const defaultReportTemplate = `{{ title }} ({{ routes|length }} route{{ routes|length|pluralize }})

{% for route in routes %}
{{ route.Name|ljust:width }}{{ route.Path }}
{% endfor %}
{% if warnings %}
Warnings:
{% for warning in warnings %}
  - {{ warning }}
{% endfor %}
{% endif %}`

var reportSet = newReportSet()

func newReportSet() *pongo2.TemplateSet {
	set := pongo2.NewSet("routemap", pongo2.DefaultLoader)
	set.Options.TrimBlocks = true
	return set
}

// ReportOptions configures RenderReport.
type ReportOptions struct {
	Template string
	Title    string
	Warnings []Warning
}

// ReportOption applies report options.
type ReportOption func(*ReportOptions)

// WithTemplate overrides the report template. Templates receive title,
// routes, width and warnings in their context.
func WithTemplate(tpl string) ReportOption {
	return func(opts *ReportOptions) {
		if tpl != "" {
			opts.Template = tpl
		}
	}
}

// WithReportTitle sets the report heading.
func WithReportTitle(title string) ReportOption {
	return func(opts *ReportOptions) {
		opts.Title = title
	}
}

// WithWarnings includes lint findings in the report.
func WithWarnings(warnings []Warning) ReportOption {
	return func(opts *ReportOptions) {
		opts.Warnings = warnings
	}
}

// RenderReport renders a human readable summary of a compiled table,
// routes sorted by name, one per line.
func RenderReport(table RouteTable, opts ...ReportOption) (string, error) {
	cfg := ReportOptions{Template: defaultReportTemplate, Title: "Route Table"}
	for _, opt := range opts {
		opt(&cfg)
	}

	width := 0
	for _, name := range table.Names() {
		if len(name) > width {
			width = len(name)
		}
	}

	tpl, err := reportSet.FromString(cfg.Template)
	if err != nil {
		return "", NewGenerateError(err, "unable to parse report template")
	}

	out, err := tpl.Execute(pongo2.Context{
		"title":    cfg.Title,
		"routes":   NewManifest(table).Routes,
		"width":    width + 2,
		"warnings": cfg.Warnings,
	})
	if err != nil {
		return "", NewGenerateError(err, "unable to render report")
	}
	return out, nil
}
