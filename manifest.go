package routemap

import (
	"encoding/json"

	"dario.cat/mergo"
	"gopkg.in/yaml.v2"
)

// Functional options for configuring NewManifest
type ManifestOption func(*Manifest)

// WithTitle sets the manifest title.
func WithTitle(title string) ManifestOption {
	return func(m *Manifest) {
		m.Title = title
	}
}

// WithVersion sets the manifest version string.
func WithVersion(version string) ManifestOption {
	return func(m *Manifest) {
		m.Version = version
	}
}

// ManifestRoute is one named route in a manifest.
type ManifestRoute struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Manifest is a serializable snapshot of a compiled route table. Routes
// are sorted by name so rendered output is stable across runs.
type Manifest struct {
	Title   string          `json:"title" yaml:"title"`
	Version string          `json:"version" yaml:"version"`
	Routes  []ManifestRoute `json:"routes" yaml:"routes"`
}

// NewManifest builds a manifest from a compiled table.
func NewManifest(table RouteTable, opts ...ManifestOption) *Manifest {
	m := &Manifest{
		Title:   "Route Manifest",
		Version: "1.0.0",
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, name := range table.Names() {
		m.Routes = append(m.Routes, ManifestRoute{Name: name, Path: table[name].Path})
	}
	return m
}

// Generate renders the manifest as a document map, merging any overlays
// into it in order. Overlay values win and overlay slices append.
func (m *Manifest) Generate(overlays ...map[string]any) map[string]any {
	routes := make([]any, 0, len(m.Routes))
	for _, r := range m.Routes {
		routes = append(routes, map[string]any{
			"name": r.Name,
			"path": r.Path,
		})
	}
	base := map[string]any{
		"title":   m.Title,
		"version": m.Version,
		"routes":  routes,
	}

	for _, overlay := range overlays {
		if err := mergo.Merge(&base, overlay, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
			continue
		}
	}
	return base
}

// YAML renders the manifest document as YAML.
func (m *Manifest) YAML(overlays ...map[string]any) ([]byte, error) {
	return yaml.Marshal(m.Generate(overlays...))
}

// JSON renders the manifest document as JSON.
func (m *Manifest) JSON(overlays ...map[string]any) ([]byte, error) {
	return json.MarshalIndent(m.Generate(overlays...), "", "  ")
}
