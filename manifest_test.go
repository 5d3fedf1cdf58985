package routemap

import (
	"encoding/json"
	"strings"
	"testing"
)

func manifestTable() RouteTable {
	return RouteTable{
		"postsShow": {Path: "/posts/:post_id"},
		"home":      {Path: "/"},
		"about":     {Path: "/about"},
	}
}

func TestNewManifest(t *testing.T) {
	m := NewManifest(manifestTable())

	if m.Title != "Route Manifest" {
		t.Errorf("Expected default title, got %q", m.Title)
	}
	if m.Version != "1.0.0" {
		t.Errorf("Expected default version, got %q", m.Version)
	}

	want := []ManifestRoute{
		{Name: "about", Path: "/about"},
		{Name: "home", Path: "/"},
		{Name: "postsShow", Path: "/posts/:post_id"},
	}
	if len(m.Routes) != len(want) {
		t.Fatalf("Expected %d routes, got %d", len(want), len(m.Routes))
	}
	for i, route := range want {
		if m.Routes[i] != route {
			t.Errorf("Route %d: expected %+v, got %+v", i, route, m.Routes[i])
		}
	}
}

func TestNewManifest_Options(t *testing.T) {
	m := NewManifest(manifestTable(), WithTitle("Blog Routes"), WithVersion("2.1.0"))

	if m.Title != "Blog Routes" {
		t.Errorf("Expected title override, got %q", m.Title)
	}
	if m.Version != "2.1.0" {
		t.Errorf("Expected version override, got %q", m.Version)
	}
}

func TestNewManifest_EmptyTable(t *testing.T) {
	m := NewManifest(RouteTable{})
	if len(m.Routes) != 0 {
		t.Fatalf("Expected no routes, got %d", len(m.Routes))
	}

	doc := m.Generate()
	routes, ok := doc["routes"].([]any)
	if !ok || len(routes) != 0 {
		t.Errorf("Expected empty routes slice, got %v", doc["routes"])
	}
}

func TestManifestGenerate(t *testing.T) {
	doc := NewManifest(manifestTable()).Generate()

	if doc["title"] != "Route Manifest" {
		t.Errorf("Expected title in document, got %v", doc["title"])
	}
	if doc["version"] != "1.0.0" {
		t.Errorf("Expected version in document, got %v", doc["version"])
	}

	routes, ok := doc["routes"].([]any)
	if !ok {
		t.Fatalf("Expected routes slice, got %T", doc["routes"])
	}
	if len(routes) != 3 {
		t.Fatalf("Expected 3 routes, got %d", len(routes))
	}
	first, ok := routes[0].(map[string]any)
	if !ok {
		t.Fatalf("Expected route map, got %T", routes[0])
	}
	if first["name"] != "about" || first["path"] != "/about" {
		t.Errorf("Expected about route first, got %v", first)
	}
}

func TestManifestGenerate_Overlays(t *testing.T) {
	doc := NewManifest(manifestTable()).Generate(map[string]any{
		"version":     "2.0.0",
		"environment": "production",
	})

	if doc["version"] != "2.0.0" {
		t.Errorf("Expected overlay to override version, got %v", doc["version"])
	}
	if doc["environment"] != "production" {
		t.Errorf("Expected overlay to add environment, got %v", doc["environment"])
	}
	if doc["title"] != "Route Manifest" {
		t.Errorf("Expected title left alone, got %v", doc["title"])
	}
}

func TestManifestGenerate_AppendsRoutes(t *testing.T) {
	doc := NewManifest(manifestTable()).Generate(map[string]any{
		"routes": []any{
			map[string]any{"name": "health", "path": "/health"},
		},
	})

	routes, ok := doc["routes"].([]any)
	if !ok {
		t.Fatalf("Expected routes slice, got %T", doc["routes"])
	}
	if len(routes) != 4 {
		t.Fatalf("Expected overlay route appended, got %d entries", len(routes))
	}
	last, _ := routes[3].(map[string]any)
	if last["name"] != "health" {
		t.Errorf("Expected health route appended last, got %v", routes[3])
	}
}

func TestManifestYAML(t *testing.T) {
	out, err := NewManifest(manifestTable()).YAML()
	if err != nil {
		t.Fatalf("YAML() error: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"title: Route Manifest",
		"version: 1.0.0",
		"- name: about",
		"path: /posts/:post_id",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected YAML output to contain %q, got:\n%s", want, text)
		}
	}
}

func TestManifestJSON(t *testing.T) {
	out, err := NewManifest(manifestTable()).JSON(map[string]any{"environment": "staging"})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("Expected valid JSON, got %v:\n%s", err, out)
	}
	if doc["environment"] != "staging" {
		t.Errorf("Expected overlay in JSON output, got %v", doc["environment"])
	}
	routes, _ := doc["routes"].([]any)
	if len(routes) != 3 {
		t.Errorf("Expected 3 routes in JSON output, got %d", len(routes))
	}
}
