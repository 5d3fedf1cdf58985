package routemap

import (
	"fmt"
	"sort"
	"strings"

	"dario.cat/mergo"
)

// Entry is a single compiled route.
type Entry struct {
	Path string `json:"path" yaml:"path"`
}

// RouteTable maps route names to their entries. A nil table means no map
// call was found in the source. An empty table means a map call was found
// but its body declared no routes.
type RouteTable map[string]Entry

// MergeTables writes every entry of src into dst, src winning on name
// collisions even when its path is empty. The returned table is dst,
// allocated first when dst is nil.
func MergeTables(dst, src RouteTable) RouteTable {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = RouteTable{}
	}
	if err := mergo.Merge(&dst, src, mergo.WithOverride, mergo.WithOverwriteWithEmptyValue); err != nil {
		return dst
	}
	return dst
}

// Names returns the route names in sorted order.
func (t RouteTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PathFor returns the path registered for a route name.
func (t RouteTable) PathFor(name string) (string, bool) {
	entry, ok := t[name]
	return entry.Path, ok
}

// Paths returns a flat name to path view of the table.
func (t RouteTable) Paths() map[string]string {
	out := make(map[string]string, len(t))
	for name, entry := range t {
		out[name] = entry.Path
	}
	return out
}

// URL resolves a named route to a concrete URL, substituting every :param
// segment in the path with its value from params.
func (t RouteTable) URL(name string, params map[string]string) (string, error) {
	entry, ok := t[name]
	if !ok {
		return "", fmt.Errorf("no route named %q", name)
	}

	segments := strings.Split(entry.Path, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		key := seg[1:]
		val, ok := params[key]
		if !ok {
			return "", fmt.Errorf("route %q has no value for parameter %q", name, key)
		}
		segments[i] = val
	}
	return strings.Join(segments, "/"), nil
}
