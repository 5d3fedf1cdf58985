package routemap

import (
	"fmt"
	"strings"

	"github.com/ettle/strcase"
	"github.com/gertd/go-pluralize"
)

var pluralizer = pluralize.NewClient()

// Warning codes reported by the linter.
const (
	WarnShadowedRoute     = "shadowed-route"
	WarnDoubledSlash      = "doubled-slash"
	WarnNameNotCamel      = "name-not-camel"
	WarnResourceNotPlural = "resource-not-plural"
)

// Warning is a single lint finding. Code is one of the Warn constants.
type Warning struct {
	Code    string
	Message string
	Pos     Pos
}

func (w Warning) String() string {
	if w.Pos.IsValid() {
		return fmt.Sprintf("%s: %s [%s]", w.Pos, w.Message, w.Code)
	}
	return fmt.Sprintf("%s [%s]", w.Message, w.Code)
}

// LintSource parses and compiles src, reporting findings the compiler
// itself accepts without complaint: route declarations that shadow
// earlier ones, compiled paths with doubled slashes, route names that
// are not camel case, and resource names that are not plural. The error
// mirrors what CompileSource would return for the same input.
func LintSource(src []byte, opts ...CompileOption) ([]Warning, error) {
	cfg := resolveCompileOptions(opts...)
	prog, err := Parse(src, cfg.SourceName)
	if err != nil {
		return nil, err
	}
	return lintProgram(prog)
}

// LintString is LintSource for sources already held as a string.
func LintString(src string, opts ...CompileOption) ([]Warning, error) {
	return LintSource([]byte(src), opts...)
}

func lintProgram(prog *Program) ([]Warning, error) {
	var warnings []Warning
	declared := map[string]Pos{}

	c := &compiler{source: prog.Name}
	c.observe = func(ev declEvent) {
		if ev.resource {
			if !pluralizer.IsPlural(ev.name) {
				warnings = append(warnings, Warning{
					Code:    WarnResourceNotPlural,
					Message: fmt.Sprintf("resource %q is singular, expected %q", ev.name, pluralizer.Plural(ev.name)),
					Pos:     ev.pos,
				})
			}
			return
		}

		if camel := strcase.ToCamel(ev.name); camel != ev.name {
			warnings = append(warnings, Warning{
				Code:    WarnNameNotCamel,
				Message: fmt.Sprintf("route name %q is not camel case, expected %q", ev.name, camel),
				Pos:     ev.pos,
			})
		}
		if strings.Contains(ev.path, "//") {
			warnings = append(warnings, Warning{
				Code:    WarnDoubledSlash,
				Message: fmt.Sprintf("route %q compiles to path %q with a doubled slash", ev.key, ev.path),
				Pos:     ev.pos,
			})
		}
		if first, ok := declared[ev.key]; ok {
			warnings = append(warnings, Warning{
				Code:    WarnShadowedRoute,
				Message: fmt.Sprintf("route %q shadows an earlier declaration at %s", ev.key, first),
				Pos:     ev.pos,
			})
		} else {
			declared[ev.key] = ev.pos
		}
	}

	if _, err := c.compile(prog); err != nil {
		return nil, err
	}
	return warnings, nil
}

// LintTable reports the findings a compiled table alone can still carry,
// which is doubled slashes in paths. Positions are unknown at this point.
func LintTable(table RouteTable) []Warning {
	var warnings []Warning
	for _, name := range table.Names() {
		path, _ := table.PathFor(name)
		if strings.Contains(path, "//") {
			warnings = append(warnings, Warning{
				Code:    WarnDoubledSlash,
				Message: fmt.Sprintf("route %q compiles to path %q with a doubled slash", name, path),
			})
		}
	}
	return warnings
}
