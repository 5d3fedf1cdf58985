package routemap

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"

	"github.com/ettle/strcase"
)

// Generator renders a compiled route table as a Go source file carrying
// one constant per route name plus a name to path map, so applications
// can link to routes without string literals.
type Generator struct {
	table RouteTable
	pkg   string
}

// NewGenerator returns a generator emitting into the named package.
func NewGenerator(table RouteTable, pkg string) *Generator {
	if pkg == "" {
		pkg = "routes"
	}
	return &Generator{table: table, pkg: pkg}
}

// Generate renders the table as gofmt-formatted Go source. Route names
// that collide after conversion to Pascal case are reported as errors
// rather than silently dropped.
func (g *Generator) Generate() ([]byte, error) {
	names := g.table.Names()

	consts := make([]string, 0, len(names))
	seen := map[string]string{}
	for _, name := range names {
		constName := "Route" + strcase.ToPascal(name)
		if prev, ok := seen[constName]; ok {
			return nil, NewGenerateError(nil, fmt.Sprintf("route names %q and %q both generate constant %s", prev, name, constName)).
				WithMetadata(map[string]any{"constant": constName})
		}
		seen[constName] = name
		consts = append(consts, constName)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by go-routemap. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", g.pkg)

	if len(names) > 0 {
		buf.WriteString("// Route name constants for every compiled route.\n")
		buf.WriteString("const (\n")
		for i, name := range names {
			fmt.Fprintf(&buf, "\t%s = %s\n", consts[i], strconv.Quote(name))
		}
		buf.WriteString(")\n\n")
	}

	buf.WriteString("// RoutePaths maps route names to their compiled paths.\n")
	buf.WriteString("var RoutePaths = map[string]string{\n")
	for i, name := range names {
		fmt.Fprintf(&buf, "\t%s: %s,\n", consts[i], strconv.Quote(g.table[name].Path))
	}
	buf.WriteString("}\n")

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, NewGenerateError(err, "unable to format generated route source")
	}
	return out, nil
}
