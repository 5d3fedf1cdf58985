package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"

	cfs "github.com/goliatone/go-composite-fs"
	routemap "github.com/goliatone/go-routemap"
	"go.uber.org/zap"
)

//go:embed testdata
var embeddedRoutes embed.FS

// Route files dropped here shadow the embedded copies, the same move a
// development template override directory makes.
const localOverrideDir = "testdata-local"

func main() {
	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	lgr := routemap.NewZapLogger(zl.Sugar())

	table, err := compileRoutes(lgr)
	if err != nil {
		log.Fatalf("failed to compile routes: %v", err)
	}

	report, err := routemap.RenderReport(table,
		routemap.WithReportTitle("Application routes"),
		routemap.WithWarnings(lintRoutes(lgr)),
	)
	if err != nil {
		log.Fatalf("failed to render report: %v", err)
	}
	fmt.Println(report)

	path, _ := table.PathFor("postsShow")
	fmt.Printf("postsShow (%s) expects params %v\n", path, routemap.ParamNames(path))

	url, err := table.URL("postsShow", map[string]string{"post_id": "42"})
	if err != nil {
		log.Fatalf("failed to resolve postsShow: %v", err)
	}
	fmt.Printf("postsShow with post_id=42 resolves to %s\n\n", url)

	manifest, err := routemap.NewManifest(table,
		routemap.WithTitle("Example App Routes"),
		routemap.WithVersion("1.0.0"),
	).YAML(map[string]any{"environment": "development"})
	if err != nil {
		log.Fatalf("failed to render manifest: %v", err)
	}
	fmt.Println("--- manifest ---")
	fmt.Println(string(manifest))

	src, err := routemap.NewGenerator(table, "routes").Generate()
	if err != nil {
		log.Fatalf("failed to generate route source: %v", err)
	}
	fmt.Println("--- generated ---")
	fmt.Println(string(src))
}

// compileRoutes merges every route file under testdata into one table.
// Files in the local override directory win over the embedded copies.
func compileRoutes(lgr routemap.Logger) (routemap.RouteTable, error) {
	embedded, err := routemap.SubFS(embeddedRoutes, "testdata")
	if err != nil {
		return nil, err
	}

	sources := []fs.FS{}
	overrideDir := routemap.AbsFromCaller(localOverrideDir)
	if info, err := os.Stat(overrideDir); err == nil && info.IsDir() {
		lgr.Debug("Adding local override directory %s", overrideDir)
		sources = append(sources, os.DirFS(overrideDir))
	}
	sources = append(sources, embedded)

	return routemap.CompileGlob(cfs.NewOverlayFS(sources...), "*.js", routemap.WithLogger(lgr))
}

// lintRoutes collects style findings across the embedded sources so they
// ride along in the report.
func lintRoutes(lgr routemap.Logger) []routemap.Warning {
	paths, err := fs.Glob(embeddedRoutes, "testdata/*.js")
	if err != nil {
		return nil
	}

	var all []routemap.Warning
	for _, path := range paths {
		src, err := fs.ReadFile(embeddedRoutes, path)
		if err != nil {
			continue
		}
		warnings, err := routemap.LintSource(src,
			routemap.WithSourceName(path),
			routemap.WithLogger(lgr),
		)
		if err != nil {
			lgr.Error("Linting %s failed: %v", path, err)
			continue
		}
		all = append(all, warnings...)
	}
	return all
}
