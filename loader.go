package routemap

import (
	"io/fs"
	"os"
	"sort"

	"github.com/gobwas/glob"
	goerrors "github.com/goliatone/go-errors"
)

// CompileOptions configures the source loading front of the compiler.
type CompileOptions struct {
	Logger     Logger
	SourceName string
}

// CompileOption applies compile options.
type CompileOption func(*CompileOptions)

// WithLogger sets the logger used for loader diagnostics.
func WithLogger(logger Logger) CompileOption {
	return func(opts *CompileOptions) {
		opts.Logger = logger
	}
}

// WithSourceName sets the name used in positions and diagnostics when the
// source does not come from a file.
func WithSourceName(name string) CompileOption {
	return func(opts *CompileOptions) {
		if name != "" {
			opts.SourceName = name
		}
	}
}

func resolveCompileOptions(opts ...CompileOption) CompileOptions {
	resolved := CompileOptions{SourceName: "source"}
	for _, opt := range opts {
		opt(&resolved)
	}
	resolved.Logger = getLogger(resolved.Logger)
	return resolved
}

// CompileString compiles routing DSL source held in a string.
func CompileString(src string, opts ...CompileOption) (RouteTable, error) {
	return CompileSource([]byte(src), opts...)
}

// CompileSource parses src and compiles the route table it declares.
// Sources without a map call yield a nil table and no error.
func CompileSource(src []byte, opts ...CompileOption) (RouteTable, error) {
	cfg := resolveCompileOptions(opts...)
	return compileSource(src, cfg.SourceName, cfg.Logger)
}

func compileSource(src []byte, name string, lgr Logger) (RouteTable, error) {
	prog, err := Parse(src, name)
	if err != nil {
		lgr.Error("Parsing routing source failed: %v", err)
		return nil, err
	}

	table, err := Compile(prog)
	if err != nil {
		lgr.Error("Compiling routing source failed: %v", err)
		return nil, err
	}
	if table == nil {
		lgr.Debug("No router map call found in %s", name)
		return nil, nil
	}
	lgr.Debug("Compiled %d route(s) from %s", len(table), name)
	return table, nil
}

// CompileFile reads a routing source from disk and compiles it.
func CompileFile(path string, opts ...CompileOption) (RouteTable, error) {
	cfg := resolveCompileOptions(opts...)
	src, err := os.ReadFile(path)
	if err != nil {
		cfg.Logger.Error("Reading routing source failed: %v", err)
		return nil, newSourceReadError(err, path)
	}
	return compileSource(src, path, cfg.Logger)
}

// CompileFS reads a routing source from a filesystem and compiles it, so
// embedded or overlaid sources can feed the compiler the same way files
// on disk do.
func CompileFS(fsys fs.FS, path string, opts ...CompileOption) (RouteTable, error) {
	cfg := resolveCompileOptions(opts...)
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		cfg.Logger.Error("Reading routing source failed: %v", err)
		return nil, newSourceReadError(err, path)
	}
	return compileSource(src, path, cfg.Logger)
}

// CompileGlob compiles every file in fsys matching pattern and merges the
// tables in lexical filename order, later files winning on collisions.
// When no file matches, the table is nil.
func CompileGlob(fsys fs.FS, pattern string, opts ...CompileOption) (RouteTable, error) {
	cfg := resolveCompileOptions(opts...)
	matcher, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryRouting, "invalid routing source pattern").
			WithTextCode("SOURCE_PATTERN_ERROR").
			WithMetadata(map[string]any{"pattern": pattern})
	}

	var paths []string
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if matcher.Match(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, newSourceReadError(err, pattern)
	}
	sort.Strings(paths)

	var table RouteTable
	for _, path := range paths {
		sub, err := CompileFS(fsys, path, opts...)
		if err != nil {
			return nil, err
		}
		if sub != nil && table == nil {
			table = RouteTable{}
		}
		table = MergeTables(table, sub)
	}
	cfg.Logger.Debug("Compiled %d route(s) from %d source file(s)", len(table), len(paths))
	return table, nil
}

func newSourceReadError(err error, path string) error {
	return goerrors.Wrap(err, goerrors.CategoryRouting, "unable to read routing source").
		WithTextCode("SOURCE_READ_ERROR").
		WithMetadata(map[string]any{"path": path})
}
