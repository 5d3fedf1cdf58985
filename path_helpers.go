package routemap

import (
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"
)

// PathParam returns a parameter segment (e.g., ":post_id") for building
// path templates that URL can later resolve.
func PathParam(name string) string {
	return ":" + name
}

// ParamNames returns the parameter names a compiled path expects, in
// order of appearance.
//
// Example:
//
//	routemap.ParamNames("/posts/:post_id/comments/:id") // [post_id id]
func ParamNames(path string) []string {
	var names []string
	for _, seg := range strings.Split(path, "/") {
		if strings.HasPrefix(seg, ":") && len(seg) > 1 {
			names = append(names, seg[1:])
		}
	}
	return names
}

// SubFS scopes base to subdir if present, otherwise returns base. Missing
// subdirectories are not an error, so embedded routing sources can live
// at the filesystem root or under a directory without the caller caring.
//
// Example:
//
//	sources, _ := routemap.SubFS(embeddedSources, "routes")
func SubFS(base fs.FS, subdir string) (fs.FS, error) {
	clean := strings.Trim(strings.TrimSpace(subdir), "/")
	if clean == "" || clean == "." {
		return base, nil
	}

	if _, err := fs.Stat(base, clean); err != nil {
		return base, nil
	}

	return fs.Sub(base, clean)
}

// AbsFromCaller resolves rel relative to the caller's source file.
// If rel is absolute, it is returned as-is. If runtime.Caller fails,
// filepath.Clean(rel) is returned instead. Handy for locating routing
// sources that live next to the code that compiles them.
func AbsFromCaller(rel string, skip ...int) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	totalSkip := 1
	if len(skip) > 0 {
		totalSkip += skip[0]
	}

	_, file, _, ok := runtime.Caller(totalSkip)
	if !ok {
		return filepath.Clean(rel)
	}

	return filepath.Clean(filepath.Join(filepath.Dir(file), rel))
}
