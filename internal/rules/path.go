// internal/rules/path.go
package rules

import (
	"strings"

	"github.com/gobwas/glob"
)

type pathTag int

const (
	pathTagGlob pathTag = iota
	pathTagExact
	pathTagAny
)

// PathKind is a single path matcher: a glob pattern, an exact path, or
// the wildcard Any.
type PathKind struct {
	tag     pathTag
	glob    glob.Glob
	pattern string
	exact   string
}

// PathGlob compiles pattern as a shell-style glob matched against the
// URL path. "*" crosses "/" boundaries: "/foo/*" matches
// "/foo/bar/baz", matching the crawler's anchored-but-unsegmented glob
// semantics.
func PathGlob(pattern string) (PathKind, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return PathKind{}, InvalidGlobPattern(pattern, err)
	}
	return PathKind{tag: pathTagGlob, glob: g, pattern: pattern}, nil
}

// PathExact matches a single literal path.
func PathExact(path string) PathKind {
	return PathKind{tag: pathTagExact, exact: path}
}

// PathAny matches every path.
func PathAny() PathKind {
	return PathKind{tag: pathTagAny}
}

// normalizePath strips a single trailing slash, except when the path
// is exactly "/", so that "/foo" and "/foo/" are treated as the same
// path while the root path keeps its distinct identity.
func normalizePath(path string) string {
	if path == "/" {
		return path
	}
	return strings.TrimSuffix(path, "/")
}

// Matches reports whether path satisfies this matcher.
func (k PathKind) Matches(path string) bool {
	path = normalizePath(path)
	switch k.tag {
	case pathTagGlob:
		return k.glob.Match(path)
	case pathTagExact:
		return k.exact == path
	default:
		return true
	}
}

func (k PathKind) String() string {
	switch k.tag {
	case pathTagExact:
		return k.exact
	case pathTagAny:
		return "*"
	default:
		return k.pattern
	}
}

// PathMatcher pairs a PathKind with the permission bucket it belongs to.
type PathMatcher struct {
	Permission Permission
	Kind       PathKind
}
