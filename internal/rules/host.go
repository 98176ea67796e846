// internal/rules/host.go
package rules

import (
	"strings"

	"github.com/gobwas/glob"
)

type hostTag int

const (
	hostTagGlob hostTag = iota
	hostTagExact
	hostTagAny
)

// HostKind is a single host matcher: a glob pattern, an exact hostname,
// or the wildcard Any.
type HostKind struct {
	tag     hostTag
	glob    glob.Glob
	pattern string
	exact   string
}

// HostGlob compiles pattern as a shell-style glob matched against the
// full hostname. "*" and "?" are not anchored to label boundaries, so
// "*.example.com" matches any number of subdomain labels.
func HostGlob(pattern string) (HostKind, error) {
	lower := strings.ToLower(pattern)
	g, err := glob.Compile(lower)
	if err != nil {
		return HostKind{}, InvalidGlobPattern(pattern, err)
	}
	return HostKind{tag: hostTagGlob, glob: g, pattern: lower}, nil
}

// HostExact matches a single literal hostname, case-insensitively.
func HostExact(host string) HostKind {
	return HostKind{tag: hostTagExact, exact: strings.ToLower(host)}
}

// HostAny matches every hostname.
func HostAny() HostKind {
	return HostKind{tag: hostTagAny}
}

// Matches reports whether host satisfies this matcher. Hostname
// comparison is case-insensitive, per DNS semantics.
func (k HostKind) Matches(host string) bool {
	host = strings.ToLower(host)
	switch k.tag {
	case hostTagGlob:
		return k.glob.Match(host)
	case hostTagExact:
		return k.exact == host
	default:
		return true
	}
}

func (k HostKind) String() string {
	switch k.tag {
	case hostTagExact:
		return k.exact
	case hostTagAny:
		return "*"
	default:
		return k.pattern
	}
}

// HostMatcher pairs a HostKind with the permission bucket it belongs to.
type HostMatcher struct {
	Permission Permission
	Kind       HostKind
}
