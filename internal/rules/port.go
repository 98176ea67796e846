// internal/rules/port.go
package rules

import (
	"strconv"

	"github.com/gobwas/glob"
)

type portTag int

const (
	portTagGlob portTag = iota
	portTagExact
	portTagAny
)

// PortKind is a single port matcher: a glob pattern matched against the
// decimal port string, an exact numeric port, or the wildcard Any.
type PortKind struct {
	tag     portTag
	glob    glob.Glob
	pattern string
	exact   uint16
}

// PortGlob compiles pattern as a shell-style glob matched against the
// decimal representation of the port number.
func PortGlob(pattern string) (PortKind, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return PortKind{}, InvalidGlobPattern(pattern, err)
	}
	return PortKind{tag: portTagGlob, glob: g, pattern: pattern}, nil
}

// PortExact matches a single literal port number.
func PortExact(port uint16) PortKind {
	return PortKind{tag: portTagExact, exact: port}
}

// PortExactStr parses port as a decimal 16-bit port number and builds
// an exact matcher from it.
func PortExactStr(port string) (PortKind, error) {
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return PortKind{}, InvalidPort(port, err)
	}
	return PortExact(uint16(n)), nil
}

// PortAny matches every port.
func PortAny() PortKind {
	return PortKind{tag: portTagAny}
}

// Matches reports whether port satisfies this matcher.
func (k PortKind) Matches(port uint16) bool {
	switch k.tag {
	case portTagGlob:
		return k.glob.Match(strconv.Itoa(int(port)))
	case portTagExact:
		return k.exact == port
	default:
		return true
	}
}

// MatchesStr reports whether the decimal port string satisfies this
// matcher, without requiring the caller to parse it first.
func (k PortKind) MatchesStr(port string) bool {
	switch k.tag {
	case portTagGlob:
		return k.glob.Match(port)
	case portTagExact:
		return strconv.Itoa(int(k.exact)) == port
	default:
		return true
	}
}

func (k PortKind) String() string {
	switch k.tag {
	case portTagExact:
		return strconv.Itoa(int(k.exact))
	case portTagAny:
		return "*"
	default:
		return k.pattern
	}
}

// PortMatcher pairs a PortKind with the permission bucket it belongs to.
type PortMatcher struct {
	Permission Permission
	Kind       PortKind
}
