// internal/rules/scheme.go
package rules

import "strings"

// SchemeKind is a single scheme matcher.
type SchemeKind int

const (
	// SchemeHTTP matches only the "http" scheme.
	SchemeHTTP SchemeKind = iota
	// SchemeHTTPS matches only the "https" scheme.
	SchemeHTTPS
	// SchemeAnySupported matches any scheme wayfarer knows how to crawl.
	SchemeAnySupported
)

// ParseSchemeKind parses a scheme name into a SchemeKind, rejecting
// anything other than "http" or "https".
func ParseSchemeKind(scheme string) (SchemeKind, error) {
	switch strings.ToLower(scheme) {
	case "http":
		return SchemeHTTP, nil
	case "https":
		return SchemeHTTPS, nil
	default:
		return 0, UnsupportedScheme(scheme)
	}
}

// Matches reports whether scheme satisfies this matcher, ignoring case.
func (k SchemeKind) Matches(scheme string) bool {
	scheme = strings.ToLower(scheme)
	switch k {
	case SchemeHTTP:
		return scheme == "http"
	case SchemeHTTPS:
		return scheme == "https"
	default:
		return scheme == "http" || scheme == "https"
	}
}

func (k SchemeKind) String() string {
	switch k {
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	default:
		return "*"
	}
}

// SchemeMatcher pairs a SchemeKind with the permission bucket it
// belongs to.
type SchemeMatcher struct {
	Permission Permission
	Kind       SchemeKind
}
