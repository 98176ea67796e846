// internal/rules/method.go
package rules

import "strings"

// MethodKind is a single HTTP method matcher.
type MethodKind int

const (
	MethodGet MethodKind = iota
	MethodPost
	MethodPut
	MethodPatch
	MethodDelete
	MethodHead
	MethodOptions
	// MethodAnySupported matches any of the methods above.
	MethodAnySupported
)

// ParseMethodKind parses a method name into a MethodKind, rejecting
// anything wayfarer does not know how to issue.
func ParseMethodKind(method string) (MethodKind, error) {
	switch strings.ToLower(method) {
	case "get":
		return MethodGet, nil
	case "post":
		return MethodPost, nil
	case "put":
		return MethodPut, nil
	case "patch":
		return MethodPatch, nil
	case "delete":
		return MethodDelete, nil
	case "head":
		return MethodHead, nil
	case "options":
		return MethodOptions, nil
	default:
		return 0, UnsupportedMethod(method)
	}
}

// Matches reports whether method satisfies this matcher, ignoring case.
func (k MethodKind) Matches(method string) bool {
	method = strings.ToLower(method)
	switch k {
	case MethodGet:
		return method == "get"
	case MethodPost:
		return method == "post"
	case MethodPut:
		return method == "put"
	case MethodPatch:
		return method == "patch"
	case MethodDelete:
		return method == "delete"
	case MethodHead:
		return method == "head"
	case MethodOptions:
		return method == "options"
	default:
		switch method {
		case "get", "post", "put", "patch", "delete", "head", "options":
			return true
		default:
			return false
		}
	}
}

func (k MethodKind) String() string {
	switch k {
	case MethodGet:
		return "get"
	case MethodPost:
		return "post"
	case MethodPut:
		return "put"
	case MethodPatch:
		return "patch"
	case MethodDelete:
		return "delete"
	case MethodHead:
		return "head"
	case MethodOptions:
		return "options"
	default:
		return "*"
	}
}

// MethodMatcher pairs a MethodKind with the permission bucket it
// belongs to.
type MethodMatcher struct {
	Permission Permission
	Kind       MethodKind
}
