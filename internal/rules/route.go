// internal/rules/route.go
package rules

import (
	"fmt"
	"math/rand/v2"
	"net/url"
)

// Route is the full route admission rule set: five independent
// dimension buckets plus the operator-facing root URL seed list and
// the robots.txt compliance flag.
type Route struct {
	Hosts   HostBucket
	Schemes SchemeBucket
	Ports   PortBucket
	Paths   PathBucket
	Methods MethodBucket

	// RootURLs seeds the polling scheduler. At least one entry is
	// required for a Run to begin.
	RootURLs []*url.URL

	// FollowRobotsExclusionProtocol controls whether the crawler
	// consults robots.txt before fetching a URL. Defaults to true.
	FollowRobotsExclusionProtocol bool
}

// NewRoute assembles a Route from its five dimension buckets, seeding
// any bucket left with an empty acceptable side with that dimension's
// Any matcher.
func NewRoute(hosts HostBucket, methods MethodBucket, paths PathBucket, ports PortBucket, schemes SchemeBucket) Route {
	if len(hosts.Acceptable) == 0 {
		hosts.Acceptable = append(hosts.Acceptable, HostAny())
	}
	if len(methods.Acceptable) == 0 {
		methods.Acceptable = append(methods.Acceptable, MethodAnySupported)
	}
	if len(paths.Acceptable) == 0 {
		paths.Acceptable = append(paths.Acceptable, PathAny())
	}
	if len(ports.Acceptable) == 0 {
		ports.Acceptable = append(ports.Acceptable, PortAny())
	}
	if len(schemes.Acceptable) == 0 {
		schemes.Acceptable = append(schemes.Acceptable, SchemeAnySupported)
	}
	return Route{
		Hosts:                         hosts,
		Methods:                       methods,
		Paths:                         paths,
		Ports:                         ports,
		Schemes:                       schemes,
		FollowRobotsExclusionProtocol: true,
	}
}

// RouteBuilder incrementally assembles a Route.
type RouteBuilder struct {
	route Route
}

// NewRouteBuilder starts a RouteBuilder with robots.txt compliance on
// by default.
func NewRouteBuilder() *RouteBuilder {
	return &RouteBuilder{route: Route{FollowRobotsExclusionProtocol: true}}
}

func (rb *RouteBuilder) Hosts(matchers ...HostMatcher) *RouteBuilder {
	rb.route.Hosts.Extend(matchers)
	return rb
}

func (rb *RouteBuilder) Methods(matchers ...MethodMatcher) *RouteBuilder {
	rb.route.Methods.Extend(matchers)
	return rb
}

func (rb *RouteBuilder) Paths(matchers ...PathMatcher) *RouteBuilder {
	rb.route.Paths.Extend(matchers)
	return rb
}

func (rb *RouteBuilder) Ports(matchers ...PortMatcher) *RouteBuilder {
	rb.route.Ports.Extend(matchers)
	return rb
}

func (rb *RouteBuilder) Schemes(matchers ...SchemeMatcher) *RouteBuilder {
	rb.route.Schemes.Extend(matchers)
	return rb
}

func (rb *RouteBuilder) RootURLs(urls ...*url.URL) *RouteBuilder {
	rb.route.RootURLs = append(rb.route.RootURLs, urls...)
	return rb
}

func (rb *RouteBuilder) FollowRobotsExclusionProtocol(follow bool) *RouteBuilder {
	rb.route.FollowRobotsExclusionProtocol = follow
	return rb
}

// Build finalizes the Route, seeding empty acceptable sides with Any.
func (rb *RouteBuilder) Build() Route {
	r := NewRoute(rb.route.Hosts, rb.route.Methods, rb.route.Paths, rb.route.Ports, rb.route.Schemes)
	r.RootURLs = rb.route.RootURLs
	r.FollowRobotsExclusionProtocol = rb.route.FollowRobotsExclusionProtocol
	return r
}

// portOrDefault returns the URL's explicit port, or the scheme's
// well-known default port (80 for http, 443 for https) when none is
// set. It returns false when neither is available.
func portOrDefault(u *url.URL) (uint16, bool) {
	if p := u.Port(); p != "" {
		port, err := PortExactStr(p)
		if err != nil {
			return 0, false
		}
		return port.exact, true
	}
	switch u.Scheme {
	case "http":
		return 80, true
	case "https":
		return 443, true
	default:
		return 0, false
	}
}

// Admits reports whether u is admissible under this route's scheme,
// host, port, and path dimensions. Method is not part of URL admission
// since a discovered link carries no method of its own; see
// AllowsMethod for request-method admission.
func (r Route) Admits(u *url.URL) bool {
	if u.Host == "" {
		return false
	}
	port, ok := portOrDefault(u)
	if !ok {
		return false
	}
	return r.Schemes.Matches(u.Scheme) &&
		r.Hosts.Matches(u.Hostname()) &&
		r.Ports.Matches(port) &&
		r.Paths.Matches(u.Path)
}

// AllowsMethod reports whether method is admissible under this route's
// method dimension.
func (r Route) AllowsMethod(method string) bool {
	return r.Methods.Matches(method)
}

// RandomRootURL picks a uniformly random entry from RootURLs. It
// returns false when RootURLs is empty.
func (r Route) RandomRootURL() (*url.URL, bool) {
	if len(r.RootURLs) == 0 {
		return nil, false
	}
	return r.RootURLs[rand.IntN(len(r.RootURLs))], true
}

func (r Route) String() string {
	return fmt.Sprintf(
		"Route { hosts: %s, methods: %s, paths: %s, ports: %s, schemes: %s }",
		r.Hosts, r.Methods, r.Paths, r.Ports, r.Schemes,
	)
}
