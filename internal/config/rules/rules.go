// Package rules loads a route and its polling rules from TOML files.
// The on-disk shape mirrors the reference crawler's route/polling TOML
// configuration: a [routes] table with a sub-table per dimension, and
// a [polling] table with depth/redirections/time/proxy/user_agent.
package rules

import (
	"fmt"
	"net/url"

	"github.com/BurntSushi/toml"

	wferrors "github.com/wayfarer-crawl/wayfarer/internal/errors"
	"github.com/wayfarer-crawl/wayfarer/internal/rules"
)

// matcherEntry is a single acceptable/unacceptable entry for the host,
// port, and path dimensions. Pattern takes precedence over Value when
// both are set.
type matcherEntry struct {
	Value   string `toml:"value"`
	Pattern string `toml:"pattern"`
}

type tomlHosts struct {
	Acceptable   []matcherEntry `toml:"acceptable"`
	Unacceptable []matcherEntry `toml:"unacceptable"`
}

type tomlPaths struct {
	Acceptable   []matcherEntry `toml:"acceptable"`
	Unacceptable []matcherEntry `toml:"unacceptable"`
}

type tomlPorts struct {
	Acceptable   []matcherEntry `toml:"acceptable"`
	Unacceptable []matcherEntry `toml:"unacceptable"`
}

type tomlSchemes struct {
	Acceptable   []string `toml:"acceptable"`
	Unacceptable []string `toml:"unacceptable"`
}

type tomlMethods struct {
	Acceptable   []string `toml:"acceptable"`
	Unacceptable []string `toml:"unacceptable"`
}

type tomlRoutes struct {
	Hosts                         tomlHosts   `toml:"hosts"`
	Paths                         tomlPaths   `toml:"paths"`
	Ports                         tomlPorts   `toml:"ports"`
	Schemes                       tomlSchemes `toml:"schemes"`
	Methods                       tomlMethods `toml:"methods"`
	RootURLs                      []string    `toml:"root_urls"`
	FollowRobotsExclusionProtocol *bool       `toml:"follow_robots_exclusion_protocol"`
}

type tomlDepth struct {
	Acceptable bool   `toml:"acceptable"`
	MaxDepth   uint16 `toml:"max_depth"`
}

type tomlRedirections struct {
	Acceptable   bool   `toml:"acceptable"`
	MaxRedirects uint16 `toml:"max_redirects"`
}

type tomlTime struct {
	MinSleepBetweenRequestsMS uint64 `toml:"min_sleep_between_requests_ms"`
	MaxSleepBetweenRequestsMS uint64 `toml:"max_sleep_between_requests_ms"`
	RequestTimeoutMS          uint64 `toml:"request_timeout_ms"`
}

type tomlPolling struct {
	Depth        tomlDepth        `toml:"depth"`
	Redirections tomlRedirections `toml:"redirections"`
	Time         tomlTime         `toml:"time"`
	Proxy        string           `toml:"proxy"`
	UserAgent    string           `toml:"user_agent"`
}

type tomlRules struct {
	Routes  tomlRoutes  `toml:"routes"`
	Polling tomlPolling `toml:"polling"`
}

// LoadRoute reads and parses a route TOML file at path.
func LoadRoute(path string) (rules.Route, error) {
	var doc tomlRules
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return rules.Route{}, wferrors.New(wferrors.KindConfig, fmt.Sprintf("parsing route file %s", path), err)
	}
	return buildRoute(doc.Routes)
}

// LoadPolling reads and parses a polling TOML file at path.
func LoadPolling(path string) (rules.Polling, error) {
	var doc tomlRules
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return rules.Polling{}, wferrors.New(wferrors.KindConfig, fmt.Sprintf("parsing polling file %s", path), err)
	}
	return buildPolling(doc.Polling), nil
}

// LoadRules reads a single TOML file containing both a [routes] and a
// [polling] table.
func LoadRules(path string) (rules.Rules, error) {
	var doc tomlRules
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return rules.Rules{}, wferrors.New(wferrors.KindConfig, fmt.Sprintf("parsing rules file %s", path), err)
	}
	route, err := buildRoute(doc.Routes)
	if err != nil {
		return rules.Rules{}, err
	}
	return rules.NewRules(route, buildPolling(doc.Polling)), nil
}

func buildRoute(r tomlRoutes) (rules.Route, error) {
	hostMatchers, err := hostMatchers(r.Hosts)
	if err != nil {
		return rules.Route{}, err
	}
	pathMatchers, err := pathMatchers(r.Paths)
	if err != nil {
		return rules.Route{}, err
	}
	portMatchers, err := portMatchers(r.Ports)
	if err != nil {
		return rules.Route{}, err
	}
	schemeMatchers, err := schemeMatchers(r.Schemes)
	if err != nil {
		return rules.Route{}, err
	}
	methodMatchers, err := methodMatchers(r.Methods)
	if err != nil {
		return rules.Route{}, err
	}

	rootURLs := make([]*url.URL, 0, len(r.RootURLs))
	for _, raw := range r.RootURLs {
		u, err := url.Parse(raw)
		if err != nil {
			return rules.Route{}, wferrors.New(wferrors.KindConfig, fmt.Sprintf("invalid root URL %q", raw), err)
		}
		rootURLs = append(rootURLs, u)
	}

	route := rules.NewRoute(
		rules.NewHostBucket(hostMatchers),
		rules.NewMethodBucket(methodMatchers),
		rules.NewPathBucket(pathMatchers),
		rules.NewPortBucket(portMatchers),
		rules.NewSchemeBucket(schemeMatchers),
	)
	route.RootURLs = rootURLs
	route.FollowRobotsExclusionProtocol = true
	if r.FollowRobotsExclusionProtocol != nil {
		route.FollowRobotsExclusionProtocol = *r.FollowRobotsExclusionProtocol
	}
	return route, nil
}

func buildPolling(p tomlPolling) rules.Polling {
	polling := rules.DefaultPolling()
	if p.Depth.MaxDepth != 0 || p.Depth.Acceptable {
		polling.Depth = rules.NewDepth(p.Depth.Acceptable, p.Depth.MaxDepth)
	}
	if p.Redirections.MaxRedirects != 0 || p.Redirections.Acceptable {
		polling.Redirections = rules.NewRedirections(p.Redirections.Acceptable, p.Redirections.MaxRedirects)
	}
	if p.Time.MinSleepBetweenRequestsMS != 0 || p.Time.MaxSleepBetweenRequestsMS != 0 || p.Time.RequestTimeoutMS != 0 {
		polling.Time = rules.Time{
			MinSleepBetweenRequestsMS: p.Time.MinSleepBetweenRequestsMS,
			MaxSleepBetweenRequestsMS: p.Time.MaxSleepBetweenRequestsMS,
			RequestTimeoutMS:          p.Time.RequestTimeoutMS,
		}
	}
	polling.Proxy = p.Proxy
	polling.UserAgent = p.UserAgent
	return polling
}

func hostMatchers(h tomlHosts) ([]rules.HostMatcher, error) {
	var out []rules.HostMatcher
	for _, e := range h.Acceptable {
		k, err := hostKind(e)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.HostMatcher{Permission: rules.Acceptable, Kind: k})
	}
	for _, e := range h.Unacceptable {
		k, err := hostKind(e)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.HostMatcher{Permission: rules.Unacceptable, Kind: k})
	}
	return out, nil
}

func hostKind(e matcherEntry) (rules.HostKind, error) {
	if e.Pattern != "" {
		return rules.HostGlob(e.Pattern)
	}
	if e.Value == "*" {
		return rules.HostAny(), nil
	}
	return rules.HostExact(e.Value), nil
}

func pathMatchers(p tomlPaths) ([]rules.PathMatcher, error) {
	var out []rules.PathMatcher
	for _, e := range p.Acceptable {
		k, err := pathKind(e)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.PathMatcher{Permission: rules.Acceptable, Kind: k})
	}
	for _, e := range p.Unacceptable {
		k, err := pathKind(e)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.PathMatcher{Permission: rules.Unacceptable, Kind: k})
	}
	return out, nil
}

func pathKind(e matcherEntry) (rules.PathKind, error) {
	if e.Pattern != "" {
		return rules.PathGlob(e.Pattern)
	}
	if e.Value == "*" {
		return rules.PathAny(), nil
	}
	return rules.PathExact(e.Value), nil
}

func portMatchers(p tomlPorts) ([]rules.PortMatcher, error) {
	var out []rules.PortMatcher
	for _, e := range p.Acceptable {
		k, err := portKind(e)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.PortMatcher{Permission: rules.Acceptable, Kind: k})
	}
	for _, e := range p.Unacceptable {
		k, err := portKind(e)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.PortMatcher{Permission: rules.Unacceptable, Kind: k})
	}
	return out, nil
}

func portKind(e matcherEntry) (rules.PortKind, error) {
	if e.Pattern != "" {
		return rules.PortGlob(e.Pattern)
	}
	if e.Value == "" || e.Value == "*" {
		return rules.PortAny(), nil
	}
	return rules.PortExactStr(e.Value)
}

func schemeMatchers(s tomlSchemes) ([]rules.SchemeMatcher, error) {
	var out []rules.SchemeMatcher
	for _, v := range s.Acceptable {
		k, err := schemeKind(v)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.SchemeMatcher{Permission: rules.Acceptable, Kind: k})
	}
	for _, v := range s.Unacceptable {
		k, err := schemeKind(v)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.SchemeMatcher{Permission: rules.Unacceptable, Kind: k})
	}
	return out, nil
}

func schemeKind(v string) (rules.SchemeKind, error) {
	if v == "*" {
		return rules.SchemeAnySupported, nil
	}
	return rules.ParseSchemeKind(v)
}

func methodMatchers(m tomlMethods) ([]rules.MethodMatcher, error) {
	var out []rules.MethodMatcher
	for _, v := range m.Acceptable {
		k, err := methodKind(v)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.MethodMatcher{Permission: rules.Acceptable, Kind: k})
	}
	for _, v := range m.Unacceptable {
		k, err := methodKind(v)
		if err != nil {
			return nil, err
		}
		out = append(out, rules.MethodMatcher{Permission: rules.Unacceptable, Kind: k})
	}
	return out, nil
}

func methodKind(v string) (rules.MethodKind, error) {
	if v == "*" {
		return rules.MethodAnySupported, nil
	}
	return rules.ParseMethodKind(v)
}
