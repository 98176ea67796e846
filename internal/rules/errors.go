// internal/rules/errors.go
package rules

import (
	"fmt"

	wferrors "github.com/wayfarer-crawl/wayfarer/internal/errors"
)

// InvalidGlobPattern reports a malformed glob pattern supplied for a
// host, port, or path matcher.
func InvalidGlobPattern(pattern string, err error) error {
	return wferrors.New(wferrors.KindGlob, fmt.Sprintf("invalid glob pattern %q", pattern), err)
}

// InvalidHost reports a host matcher that could not be parsed as a
// hostname.
func InvalidHost(host string, err error) error {
	return wferrors.New(wferrors.KindHost, fmt.Sprintf("invalid host %q", host), err)
}

// InvalidPort reports a port matcher whose exact value could not be
// parsed as a 16-bit port number.
func InvalidPort(port string, err error) error {
	return wferrors.New(wferrors.KindPort, fmt.Sprintf("invalid port %q", port), err)
}

// UnsupportedScheme reports a scheme matcher naming a scheme wayfarer
// does not know how to crawl.
func UnsupportedScheme(scheme string) error {
	return wferrors.New(wferrors.KindScheme, fmt.Sprintf("unsupported scheme %q", scheme), nil)
}

// UnsupportedMethod reports a method matcher naming an HTTP method
// wayfarer does not know how to issue.
func UnsupportedMethod(method string) error {
	return wferrors.New(wferrors.KindMethod, fmt.Sprintf("unsupported method %q", method), nil)
}
