// internal/rules/rules.go
package rules

import "fmt"

// Rules is the complete rule set for a single crawl: the route
// admission rules and the polling pacing rules.
type Rules struct {
	Route   Route
	Polling Polling
}

// NewRules pairs a Route with a Polling rule set.
func NewRules(route Route, polling Polling) Rules {
	return Rules{Route: route, Polling: polling}
}

// DefaultRules returns an empty route (admits everything) paired with
// the reference crawler's default pacing.
func DefaultRules() Rules {
	return NewRules(NewRoute(HostBucket{}, MethodBucket{}, PathBucket{}, PortBucket{}, SchemeBucket{}), DefaultPolling())
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules { route: %s, polling: %s }", r.Route, r.Polling)
}
