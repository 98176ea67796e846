// internal/rules/polling.go
package rules

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Depth bounds how far from a root URL the scheduler will recurse.
type Depth struct {
	acceptable bool
	maxDepth   uint16
}

// NewDepth builds a Depth limit. When acceptable is false, the limit
// behaves as if MaxDepth were 0: nothing beyond the root is crawled.
func NewDepth(acceptable bool, maxDepth uint16) Depth {
	return Depth{acceptable: acceptable, maxDepth: maxDepth}
}

// DefaultDepth matches the reference crawler's default: up to 7 levels
// deep from each root URL.
func DefaultDepth() Depth {
	return NewDepth(true, 7)
}

// MaxDepth returns the effective depth ceiling; 0 when unacceptable.
func (d Depth) MaxDepth() uint16 {
	if d.acceptable {
		return d.maxDepth
	}
	return 0
}

// Matches reports whether depth is still within bounds.
func (d Depth) Matches(depth uint16) bool {
	return depth < d.MaxDepth()
}

func (d Depth) String() string {
	if d.acceptable {
		return fmt.Sprintf("acceptable depth: %d", d.maxDepth)
	}
	return "unacceptable depth"
}

// Redirections bounds how many redirects a single fetch may follow.
type Redirections struct {
	acceptable   bool
	maxRedirects uint16
}

// NewRedirections builds a Redirections limit.
func NewRedirections(acceptable bool, maxRedirects uint16) Redirections {
	return Redirections{acceptable: acceptable, maxRedirects: maxRedirects}
}

// DefaultRedirections allows up to 5 redirects per fetch.
func DefaultRedirections() Redirections {
	return NewRedirections(true, 5)
}

// MaxRedirects returns the effective redirect ceiling; 0 when
// unacceptable.
func (r Redirections) MaxRedirects() uint16 {
	if r.acceptable {
		return r.maxRedirects
	}
	return 0
}

func (r Redirections) String() string {
	if r.acceptable {
		return fmt.Sprintf("acceptable redirections: %d", r.maxRedirects)
	}
	return "unacceptable redirections"
}

// Time controls the pacing between successive requests.
type Time struct {
	MinSleepBetweenRequestsMS uint64
	MaxSleepBetweenRequestsMS uint64
	RequestTimeoutMS          uint64
}

// DefaultTime matches the reference crawler's default pacing: a
// 3-60 second randomized gap between requests and a 7 second timeout.
func DefaultTime() Time {
	return Time{
		MinSleepBetweenRequestsMS: 3000,
		MaxSleepBetweenRequestsMS: 60000,
		RequestTimeoutMS:          7000,
	}
}

// RandomSleepBetweenRequests draws a uniformly random duration in
// [MinSleepBetweenRequestsMS, MaxSleepBetweenRequestsMS].
func (t Time) RandomSleepBetweenRequests() time.Duration {
	lo, hi := t.MinSleepBetweenRequestsMS, t.MaxSleepBetweenRequestsMS
	if hi <= lo {
		return time.Duration(lo) * time.Millisecond
	}
	span := hi - lo + 1
	ms := lo + rand.Uint64N(span)
	return time.Duration(ms) * time.Millisecond
}

func (t Time) String() string {
	return fmt.Sprintf("sleep %d-%dms, timeout %dms", t.MinSleepBetweenRequestsMS, t.MaxSleepBetweenRequestsMS, t.RequestTimeoutMS)
}

// Polling is the full pacing rule set consulted by the scheduler.
type Polling struct {
	Depth         Depth
	Proxy         string
	Redirections  Redirections
	Time          Time
	UserAgent     string
}

// DefaultPolling matches the reference crawler's defaults.
func DefaultPolling() Polling {
	return Polling{
		Depth:        DefaultDepth(),
		Redirections: DefaultRedirections(),
		Time:         DefaultTime(),
	}
}

// DepthMatches reports whether depth is still within the configured
// depth limit.
func (p Polling) DepthMatches(depth uint16) bool {
	return p.Depth.Matches(depth)
}

func (p Polling) String() string {
	ua := p.UserAgent
	if ua == "" {
		ua = "None"
	}
	proxy := p.Proxy
	if proxy == "" {
		proxy = "None"
	}
	return fmt.Sprintf(
		"Polling { depth: %s, proxy: %s, redirections: %s, time: %s, user_agent: %s }",
		p.Depth, proxy, p.Redirections, p.Time, ua,
	)
}
