// internal/crawl/crawl.go
//
// Package crawl fetches a single page and extracts the admissible child
// URLs reachable from it. It holds no state across calls: there is no
// visited set and no per-host quota here, since the scheduler's depth
// gate is the crawler's only backstop against unbounded recursion.
package crawl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/wayfarer-crawl/wayfarer/internal/errors"
	"github.com/wayfarer-crawl/wayfarer/internal/html"
	"github.com/wayfarer-crawl/wayfarer/internal/httpclient"
	"github.com/wayfarer-crawl/wayfarer/internal/linkextract"
	"github.com/wayfarer-crawl/wayfarer/internal/robots"
	"github.com/wayfarer-crawl/wayfarer/internal/rules"
)

// robotsChecker is the subset of *robots.Cache the crawl step needs,
// defined locally so tests can fake it without a real HTTP fetcher.
type robotsChecker interface {
	Allowed(ctx context.Context, rawURL, userAgent string) bool
}

// Crawler fetches a page and resolves the route-admissible URLs found
// on it.
type Crawler struct {
	fetcher   *httpclient.Client
	robots    robotsChecker
	userAgent string
}

// NewCrawler wraps an HTTP client, an optional robots.txt cache, and
// the user agent to present to it, for use by the crawl step. robots
// may be nil, in which case robots.txt is never consulted regardless
// of a route's FollowRobotsExclusionProtocol flag.
func NewCrawler(fetcher *httpclient.Client, robotsCache *robots.Cache, userAgent string) (*Crawler, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("crawl: nil HTTP fetcher")
	}
	c := &Crawler{fetcher: fetcher, userAgent: userAgent}
	if robotsCache != nil {
		c.robots = robotsCache
	}
	return c, nil
}

// Crawl fetches u, parses it as HTML, and returns the admissible child
// URLs found on the page under route. It returns an error wrapping
// errors.KindRobots, errors.KindHTTP, or errors.KindParsing on
// disallowed-by-robots, fetch, or parse failure respectively; none of
// these is special-cased by the caller beyond logging, matching the
// reference crawler's flat error surface at this layer.
func (c *Crawler) Crawl(ctx context.Context, u *url.URL, route rules.Route) ([]*url.URL, error) {
	if route.FollowRobotsExclusionProtocol && c.robots != nil && !c.robots.Allowed(ctx, u.String(), c.userAgent) {
		return nil, errors.New(errors.KindRobots, fmt.Sprintf("disallowed by robots.txt: %s", u), nil)
	}

	resp, err := c.fetcher.Fetch(ctx, u.String(), nil)
	if err != nil {
		return nil, errors.New(errors.KindHTTP, fmt.Sprintf("fetching %s", u), err)
	}

	doc, err := html.ParseDocument(resp.Body)
	if err != nil {
		return nil, errors.New(errors.KindParsing, fmt.Sprintf("parsing %s", u), err)
	}

	links := linkextract.FromDocument(doc)
	out := make([]*url.URL, 0, len(links))
	for _, link := range links {
		if route.Admits(link) {
			out = append(out, link)
		}
	}
	return out, nil
}
