// internal/robots/robots.go
//
// Package robots implements Robots Exclusion Protocol compliance for
// wayfarer, backed by github.com/temoto/robotstxt. A robots.txt file
// that was fetched and parsed is cached per host for the lifetime of a
// Cache and reused for every subsequent Allowed check against that host.
//
// Fetch or parse failures fail open: the host is treated as fully
// allowed and a warning is logged, rather than halting the crawl. A
// failure is not cached, so the next check for that host fetches
// robots.txt again.
package robots

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	rtxt "github.com/temoto/robotstxt"

	"github.com/wayfarer-crawl/wayfarer/internal/httpclient"
	"github.com/wayfarer-crawl/wayfarer/internal/log"
)

// Cache fetches and memoizes robots.txt rules, one entry per host, for
// the lifetime of a single run.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*rtxt.RobotsData
	fetcher *httpclient.Client
	logger  log.Logger
}

// NewCache constructs an empty robots.txt cache backed by fetcher.
func NewCache(fetcher *httpclient.Client, logger log.Logger) *Cache {
	return &Cache{
		entries: make(map[string]*rtxt.RobotsData),
		fetcher: fetcher,
		logger:  logger,
	}
}

// Allowed reports whether userAgent may fetch rawURL, consulting (and
// populating) the per-host robots.txt cache. An empty userAgent is
// checked as the "*" user agent.
func (c *Cache) Allowed(ctx context.Context, rawURL, userAgent string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return true
	}
	if userAgent == "" {
		userAgent = "*"
	}

	data, err := c.get(ctx, parsed)
	if err != nil {
		c.logger.Warnf("robots.txt unavailable for %s, failing open: %v", parsed.Host, err)
		return true
	}

	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}

	return data.TestAgent(path, userAgent)
}

func (c *Cache) get(ctx context.Context, parsed *url.URL) (*rtxt.RobotsData, error) {
	hostKey := strings.ToLower(parsed.Scheme + "://" + parsed.Host)

	c.mu.Lock()
	if data, ok := c.entries[hostKey]; ok {
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	robotsURL := fmt.Sprintf("%s/robots.txt", hostKey)
	resp, err := c.fetcher.Fetch(ctx, robotsURL, nil)
	if err != nil {
		return nil, err
	}

	data, err := rtxt.FromStatusAndBytes(resp.StatusCode, resp.Body)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[hostKey] = data
	c.mu.Unlock()

	return data, nil
}
