// Package scheduler implements wayfarer's polling loop: it picks a
// random root URL, recurses into its admissible child links with
// randomized pacing between requests, and never terminates on its own
// short of a fatal precondition or context cancellation.
//
// The recursion has no visited set and no page budget beyond depth:
// the depth gate in the polling rules is the only backstop against
// crawling the same site forever, matching the reference crawler's
// design. A page is abandoned and retried only implicitly, by the
// scheduler picking a new random root on the next loop iteration.
package scheduler

import (
	"context"
	"math/rand/v2"
	"net/url"
	"time"

	wferrors "github.com/wayfarer-crawl/wayfarer/internal/errors"
	"github.com/wayfarer-crawl/wayfarer/internal/log"
	"github.com/wayfarer-crawl/wayfarer/internal/rules"
)

// maxPageURLs caps how many links are taken from a single page before
// the rest are discarded, bounding memory and fan-out on link-heavy
// pages.
const maxPageURLs = 100

// crawler is the subset of internal/crawl.Crawler the scheduler needs.
// Defined here so the scheduler can be tested against a fake without
// depending on internal/crawl's HTTP concerns.
type crawler interface {
	Crawl(ctx context.Context, u *url.URL, route rules.Route) ([]*url.URL, error)
}

// sleeper abstracts the pacing delay so tests don't have to wait on a
// real clock.
type sleeper interface {
	Sleep(ctx context.Context, rules rules.Polling)
}

type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, p rules.Polling) {
	d := p.Time.RandomSleepBetweenRequests()
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// childOutcome classifies why a recursive crawl step stopped, mirroring
// the reference scheduler's three-way error split.
type childOutcome int

const (
	outcomeSuccess childOutcome = iota
	outcomeCrawlError
	outcomeDepthLimitReached
	outcomeNoURLsFound
)

// Scheduler runs the polling loop.
type Scheduler struct {
	crawler crawler
	route   rules.Route
	polling rules.Polling
	logger  log.Logger
	sleep   sleeper
}

// New builds a Scheduler from a crawl step, a route, and a polling
// rule set.
func New(c crawler, route rules.Route, polling rules.Polling, logger log.Logger) *Scheduler {
	return &Scheduler{crawler: c, route: route, polling: polling, logger: logger, sleep: realSleeper{}}
}

// Run loops forever, crawling a uniformly random root URL each
// iteration, until ctx is canceled or the route's root URL set is
// empty. A canceled context is not an error; it is the normal way this
// loop stops.
func (s *Scheduler) Run(ctx context.Context) error {
	if len(s.route.RootURLs) == 0 {
		return wferrors.New(wferrors.KindScheduler, "root URL set is empty", nil)
	}

	s.logger.Infof("starting polling with %d root URLs", len(s.route.RootURLs))

	for {
		if ctx.Err() != nil {
			return nil
		}

		rootURL, ok := s.route.RandomRootURL()
		if !ok {
			return nil
		}

		outcome, err := s.runWithParentURL(ctx, rootURL, 0)
		switch outcome {
		case outcomeSuccess:
		case outcomeCrawlError:
			s.logger.Errorf("crawling root URL %s: %v", rootURL, err)
		case outcomeDepthLimitReached:
			// The root is always crawled at depth 0, where the depth
			// gate is never consulted; this branch is unreachable.
			s.logger.Errorf("unreachable: depth limit reached for root URL %s", rootURL)
		case outcomeNoURLsFound:
			s.logger.Warnf("no URLs found for root URL %s; check the root URL or route rules", rootURL)
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

// runWithParentURL recursively crawls url at depth, returning how the
// attempt concluded.
func (s *Scheduler) runWithParentURL(ctx context.Context, u *url.URL, depth uint16) (childOutcome, error) {
	if depth > 0 && !s.polling.DepthMatches(depth) {
		return outcomeDepthLimitReached, nil
	}

	s.logger.Infof("crawling %s at depth %d", u, depth)

	// Pacing applies at every depth, including the root fetch at depth 0.
	s.sleep.Sleep(ctx, s.polling)
	if ctx.Err() != nil {
		return outcomeSuccess, nil
	}

	links, err := s.crawler.Crawl(ctx, u, s.route)
	if err != nil {
		return outcomeCrawlError, err
	}

	if len(links) > maxPageURLs {
		links = links[:maxPageURLs]
	}

	if len(links) <= 1 {
		if depth != 0 {
			s.logger.Infof("no URLs found at %s", u)
		}
		return outcomeNoURLsFound, nil
	}

	shuffled := make([]*url.URL, len(links))
	copy(shuffled, links)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	for _, child := range shuffled {
		outcome, err := s.runWithParentURL(ctx, child, depth+1)
		if outcome == outcomeSuccess {
			// We don't want to crawl all of a site's URLs over and
			// over again, so stop once one child succeeds.
			break
		}

		switch outcome {
		case outcomeCrawlError:
			s.logger.Errorf("crawling child URL %s: %v", child, err)
		case outcomeDepthLimitReached:
			s.logger.Infof("depth limit reached for child URL %s", child)
		case outcomeNoURLsFound:
			s.logger.Warnf("no URLs found for child URL %s", child)
		}

		if outcome == outcomeDepthLimitReached {
			break
		}
	}

	return outcomeSuccess, nil
}
