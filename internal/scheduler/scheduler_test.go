package scheduler

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-crawl/wayfarer/internal/log"
	"github.com/wayfarer-crawl/wayfarer/internal/rules"
)

type fakeCrawler struct {
	linksByURL map[string][]*url.URL
	errByURL   map[string]error
	calls      []string
}

func (f *fakeCrawler) Crawl(_ context.Context, u *url.URL, _ rules.Route) ([]*url.URL, error) {
	f.calls = append(f.calls, u.String())
	if err, ok := f.errByURL[u.String()]; ok {
		return nil, err
	}
	return f.linksByURL[u.String()], nil
}

type noopSleeper struct{}

func (noopSleeper) Sleep(context.Context, rules.Polling) {}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestRunFailsWhenRootURLsEmpty(t *testing.T) {
	fc := &fakeCrawler{}
	s := New(fc, rules.Route{}, rules.DefaultPolling(), log.New(false))
	s.sleep = noopSleeper{}

	err := s.Run(context.Background())
	require.Error(t, err)
}

func TestRunStopsOnContextCancellation(t *testing.T) {
	root := mustParse(t, "https://example.com/")
	other := mustParse(t, "https://example.com/other")

	fc := &fakeCrawler{
		linksByURL: map[string][]*url.URL{
			root.String(): {root, other},
		},
	}

	route := rules.Route{RootURLs: []*url.URL{root}}
	s := New(fc, route, rules.DefaultPolling(), log.New(false))
	s.sleep = noopSleeper{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, fc.calls)
}

func TestRunWithParentURLStopsAtDepthLimit(t *testing.T) {
	root := mustParse(t, "https://example.com/")
	child := mustParse(t, "https://example.com/child")

	fc := &fakeCrawler{
		linksByURL: map[string][]*url.URL{
			root.String():  {root, child},
			child.String(): {child, root},
		},
	}

	route := rules.Route{RootURLs: []*url.URL{root}}
	polling := rules.NewRules(rules.Route{}, rules.DefaultPolling()).Polling
	polling.Depth = rules.NewDepth(true, 1)

	s := New(fc, route, polling, log.New(false))
	s.sleep = noopSleeper{}

	outcome, err := s.runWithParentURL(context.Background(), root, 0)
	require.NoError(t, err)
	assert.Equal(t, outcomeSuccess, outcome)

	outcome, err = s.runWithParentURL(context.Background(), child, 1)
	require.NoError(t, err)
	assert.Equal(t, outcomeDepthLimitReached, outcome)
}

func TestRunWithParentURLNoURLsFoundWhenAtMostOneLink(t *testing.T) {
	root := mustParse(t, "https://example.com/")

	fc := &fakeCrawler{
		linksByURL: map[string][]*url.URL{
			root.String(): {root},
		},
	}

	s := New(fc, rules.Route{}, rules.DefaultPolling(), log.New(false))
	s.sleep = noopSleeper{}

	outcome, err := s.runWithParentURL(context.Background(), root, 0)
	require.NoError(t, err)
	assert.Equal(t, outcomeNoURLsFound, outcome)
}

func TestRunWithParentURLPropagatesCrawlError(t *testing.T) {
	root := mustParse(t, "https://example.com/")
	boom := assert.AnError

	fc := &fakeCrawler{
		errByURL: map[string]error{root.String(): boom},
	}

	s := New(fc, rules.Route{}, rules.DefaultPolling(), log.New(false))
	s.sleep = noopSleeper{}

	outcome, err := s.runWithParentURL(context.Background(), root, 0)
	assert.Equal(t, outcomeCrawlError, outcome)
	assert.ErrorIs(t, err, boom)
}
