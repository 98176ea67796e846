package crawl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-crawl/wayfarer/internal/config"
	wferrors "github.com/wayfarer-crawl/wayfarer/internal/errors"
	"github.com/wayfarer-crawl/wayfarer/internal/httpclient"
	"github.com/wayfarer-crawl/wayfarer/internal/log"
	"github.com/wayfarer-crawl/wayfarer/internal/robots"
	"github.com/wayfarer-crawl/wayfarer/internal/rules"
)

const crawlTestPage = `
<html>
	<body>
		<a href="%[1]s/ok-1">hello</a>
		<a href="%[1]s/ok-2">hello2</a>
		<a href="https://blocked.example.com/nope">hello3</a>
		<a href="hdata:text/plain,Stuff">hello4</a>
	</body>
</html>`

func TestCrawlFiltersToAdmissibleURLs(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprintf(w, crawlTestPage, srv.URL)
	}))
	defer srv.Close()

	cfg := config.Default()
	fetcher, err := httpclient.New(cfg, log.New(false))
	require.NoError(t, err)

	crawler, err := NewCrawler(fetcher, nil, "")
	require.NoError(t, err)

	serverURL, err := url.Parse(srv.URL)
	require.NoError(t, err)
	hostGlob, err := rules.HostGlob(serverURL.Hostname())
	require.NoError(t, err)

	route := rules.NewRoute(
		rules.NewHostBucket([]rules.HostMatcher{{Permission: rules.Acceptable, Kind: hostGlob}}),
		rules.MethodBucket{},
		rules.PathBucket{},
		rules.PortBucket{},
		rules.SchemeBucket{},
	)

	urls, err := crawler.Crawl(context.Background(), serverURL, route)
	require.NoError(t, err)
	require.Len(t, urls, 2)
	assert.Equal(t, srv.URL+"/ok-1", urls[0].String())
	assert.Equal(t, srv.URL+"/ok-2", urls[1].String())
}

func TestCrawlRespectsRobotsDisallow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /\n"))
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><a href="/elsewhere">x</a></body></html>`))
	}))
	defer srv.Close()

	cfg := config.Default()
	fetcher, err := httpclient.New(cfg, log.New(false))
	require.NoError(t, err)

	robotsCache := robots.NewCache(fetcher, log.New(false))
	crawler, err := NewCrawler(fetcher, robotsCache, "wayfarerbot")
	require.NoError(t, err)

	serverURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	route := rules.NewRoute(rules.HostBucket{}, rules.MethodBucket{}, rules.PathBucket{}, rules.PortBucket{}, rules.SchemeBucket{})
	route.FollowRobotsExclusionProtocol = true

	_, err = crawler.Crawl(context.Background(), serverURL, route)
	require.Error(t, err)

	var crawlErr *wferrors.Error
	require.ErrorAs(t, err, &crawlErr)
	assert.Equal(t, wferrors.KindRobots, crawlErr.Kind)
}
