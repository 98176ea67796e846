// internal/httpclient/client.go
//
// Package httpclient implements wayfarer's internal HTTP client.
// It provides a plain GET with concurrency limits, retry logic, a
// bounded redirect policy, and optional proxying. Robots.txt
// compliance is layered on top by internal/robots and internal/crawl;
// this package only knows how to fetch bytes politely.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/wayfarer-crawl/wayfarer/internal/config"
	"github.com/wayfarer-crawl/wayfarer/internal/errors"
	"github.com/wayfarer-crawl/wayfarer/internal/log"
)

// Error is a convenient alias for the structured error type used by
// the HTTP client. It matches wayfarer's public Error type.
type Error = errors.Error

// Client is wayfarer's internal HTTP client.
type Client struct {
	cfg     *config.Config
	logger  log.Logger
	http    *http.Client
	limiter *hostLimiter
}

// New constructs a new HTTP client with the provided configuration
// and logger. It reuses a single http.Client to benefit from connection
// pooling.
func New(cfg *config.Config, logger log.Logger) (*Client, error) {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	transport := &http.Transport{}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, errors.New(errors.KindConfig, "invalid proxy URL", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	maxRedirects := cfg.MaxRedirects
	if maxRedirects < 0 {
		maxRedirects = 0
	}

	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	return &Client{
		cfg:     cfg,
		logger:  logger,
		http:    httpClient,
		limiter: newHostLimiter(cfg.MaxConcurrentHosts, cfg.MaxRequestsPerHost),
	}, nil
}

// Fetch performs an HTTP GET with retries and concurrency limiting.
//
// headers may contain additional headers to send. The User-Agent header
// will always be set to the configured wayfarer User-Agent, overriding any
// User-Agent value in headers.
func (c *Client) Fetch(
	ctx context.Context,
	rawURL string,
	headers http.Header,
) (*Response, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.New(errors.KindTransport, "invalid URL", err)
	}
	hostKey := parsed.Host

	if err := c.limiter.Acquire(ctx, hostKey); err != nil {
		return nil, errors.New(errors.KindTransport, "acquiring concurrency slot failed", err)
	}
	defer c.limiter.Release(hostKey)

	reqHeaders := make(http.Header)
	for k, v := range headers {
		cp := make([]string, len(v))
		copy(cp, v)
		reqHeaders[k] = cp
	}
	reqHeaders.Set("User-Agent", c.cfg.UserAgent)
	if reqHeaders.Get("Accept") == "" {
		reqHeaders.Set("Accept", "*/*")
	}

	const maxRetries = 2
	backoff := 200 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, errors.New(errors.KindTransport, "request canceled", ctx.Err())
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, errors.New(errors.KindTransport, "creating request failed", err)
		}
		req.Header = reqHeaders.Clone()

		resp, err := c.http.Do(req)
		if err != nil {
			if !isRetryableError(err) || attempt == maxRetries {
				return nil, errors.New(errors.KindTransport, "request failed", err)
			}
			lastErr = err
			time.Sleep(backoff)
			backoff *= 2
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			if attempt == maxRetries {
				return nil, errors.New(errors.KindTransport, "reading response failed", readErr)
			}
			lastErr = readErr
			time.Sleep(backoff)
			backoff *= 2
			continue
		}

		return &Response{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       body,
			FetchedAt:  time.Now(),
		}, nil
	}

	if lastErr != nil {
		return nil, errors.New(errors.KindTransport, "request failed after retries", lastErr)
	}
	return nil, errors.New(errors.KindTransport, "request failed for unknown reasons", nil)
}

// isRetryableError reports whether the error is likely transient.
func isRetryableError(err error) bool {
	if ne, ok := err.(net.Error); ok {
		return ne.Timeout()
	}
	return false
}
