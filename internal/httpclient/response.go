// internal/httpclient/response.go
//
// This file defines the internal HTTP response type used by wayfarer's
// HTTP client. It is deliberately small and immutable from the point of
// view of callers.
package httpclient

import (
	"net/http"
	"time"
)

// Response represents the result of a single HTTP GET operation.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
	FetchedAt  time.Time
}
