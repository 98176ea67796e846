// Package linkextract filters a page's anchor hrefs down to the
// absolute, special-scheme URLs a recursive crawl is willing to follow.
package linkextract

import (
	"net/url"

	"github.com/wayfarer-crawl/wayfarer/internal/html"
)

// specialSchemes mirrors the WHATWG URL "special scheme" list:
// https://url.spec.whatwg.org/#special-scheme
var specialSchemes = map[string]bool{
	"ftp":   true,
	"file":  true,
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// FromDocument collects every absolute, hosted, special-scheme URL
// reachable from an <a> tag in doc. Relative hrefs, hrefs with no host
// (e.g. "file" URLs without one), non-special schemes, and malformed
// hrefs are silently dropped, matching the reference parser's filter
// chain. Only <a> tags are considered; <link> and other elements are
// not hyperlinks for this purpose.
func FromDocument(doc *html.Document) []*url.URL {
	links := html.ExtractLinks(doc)
	out := make([]*url.URL, 0, len(links))
	for _, link := range links {
		if link.Href == "" {
			continue
		}
		u, err := url.Parse(link.Href)
		if err != nil {
			continue
		}
		if u.Host == "" {
			continue
		}
		if !specialSchemes[u.Scheme] {
			continue
		}
		out = append(out, u)
	}
	return out
}
