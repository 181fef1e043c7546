package cetd

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the HTML content at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter throttles outgoing requests on a per-domain basis.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain,
	// or the context is canceled.
	Wait(ctx context.Context, domain string) error
}
