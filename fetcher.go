package mako

import "context"

// Fetcher retrieves rendered HTML from URLs. Fetching is a collaborator
// concern: the core pipeline assumes HTML is already in memory, and only
// the bulk-generation CLI needs a Fetcher.
type Fetcher interface {
	// Fetch retrieves the rendered HTML for url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// DomainLimiter paces requests per domain so bulk generation does not
// overload origin servers.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain,
	// or the context is canceled.
	Wait(ctx context.Context, domain string) error
}
