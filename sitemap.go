package mako

import (
	"context"
	"regexp"
)

// SitemapService discovers page URLs from website sitemaps for bulk
// capsule generation.
type SitemapService interface {
	// DiscoverURLs finds all page URLs from a site's sitemap. It checks
	// robots.txt for sitemap directives first, then falls back to
	// /sitemap.xml. Sitemap indexes are resolved recursively.
	//
	// A nil filter returns all URLs.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter specifies patterns for including/excluding discovered URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one
	// pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded, after
	// Include is applied.
	Exclude []*regexp.Regexp
}

// Match returns true if the URL passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
