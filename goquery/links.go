package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mako"
)

// URL patterns never worth surfacing as semantic links: legal pages,
// auth and commerce flow pages, CMS internals, machine endpoints.
var skipURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)privac`),
	regexp.MustCompile(`(?i)cookie`),
	regexp.MustCompile(`(?i)legal`),
	regexp.MustCompile(`(?i)terms`),
	regexp.MustCompile(`(?i)condiciones`),
	regexp.MustCompile(`(?i)aviso-legal`),
	regexp.MustCompile(`(?i)politica-de`),
	regexp.MustCompile(`(?i)wp-admin`),
	regexp.MustCompile(`(?i)wp-login`),
	regexp.MustCompile(`(?i)wp-content`),
	regexp.MustCompile(`(?i)feed/?$`),
	regexp.MustCompile(`(?i)xmlrpc`),
	regexp.MustCompile(`(?i)wp-json`),
	regexp.MustCompile(`(?i)login`),
	regexp.MustCompile(`(?i)register`),
	regexp.MustCompile(`(?i)cart`),
	regexp.MustCompile(`(?i)checkout`),
	regexp.MustCompile(`(?i)my-account`),
}

// Ensure LinkExtractor implements mako.LinkExtractor at compile time.
var _ mako.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor walks anchors in raw HTML and classifies them as
// internal or external semantic links.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks enumerates anchors in document order, resolves and
// normalizes their targets, and returns up to mako.MaxInternalLinks
// internal and mako.MaxExternalLinks external links. Links whose
// context cannot be derived are dropped. No two returned links share a
// normalized URL.
func (e *LinkExtractor) ExtractLinks(rawHTML string, siteURL string) (mako.Links, error) {
	var links mako.Links

	if strings.TrimSpace(rawHTML) == "" {
		return links, nil
	}

	site, err := url.Parse(siteURL)
	if err != nil {
		return links, mako.Errorf(mako.EINVALID, "invalid site URL: %v", err)
	}
	siteHost := normalizeHost(site.Host)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return links, nil
	}

	seen := make(map[string]bool)

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(links.Internal) >= mako.MaxInternalLinks && len(links.External) >= mako.MaxExternalLinks {
			return false
		}

		href, _ := sel.Attr("href")
		if href == "" || strings.HasPrefix(href, "#") || nonNavigable(href) {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		resolved := site.ResolveReference(ref)

		if shouldSkipURL(resolved.String()) {
			return true
		}

		normalized := normalizeURL(resolved)
		if seen[normalized] {
			return true
		}
		seen[normalized] = true

		context := linkContext(sel)
		if context == "" {
			return true
		}

		if normalizeHost(resolved.Host) == siteHost {
			if len(links.Internal) < mako.MaxInternalLinks {
				links.Internal = append(links.Internal, mako.Link{
					URL:     relativePath(resolved),
					Context: context,
				})
			}
		} else if len(links.External) < mako.MaxExternalLinks {
			links.External = append(links.External, mako.Link{
				URL:     normalized,
				Context: context,
			})
		}

		return true
	})

	return links, nil
}

func shouldSkipURL(u string) bool {
	for _, re := range skipURLPatterns {
		if re.MatchString(u) {
			return true
		}
	}
	return false
}

// normalizeURL produces the dedup key: scheme+host+path with trailing
// slash stripped, query preserved, fragment dropped.
func normalizeURL(u *url.URL) string {
	scheme := u.Scheme
	if scheme == "" {
		scheme = "https"
	}
	normalized := scheme + "://" + u.Host + strings.TrimRight(u.Path, "/")
	if u.RawQuery != "" {
		normalized += "?" + u.RawQuery
	}
	return normalized
}

// relativePath returns the host-relative form stored for internal
// links: path with trailing slash stripped ("/" for the root) plus any
// query string.
func relativePath(u *url.URL) string {
	path := strings.TrimRight(u.Path, "/")
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return path
}

// normalizeHost lowercases and drops a leading www. so host comparison
// treats www and bare domains as the same site.
func normalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}

// linkContext derives a human-readable context string with priority:
// visible link text (2–120 chars), aria-label, title attribute, then
// over-long link text truncated with an ellipsis. Empty means the link
// should be dropped.
func linkContext(sel *goquery.Selection) string {
	text := strings.TrimSpace(sel.Text())
	n := len([]rune(text))
	if n >= 2 && n <= mako.MaxLinkContext {
		return text
	}

	if aria, ok := sel.Attr("aria-label"); ok && strings.TrimSpace(aria) != "" {
		return truncateRunes(strings.TrimSpace(aria), mako.MaxLinkContext)
	}

	if title, ok := sel.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return truncateRunes(strings.TrimSpace(title), mako.MaxLinkContext)
	}

	if n > mako.MaxLinkContext {
		return string([]rune(text)[:mako.MaxLinkContext-3]) + "..."
	}

	return ""
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// nonNavigable reports whether a href should never become a link:
// javascript:, mailto:, tel:, and data: targets.
func nonNavigable(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
