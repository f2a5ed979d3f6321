// Package goquery provides goquery-based DOM implementations of the
// mako extraction interfaces: the HTML reducer, the link and action
// extractors, and the media scanner.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/mako"
)

// Tags removed wholesale during reduction.
var removeTags = []string{
	"script", "style", "noscript", "iframe", "svg", "form",
	"nav", "footer", "header", "aside",
}

// ARIA roles marking page chrome.
var removeRoles = []string{
	"navigation", "banner", "contentinfo", "complementary",
}

// Class-attribute substrings marking noise elements. Matching is
// substring on the raw class attribute, not exact token match.
var removeClassSubstrings = []string{
	"ad", "ads", "advertisement", "sidebar", "widget",
	"cookie", "consent", "popup", "modal", "overlay",
	"social-share", "share-buttons", "newsletter", "subscribe",
	"comments", "comment-form", "related-posts", "breadcrumb",
	"breadcrumbs", "pagination", "footer", "copyright",
}

// Content-root selectors, tried in priority order.
var contentSelectors = []string{
	"main", "article", "[role=main]",
	".entry-content", ".post-content", ".page-content", ".content",
	"body",
}

// Ensure Reducer implements mako.Reducer at compile time.
var _ mako.Reducer = (*Reducer)(nil)

// Reducer strips noise nodes from rendered HTML and locates the
// primary-content subtree using CSS selectors.
type Reducer struct{}

// NewReducer creates a new Reducer.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce parses HTML permissively, removes noise, and returns the main
// content subtree. Unparseable input or a page with no locatable
// content yields an empty result, not an error.
func (r *Reducer) Reduce(rawHTML string) (*mako.ReduceResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &mako.ReduceResult{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &mako.ReduceResult{}, nil
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	removeNoise(doc)

	content := findContentRoot(doc)
	if content == nil {
		return &mako.ReduceResult{Title: title}, nil
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil || strings.TrimSpace(content.Text()) == "" {
		return &mako.ReduceResult{Title: title}, nil
	}

	return &mako.ReduceResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}

func removeNoise(doc *goquery.Document) {
	for _, tag := range removeTags {
		doc.Find(tag).Remove()
	}

	for _, role := range removeRoles {
		doc.Find(`[role="` + role + `"]`).Remove()
	}

	for _, class := range removeClassSubstrings {
		doc.Find(`[class*="` + class + `"]`).Remove()
	}

	doc.Find(`[hidden], [aria-hidden="true"], [style*="display:none"], [style*="display: none"]`).Remove()
}

func findContentRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	if sel := doc.Selection.Children().First(); sel.Length() > 0 {
		return sel
	}
	return nil
}
