// Package generate assembles content capsules from source documents.
// It orchestrates reduction, markdown conversion, classification,
// extraction, budget enforcement, and serialization metadata into a
// single synchronous pipeline. One call processes one document;
// callers parallelize across documents as they see fit.
package generate

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/mako"
)

// Ensure Generator implements mako.CapsuleGenerator at compile time.
var _ mako.CapsuleGenerator = (*Generator)(nil)

// Generator assembles capsules. All component fields are required
// unless noted; Hooks, Enhancer, and Tokens are optional.
type Generator struct {
	// Reducers are tried in order until one yields content. A document
	// no reducer can handle falls through to the converter unreduced,
	// relying on its own noise handling.
	Reducers []mako.Reducer

	Converter mako.Converter
	Links     mako.LinkExtractor
	Actions   mako.ActionExtractor
	Media     mako.MediaScanner
	Language  mako.LanguageDetector

	// Enhancer optionally rewrites the derived summary. Enhancer
	// failures degrade to the heuristic summary.
	Enhancer mako.SummaryEnhancer

	// Tokens estimates token counts. Defaults to mako.EstimateTokens.
	Tokens mako.TokenEstimator

	// Hooks are the optional per-document extension points.
	Hooks mako.Hooks

	// MaxTokens is the body token budget. Defaults to
	// mako.DefaultMaxTokens.
	MaxTokens int

	// CacheControl is emitted in the header map. Defaults to
	// mako.DefaultCacheControl.
	CacheControl string

	// DefaultFreshness applies when the native type implies no specific
	// cadence. Defaults to weekly.
	DefaultFreshness mako.Freshness

	// DefaultLanguage applies when no hint is given and detection is
	// inconclusive. Defaults to "en".
	DefaultLanguage string

	// NoExcerpt disables the source excerpt as a summary source.
	NoExcerpt bool
}

// Generate assembles a capsule for doc. Unusable input (no HTML that
// survives conversion and no structured fallback) returns (nil, nil):
// absence, not an error. All degraded-extraction conditions are
// tolerated; the capsule carries a non-blocking ValidationResult.
func (g *Generator) Generate(ctx context.Context, doc *mako.SourceDocument) (*mako.Capsule, error) {
	if doc == nil {
		return nil, mako.Errorf(mako.EINVALID, "source document required")
	}

	rawHTML := strings.TrimSpace(doc.HTML)

	var htmlTokens int
	if rawHTML != "" {
		htmlTokens = g.estimate(rawHTML)
	}

	siteURL := doc.SiteURL
	if siteURL == "" {
		siteURL = doc.URL
	}

	// Reduce. The first reducer that finds content wins.
	contentHTML := rawHTML
	pageTitle := doc.Title
	for _, r := range g.Reducers {
		result, err := r.Reduce(rawHTML)
		if err != nil || result.Empty() {
			continue
		}
		contentHTML = result.ContentHTML
		if pageTitle == "" {
			pageTitle = result.Title
		}
		break
	}

	// Convert. Conversion failures degrade to empty markdown so the
	// structured fallback below still gets a chance.
	var markdown string
	if contentHTML != "" {
		md, err := g.Converter.Convert(contentHTML, doc.URL)
		if err == nil {
			markdown = md
		}
	}

	if strings.TrimSpace(markdown) == "" {
		// Products can be described from structured metadata alone.
		if doc.Product != nil && strings.TrimSpace(pageTitle) != "" {
			markdown = strings.TrimSpace(pageTitle)
		} else {
			return nil, nil
		}
	}

	// Classify.
	typ := mako.Classify(doc, markdown)
	if g.Hooks.Type != nil {
		if t := g.Hooks.Type(doc, markdown); t != "" {
			typ = t
		}
	}

	// Entity.
	var seoTitle string
	if g.Hooks.EntityTitle != nil {
		seoTitle = g.Hooks.EntityTitle(doc)
	}
	entity := mako.ExtractEntity(doc, seoTitle)

	// Links and actions come from the raw HTML, not the reduced
	// subtree: navigation anchors are semantic even when they are
	// noise for the body.
	var links mako.Links
	if g.Links != nil {
		if l, err := g.Links.ExtractLinks(rawHTML, siteURL); err == nil {
			links = l
		}
	}
	if g.Hooks.Links != nil {
		links = g.Hooks.Links(doc, links)
	}

	var actions []mako.Action
	if g.Actions != nil {
		if a, err := g.Actions.ExtractActions(rawHTML); err == nil {
			actions = a
		}
	}
	if g.Hooks.Actions != nil {
		actions = g.Hooks.Actions(doc, actions)
	}

	language := g.detectLanguage(doc, markdown)

	// Body.
	body := g.buildBody(doc, entity, markdown, typ)
	maxTokens := g.MaxTokens
	if maxTokens <= 0 {
		maxTokens = mako.DefaultMaxTokens
	}
	if g.estimate(body) > maxTokens {
		body = g.truncateBody(body, maxTokens)
	}
	for _, enrich := range g.Hooks.Body {
		body = enrich(doc, body)
	}
	if g.estimate(body) > maxTokens {
		body = g.truncateBody(body, maxTokens)
	}

	// Media.
	var media *mako.Media
	if g.Media != nil {
		if m, err := g.Media.ScanMedia(rawHTML, doc.URL); err == nil && !m.Empty() {
			media = m
		}
	}
	if g.Hooks.Cover != nil {
		if cover := g.Hooks.Cover(doc); cover != nil {
			if media == nil {
				media = &mako.Media{}
			}
			media.Cover = cover
		}
	}

	summary := g.deriveSummary(ctx, doc, markdown, body)

	updated := doc.Modified
	if updated.IsZero() {
		updated = time.Now().UTC()
	}

	c := &mako.Capsule{
		SpecVersion: mako.SpecVersion,
		Type:        typ,
		Entity:      entity,
		Updated:     updated,
		TokenCount:  g.estimate(body),
		Language:    language,
		Summary:     summary,
		Freshness:   g.freshness(doc),
		Canonical:   doc.URL,
		Media:       media,
		Tags:        deriveTags(doc.Tags),
		Actions:     actions,
		Links:       links,
		Body:        body,
		HTMLTokens:  htmlTokens,
	}

	for _, enrich := range g.Hooks.Frontmatter {
		enrich(doc, c)
	}

	// Validation never blocks: the capsule ships with its diagnostics.
	c.Validation = mako.Validate(c, maxTokens)
	c.Headers = mako.BuildHeaders(c, g.cacheControl())

	return c, nil
}

// detectLanguage resolves the capsule language: per-document hook,
// host hint, detection from the converted text, configured default.
func (g *Generator) detectLanguage(doc *mako.SourceDocument, markdown string) string {
	if g.Hooks.Language != nil {
		if lang := g.Hooks.Language(doc); lang != "" {
			return lang
		}
	}
	if doc.Language != "" {
		return normalizeLanguage(doc.Language)
	}
	if g.Language != nil {
		if lang := g.Language.DetectLanguage(markdown); lang != "" {
			return lang
		}
	}
	if g.DefaultLanguage != "" {
		return g.DefaultLanguage
	}
	return "en"
}

// normalizeLanguage reduces a host locale like "en_US" or "es-ES" to
// its two-letter language code.
func normalizeLanguage(locale string) string {
	locale = strings.ToLower(locale)
	if i := strings.IndexAny(locale, "_-"); i > 0 {
		return locale[:i]
	}
	return locale
}

func (g *Generator) deriveSummary(ctx context.Context, doc *mako.SourceDocument, markdown, body string) string {
	var metaDescription string
	if g.Hooks.MetaDescription != nil {
		metaDescription = g.Hooks.MetaDescription(doc)
	}

	src := doc
	if g.NoExcerpt && doc.Excerpt != "" {
		clone := *doc
		clone.Excerpt = ""
		src = &clone
	}

	summary := mako.DeriveSummary(src, markdown, metaDescription)

	if g.Enhancer != nil {
		if enhanced, err := g.Enhancer.EnhanceSummary(ctx, doc, body, summary); err == nil && enhanced != "" {
			summary = enhanced
		}
	}

	return summary
}

// freshness maps the native content type to an update-frequency hint.
func (g *Generator) freshness(doc *mako.SourceDocument) mako.Freshness {
	switch doc.NativeType {
	case mako.SourceProduct:
		return mako.FreshnessDaily
	case mako.SourcePage:
		return mako.FreshnessMonthly
	}
	if g.DefaultFreshness != "" {
		return g.DefaultFreshness
	}
	return mako.FreshnessWeekly
}

// deriveTags lowercases, deduplicates, and caps the host taxonomy
// terms, preserving host order.
func deriveTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(tags))
	var out []string
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "uncategorized" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == mako.MaxTags {
			break
		}
	}
	return out
}

func (g *Generator) estimate(text string) int {
	if g.Tokens != nil {
		return g.Tokens.Estimate(text)
	}
	return mako.EstimateTokens(text)
}

func (g *Generator) cacheControl() string {
	if g.CacheControl != "" {
		return g.CacheControl
	}
	return mako.DefaultCacheControl
}
