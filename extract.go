package mako

import "context"

// Link extraction caps and limits.
const (
	MaxInternalLinks = 10
	MaxExternalLinks = 5
	MaxLinkContext   = 120
	MaxActions       = 5
	MaxTags          = 10
)

// LinkExtractor walks anchors in raw HTML and returns semantic links
// classified internal vs. external relative to siteURL, deduplicated by
// normalized URL, each with a human-readable context string.
type LinkExtractor interface {
	ExtractLinks(html string, siteURL string) (Links, error)
}

// ActionExtractor walks interactive elements (buttons, CTAs) in raw
// HTML and matches their labels against the action vocabulary. At most
// MaxActions actions are returned and no two share a name.
type ActionExtractor interface {
	ExtractActions(html string) ([]Action, error)
}

// MediaScanner counts media elements in raw HTML and selects a cover
// image when one can be derived from the content.
type MediaScanner interface {
	ScanMedia(html string, baseURL string) (*Media, error)
}

// LanguageDetector guesses the dominant language of a text and returns
// a BCP-47 code. Empty string means undetermined.
type LanguageDetector interface {
	DetectLanguage(text string) string
}

// SummaryEnhancer optionally rewrites a derived summary (e.g., via an
// external AI model). Implementations must return a summary within the
// 160-character limit; errors degrade to the heuristic summary.
type SummaryEnhancer interface {
	EnhanceSummary(ctx context.Context, doc *SourceDocument, body string, summary string) (string, error)
}
