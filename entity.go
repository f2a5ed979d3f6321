package mako

import (
	"regexp"
	"strings"
)

// Entity and summary length limits.
const (
	MaxEntityLength  = 100
	MaxSummaryLength = 160
)

var (
	titleSuffixRe = regexp.MustCompile(`\s*[|\-–—:]{1,2}\s*[^|\-–—:]+$`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	headingRe     = regexp.MustCompile(`^#{1,6}\s`)
	imageOnlyRe   = regexp.MustCompile(`^!\[`)
	mdImageRe     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	mdLinkRe      = regexp.MustCompile(`\[[^\]]*\]\([^)]*\)`)
	mdSyntaxRe    = regexp.MustCompile("[*_\\[\\]()>`#~=]")
	priceLineRe   = regexp.MustCompile(`^\d+[,.]?\d*\s*[€$£]`)
	paragraphRe   = regexp.MustCompile(`\n{2,}`)
)

// ExtractEntity derives the primary entity name for a document.
// seoTitle, when non-empty, wins (it comes from the EntityTitle hook).
// Otherwise the source title is used with trailing site-name suffixes
// stripped ("Title | Site Name", "Title - Company"). Falls back to
// "Unknown". The result is at most MaxEntityLength characters.
func ExtractEntity(doc *SourceDocument, seoTitle string) string {
	if seoTitle != "" {
		return truncateEllipsis(seoTitle, MaxEntityLength)
	}

	if title := strings.TrimSpace(doc.Title); title != "" {
		return truncateEllipsis(cleanTitle(title), MaxEntityLength)
	}

	return "Unknown"
}

// cleanTitle strips a trailing "separator + site name" suffix.
func cleanTitle(title string) string {
	cleaned := strings.TrimSpace(titleSuffixRe.ReplaceAllString(title, ""))
	if cleaned == "" {
		return strings.TrimSpace(title)
	}
	return cleaned
}

// DeriveSummary derives a ≤160-char summary for a document, trying in
// order: a structured product summary, the source excerpt, the SEO meta
// description (from the MetaDescription hook), and the first substantial
// plain-text paragraph of the converted markdown. Returns "" when no
// source yields usable text.
func DeriveSummary(doc *SourceDocument, markdown string, metaDescription string) string {
	if doc.Product != nil {
		if s := ProductSummary(doc.Product); s != "" {
			return truncateEllipsis(s, MaxSummaryLength)
		}
	}

	if excerpt := strings.TrimSpace(doc.Excerpt); excerpt != "" {
		return truncateEllipsis(excerpt, MaxSummaryLength)
	}

	if metaDescription != "" {
		return truncateEllipsis(metaDescription, MaxSummaryLength)
	}

	if p := firstParagraph(markdown); p != "" {
		return truncateEllipsis(p, MaxSummaryLength)
	}

	return ""
}

// firstParagraph returns the first markdown paragraph with at least 30
// characters of plain text after stripping markdown syntax, skipping
// headings, images, and price-only lines.
func firstParagraph(markdown string) string {
	for _, para := range paragraphRe.Split(strings.TrimSpace(markdown), -1) {
		trimmed := strings.TrimSpace(para)
		if trimmed == "" || headingRe.MatchString(trimmed) || imageOnlyRe.MatchString(trimmed) {
			continue
		}

		clean := mdImageRe.ReplaceAllString(para, "")
		clean = mdLinkRe.ReplaceAllString(clean, "")
		clean = mdSyntaxRe.ReplaceAllString(clean, "")
		clean = collapseWhitespace(clean)

		if priceLineRe.MatchString(clean) {
			continue
		}
		if len([]rune(clean)) >= 30 {
			return clean
		}
	}
	return ""
}

// ProductSummary builds a structured summary for commerce entities:
// "{Name}. {First sentence of short description}. {Price}. {Stock}."
// parts joined by ". ", absent parts omitted.
func ProductSummary(p *ProductInfo) string {
	if p == nil || p.Name == "" {
		return ""
	}

	parts := []string{p.Name}

	if short := collapseWhitespace(p.ShortDescription); short != "" {
		parts = append(parts, firstSentence(short))
	}

	if p.Price != "" {
		if p.OnSale && p.RegularPrice != "" {
			parts = append(parts, p.Currency+p.Price+" (was "+p.Currency+p.RegularPrice+")")
		} else {
			parts = append(parts, p.Currency+p.Price)
		}
	}

	if !p.InStock {
		parts = append(parts, "Out of stock")
	}

	return strings.Join(parts, ". ")
}

// firstSentence truncates text at the first sentence boundary within
// 120 characters, or hard-truncates at 80 characters.
func firstSentence(text string) string {
	runes := []rune(text)
	if dot := strings.Index(text, "."); dot >= 0 && len([]rune(text[:dot])) < 120 {
		return text[:dot+1]
	}
	if len(runes) > 80 {
		return string(runes[:77]) + "..."
	}
	return text
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// truncateEllipsis collapses whitespace and truncates to at most limit
// runes, appending "..." when truncation occurs.
func truncateEllipsis(text string, limit int) string {
	text = collapseWhitespace(text)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-3]) + "..."
}
