package mako

import "strings"

// Keyword tables for page-type refinement. Slug keywords use substring
// matching except profile slugs, which require an exact match.
var (
	docsKeywords    = []string{"docs", "documentation", "api", "reference", "guide", "manual", "handbook"}
	faqKeywords     = []string{"faq", "frequently-asked", "preguntas"}
	profileSlugs    = []string{"about", "about-us", "about-me", "team", "author", "sobre-nosotros"}
	listingKeywords = []string{"directory", "listing", "catalog", "index", "resources"}
)

// Classify maps a source document and its converted markdown to a
// content type. Native types map directly; generic pages are refined
// with content heuristics in a fixed precedence order.
func Classify(doc *SourceDocument, markdown string) Type {
	t := classifyNative(doc.NativeType)
	if t == TypeLanding && markdown != "" {
		t = refinePageType(doc, markdown)
	}
	return t
}

func classifyNative(nt SourceType) Type {
	switch nt {
	case SourcePost:
		return TypeArticle
	case SourcePage:
		return TypeLanding
	case SourceProduct:
		return TypeProduct
	case SourceEvent:
		return TypeEvent
	case SourceRecipe:
		return TypeRecipe
	case SourceFAQ:
		return TypeFAQ
	case SourceDocs:
		return TypeDocs
	default:
		return TypeCustom
	}
}

// refinePageType applies heuristics to distinguish docs, faq, profile,
// and listing pages from generic landing pages. Precedence matters:
// earlier checks win.
func refinePageType(doc *SourceDocument, markdown string) Type {
	slug := strings.ToLower(doc.Slug)
	title := strings.ToLower(doc.Title)
	content := strings.ToLower(markdown)

	for _, kw := range docsKeywords {
		if strings.Contains(slug, kw) || strings.Contains(title, kw) {
			return TypeDocs
		}
	}
	// 6 fence markers = 3 fenced code blocks.
	if strings.Count(markdown, "```") >= 6 {
		return TypeDocs
	}

	if strings.Count(content, "?") >= 5 {
		for _, kw := range faqKeywords {
			if strings.Contains(slug, kw) || strings.Contains(title, kw) {
				return TypeFAQ
			}
		}
	}

	for _, ps := range profileSlugs {
		if slug == ps {
			return TypeProfile
		}
	}

	listItems := strings.Count(markdown, "\n- ") + strings.Count(markdown, "\n1. ")
	if listItems >= 10 {
		for _, kw := range listingKeywords {
			if strings.Contains(slug, kw) {
				return TypeListing
			}
		}
	}

	return TypeLanding
}
