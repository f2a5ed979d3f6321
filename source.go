package mako

import "time"

// SourceType is the source system's native content-type hint.
type SourceType string

// Common native content types supplied by host systems.
const (
	SourcePost    SourceType = "post"
	SourcePage    SourceType = "page"
	SourceProduct SourceType = "product"
	SourceEvent   SourceType = "event"
	SourceRecipe  SourceType = "recipe"
	SourceFAQ     SourceType = "faq"
	SourceDocs    SourceType = "docs"
)

// SourceDocument is the immutable input to capsule generation: a
// fully-rendered HTML page plus the source system's metadata. The core
// never mutates it and never fetches anything itself — rendered HTML is
// supplied by the host collaborator.
type SourceDocument struct {
	// HTML is the fully-rendered page markup.
	HTML string

	// URL is the canonical URL of the page; relative URLs in the
	// content are resolved against it.
	URL string

	// SiteURL is the base URL of the originating site, used to classify
	// links as internal or external. Defaults to URL's origin if empty.
	SiteURL string

	Title    string
	Slug     string
	Excerpt  string
	Modified time.Time

	// NativeType is the host system's content-type hint (post, page,
	// product, ...). Empty means unknown.
	NativeType SourceType

	// Tags is the host taxonomy term list, in host order.
	Tags []string

	// Language is an optional BCP-47 hint from the host. When empty the
	// pipeline falls back to detection from the converted text.
	Language string

	// Product carries structured commerce metadata when the host is a
	// commerce system. Nil for non-product documents.
	Product *ProductInfo
}

// ProductInfo is structured commerce metadata for product documents,
// used for type-specific summary derivation and cover selection.
type ProductInfo struct {
	Name             string
	ShortDescription string
	Price            string
	RegularPrice     string
	Currency         string // symbol, e.g. "€"
	OnSale           bool
	InStock          bool
	ImageURL         string
	ImageAlt         string
}

// Hooks are optional, explicit extension points injected into the
// Generator. They replace the original host system's global filter
// registry: every hook is optional, nil means "no override", and slices
// run in order.
type Hooks struct {
	// EntityTitle returns an override for the entity name (e.g., an SEO
	// plugin title). Empty string means no override.
	EntityTitle func(doc *SourceDocument) string

	// MetaDescription returns an SEO meta description used as a summary
	// source. Empty string means none.
	MetaDescription func(doc *SourceDocument) string

	// Type forces a content type. Empty string means no override.
	Type func(doc *SourceDocument, markdown string) Type

	// Language overrides language detection per document.
	Language func(doc *SourceDocument) string

	// SectionTemplate overrides the thin-content section scaffold for a
	// type. Nil result means use the default template.
	SectionTemplate func(t Type, sections []string) []string

	// Cover overrides cover-image selection.
	Cover func(doc *SourceDocument) *Cover

	// Actions replaces the extracted action list.
	Actions func(doc *SourceDocument, actions []Action) []Action

	// Links replaces the extracted link lists.
	Links func(doc *SourceDocument, links Links) Links

	// Frontmatter enrichers run in order over the assembled capsule
	// before serialization.
	Frontmatter []func(doc *SourceDocument, c *Capsule)

	// Body enrichers run in order over the final body after budget
	// enforcement.
	Body []func(doc *SourceDocument, body string) string
}
