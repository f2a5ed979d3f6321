package mako

import "time"

// SpecVersion is the capsule format version emitted in frontmatter.
const SpecVersion = "1.0"

// DefaultMaxTokens is the default token budget for a capsule body.
const DefaultMaxTokens = 1000

// Type classifies the primary content of a capsule.
type Type string

// Valid capsule content types.
const (
	TypeProduct Type = "product"
	TypeArticle Type = "article"
	TypeDocs    Type = "docs"
	TypeLanding Type = "landing"
	TypeListing Type = "listing"
	TypeProfile Type = "profile"
	TypeEvent   Type = "event"
	TypeRecipe  Type = "recipe"
	TypeFAQ     Type = "faq"
	TypeCustom  Type = "custom"
)

// Types returns all valid capsule content types.
func Types() []Type {
	return []Type{
		TypeProduct, TypeArticle, TypeDocs, TypeLanding, TypeListing,
		TypeProfile, TypeEvent, TypeRecipe, TypeFAQ, TypeCustom,
	}
}

// ValidType reports whether t is a known content type.
func ValidType(t Type) bool {
	for _, v := range Types() {
		if t == v {
			return true
		}
	}
	return false
}

// Freshness is a coarse update-frequency hint.
type Freshness string

// Valid freshness values.
const (
	FreshnessRealtime Freshness = "realtime"
	FreshnessHourly   Freshness = "hourly"
	FreshnessDaily    Freshness = "daily"
	FreshnessWeekly   Freshness = "weekly"
	FreshnessMonthly  Freshness = "monthly"
	FreshnessStatic   Freshness = "static"
)

// ValidFreshness reports whether f is a known freshness value.
func ValidFreshness(f Freshness) bool {
	switch f {
	case FreshnessRealtime, FreshnessHourly, FreshnessDaily,
		FreshnessWeekly, FreshnessMonthly, FreshnessStatic:
		return true
	}
	return false
}

// LinkType annotates a semantic link's relationship to the page.
type LinkType string

// Valid link types.
const (
	LinkParent     LinkType = "parent"
	LinkChild      LinkType = "child"
	LinkSibling    LinkType = "sibling"
	LinkSource     LinkType = "source"
	LinkCompetitor LinkType = "competitor"
	LinkReference  LinkType = "reference"
)

// ValidLinkType reports whether lt is a known link type.
func ValidLinkType(lt LinkType) bool {
	switch lt {
	case LinkParent, LinkChild, LinkSibling, LinkSource, LinkCompetitor, LinkReference:
		return true
	}
	return false
}

// Link is a hyperlink annotated with human-readable context.
// Internal links store a host-relative path; external links store the
// absolute URL.
type Link struct {
	URL     string   `json:"url"`
	Context string   `json:"context"`
	Type    LinkType `json:"type,omitempty"`
}

// Links groups semantic links by their relationship to the source site.
type Links struct {
	Internal []Link `json:"internal,omitempty"`
	External []Link `json:"external,omitempty"`
}

// Empty reports whether no links were extracted.
func (l Links) Empty() bool {
	return len(l.Internal) == 0 && len(l.External) == 0
}

// ActionParam describes a parameter of an action endpoint.
type ActionParam struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// Action is a machine-readable description of an interactive capability
// found on the source page (e.g., add-to-cart).
type Action struct {
	Name        string        `json:"name"` // snake_case identifier
	Description string        `json:"description"`
	Endpoint    string        `json:"endpoint,omitempty"`
	Method      string        `json:"method,omitempty"`
	Params      []ActionParam `json:"params,omitempty"`
}

// Cover identifies the representative image of a capsule.
type Cover struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Media summarizes the media content of the source page.
// Zero counts are omitted from serialized output.
type Media struct {
	Cover       *Cover `json:"cover,omitempty"`
	Images      int    `json:"images,omitempty"`
	Video       int    `json:"video,omitempty"`
	Audio       int    `json:"audio,omitempty"`
	Interactive int    `json:"interactive,omitempty"`
}

// Empty reports whether no media metadata is present.
func (m *Media) Empty() bool {
	return m == nil || (m.Cover == nil && m.Images == 0 && m.Video == 0 &&
		m.Audio == 0 && m.Interactive == 0)
}

// Capsule is the generated structured document representing one source
// page: required metadata, extracted links and actions, and a markdown
// body bounded by a token budget.
type Capsule struct {
	SpecVersion string    `json:"specVersion"`
	Type        Type      `json:"type"`
	Entity      string    `json:"entity"` // ≤100 chars, never empty
	Updated     time.Time `json:"updated"`
	TokenCount  int       `json:"tokenCount"`
	Language    string    `json:"language"` // BCP-47

	Summary   string    `json:"summary,omitempty"` // ≤160 chars
	Freshness Freshness `json:"freshness,omitempty"`
	Audience  string    `json:"audience,omitempty"`
	Canonical string    `json:"canonical,omitempty"`
	Media     *Media    `json:"media,omitempty"`
	Tags      []string  `json:"tags,omitempty"` // ≤10
	Actions   []Action  `json:"actions,omitempty"`
	Links     Links     `json:"links,omitempty"`

	Body string `json:"body"`

	// Headers holds HTTP-style response metadata mirroring the
	// frontmatter, for the external delivery layer.
	Headers map[string]string `json:"-"`

	// Validation holds the non-blocking validation result computed at
	// assembly time.
	Validation ValidationResult `json:"-"`

	// HTMLTokens is the estimated token count of the source HTML,
	// recorded for savings reporting.
	HTMLTokens int `json:"-"`
}

// Serialize renders the capsule as UTF-8 text: a frontmatter block
// delimited by --- lines followed by a blank line and the markdown body.
func (c *Capsule) Serialize() string {
	return BuildFrontmatter(c) + "\n" + c.Body
}
