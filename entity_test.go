package mako_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mako"
	"github.com/stretchr/testify/assert"
)

func TestExtractEntity(t *testing.T) {
	t.Parallel()

	t.Run("seo title wins", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{Title: "Widget | Acme Store"}
		assert.Equal(t, "Better Widget", mako.ExtractEntity(doc, "Better Widget"))
	})

	t.Run("strips pipe site suffix", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{Title: "Blue Widget | Acme Store"}
		assert.Equal(t, "Blue Widget", mako.ExtractEntity(doc, ""))
	})

	t.Run("strips dash site suffix", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{Title: "Blue Widget - Acme"}
		assert.Equal(t, "Blue Widget", mako.ExtractEntity(doc, ""))
	})

	t.Run("title without suffix is kept", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{Title: "Blue Widget"}
		assert.Equal(t, "Blue Widget", mako.ExtractEntity(doc, ""))
	})

	t.Run("unknown fallback", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{}
		assert.Equal(t, "Unknown", mako.ExtractEntity(doc, ""))
	})

	t.Run("truncates to max length with ellipsis", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{Title: strings.Repeat("a", 150)}
		entity := mako.ExtractEntity(doc, "")

		assert.Len(t, []rune(entity), mako.MaxEntityLength)
		assert.True(t, strings.HasSuffix(entity, "..."))
	})
}

func TestDeriveSummary(t *testing.T) {
	t.Parallel()

	t.Run("product summary wins", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{
			Excerpt: "An excerpt.",
			Product: &mako.ProductInfo{
				Name:    "Blue Widget",
				Price:   "19.99",
				Currency: "€",
				InStock: true,
			},
		}

		summary := mako.DeriveSummary(doc, "", "A meta description.")
		assert.Equal(t, "Blue Widget. €19.99", summary)
	})

	t.Run("excerpt before meta description", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{Excerpt: "An excerpt."}
		assert.Equal(t, "An excerpt.", mako.DeriveSummary(doc, "", "A meta description."))
	})

	t.Run("meta description before markdown", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{}
		md := "This paragraph is long enough to be a summary candidate."
		assert.Equal(t, "A meta description.", mako.DeriveSummary(doc, md, "A meta description."))
	})

	t.Run("first substantial markdown paragraph", func(t *testing.T) {
		t.Parallel()

		md := "# Heading\n\n![alt](img.png)\n\n19,99 €\n\nThis paragraph is long enough to serve as a derived summary."
		doc := &mako.SourceDocument{}

		summary := mako.DeriveSummary(doc, md, "")
		assert.Equal(t, "This paragraph is long enough to serve as a derived summary.", summary)
	})

	t.Run("short paragraphs are skipped", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{}
		assert.Empty(t, mako.DeriveSummary(doc, "Too short.", ""))
	})

	t.Run("markdown syntax is stripped", func(t *testing.T) {
		t.Parallel()

		md := "This **bold** paragraph has [a link](https://example.com) and `code` in its long text."
		doc := &mako.SourceDocument{}

		summary := mako.DeriveSummary(doc, md, "")
		assert.NotContains(t, summary, "*")
		assert.NotContains(t, summary, "](")
		assert.Contains(t, summary, "bold")
	})

	t.Run("truncated at 160 with ellipsis", func(t *testing.T) {
		t.Parallel()

		doc := &mako.SourceDocument{Excerpt: strings.Repeat("word ", 60)}
		summary := mako.DeriveSummary(doc, "", "")

		assert.LessOrEqual(t, len([]rune(summary)), mako.MaxSummaryLength)
		assert.True(t, strings.HasSuffix(summary, "..."))
	})
}

func TestProductSummary(t *testing.T) {
	t.Parallel()

	t.Run("full product", func(t *testing.T) {
		t.Parallel()

		p := &mako.ProductInfo{
			Name:             "Blue Widget",
			ShortDescription: "A widget for all occasions. Also available in red.",
			Price:            "19.99",
			Currency:         "€",
			InStock:          true,
		}

		assert.Equal(t, "Blue Widget. A widget for all occasions. €19.99", mako.ProductSummary(p))
	})

	t.Run("on sale shows regular price", func(t *testing.T) {
		t.Parallel()

		p := &mako.ProductInfo{
			Name:         "Blue Widget",
			Price:        "14.99",
			RegularPrice: "19.99",
			Currency:     "€",
			OnSale:       true,
			InStock:      true,
		}

		assert.Equal(t, "Blue Widget. €14.99 (was €19.99)", mako.ProductSummary(p))
	})

	t.Run("out of stock", func(t *testing.T) {
		t.Parallel()

		p := &mako.ProductInfo{Name: "Blue Widget", Price: "19.99", Currency: "€"}
		assert.Equal(t, "Blue Widget. €19.99. Out of stock", mako.ProductSummary(p))
	})

	t.Run("nameless product yields empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mako.ProductSummary(&mako.ProductInfo{Price: "9.99"}))
		assert.Empty(t, mako.ProductSummary(nil))
	})
}
