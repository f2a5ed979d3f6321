package mako_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/mako"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCapsule() *mako.Capsule {
	return &mako.Capsule{
		SpecVersion: mako.SpecVersion,
		Type:        mako.TypeProduct,
		Entity:      "Blue Widget",
		Updated:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		TokenCount:  420,
		Language:    "en",
		Body:        "# Blue Widget\n\nA widget.",
	}
}

func TestBuildFrontmatter_RequiredFieldOrder(t *testing.T) {
	t.Parallel()

	fm := mako.BuildFrontmatter(testCapsule())

	lines := strings.Split(fm, "\n")
	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, "---", lines[0])
	assert.Equal(t, `mako: "1.0"`, lines[1])
	assert.Equal(t, "type: product", lines[2])
	assert.Equal(t, "entity: Blue Widget", lines[3])
	assert.Equal(t, "updated: 2026-03-14", lines[4])
	assert.Equal(t, "tokens: 420", lines[5])
	assert.Equal(t, "language: en", lines[6])
	assert.Equal(t, "---", lines[7])
}

func TestBuildFrontmatter_VersionAlwaysQuoted(t *testing.T) {
	t.Parallel()

	fm := mako.BuildFrontmatter(testCapsule())
	assert.Contains(t, fm, `mako: "1.0"`)
}

func TestBuildFrontmatter_QuotesSpecialValues(t *testing.T) {
	t.Parallel()

	c := testCapsule()
	c.Entity = `Widget "Pro" edition`
	c.Summary = "Line one\nline two"

	fm := mako.BuildFrontmatter(c)

	assert.Contains(t, fm, `entity: "Widget \"Pro\" edition"`)
	assert.Contains(t, fm, `summary: "Line one\nline two"`)
}

func TestBuildFrontmatter_OptionalFields(t *testing.T) {
	t.Parallel()

	c := testCapsule()
	c.Summary = "A summary."
	c.Freshness = mako.FreshnessDaily
	c.Canonical = "https://example.com/widget"
	c.Media = &mako.Media{
		Cover:  &mako.Cover{URL: "https://example.com/w.jpg", Alt: "Widget"},
		Images: 3,
	}
	c.Tags = []string{"widgets", "tools"}
	c.Actions = []mako.Action{{
		Name:        "add_to_cart",
		Description: "Add this product to the shopping cart",
		Endpoint:    "/cart",
		Method:      "POST",
		Params:      []mako.ActionParam{{Name: "product_id", Required: true}},
	}}
	c.Links = mako.Links{
		Internal: []mako.Link{{URL: "/about", Context: "About us"}},
		External: []mako.Link{{URL: "https://other.example/ref", Context: "Reference", Type: mako.LinkReference}},
	}

	fm := mako.BuildFrontmatter(c)

	assert.Contains(t, fm, `summary: "A summary."`)
	assert.Contains(t, fm, "freshness: daily\n")
	assert.Contains(t, fm, "canonical: https://example.com/widget\n")
	assert.Contains(t, fm, "media:\n  cover:\n")
	assert.Contains(t, fm, "  images: 3\n")
	assert.NotContains(t, fm, "video:")
	assert.Contains(t, fm, "tags:\n  - widgets\n  - tools\n")
	assert.Contains(t, fm, "  - name: add_to_cart\n")
	assert.Contains(t, fm, "    endpoint: /cart\n")
	assert.Contains(t, fm, "    method: POST\n")
	assert.Contains(t, fm, "      - name: product_id\n        type: string\n        required: true\n")
	assert.Contains(t, fm, "links:\n  internal:\n    - url: /about\n")
	assert.Contains(t, fm, "      type: reference\n")
}

func TestBuildFrontmatter_AbsentOptionalFieldsOmitted(t *testing.T) {
	t.Parallel()

	fm := mako.BuildFrontmatter(testCapsule())

	assert.NotContains(t, fm, "summary:")
	assert.NotContains(t, fm, "freshness:")
	assert.NotContains(t, fm, "media:")
	assert.NotContains(t, fm, "tags:")
	assert.NotContains(t, fm, "actions:")
	assert.NotContains(t, fm, "links:")
}

func TestParseFrontmatter_RoundTrip(t *testing.T) {
	t.Parallel()

	c := testCapsule()
	c.Entity = `Widget "Pro" edition`
	c.Summary = "A summary."

	parsed, err := mako.ParseFrontmatter(c.Serialize())
	require.NoError(t, err)

	assert.Equal(t, "1.0", parsed["mako"])
	assert.Equal(t, "product", parsed["type"])
	assert.Equal(t, `Widget "Pro" edition`, parsed["entity"])
	assert.Equal(t, "2026-03-14", parsed["updated"])
	assert.Equal(t, 420, parsed["tokens"])
	assert.Equal(t, "en", parsed["language"])
	assert.Equal(t, "A summary.", parsed["summary"])
}

func TestParseFrontmatter_NoBlock(t *testing.T) {
	t.Parallel()

	_, err := mako.ParseFrontmatter("# Just markdown\n\nNo frontmatter here.")
	assert.Equal(t, mako.ENOTFOUND, mako.ErrorCode(err))
}

func TestSerialize_BlankLineBetweenFrontmatterAndBody(t *testing.T) {
	t.Parallel()

	out := testCapsule().Serialize()

	assert.Contains(t, out, "---\n\n# Blue Widget")
	assert.True(t, strings.HasPrefix(out, "---\n"))
}
