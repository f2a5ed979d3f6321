package mako_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/mako"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCapsule() *mako.Capsule {
	return &mako.Capsule{
		SpecVersion: "1.0",
		Type:        mako.TypeArticle,
		Entity:      "Blue Widget",
		Updated:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TokenCount:  100,
		Language:    "en",
		Body:        "# Blue Widget\n\nContent.",
	}
}

func TestValidate_ValidCapsule(t *testing.T) {
	t.Parallel()

	result := mako.Validate(validCapsule(), 1000)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	result := mako.Validate(&mako.Capsule{}, 1000)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, "missing required field: mako")
	assert.Contains(t, result.Errors, "missing required field: type")
	assert.Contains(t, result.Errors, "missing required field: entity")
	assert.Contains(t, result.Errors, "missing required field: updated")
	assert.Contains(t, result.Errors, "missing required field: language")
	assert.Contains(t, result.Errors, "token count must be positive")
	assert.Contains(t, result.Errors, "body is empty")
}

func TestValidate_InvalidEnums(t *testing.T) {
	t.Parallel()

	c := validCapsule()
	c.Type = "webpage"
	c.Freshness = "yearly"
	c.Links.Internal = []mako.Link{{URL: "/x", Context: "X", Type: "friend"}}

	result := mako.Validate(c, 1000)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, `invalid content type: "webpage"`)
	assert.Contains(t, result.Errors, `invalid freshness: "yearly"`)
	assert.Contains(t, result.Errors, `internal link #1: invalid link type "friend"`)
}

func TestValidate_TokensOverMaxIsWarning(t *testing.T) {
	t.Parallel()

	c := validCapsule()
	c.TokenCount = 1500

	result := mako.Validate(c, 1000)

	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "token count exceeds")
}

func TestValidate_LongSummaryIsWarning(t *testing.T) {
	t.Parallel()

	c := validCapsule()
	c.Summary = strings.Repeat("x", 200)

	result := mako.Validate(c, 1000)

	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "summary exceeds 160 characters")
}

func TestValidate_Actions(t *testing.T) {
	t.Parallel()

	t.Run("missing name and description are errors", func(t *testing.T) {
		t.Parallel()

		c := validCapsule()
		c.Actions = []mako.Action{{}}

		result := mako.Validate(c, 1000)

		require.False(t, result.Valid)
		assert.Contains(t, result.Errors, `action #1: missing required field "name"`)
		assert.Contains(t, result.Errors, `action #1: missing required field "description"`)
	})

	t.Run("non snake_case name is a warning", func(t *testing.T) {
		t.Parallel()

		c := validCapsule()
		c.Actions = []mako.Action{{Name: "AddToCart", Description: "Add to cart"}}

		result := mako.Validate(c, 1000)

		assert.True(t, result.Valid)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "snake_case")
	})
}

func TestValidate_Links(t *testing.T) {
	t.Parallel()

	c := validCapsule()
	c.Links.External = []mako.Link{{URL: "", Context: ""}}

	result := mako.Validate(c, 1000)

	require.False(t, result.Valid)
	assert.Contains(t, result.Errors, `external link #1: missing required field "url"`)
	assert.Contains(t, result.Errors, `external link #1: missing required field "context"`)
}
