package mako

import (
	"fmt"
	"regexp"
	"strings"
)

var snakeCaseRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidationResult reports schema-contract issues found in a capsule.
// Errors mark contract violations; warnings mark soft-limit breaches.
// Validation never blocks generation: callers log and still publish.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a capsule's frontmatter and body against the schema
// contract. maxTokens ≤ 0 means DefaultMaxTokens.
func Validate(c *Capsule, maxTokens int) ValidationResult {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	var errors, warnings []string

	if c.SpecVersion == "" {
		errors = append(errors, "missing required field: mako")
	}
	if c.Type == "" {
		errors = append(errors, "missing required field: type")
	}
	if c.Entity == "" {
		errors = append(errors, "missing required field: entity")
	}
	if c.Updated.IsZero() {
		errors = append(errors, "missing required field: updated")
	}
	if c.Language == "" {
		errors = append(errors, "missing required field: language")
	}

	if c.Type != "" && !ValidType(c.Type) {
		errors = append(errors, fmt.Sprintf("invalid content type: %q", c.Type))
	}

	if c.TokenCount <= 0 {
		errors = append(errors, "token count must be positive")
	} else if c.TokenCount > maxTokens {
		warnings = append(warnings, fmt.Sprintf("token count exceeds recommended maximum of %d (%d)", maxTokens, c.TokenCount))
	}

	if strings.TrimSpace(c.Body) == "" {
		errors = append(errors, "body is empty")
	}

	if c.Freshness != "" && !ValidFreshness(c.Freshness) {
		errors = append(errors, fmt.Sprintf("invalid freshness: %q", c.Freshness))
	}

	if n := len([]rune(c.Summary)); n > MaxSummaryLength {
		warnings = append(warnings, fmt.Sprintf("summary exceeds %d characters (%d)", MaxSummaryLength, n))
	}

	for i, a := range c.Actions {
		if a.Name == "" {
			errors = append(errors, fmt.Sprintf("action #%d: missing required field \"name\"", i+1))
		} else if !snakeCaseRe.MatchString(a.Name) {
			warnings = append(warnings, fmt.Sprintf("action %q: name should be snake_case", a.Name))
		}
		if a.Description == "" {
			errors = append(errors, fmt.Sprintf("action #%d: missing required field \"description\"", i+1))
		}
	}

	validateLinks(&errors, "internal", c.Links.Internal)
	validateLinks(&errors, "external", c.Links.External)

	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

func validateLinks(errors *[]string, group string, links []Link) {
	for i, l := range links {
		label := fmt.Sprintf("%s link #%d", group, i+1)
		if l.URL == "" {
			*errors = append(*errors, label+`: missing required field "url"`)
		}
		if l.Context == "" {
			*errors = append(*errors, label+`: missing required field "context"`)
		}
		if l.Type != "" && !ValidLinkType(l.Type) {
			*errors = append(*errors, fmt.Sprintf("%s: invalid link type %q", label, l.Type))
		}
	}
}
