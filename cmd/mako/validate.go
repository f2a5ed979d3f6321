package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/mako"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	content := string(data)

	fields, err := mako.ParseFrontmatter(content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", mako.ErrorMessage(err))
		return err
	}

	capsule := capsuleFromParsed(fields, capsuleBody(content))
	result := mako.Validate(capsule, c.MaxTokens)

	for _, msg := range result.Errors {
		fmt.Fprintf(deps.Stdout, "error: %s\n", msg)
	}
	for _, msg := range result.Warnings {
		fmt.Fprintf(deps.Stdout, "warning: %s\n", msg)
	}

	if !result.Valid {
		return mako.Errorf(mako.EINVALID, "%d validation errors in %s", len(result.Errors), c.File)
	}

	fmt.Fprintf(deps.Stdout, "%s is valid (%d warnings)\n", c.File, len(result.Warnings))
	return nil
}

// capsuleFromParsed rebuilds the validatable parts of a capsule from
// parsed frontmatter scalars. List-valued fields (actions, links) are
// validated at generation time, not re-parsed here.
func capsuleFromParsed(fields map[string]any, body string) *mako.Capsule {
	c := &mako.Capsule{Body: body}

	if v, ok := fields["mako"].(string); ok {
		c.SpecVersion = v
	}
	if v, ok := fields["type"].(string); ok {
		c.Type = mako.Type(v)
	}
	if v, ok := fields["entity"].(string); ok {
		c.Entity = v
	}
	if v, ok := fields["updated"].(string); ok {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			c.Updated = t
		}
	}
	if v, ok := fields["tokens"].(int); ok {
		c.TokenCount = v
	}
	if v, ok := fields["language"].(string); ok {
		c.Language = v
	}
	if v, ok := fields["summary"].(string); ok {
		c.Summary = v
	}
	if v, ok := fields["freshness"].(string); ok {
		c.Freshness = mako.Freshness(v)
	}
	if v, ok := fields["canonical"].(string); ok {
		c.Canonical = v
	}

	return c
}

// capsuleBody returns the markdown body following the frontmatter block.
func capsuleBody(content string) string {
	rest := strings.TrimPrefix(content, "---\n")
	if _, body, ok := strings.Cut(rest, "\n---\n"); ok {
		return strings.TrimLeft(body, "\n")
	}
	return ""
}
