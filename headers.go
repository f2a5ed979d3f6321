package mako

import (
	"strconv"
	"strings"
)

// ContentType is the media type of a serialized capsule.
const ContentType = "text/mako+markdown; charset=utf-8"

// DefaultCacheControl is the cache directive emitted when the caller
// does not configure one.
const DefaultCacheControl = "public, max-age=3600"

// BuildHeaders derives HTTP-style response metadata mirroring the
// capsule frontmatter. The core does not perform delivery; the map is
// handed to the external delivery layer. cacheControl falls back to
// DefaultCacheControl when empty.
func BuildHeaders(c *Capsule, cacheControl string) map[string]string {
	if cacheControl == "" {
		cacheControl = DefaultCacheControl
	}

	headers := map[string]string{
		"Content-Type":   ContentType,
		"X-Mako-Version": c.SpecVersion,
		"X-Mako-Tokens":  strconv.Itoa(c.TokenCount),
		"X-Mako-Type":    string(c.Type),
		"X-Mako-Lang":    c.Language,
		"Vary":           "Accept",
		"Cache-Control":  cacheControl,
	}

	if len(c.Actions) > 0 {
		names := make([]string, 0, len(c.Actions))
		for _, a := range c.Actions {
			names = append(names, a.Name)
		}
		headers["X-Mako-Actions"] = strings.Join(names, ", ")
	}

	if !c.Updated.IsZero() {
		headers["Last-Modified"] = c.Updated.UTC().Format("Mon, 02 Jan 2006 15:04:05") + " GMT"
	}

	if c.Canonical != "" {
		headers["Content-Location"] = c.Canonical
	}

	return headers
}
