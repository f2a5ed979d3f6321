package mako

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bareValueRe      = regexp.MustCompile(`^[a-zA-Z0-9\-_./]+$`)
	versionLikeRe    = regexp.MustCompile(`^\d+\.\d+$`)
	frontmatterRe    = regexp.MustCompile(`(?s)^---\n(.+?)\n---`)
	frontmatterKeyRe = regexp.MustCompile(`^(\w[\w-]*)\s*:\s*(.*)$`)
	quotedRe         = regexp.MustCompile(`^"(.*)"$`)
)

// BuildFrontmatter serializes capsule metadata as a YAML-like block
// delimited by --- lines. The required keys mako, type, entity, updated,
// tokens, and language always appear first, in that order; optional
// fields follow in a stable order. Values needing escaping are quoted;
// simple path-like values are left bare.
func BuildFrontmatter(c *Capsule) string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString("mako: " + yamlVersion(c.SpecVersion) + "\n")
	b.WriteString("type: " + string(c.Type) + "\n")
	b.WriteString("entity: " + yamlString(c.Entity) + "\n")
	b.WriteString("updated: " + yamlString(c.Updated.Format("2006-01-02")) + "\n")
	b.WriteString("tokens: " + strconv.Itoa(c.TokenCount) + "\n")
	b.WriteString("language: " + c.Language + "\n")

	if c.Summary != "" {
		b.WriteString("summary: " + yamlString(c.Summary) + "\n")
	}
	if c.Freshness != "" {
		b.WriteString("freshness: " + string(c.Freshness) + "\n")
	}
	if c.Audience != "" {
		b.WriteString("audience: " + c.Audience + "\n")
	}
	if c.Canonical != "" {
		b.WriteString("canonical: " + yamlString(c.Canonical) + "\n")
	}

	if !c.Media.Empty() {
		b.WriteString("media:\n")
		if c.Media.Cover != nil {
			b.WriteString("  cover:\n")
			b.WriteString("    url: " + yamlString(c.Media.Cover.URL) + "\n")
			b.WriteString("    alt: " + yamlString(c.Media.Cover.Alt) + "\n")
		}
		writeCount(&b, "images", c.Media.Images)
		writeCount(&b, "video", c.Media.Video)
		writeCount(&b, "audio", c.Media.Audio)
		writeCount(&b, "interactive", c.Media.Interactive)
	}

	if len(c.Tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range c.Tags {
			b.WriteString("  - " + yamlString(tag) + "\n")
		}
	}

	if len(c.Actions) > 0 {
		b.WriteString("actions:\n")
		for _, a := range c.Actions {
			b.WriteString("  - name: " + a.Name + "\n")
			b.WriteString("    description: " + yamlString(a.Description) + "\n")
			if a.Endpoint != "" {
				b.WriteString("    endpoint: " + a.Endpoint + "\n")
			}
			if a.Method != "" {
				b.WriteString("    method: " + a.Method + "\n")
			}
			if len(a.Params) > 0 {
				b.WriteString("    params:\n")
				for _, p := range a.Params {
					b.WriteString("      - name: " + p.Name + "\n")
					typ := p.Type
					if typ == "" {
						typ = "string"
					}
					b.WriteString("        type: " + typ + "\n")
					b.WriteString("        required: " + strconv.FormatBool(p.Required) + "\n")
					if p.Description != "" {
						b.WriteString("        description: " + yamlString(p.Description) + "\n")
					}
				}
			}
		}
	}

	if !c.Links.Empty() {
		b.WriteString("links:\n")
		writeLinkGroup(&b, "internal", c.Links.Internal)
		writeLinkGroup(&b, "external", c.Links.External)
	}

	b.WriteString("---\n")

	return b.String()
}

func writeCount(b *strings.Builder, key string, n int) {
	if n > 0 {
		b.WriteString("  " + key + ": " + strconv.Itoa(n) + "\n")
	}
}

func writeLinkGroup(b *strings.Builder, group string, links []Link) {
	if len(links) == 0 {
		return
	}
	b.WriteString("  " + group + ":\n")
	for _, l := range links {
		b.WriteString("    - url: " + l.URL + "\n")
		b.WriteString("      context: " + yamlString(l.Context) + "\n")
		if l.Type != "" {
			b.WriteString("      type: " + string(l.Type) + "\n")
		}
	}
}

// ParseFrontmatter extracts the top-level scalar key/value pairs from a
// serialized capsule. Quoted values are unescaped and tokens is parsed
// as an integer. Returns ENOTFOUND when content has no frontmatter
// block.
func ParseFrontmatter(content string) (map[string]any, error) {
	m := frontmatterRe.FindStringSubmatch(content)
	if m == nil {
		return nil, Errorf(ENOTFOUND, "no frontmatter block found")
	}

	data := make(map[string]any)
	for _, line := range strings.Split(m[1], "\n") {
		kv := frontmatterKeyRe.FindStringSubmatch(line)
		if kv == nil {
			continue
		}
		key := kv[1]
		value := strings.TrimSpace(kv[2])
		if q := quotedRe.FindStringSubmatch(value); q != nil {
			value = unescapeYAML(q[1])
		}
		if key == "tokens" {
			n, err := strconv.Atoi(value)
			if err == nil {
				data[key] = n
				continue
			}
		}
		data[key] = value
	}

	return data, nil
}

// yamlString quotes and escapes a value unless it is simple enough to
// be left bare.
func yamlString(value string) string {
	if bareValueRe.MatchString(value) {
		return value
	}

	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)

	return `"` + escaped + `"`
}

func unescapeYAML(value string) string {
	var b strings.Builder
	for i := 0; i < len(value); i++ {
		if value[i] != '\\' || i == len(value)-1 {
			b.WriteByte(value[i])
			continue
		}
		i++
		switch value[i] {
		case 'n':
			b.WriteByte('\n')
		case '"', '\\':
			b.WriteByte(value[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(value[i])
		}
	}
	return b.String()
}

// yamlVersion quotes version-like values so "1.0" survives YAML parsing
// as a string rather than a float.
func yamlVersion(value string) string {
	if versionLikeRe.MatchString(value) {
		return `"` + value + `"`
	}
	return value
}
