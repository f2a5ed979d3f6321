package generate

import (
	"regexp"
	"strings"

	"github.com/fwojciec/mako"
)

// minSubstantialChars is the non-whitespace character count above which
// converted markdown stands on its own under a title heading.
const minSubstantialChars = 50

var (
	headingRe = regexp.MustCompile(`(?m)^#{1,6}\s`)
	h1Re      = regexp.MustCompile(`^#\s`)
)

// sectionMap holds the thin-content section scaffold per content type.
var sectionMap = map[mako.Type][]string{
	mako.TypeProduct: {"Key Facts", "Context", "Reviews Summary"},
	mako.TypeArticle: {"Summary", "Key Points", "Context"},
	mako.TypeDocs:    {"Overview", "Usage", "Parameters/API", "See Also"},
	mako.TypeLanding: {"What It Does", "Key Features", "Pricing", "Alternatives"},
	mako.TypeListing: {"Items", "Filters Available"},
	mako.TypeProfile: {"About", "Key Information", "Notable Work"},
	mako.TypeEvent:   {"Details", "Description", "Registration"},
	mako.TypeRecipe:  {"Ingredients", "Steps", "Notes"},
}

// buildBody structures the markdown body. Already-structured markdown
// (two or more headings) passes through with an entity H1 ensured.
// Substantial unstructured text is wrapped under an entity H1. Thin
// content gets the type's section scaffold with empty sections —
// section content is never fabricated.
func (g *Generator) buildBody(doc *mako.SourceDocument, entity, markdown string, typ mako.Type) string {
	if len(headingRe.FindAllString(markdown, -1)) >= 2 {
		if !h1Re.MatchString(markdown) {
			return "# " + entity + "\n\n" + markdown
		}
		return markdown
	}

	if nonWhitespaceLen(markdown) >= minSubstantialChars {
		return "# " + entity + "\n\n" + markdown
	}

	sections := sectionMap[typ]
	if g.Hooks.SectionTemplate != nil {
		if override := g.Hooks.SectionTemplate(typ, sections); override != nil {
			sections = override
		}
	}
	if len(sections) == 0 {
		return "# " + entity + "\n\n" + markdown
	}

	var b strings.Builder
	b.WriteString("# " + entity + "\n")
	if trimmed := strings.TrimSpace(markdown); trimmed != "" {
		b.WriteString("\n" + trimmed + "\n")
	}
	for _, title := range sections {
		b.WriteString("\n## " + title + "\n\n")
	}
	return b.String()
}

// truncateBody drops whole lines from the end until the body fits the
// token budget. A single line that alone exceeds the budget is an
// accepted edge case and surfaces as a validation warning instead.
func (g *Generator) truncateBody(body string, maxTokens int) string {
	lines := strings.Split(body, "\n")
	var result strings.Builder

	for _, line := range lines {
		if g.estimate(result.String()+line+"\n") > maxTokens {
			break
		}
		result.WriteString(line + "\n")
	}

	if result.Len() == 0 && len(lines) > 0 {
		// A single oversized line: keep it rather than emit nothing.
		return strings.TrimRight(lines[0], " \t")
	}

	return strings.TrimRight(result.String(), " \t\n")
}

func nonWhitespaceLen(s string) int {
	n := 0
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
		default:
			n++
		}
	}
	return n
}
