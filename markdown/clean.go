package markdown

import (
	"regexp"
	"strings"
)

var (
	unicodeSpaceRe = regexp.MustCompile(`[\x{00A0}\x{2000}-\x{200A}\x{202F}\x{205F}\x{3000}]`)
	zeroWidthRe    = regexp.MustCompile(`[\x{200B}-\x{200D}\x{FEFF}]`)
	blankRunRe     = regexp.MustCompile(`\n{3,}`)

	// Boilerplate lines the reduction step can miss: copyright notices,
	// cookie/privacy/terms blurbs, "powered by X" credits.
	boilerplateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)©\s*\d{4}[^\n]*`),
		regexp.MustCompile(`(?i)all\s+rights\s+reserved[^\n]*`),
		regexp.MustCompile(`(?i)cookie\s+(?:policy|notice|consent)[^\n]*`),
		regexp.MustCompile(`(?i)privacy\s+(?:policy|notice)[^\n]*`),
		regexp.MustCompile(`(?i)terms\s+(?:of\s+(?:service|use)|and\s+conditions)[^\n]*`),
		regexp.MustCompile(`(?i)powered\s+by\s+\w+[^\n]*`),
	}
)

// Clean normalizes converted markdown: line endings, Unicode whitespace
// and zero-width characters, boilerplate lines, per-line trimming,
// consecutive duplicate lines, and runs of blank lines.
func Clean(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = unicodeSpaceRe.ReplaceAllString(markdown, " ")
	markdown = zeroWidthRe.ReplaceAllString(markdown, "")

	for _, re := range boilerplateRes {
		markdown = re.ReplaceAllString(markdown, "")
	}

	lines := strings.Split(markdown, "\n")
	deduped := make([]string, 0, len(lines))
	prev := ""
	first := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if first || line != prev || line == "" {
			deduped = append(deduped, line)
		}
		prev = line
		first = false
	}

	markdown = strings.Join(deduped, "\n")
	markdown = blankRunRe.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
