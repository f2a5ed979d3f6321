// Package markdown converts reduced HTML content subtrees to Markdown.
// It walks parsed golang.org/x/net/html trees recursively, with a
// semantic-extraction fallback for page-builder markup that defeats the
// naive walk, and a scoring rule that keeps the best result.
package markdown

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/mako"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MinContentLength is the non-whitespace character count below which
// the primary conversion is considered thin and fallback strategies are
// consulted.
const MinContentLength = 100

// Ensure Converter implements mako.Converter at compile time.
var _ mako.Converter = (*Converter)(nil)

// Converter converts HTML to Markdown via recursive DOM traversal.
// When the primary walk yields thin output, the semantic extraction
// pass runs, and then any configured Fallbacks; the candidate with the
// most non-whitespace content wins.
type Converter struct {
	// Fallbacks are additional conversion strategies consulted, in
	// order, only while the best result so far is below
	// MinContentLength.
	Fallbacks []mako.Converter
}

// NewConverter creates a Converter with no extra fallback strategies.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert transforms an HTML content subtree into cleaned Markdown.
// Unparseable or empty input yields an empty string, never an error:
// the caller treats absence of content as a degraded condition.
func (c *Converter) Convert(rawHTML string, baseURL string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", nil
	}

	base, _ := url.Parse(baseURL)

	best := Clean(convertNode(doc, base))

	if nonWhitespaceLen(best) < MinContentLength {
		if sem := Clean(extractSemantic(doc, base)); nonWhitespaceLen(sem) > nonWhitespaceLen(best) {
			best = sem
		}
	}

	for _, fb := range c.Fallbacks {
		if nonWhitespaceLen(best) >= MinContentLength {
			break
		}
		out, err := fb.Convert(rawHTML, baseURL)
		if err != nil {
			continue
		}
		if out = Clean(out); nonWhitespaceLen(out) > nonWhitespaceLen(best) {
			best = out
		}
	}

	return best, nil
}

var (
	textSpaceRe = regexp.MustCompile(`[^\S\n]+`)
	codeLangRe  = regexp.MustCompile(`(?:language|lang|hljs)-(\w+)`)
	schemeRe    = regexp.MustCompile(`^https?://`)
)

// convertNode renders a node and its subtree as Markdown.
func convertNode(n *html.Node, base *url.URL) string {
	switch n.Type {
	case html.TextNode:
		return textSpaceRe.ReplaceAllString(n.Data, " ")
	case html.ElementNode:
		return convertElement(n, base)
	default:
		return convertChildren(n, base)
	}
}

func convertChildren(n *html.Node, base *url.URL) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(convertNode(child, base))
	}
	return b.String()
}

func convertElement(n *html.Node, base *url.URL) string {
	switch n.DataAtom {
	case atom.H1:
		return "\n\n# " + strings.TrimSpace(convertChildren(n, base)) + "\n\n"
	case atom.H2:
		return "\n\n## " + strings.TrimSpace(convertChildren(n, base)) + "\n\n"
	case atom.H3:
		return "\n\n### " + strings.TrimSpace(convertChildren(n, base)) + "\n\n"
	case atom.H4:
		return "\n\n#### " + strings.TrimSpace(convertChildren(n, base)) + "\n\n"
	case atom.H5:
		return "\n\n##### " + strings.TrimSpace(convertChildren(n, base)) + "\n\n"
	case atom.H6:
		return "\n\n###### " + strings.TrimSpace(convertChildren(n, base)) + "\n\n"
	case atom.P:
		return "\n\n" + strings.TrimSpace(convertChildren(n, base)) + "\n\n"
	case atom.Br:
		return "\n"
	case atom.Hr:
		return "\n\n---\n\n"
	case atom.Strong, atom.B:
		return "**" + strings.TrimSpace(convertChildren(n, base)) + "**"
	case atom.Em, atom.I:
		return "*" + strings.TrimSpace(convertChildren(n, base)) + "*"
	case atom.Del, atom.S:
		return "~~" + strings.TrimSpace(convertChildren(n, base)) + "~~"
	case atom.Mark:
		return "==" + strings.TrimSpace(convertChildren(n, base)) + "=="
	case atom.Code:
		return convertInlineCode(n, base)
	case atom.Pre:
		return convertCodeBlock(n)
	case atom.A:
		return convertLink(n, base)
	case atom.Img:
		return convertImage(n, base)
	case atom.Ul:
		return "\n\n" + convertList(n, base, false) + "\n\n"
	case atom.Ol:
		return "\n\n" + convertList(n, base, true) + "\n\n"
	case atom.Li:
		return strings.TrimSpace(convertChildren(n, base))
	case atom.Blockquote:
		return convertBlockquote(convertChildren(n, base))
	case atom.Table:
		return "\n\n" + convertTable(n, base) + "\n\n"
	case atom.Figcaption:
		return "\n*" + strings.TrimSpace(convertChildren(n, base)) + "*\n"
	case atom.Sup:
		return "<sup>" + strings.TrimSpace(convertChildren(n, base)) + "</sup>"
	case atom.Sub:
		return "<sub>" + strings.TrimSpace(convertChildren(n, base)) + "</sub>"
	default:
		// Generic containers and unhandled tags pass children through;
		// content is never silently dropped.
		return convertChildren(n, base)
	}
}

// convertInlineCode wraps code in backticks unless the parent is <pre>,
// which produces a fenced block instead.
func convertInlineCode(n *html.Node, base *url.URL) string {
	if n.Parent != nil && n.Parent.DataAtom == atom.Pre {
		return strings.TrimSpace(convertChildren(n, base))
	}
	return "`" + strings.TrimSpace(textContent(n)) + "`"
}

// convertCodeBlock renders <pre> as a fenced code block, sniffing the
// language from a language-xxx/lang-xxx/hljs-xxx class on a nested
// <code>.
func convertCodeBlock(n *html.Node) string {
	text := textContent(n)
	lang := ""

	if code := findFirst(n, atom.Code); code != nil {
		if m := codeLangRe.FindStringSubmatch(attr(code, "class")); m != nil {
			lang = m[1]
		}
		text = textContent(code)
	}

	return "\n\n```" + lang + "\n" + strings.TrimSpace(text) + "\n```\n\n"
}

func convertLink(n *html.Node, base *url.URL) string {
	text := strings.TrimSpace(convertChildren(n, base))
	href := attr(n, "href")

	if href == "" || text == "" {
		return text
	}

	// Anchors and non-navigable schemes keep the text only.
	if strings.HasPrefix(href, "#") || nonNavigable(href) {
		return text
	}

	return "[" + text + "](" + resolveURL(base, href) + ")"
}

func convertImage(n *html.Node, base *url.URL) string {
	src := attr(n, "src")
	if src == "" {
		return ""
	}
	return "![" + attr(n, "alt") + "](" + resolveURL(base, src) + ")"
}

// convertList renders only direct <li> children; numbering restarts at
// 1 per list and empty items are dropped.
func convertList(n *html.Node, base *url.URL, ordered bool) string {
	var items []string
	index := 1

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode || child.DataAtom != atom.Li {
			continue
		}
		content := strings.TrimSpace(convertChildren(child, base))
		if content == "" {
			continue
		}
		if ordered {
			items = append(items, strconv.Itoa(index)+". "+content)
			index++
		} else {
			items = append(items, "- "+content)
		}
	}

	return strings.Join(items, "\n")
}

func convertBlockquote(children string) string {
	lines := strings.Split(strings.TrimSpace(children), "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return "\n\n" + strings.Join(lines, "\n") + "\n\n"
}

// convertTable renders thead rows as the header; without a thead, the
// first body row is promoted to header and appears exactly once. A
// separator row of --- per column follows the header.
func convertTable(n *html.Node, base *url.URL) string {
	var header [][]string
	if thead := findFirst(n, atom.Thead); thead != nil {
		for _, tr := range findAll(thead, atom.Tr) {
			header = append(header, extractRow(tr, base))
		}
	}

	var body [][]string
	for _, tr := range findAll(n, atom.Tr) {
		if inside(tr, atom.Thead) {
			continue
		}
		body = append(body, extractRow(tr, base))
	}

	if len(header) == 0 && len(body) > 0 {
		header = append(header, body[0])
		body = body[1:]
	}
	if len(header) == 0 {
		return ""
	}

	rows := header
	sep := make([]string, len(header[0]))
	for i := range sep {
		sep[i] = "---"
	}
	rows = append(rows, sep)
	rows = append(rows, body...)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, "| "+strings.Join(row, " | ")+" |")
	}

	return strings.Join(lines, "\n")
}

func extractRow(tr *html.Node, base *url.URL) []string {
	var cells []string
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && (child.DataAtom == atom.Td || child.DataAtom == atom.Th) {
			cells = append(cells, strings.TrimSpace(convertChildren(child, base)))
		}
	}
	return cells
}

// nonNavigable reports whether a href points outside normal page
// navigation (javascript:, mailto:, tel:, data:).
func nonNavigable(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// resolveURL resolves href against base. Absolute URLs and missing
// bases pass through unchanged.
func resolveURL(base *url.URL, href string) string {
	if base == nil || schemeRe.MatchString(href) {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// DOM helpers.

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.DataAtom == a {
			return child
		}
		if found := findFirst(child, a); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var nodes []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for child := cur.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && child.DataAtom == a {
				nodes = append(nodes, child)
			}
			walk(child)
		}
	}
	walk(n)
	return nodes
}

func inside(n *html.Node, a atom.Atom) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == a {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for child := cur.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}

func nonWhitespaceLen(s string) int {
	n := 0
	for _, r := range s {
		if !isSpace(r) {
			n++
		}
	}
	return n
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
