package markdown

import (
	"net/url"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tags extracted independently by the semantic pass.
var semanticBlocks = map[atom.Atom]bool{
	atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true,
	atom.P: true, atom.Li: true, atom.Td: true, atom.Th: true,
	atom.Blockquote: true, atom.Figcaption: true,
}

// Tags converted as whole units without descending further.
var semanticUnits = map[atom.Atom]bool{
	atom.Ul: true, atom.Ol: true, atom.Table: true,
}

// extractSemantic is the fallback extraction strategy for page-builder
// markup, where content hides inside deeply nested non-semantic
// wrappers with sparse text per node. It walks the DOM collecting only
// semantic tags, converts each independently, and deduplicates repeated
// blocks by a normalized-text hash. Lists and tables are converted as
// whole units so their structure survives.
func extractSemantic(doc *html.Node, base *url.URL) string {
	var blocks []string
	seen := make(map[uint64]bool)

	add := func(md string) {
		md = strings.TrimSpace(md)
		if md == "" {
			return
		}
		h := xxhash.Sum64String(normalizeForDedup(md))
		if seen[h] {
			return
		}
		seen[h] = true
		blocks = append(blocks, md)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if semanticUnits[n.DataAtom] {
				add(convertNode(n, base))
				return
			}
			if semanticBlocks[n.DataAtom] {
				add(convertNode(n, base))
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return strings.Join(blocks, "\n\n")
}

// normalizeForDedup lowercases and collapses whitespace so visually
// identical blocks hash equal.
func normalizeForDedup(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
