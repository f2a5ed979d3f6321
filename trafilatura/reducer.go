// Package trafilatura provides a go-trafilatura backed implementation
// of mako.Reducer, used as a fallback when selector-based reduction
// finds no content root.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/mako"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Reducer implements mako.Reducer at compile time.
var _ mako.Reducer = (*Reducer)(nil)

// Reducer wraps go-trafilatura to extract main content from HTML.
type Reducer struct{}

// NewReducer creates a new Reducer.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce extracts the main content subtree. Extraction failures yield
// an empty result, not an error.
func (r *Reducer) Reduce(rawHTML string) (*mako.ReduceResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &mako.ReduceResult{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return &mako.ReduceResult{}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return &mako.ReduceResult{Title: result.Metadata.Title}, nil
		}
	}

	return &mako.ReduceResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
