// Package readability provides a go-readability backed implementation
// of mako.Reducer.
package readability

import (
	"strings"

	"github.com/fwojciec/mako"
	"github.com/go-shiori/go-readability"
)

// Ensure Reducer implements mako.Reducer at compile time.
var _ mako.Reducer = (*Reducer)(nil)

// Reducer wraps go-readability to extract main content from HTML.
type Reducer struct{}

// NewReducer creates a new Reducer.
func NewReducer() *Reducer {
	return &Reducer{}
}

// Reduce extracts the main content subtree. Unreadable input yields an
// empty result, not an error.
func (r *Reducer) Reduce(rawHTML string) (*mako.ReduceResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &mako.ReduceResult{}, nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return &mako.ReduceResult{}, nil
	}

	return &mako.ReduceResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
