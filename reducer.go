package mako

// ReduceResult holds the outcome of HTML reduction: the primary-content
// subtree as clean HTML, with chrome and noise removed.
type ReduceResult struct {
	// Title is the page title when the implementation can derive one
	// from metadata. May be empty.
	Title string

	// ContentHTML is the main content subtree serialized as HTML.
	// Empty means no usable content was found — callers must treat this
	// as "no content", not as an error.
	ContentHTML string
}

// Empty reports whether reduction found no usable content.
func (r *ReduceResult) Empty() bool {
	return r == nil || r.ContentHTML == ""
}

// Reducer removes noise nodes (scripts, nav, ads, hidden elements) from
// rendered HTML and locates the primary-content subtree. Malformed
// markup must not abort the pipeline: implementations recover where
// possible and return an empty result when nothing usable remains.
type Reducer interface {
	Reduce(html string) (*ReduceResult, error)
}
