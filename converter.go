package mako

// Converter renders an HTML content subtree to Markdown. Relative URLs
// in links and images are resolved against baseURL. Conversion is
// deterministic: the same input yields byte-identical output.
type Converter interface {
	Convert(html string, baseURL string) (string, error)
}
