package cetd

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the raw markup of the container wrapping the main
	// content, suitable for handing to a Converter.
	ContentHTML string

	// ContentText is the normalized plain-text rendition of the main
	// content (possibly empty for content-free documents).
	ContentText string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Degenerate inputs (empty body, content-free documents) yield an
	// empty result, not an error.
	Extract(html string) (*ExtractResult, error)
}
