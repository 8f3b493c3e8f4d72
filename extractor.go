package orgdocs

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, header, footer, scripts, styles) has been removed.
	ContentHTML string

	// Fallback is true when no main content region was recognized and
	// ContentHTML holds the whole cleaned document.
	Fallback bool
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
