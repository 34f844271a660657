package notekit

// TextExtractor extracts visible text from HTML pages.
type TextExtractor interface {
	// ExtractText concatenates the page's text nodes. Each node is trimmed,
	// empty nodes are skipped and the rest are joined with a single space.
	ExtractText(html string) (string, error)
}
