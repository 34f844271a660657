package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/notekit"
	"golang.org/x/net/html"
)

// Ensure TextExtractor implements notekit.TextExtractor at compile time.
var _ notekit.TextExtractor = (*TextExtractor)(nil)

// skippedElements hold text that is never rendered.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
}

// TextExtractor extracts the visible text of a page.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText walks the document in order, trims each text node, drops the
// empty ones and joins the rest with a single space.
func (e *TextExtractor) ExtractText(rawHTML string) (string, error) {
	// With scripting disabled, noscript children parse as markup rather than
	// raw text, so their text nodes are kept like any other.
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", notekit.Errorf(notekit.EINVALID, "failed to parse HTML: %v", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	var parts []string
	for _, root := range doc.Nodes {
		collectText(root, &parts)
	}

	return strings.Join(parts, " "), nil
}

func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if skippedElements[n.Data] {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
