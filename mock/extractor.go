package mock

import "github.com/fwojciec/notekit"

var _ notekit.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of notekit.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
