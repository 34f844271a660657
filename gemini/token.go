package gemini

import (
	"context"

	"github.com/fwojciec/notekit"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ notekit.TokenCounter = (*TokenCounter)(nil)

// DefaultTokenizerModel names the bundled vocabulary used as the default
// tokenizer for scraped content.
const DefaultTokenizerModel = "gemini-2.0-flash"

// TokenCounter counts tokens using the Gemini local tokenizer.
type TokenCounter struct {
	tok   *tokenizer.LocalTokenizer
	model string
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, err
	}
	return &TokenCounter{tok: tok, model: model}, nil
}

// NewDefaultTokenCounter creates a TokenCounter for DefaultTokenizerModel.
func NewDefaultTokenCounter() (*TokenCounter, error) {
	return NewTokenCounter(DefaultTokenizerModel)
}

// Model returns the tokenizer's model name.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}
