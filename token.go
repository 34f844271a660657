package notekit

import "context"

// TokenCounter counts tokens in text for a specific tokenizer.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}

// TokenizerChoice selects the tokenizer used to count a record's tokens.
// It is either DefaultTokenizer or CustomTokenizer.
type TokenizerChoice interface {
	tokenizerChoice()
}

// DefaultTokenizer selects the pipeline's fixed, named general-purpose tokenizer.
type DefaultTokenizer struct{}

// CustomTokenizer selects a caller-supplied tokenizer. The tokenizer is
// stored on the record it counts.
type CustomTokenizer struct {
	Tokenizer TokenCounter
}

func (DefaultTokenizer) tokenizerChoice() {}
func (CustomTokenizer) tokenizerChoice()  {}
