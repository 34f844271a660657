package mock

import (
	"context"

	"github.com/fwojciec/notekit"
)

var _ notekit.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of notekit.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string) (string, error)
	ModelFn     func() string
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.SummarizeFn(ctx, text)
}

func (s *Summarizer) Model() string {
	return s.ModelFn()
}
