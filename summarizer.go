package notekit

import "context"

// Summarizer produces a natural language summary of text.
type Summarizer interface {
	// Summarize returns a summary of text.
	Summarize(ctx context.Context, text string) (string, error)

	// Model returns the name of the model that writes summaries.
	Model() string
}
