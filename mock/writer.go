package mock

import (
	"context"

	"github.com/fwojciec/notekit"
)

var _ notekit.ContentWriter = (*ContentWriter)(nil)

// ContentWriter is a mock implementation of notekit.ContentWriter.
type ContentWriter struct {
	CreateContentFn func(ctx context.Context, c *notekit.Content) error
}

func (w *ContentWriter) CreateContent(ctx context.Context, c *notekit.Content) error {
	return w.CreateContentFn(ctx, c)
}
