package mock

import (
	"context"

	"github.com/fwojciec/notekit"
)

var _ notekit.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of notekit.ContentService.
type ContentService struct {
	CreateContentFn   func(ctx context.Context, c *notekit.Content) error
	FindContentByIDFn func(ctx context.Context, id string) (*notekit.Content, error)
	FindContentsFn    func(ctx context.Context, filter notekit.ContentFilter) ([]*notekit.Content, error)
	DeleteContentFn   func(ctx context.Context, id string) error
}

func (s *ContentService) CreateContent(ctx context.Context, c *notekit.Content) error {
	return s.CreateContentFn(ctx, c)
}

func (s *ContentService) FindContentByID(ctx context.Context, id string) (*notekit.Content, error) {
	return s.FindContentByIDFn(ctx, id)
}

func (s *ContentService) FindContents(ctx context.Context, filter notekit.ContentFilter) ([]*notekit.Content, error) {
	return s.FindContentsFn(ctx, filter)
}

func (s *ContentService) DeleteContent(ctx context.Context, id string) error {
	return s.DeleteContentFn(ctx, id)
}
