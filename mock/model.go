package mock

import (
	"context"

	"github.com/fwojciec/notekit"
)

var _ notekit.Hub = (*Hub)(nil)

// Hub is a mock implementation of notekit.Hub.
type Hub struct {
	LoginFn    func(ctx context.Context, token string) error
	DownloadFn func(ctx context.Context, repoID, filename, dir string) (string, error)
}

func (h *Hub) Login(ctx context.Context, token string) error {
	return h.LoginFn(ctx, token)
}

func (h *Hub) Download(ctx context.Context, repoID, filename, dir string) (string, error) {
	return h.DownloadFn(ctx, repoID, filename, dir)
}

var _ notekit.ModelLoader = (*ModelLoader)(nil)

// ModelLoader is a mock implementation of notekit.ModelLoader.
type ModelLoader struct {
	LoadModelFn func(ctx context.Context, req notekit.ModelRequest) (*notekit.Model, error)
}

func (l *ModelLoader) LoadModel(ctx context.Context, req notekit.ModelRequest) (*notekit.Model, error) {
	return l.LoadModelFn(ctx, req)
}
