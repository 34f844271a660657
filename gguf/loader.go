package gguf

import (
	"context"
	"log/slog"

	"github.com/fwojciec/notekit"
)

// Ensure Loader implements notekit.ModelLoader at compile time.
var _ notekit.ModelLoader = (*Loader)(nil)

// Loader fetches model files through a hub and opens them.
type Loader struct {
	Hub    notekit.Hub
	Logger *slog.Logger
}

// NewLoader creates a new Loader.
func NewLoader(hub notekit.Hub, logger *slog.Logger) *Loader {
	return &Loader{Hub: hub, Logger: logger}
}

// LoadModel downloads req.Filename from req.RepoID into req.Dir unless it is
// already cached there, then opens it. Hub and parse errors are returned as is.
func (l *Loader) LoadModel(ctx context.Context, req notekit.ModelRequest) (*notekit.Model, error) {
	path, err := l.Hub.Download(ctx, req.RepoID, req.Filename, req.Dir)
	if err != nil {
		return nil, err
	}

	return Open(path, Options{
		RepoID:        req.RepoID,
		Filename:      req.Filename,
		ContextLength: req.ContextLength,
		Verbose:       req.Verbose,
		Logger:        l.Logger,
	})
}
