// Package provision makes models from the hub available locally.
package provision

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fwojciec/notekit"
	"github.com/fwojciec/notekit/config"
)

// Authenticate logs hub in with the HF_TOKEN credential from cfg.
// It fails with EUNAUTHORIZED before touching the hub when no token is set.
func Authenticate(ctx context.Context, cfg config.Config, hub notekit.Hub) error {
	if cfg.HFToken == "" {
		return notekit.Errorf(notekit.EUNAUTHORIZED, "HF_TOKEN not found in environment or .env")
	}
	return hub.Login(ctx, cfg.HFToken)
}

// Provisioner resolves model requests to loaded models.
type Provisioner struct {
	Loader notekit.ModelLoader
	Logger *slog.Logger
}

// Provision rejects filenames that resolve outside req.Dir with EINVALID,
// ensures req.Dir exists, reports whether req.Filename is already
// cached there and hands the request to the loader. The cache check only
// selects the log message; the loader is always called and its result and
// error are returned unchanged.
func (p *Provisioner) Provision(ctx context.Context, req notekit.ModelRequest) (*notekit.Model, error) {
	path, err := notekit.LocalPath(req.Dir, req.Filename)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(req.Dir, 0755); err != nil {
		return nil, err
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if _, err := os.Stat(path); err == nil {
		logger.Info("loading existing model", "file", req.Filename, "dir", req.Dir)
	} else if errors.Is(err, fs.ErrNotExist) {
		logger.Info("downloading model", "repo", req.RepoID, "file", req.Filename, "dir", req.Dir)
	} else {
		logger.Warn("cannot check model cache", "path", path, "err", err)
	}

	return p.Loader.LoadModel(ctx, req)
}
