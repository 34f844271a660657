package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notekit"
)

// Ensure LoggingHub implements notekit.Hub.
var _ notekit.Hub = (*LoggingHub)(nil)

// LoggingHub wraps a Hub with logging. Tokens are never logged.
type LoggingHub struct {
	next   notekit.Hub
	logger *slog.Logger
}

// NewLoggingHub creates a new LoggingHub.
func NewLoggingHub(next notekit.Hub, logger *slog.Logger) *LoggingHub {
	return &LoggingHub{next: next, logger: logger}
}

// Login delegates to the wrapped hub and logs the outcome.
func (h *LoggingHub) Login(ctx context.Context, token string) (err error) {
	defer func() {
		h.logger.Info("hub login", "err", err)
	}()
	return h.next.Login(ctx, token)
}

// Download delegates to the wrapped hub and logs the operation.
func (h *LoggingHub) Download(ctx context.Context, repoID, filename, dir string) (path string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"repo", repoID,
			"file", filename,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		}
		if code := fetchStatus(err); code != 0 {
			attrs = append(attrs, "status", code)
		}
		h.logger.Info("hub download", attrs...)
	}(time.Now())
	return h.next.Download(ctx, repoID, filename, dir)
}
