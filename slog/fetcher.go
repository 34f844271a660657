// Package slog provides logging decorators for notekit services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notekit"
)

// Ensure LoggingFetcher implements notekit.Fetcher.
var _ notekit.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   notekit.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next notekit.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if code := fetchStatus(err); code != 0 {
			attrs = append(attrs, "status", code)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
