package slog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fwojciec/notekit"
)

// Ensure LoggingTokenCounter implements notekit.TokenCounter.
var _ notekit.TokenCounter = (*LoggingTokenCounter)(nil)

// LoggingTokenCounter wraps a TokenCounter with debug logging.
type LoggingTokenCounter struct {
	next   notekit.TokenCounter
	logger *slog.Logger
}

// NewLoggingTokenCounter creates a new LoggingTokenCounter.
func NewLoggingTokenCounter(next notekit.TokenCounter, logger *slog.Logger) *LoggingTokenCounter {
	return &LoggingTokenCounter{next: next, logger: logger}
}

// CountTokens delegates to the wrapped counter and logs the result.
func (c *LoggingTokenCounter) CountTokens(ctx context.Context, text string) (n int, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("count tokens",
			"chars", len(text),
			"tokens", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.CountTokens(ctx, text)
}

func fetchStatus(err error) int {
	var fe *notekit.FetchError
	if errors.As(err, &fe) {
		return fe.StatusCode
	}
	return 0
}
