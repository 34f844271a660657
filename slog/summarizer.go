package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notekit"
)

// Ensure LoggingSummarizer implements notekit.Summarizer.
var _ notekit.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging.
type LoggingSummarizer struct {
	next   notekit.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next notekit.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, text string) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"model", s.next.Model(),
			"input", len(text),
			"output", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, text)
}

// Model delegates to the wrapped summarizer.
func (s *LoggingSummarizer) Model() string {
	return s.next.Model()
}
