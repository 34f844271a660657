package pipeline

import (
	"context"

	"github.com/fwojciec/notekit"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages scraped at once by ScrapeAll.
const DefaultConcurrency = 4

// Result holds the outcome of scraping one URL in a batch.
type Result struct {
	Content *notekit.Content
	Err     error
}

// Batch scrapes many independent records concurrently.
type Batch struct {
	Pipeline    *Pipeline
	RateLimiter notekit.DomainLimiter
	Concurrency int
}

// ScrapeAll scrapes each URL into its own record. Results are returned in
// input order. A failure for one URL is recorded in its Result and does not
// stop the others; only context cancellation aborts the batch.
func (b *Batch) ScrapeAll(ctx context.Context, urls []string, kind notekit.ContentKind) ([]Result, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, url := range urls {
		g.Go(func() error {
			c := notekit.NewContent(url, kind)
			if b.RateLimiter != nil {
				if err := b.RateLimiter.Wait(gctx, hostOf(url)); err != nil {
					results[i] = Result{Content: c, Err: err}
					return nil
				}
			}
			out, err := b.Pipeline.Scrape(gctx, c)
			results[i] = Result{Content: out, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
