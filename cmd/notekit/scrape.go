package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/notekit"
)

// Run executes the scrape command. Pages that fail to fetch are reported and
// skipped; the remaining pages are still processed.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	results, err := deps.Batch.ScrapeAll(deps.Ctx, c.URLs, notekit.ContentKind(c.Kind))
	if err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		if r.Err != nil {
			var fe *notekit.FetchError
			if errors.As(r.Err, &fe) {
				fmt.Fprintf(deps.Stderr, "Failed to fetch the page. Status code: %d\n", fe.StatusCode)
				continue
			}
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.Content.SourceURL, notekit.ErrorMessage(r.Err))
			failed++
			continue
		}

		content := r.Content
		if content.HasText {
			fmt.Fprintf(deps.Stdout, "%s  %d tokens\n", content.SourceURL, content.TokenCount)
		} else {
			fmt.Fprintf(deps.Stdout, "%s  no text extracted (kind %s)\n", content.SourceURL, content.Kind)
		}

		if c.Save {
			if err := deps.Contents.CreateContent(deps.Ctx, content); err != nil {
				fmt.Fprintf(deps.Stderr, "error: saving %s: %s\n", content.SourceURL, notekit.ErrorMessage(err))
				failed++
				continue
			}
		}

		if c.Out != "" && content.HasText {
			if err := deps.NewWriter(c.Out).CreateContent(deps.Ctx, content); err != nil {
				fmt.Fprintf(deps.Stderr, "error: exporting %s: %s\n", content.SourceURL, notekit.ErrorMessage(err))
				failed++
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(results))
	}
	return nil
}
