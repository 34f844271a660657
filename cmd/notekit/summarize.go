package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/notekit"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	content, err := deps.Pipeline.Scrape(deps.Ctx, notekit.NewContent(c.URL, notekit.KindBlog))
	if err != nil {
		var fe *notekit.FetchError
		if errors.As(err, &fe) {
			fmt.Fprintf(deps.Stderr, "Failed to fetch the page. Status code: %d\n", fe.StatusCode)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", notekit.ErrorMessage(err))
		return err
	}

	content, err = deps.Pipeline.Summarize(deps.Ctx, content, deps.Summarizer, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notekit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n\n", content.Summary.Text)
	fmt.Fprintf(deps.Stdout, "Page: %d tokens. Summary (%s): %d tokens.\n",
		content.TokenCount, content.Summary.Model, content.Summary.TokenCount)

	if c.Save {
		if err := deps.Contents.CreateContent(deps.Ctx, content); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", notekit.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved as %s\n", content.ID)
	}

	return nil
}
