package main

import (
	"fmt"

	"github.com/fwojciec/notekit"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := notekit.ContentFilter{Limit: c.Limit}
	if c.Kind != "" {
		kind := notekit.ContentKind(c.Kind)
		filter.Kind = &kind
	}

	contents, err := deps.Contents.FindContents(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notekit.ErrorMessage(err))
		return err
	}

	if len(contents) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages found. Use 'notekit scrape --save' to store some.")
		return nil
	}

	for _, content := range contents {
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %6d  %s\n", content.ID, content.State, content.TokenCount, content.SourceURL)
	}

	return nil
}
