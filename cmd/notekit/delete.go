package main

import (
	"fmt"

	"github.com/fwojciec/notekit"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Contents.DeleteContent(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notekit.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s\n", c.ID)
	return nil
}
