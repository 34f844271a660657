package main

import (
	"fmt"

	"github.com/fwojciec/notekit"
	"github.com/fwojciec/notekit/provision"
)

// Run executes the pull command.
func (c *PullCmd) Run(deps *Dependencies) error {
	if err := provision.Authenticate(deps.Ctx, deps.Config, deps.Hub); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notekit.ErrorMessage(err))
		return err
	}

	dir := c.Dir
	if dir == "" {
		dir = deps.Config.ModelDir
	}

	model, err := deps.Provisioner.Provision(deps.Ctx, notekit.ModelRequest{
		RepoID:        c.Repo,
		Filename:      c.File,
		Dir:           dir,
		Verbose:       c.Verbose,
		ContextLength: c.Ctx,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notekit.ErrorMessage(err))
		return err
	}

	name := model.Name
	if name == "" {
		name = model.Filename
	}
	fmt.Fprintf(deps.Stdout, "Loaded %s (%s, context %d) from %s\n", name, model.Architecture, model.ContextLength, model.Path)
	return nil
}
