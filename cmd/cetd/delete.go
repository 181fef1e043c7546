package main

import (
	"fmt"

	"github.com/fwojciec/cetd"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		if cetd.ErrorCode(err) == cetd.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'cetd docs' to list stored documents.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %s\n", c.ID)
	return nil
}
