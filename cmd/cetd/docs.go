package main

import (
	"fmt"

	"github.com/fwojciec/cetd"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	filter := cetd.DocumentFilter{SortBy: cetd.SortBySourceURL}
	if c.Engine != "" {
		filter.Engine = &c.Engine
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents stored. Run 'cetd extract --save' or 'cetd batch --store' first.")
		return nil
	}

	if c.Full {
		for _, doc := range docs {
			fmt.Fprintf(deps.Stdout, "=== %s (%s)\n\n%s\n\n", doc.SourceURL, doc.Engine, doc.Content)
		}
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Stored documents (%d total):\n\n", len(docs))
	for i, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.SourceURL
		}
		fmt.Fprintf(deps.Stdout, "  %d. %s [%s]\n     %s\n     id: %s\n", i+1, title, doc.Engine, doc.SourceURL, doc.ID)
	}

	return nil
}
