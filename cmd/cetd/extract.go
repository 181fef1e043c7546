package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fwojciec/cetd"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := readInput(deps, c.URL, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
		return err
	}

	extractor := newExtractor(c.Engine, deps.Logger)
	result, err := extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
		return err
	}

	content := result.ContentText
	if c.Markdown && result.ContentHTML != "" {
		content, err = deps.Converter.Convert(result.ContentHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
			return err
		}
	}

	if content == "" {
		fmt.Fprintln(deps.Stderr, "warning: no main content found")
	}

	if c.Save {
		doc := &cetd.Document{
			SourceURL:   sourceURL(c.URL, c.File),
			Title:       result.Title,
			Content:     content,
			Engine:      c.Engine,
			ExtractedAt: time.Now().UTC(),
		}
		if err := deps.Documents.CreateDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "saved document %s\n", doc.ID)
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", c.Output, err)
		}
		return nil
	}

	fmt.Fprintln(deps.Stdout, content)
	return nil
}
