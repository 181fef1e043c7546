package main

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/batch"
	"github.com/fwojciec/cetd/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *cetd.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &cetd.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	var writer cetd.DocumentWriter
	var store *fs.Store
	if c.Store {
		writer = deps.Documents
	} else {
		store = fs.NewStore(filepath.Dir(c.Output), filepath.Base(c.Output))
		writer = store
	}

	runner := &batch.Runner{
		Sitemaps:    deps.Sitemaps,
		Fetcher:     deps.Fetcher,
		Extractor:   newExtractor(c.Engine, deps.Logger),
		Converter:   deps.Converter,
		Writer:      writer,
		RateLimiter: batch.NewDomainLimiter(c.RPS),
		Engine:      c.Engine,
		Concurrency: c.Concurrency,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d URLs\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, batch.TruncateURL(event.URL, 60))
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", batch.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := runner.Run(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			return fmt.Errorf("failed to finalize output directory: %w", err)
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %d pages (%s), %d failed\n",
		result.Saved, batch.FormatBytes(result.Bytes), result.Failed)

	return nil
}
