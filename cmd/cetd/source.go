package main

import (
	"os"

	"github.com/fwojciec/cetd"
)

// readInput loads the HTML to process, either by fetching a URL or by
// reading a local file. Exactly one of url and file must be set; Kong
// enforces this at parse time.
func readInput(deps *Dependencies, url, file string) (string, error) {
	if url != "" {
		return deps.Fetcher.Fetch(deps.Ctx, url)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", cetd.Errorf(cetd.EINVALID, "cannot read file %q: %v", file, err)
	}
	return string(data), nil
}

// sourceURL returns the canonical source URL for a document, falling back
// to a file URI for local input.
func sourceURL(url, file string) string {
	if url != "" {
		return url
	}
	return "file://" + file
}
