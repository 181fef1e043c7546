package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/cetd"
	main "github.com/fwojciec/cetd/cmd/cetd"
	"github.com/fwojciec/cetd/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts discovered pages into the output directory", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *cetd.URLFilter) ([]string, error) {
				return []string{
					"https://example.com/docs/page1",
					"https://example.com/docs/page2",
				}, nil
			},
		}
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return testPage, nil
			},
		}

		dir := t.TempDir()
		outName := "docs-out"
		cmd := &main.BatchCmd{
			URL:         "https://example.com/docs",
			Engine:      "cetd",
			Output:      filepath.Join(dir, outName),
			Concurrency: 2,
			RPS:         1000,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found 2 URLs")
		assert.Contains(t, stdout.String(), "Saved 2 pages")

		data, err := os.ReadFile(filepath.Join(dir, outName, "docs", "page1.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "main content of the page")
	})

	t.Run("saves to document store with --store", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *cetd.URLFilter) ([]string, error) {
				return []string{"https://example.com/docs/page1"}, nil
			},
		}
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return testPage, nil
			},
		}

		var mu sync.Mutex
		var saved []*cetd.Document
		deps.Documents = &mock.DocumentService{
			CreateDocumentFn: func(ctx context.Context, doc *cetd.Document) error {
				mu.Lock()
				defer mu.Unlock()
				saved = append(saved, doc)
				return nil
			},
		}

		cmd := &main.BatchCmd{
			URL:         "https://example.com/docs",
			Engine:      "cetd",
			Store:       true,
			Concurrency: 1,
			RPS:         1000,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, "https://example.com/docs/page1", saved[0].SourceURL)
		assert.Equal(t, "cetd", saved[0].Engine)
	})

	t.Run("passes filters to sitemap discovery", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		var receivedFilter *cetd.URLFilter
		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *cetd.URLFilter) ([]string, error) {
				receivedFilter = filter
				return nil, nil
			},
		}

		cmd := &main.BatchCmd{
			URL:    "https://example.com/docs",
			Engine: "cetd",
			Filter: []string{"/api/", "/guides/"},
			Output: filepath.Join(t.TempDir(), "docs"),
			RPS:    1000,
		}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, receivedFilter)
		require.Len(t, receivedFilter.Include, 2)
		assert.Equal(t, "/api/", receivedFilter.Include[0].String())
	})

	t.Run("returns error for invalid filter regex", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		cmd := &main.BatchCmd{
			URL:    "https://example.com/docs",
			Engine: "cetd",
			Filter: []string{"[invalid"},
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid filter pattern")
	})

	t.Run("aborts output directory when discovery fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Sitemaps = &mock.SitemapService{
			DiscoverURLsFn: func(ctx context.Context, baseURL string, filter *cetd.URLFilter) ([]string, error) {
				return nil, cetd.Errorf(cetd.EINTERNAL, "fetch failed")
			},
		}

		dir := t.TempDir()
		out := filepath.Join(dir, "docs")
		cmd := &main.BatchCmd{
			URL:    "https://example.com/docs",
			Engine: "cetd",
			Output: out,
			RPS:    1000,
		}
		err := cmd.Run(deps)

		require.Error(t, err)
		_, statErr := os.Stat(out + ".tmp")
		assert.True(t, os.IsNotExist(statErr))
	})
}
