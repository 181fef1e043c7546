// Package batch orchestrates multi-page extraction runs. It coordinates
// sitemap discovery, fetching, extraction, conversion, and storage of
// pages under a common base URL.
package batch

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/bloom"
	"golang.org/x/sync/errgroup"
)

// Dedup filter sizing for a single run.
const (
	seenExpectedURLs      = 10000
	seenFalsePositiveRate = 0.01
)

// Runner orchestrates batch extraction of documentation sites.
type Runner struct {
	Sitemaps    cetd.SitemapService
	Fetcher     cetd.Fetcher
	Extractor   cetd.Extractor
	Converter   cetd.Converter
	Writer      cetd.DocumentWriter
	RateLimiter cetd.DomainLimiter
	Engine      string
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a batch run.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	title    string
	content  string
	err      error
}

// Run discovers pages under baseURL via sitemaps and extracts each one.
// The progress callback, if provided, receives events as the run proceeds.
func (r *Runner) Run(ctx context.Context, baseURL string, filter *cetd.URLFilter, progress ProgressFunc) (*Result, error) {
	urls, err := r.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// Sitemap indexes on large sites can reference the same page from
	// several child sitemaps.
	seen := bloom.NewFilter(seenExpectedURLs, seenFalsePositiveRate)
	deduped := urls[:0]
	for _, u := range urls {
		if seen.TestAndAdd(u) {
			continue
		}
		deduped = append(deduped, u)
	}
	urls = deduped

	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	resultCh := make(chan pageResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- r.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in discovery order so output positions are stable.
	results := make([]pageResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			if result.err != nil {
				failedCount++
			}
			continue
		}
		if result.err != nil {
			failedCount++
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
				Error:     result.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	var savedCount int
	var totalBytes int

	for _, result := range results {
		if result.err != nil {
			continue
		}

		doc := &cetd.Document{
			SourceURL:   result.url,
			Title:       result.title,
			Content:     result.content,
			Engine:      r.Engine,
			ExtractedAt: time.Now().UTC(),
		}

		if err := r.Writer.CreateDocument(ctx, doc); err != nil {
			failedCount++
			continue
		}

		savedCount++
		totalBytes += len(result.content)
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:  savedCount,
		Failed: failedCount,
		Bytes:  totalBytes,
	}, nil
}

// processURL fetches and processes a single URL.
func (r *Runner) processURL(ctx context.Context, position int, pageURL string) pageResult {
	result := pageResult{
		position: position,
		url:      pageURL,
	}

	if r.RateLimiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := r.RateLimiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetry(ctx, pageURL, r.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}

	extracted, err := r.Extractor.Extract(html)
	if err != nil {
		result.err = err
		return result
	}

	result.title = extracted.Title
	result.content = extracted.ContentText

	// With a converter configured, store markdown instead of plain text.
	if r.Converter != nil && extracted.ContentHTML != "" {
		markdown, err := r.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			result.err = err
			return result
		}
		result.content = markdown
	}

	return result
}
