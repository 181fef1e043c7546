package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/cetd"
)

// Ensure SitemapService implements cetd.SitemapService.
var _ cetd.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from website sitemaps via HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs finds all URLs from a site's sitemap. Returns an empty slice,
// not nil, if no sitemaps are found.
//
// When baseURL has a non-root path (e.g. https://example.com/blog/), only
// URLs with paths under that prefix are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *cetd.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, cetd.Errorf(cetd.EINVALID, "invalid base URL: %v", err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	// Sitemaps live at the domain root regardless of the base path.
	sitemapBase := *base
	sitemapBase.Path = ""

	sitemapURLs, err := s.findSitemapURLs(ctx, &sitemapBase)
	if err != nil {
		return nil, err
	}
	if len(sitemapURLs) == 0 {
		return []string{}, nil
	}

	var all []string
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		urls, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			return nil, err
		}
		for _, u := range urls {
			if !seenURLs[u] {
				seenURLs[u] = true
				all = append(all, u)
			}
		}
	}

	if pathPrefix != "" {
		var filtered []string
		for _, u := range all {
			if matchesPathPrefix(u, pathPrefix) {
				filtered = append(filtered, u)
			}
		}
		all = filtered
	}

	if filter != nil {
		var filtered []string
		for _, u := range all {
			if filter.Match(u) {
				filtered = append(filtered, u)
			}
		}
		return filtered, nil
	}

	return all, nil
}

// matchesPathPrefix checks whether a URL's path sits under prefix,
// respecting path boundaries: /blog matches /blog/ and /blog/post but not
// /blogroll.
func matchesPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(parsed.Path, prefix)
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to
// /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}

	return nil, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		return s.processSitemapIndex(ctx, root, seen)
	}

	return parseURLSet(root), nil
}

// processSitemapIndex resolves a <sitemapindex> element recursively.
func (s *SitemapService) processSitemapIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]string, error) {
	var all []string
	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		urls, err := s.processSitemap(ctx, sitemapURL, seen)
		if err != nil {
			return nil, err
		}
		all = append(all, urls...)
	}
	return all, nil
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// urlExists checks whether a URL answers 200 OK to a HEAD request.
func (s *SitemapService) urlExists(ctx context.Context, targetURL string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
