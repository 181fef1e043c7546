package cetd

import (
	"context"
	"regexp"
)

// SitemapService discovers URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap. It first checks
	// robots.txt for sitemap directives, then falls back to /sitemap.xml.
	// Sitemap indexes are resolved recursively.
	//
	// A nil filter returns all URLs.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter specifies patterns for including or excluding URLs.
type URLFilter struct {
	// Include patterns. If set, only URLs matching at least one pattern
	// pass.
	Include []*regexp.Regexp

	// Exclude patterns. URLs matching any pattern are dropped. Exclude is
	// applied after Include.
	Exclude []*regexp.Regexp
}

// Match reports whether the URL passes the filter. A nil filter passes
// everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
