package mock

import (
	"context"

	"github.com/fwojciec/cetd"
)

var _ cetd.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of cetd.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *cetd.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *cetd.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
