package readability

import (
	"strings"

	"github.com/fwojciec/cetd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements cetd.Extractor at compile time.
var _ cetd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability as an alternative extraction engine.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*cetd.ExtractResult, error) {
	if rawHTML == "" {
		return nil, cetd.Errorf(cetd.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &cetd.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		ContentText: cetd.NormalizeText(article.TextContent),
	}, nil
}
