// Package goquery provides CSS-selector based page metadata lookups.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cetd"
)

// Title extracts the page title from raw HTML, preferring Open Graph
// metadata over the <title> element. Returns an empty string when neither
// is present.
func Title(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", cetd.Errorf(cetd.EINVALID, "failed to parse HTML: %v", err)
	}

	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if t := strings.TrimSpace(og); t != "" {
			return t, nil
		}
	}

	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}
