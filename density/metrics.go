package density

import (
	"strings"

	"github.com/fwojciec/cetd"
	"golang.org/x/net/html"
)

// Metrics holds the counts the density formula is computed from, aggregated
// over a node's entire retained subtree.
type Metrics struct {
	// CharCount is the number of grapheme clusters in all retained
	// descendant text, trimmed per text node.
	CharCount int

	// TagCount is the number of retained element descendants, including
	// the node itself if it is an element.
	TagCount int

	// LinkCharCount is the portion of CharCount sitting directly under
	// anchor elements.
	LinkCharCount int

	// LinkTagCount is the number of navigation-like elements (anchor,
	// button, select).
	LinkTagCount int
}

// Combine adds the counts of a fully aggregated child component-wise.
func (m *Metrics) Combine(other Metrics) {
	m.CharCount += other.CharCount
	m.TagCount += other.TagCount
	m.LinkCharCount += other.LinkCharCount
	m.LinkTagCount += other.LinkTagCount
}

// SimpleDensity returns the plain chars-per-tag ratio, without the
// link-aware weighting of CompositeDensity.
func (m Metrics) SimpleDensity() float32 {
	if m.TagCount == 0 {
		return 0
	}
	return float32(m.CharCount) / float32(m.TagCount)
}

// isLinkElement reports whether an element is navigation-like and should be
// down-weighted by the density formula.
func isLinkElement(name string) bool {
	return name == "a" || name == "button" || name == "select"
}

// isExcludedElement reports whether an element and its entire subtree are
// invisible to the density tree.
func isExcludedElement(name string) bool {
	return name == "script" || name == "style" || name == "noscript"
}

// retained reports whether the builder visits n at all. Comments, doctypes
// and nested document nodes are excluded along with script/style/noscript
// elements; everything else, including whitespace-only text nodes, becomes
// a density node.
func retained(n *html.Node) bool {
	switch n.Type {
	case html.ElementNode:
		return !isExcludedElement(n.Data)
	case html.TextNode:
		return true
	default:
		return false
	}
}

// localMetrics computes a single node's own counts, not yet combined with
// descendants.
func localMetrics(n *html.Node) Metrics {
	var m Metrics
	switch n.Type {
	case html.TextNode:
		m.CharCount = cetd.CountGraphemes(strings.TrimSpace(n.Data))
	case html.ElementNode:
		m.TagCount = 1
		if isLinkElement(n.Data) {
			m.LinkTagCount = 1
		}
	}
	return m
}
