package density

import (
	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/dom"
	"github.com/fwojciec/cetd/goquery"
	"golang.org/x/net/html"
)

// Ensure Extractor implements cetd.Extractor at compile time.
var _ cetd.Extractor = (*Extractor)(nil)

// Extractor runs the CETD pipeline behind the cetd.Extractor interface.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content: the normalized
// content text, the markup of the container wrapping the densest region
// (for markdown conversion), and the page title from metadata.
func (e *Extractor) Extract(rawHTML string) (*cetd.ExtractResult, error) {
	if rawHTML == "" {
		return nil, cetd.Errorf(cetd.EINVALID, "empty HTML input")
	}

	doc, err := dom.ParseString(rawHTML)
	if err != nil {
		return nil, err
	}

	tree, err := FromDocument(doc)
	if err != nil {
		return nil, err
	}
	tree.CalculateDensitySum()

	text, err := tree.ExtractText(doc)
	if err != nil {
		return nil, err
	}

	contentHTML, err := tree.ContentContainerHTML(doc)
	if err != nil {
		return nil, err
	}

	title, err := goquery.Title(rawHTML)
	if err != nil {
		return nil, err
	}

	return &cetd.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		ContentText: text,
	}, nil
}

// containerElements are the ancestors the markdown hand-off prefers as a
// content wrapper.
var containerElements = map[string]bool{
	"article": true,
	"main":    true,
	"section": true,
	"div":     true,
	"content": true,
}

// ContentContainerHTML returns the markup of a container wrapping the
// max-density-sum node, for hand-off to an HTML-to-Markdown converter. It
// walks up to five DOM ancestors looking for an article/main/section/div
// wrapper and falls back to the nearest enclosing element. Returns an empty
// string when the tree has no max-density-sum node.
func (t *Tree) ContentContainerHTML(doc *dom.Document) (string, error) {
	max := t.MaxDensitySumNode()
	if max == nil {
		return "", nil
	}

	n, err := doc.Node(max.ID)
	if err != nil {
		return "", err
	}

	cur := n
	for range 5 {
		if cur.Parent == nil {
			break
		}
		cur = cur.Parent
		if cur.Type == html.ElementNode && containerElements[cur.Data] {
			break
		}
	}

	// Walked past <html> without hitting a container: fall back to the
	// nearest element enclosing the max-density-sum node itself.
	if cur.Type != html.ElementNode {
		cur = n
		for cur != nil && cur.Type != html.ElementNode {
			cur = cur.Parent
		}
		if cur == nil {
			return "", nil
		}
	}

	id, ok := doc.ID(cur)
	if !ok {
		return "", cetd.Errorf(cetd.ENODEACCESS, "container node not found in document")
	}
	return doc.Render(id)
}
