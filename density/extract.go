package density

import (
	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/dom"
)

// ExtractText returns the main content text of doc.
//
// The region is anchored at the max-density-sum node: the mean density of
// its strict ancestors (root down to its immediate parent) becomes the
// threshold, and the tree is scanned in construction order for maximal runs
// of consecutive nodes with Density >= threshold and Sum > 0. The longest
// run by node count wins; the first one on ties. Text is pulled per node,
// NFC-normalized, deduplicated on exact match (an ancestor and its own
// descendant can both land in the run), and joined with single spaces.
//
// A tree with no qualifying nodes yields an empty string, not an error.
// Passing a document other than the one the tree was built from fails with
// ENODEACCESS.
func (t *Tree) ExtractText(doc *dom.Document) (string, error) {
	max := t.MaxDensitySumNode()
	if max == nil {
		return "", nil
	}

	best := t.selectRegion(t.ancestorMeanDensity(max))

	seen := make(map[string]struct{})
	var fragments []string
	for _, i := range best {
		text, err := doc.Text(t.nodes[i].ID)
		if err != nil {
			return "", err
		}
		text = cetd.NormalizeText(text)
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		fragments = append(fragments, text)
	}
	return cetd.JoinFragments(fragments), nil
}

// selectRegion returns the arena indices of the longest contiguous run of
// nodes, in construction order, with Density >= threshold and Sum > 0.
// Leaves always fail the Sum > 0 arm, so every leaf terminates a run; a
// below-threshold node between two qualifying stretches keeps them separate
// candidate blocks. First run wins ties.
func (t *Tree) selectRegion(threshold float32) []int {
	var best, current []int
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.Density >= threshold && n.Sum > 0 {
			current = append(current, i)
			continue
		}
		if len(current) > len(best) {
			best = current
		}
		current = nil
	}
	if len(current) > len(best) {
		best = current
	}
	return best
}

// ancestorMeanDensity returns the mean density of n's strict ancestors,
// or n's own density when it is the root.
func (t *Tree) ancestorMeanDensity(n *Node) float32 {
	var sum float32
	var count int
	for p := n.parent; p >= 0; p = t.nodes[p].parent {
		sum += t.nodes[p].Density
		count++
	}
	if count == 0 {
		return n.Density
	}
	return sum / float32(count)
}

// Text runs the full pipeline for doc — build, density, density sum,
// extraction — and returns the extracted content.
func Text(doc *dom.Document) (string, error) {
	t, err := FromDocument(doc)
	if err != nil {
		return "", err
	}
	t.CalculateDensitySum()
	return t.ExtractText(doc)
}
