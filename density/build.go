package density

import (
	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/dom"
	"golang.org/x/net/html"
)

// Build constructs the density tree for doc, rooted at its body element,
// and aggregates metrics bottom-up. Excluded nodes (comments, doctypes,
// script/style/noscript subtrees) are never visited. After Build, every
// node's CharCount and TagCount cover its entire retained subtree.
func Build(doc *dom.Document) (*Tree, error) {
	bodyID, ok := doc.Body()
	if !ok {
		return nil, cetd.Errorf(cetd.EINVALID, "document has no body element")
	}
	body, err := doc.Node(bodyID)
	if err != nil {
		return nil, err
	}

	t := &Tree{byID: make(map[dom.NodeID]int)}
	t.append(bodyID, -1)
	t.build(doc, body, 0)
	return t, nil
}

// FromDocument builds the tree and computes densities in one step,
// leaving only the density-sum pass to the caller.
func FromDocument(doc *dom.Document) (*Tree, error) {
	t, err := Build(doc)
	if err != nil {
		return nil, err
	}
	t.CalculateDensity()
	return t, nil
}

// append adds a node to the arena and wires it to its parent. Arena order
// is pre-order: a node is appended before any of its descendants.
func (t *Tree) append(id dom.NodeID, parent int) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, Node{ID: id, parent: parent})
	t.byID[id] = idx
	if parent >= 0 {
		t.nodes[parent].children = append(t.nodes[parent].children, idx)
	}
	return idx
}

// build finalizes children first: each child's fully aggregated metrics are
// folded into this node as the child completes. The node's own local
// metrics are added after. Text directly under an anchor is flagged as link
// text — one level deep only, since deeper descendants already flowed into
// the anchor's own counts.
func (t *Tree) build(doc *dom.Document, n *html.Node, idx int) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !retained(c) {
			continue
		}
		id, ok := doc.ID(c)
		if !ok {
			continue
		}
		ci := t.append(id, idx)
		t.build(doc, c, ci)
	}

	node := &t.nodes[idx]
	node.Metrics.Combine(localMetrics(n))

	if p := n.Parent; p != nil && p.Type == html.ElementNode && p.Data == "a" {
		node.Metrics.LinkCharCount += node.Metrics.CharCount
	}

	if node.parent >= 0 {
		t.nodes[node.parent].Metrics.Combine(node.Metrics)
	}
}
