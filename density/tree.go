// Package density implements Content Extraction via Text Density (CETD).
// It mirrors a parsed HTML document into a parallel tree of per-node
// metrics, scores each node with a composite text-density formula, and
// selects the longest contiguous high-density region as the main content.
//
// The pipeline is a sequence of whole-tree passes over one Tree:
// Build → CalculateDensity → CalculateDensitySum → ExtractText. Topology is
// fixed after Build; the later passes only mutate per-node scalars. A Tree
// is bound to the dom.Document it was built from — querying it against a
// different document fails with ENODEACCESS.
package density

import (
	"sort"

	"github.com/fwojciec/cetd/dom"
)

// Node is one entry in a Tree: the density annotations for a single
// retained DOM node, joined to the document by its id.
type Node struct {
	ID      dom.NodeID
	Metrics Metrics

	// Density is the composite text density. Zero until CalculateDensity
	// runs.
	Density float32

	// Sum is the sum of the direct children's Density. Valid only when
	// HasSum is true, i.e. after CalculateDensitySum has run; the absence
	// is the "has the aggregation pass run" checkpoint.
	Sum    float32
	HasSum bool

	parent   int
	children []int
}

// Parent returns the arena index of the node's parent, or -1 for the root.
func (n *Node) Parent() int { return n.parent }

// Children returns the arena indices of the node's direct children.
func (n *Node) Children() []int {
	out := make([]int, len(n.children))
	copy(out, n.children)
	return out
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool { return len(n.children) == 0 }

// Tree is the density mirror of a document, rooted at its body element.
// Nodes are stored in an arena in the builder's pre-order; that order is
// the fixed traversal order region selection depends on.
type Tree struct {
	nodes []Node
	byID  map[dom.NodeID]int
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// At returns the node at arena index i, in construction order.
func (t *Tree) At(i int) *Node { return &t.nodes[i] }

// Root returns the body node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	if len(t.nodes) == 0 {
		return nil
	}
	return &t.nodes[0]
}

// NodeByID returns the density node joined to the given document node id.
func (t *Tree) NodeByID(id dom.NodeID) (*Node, bool) {
	i, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	return &t.nodes[i], true
}

// SortedNodes returns the tree's nodes ordered by density, ascending.
// Nodes with zero or negative density are skipped.
func (t *Tree) SortedNodes() []*Node {
	nodes := make([]*Node, 0, len(t.nodes))
	for i := range t.nodes {
		if t.nodes[i].Density > 0 {
			nodes = append(nodes, &t.nodes[i])
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Density < nodes[j].Density
	})
	return nodes
}
