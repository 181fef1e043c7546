package density

// CalculateDensitySum computes, for every node, the sum of its direct
// children's Density; leaves get zero. Run this strictly after
// CalculateDensity. The pass is a pure read of the density snapshot, so
// node order does not matter, and re-running it without re-running
// CalculateDensity yields identical sums.
//
// Summing over children ranks containers whose children are uniformly
// dense above any single dense leaf, biasing region selection toward
// content wrappers such as <article> rather than individual paragraphs.
func (t *Tree) CalculateDensitySum() {
	for i := range t.nodes {
		var sum float32
		for _, c := range t.nodes[i].children {
			sum += t.nodes[c].Density
		}
		t.nodes[i].Sum = sum
		t.nodes[i].HasSum = true
	}
}

// MaxDensitySumNode returns the node with the highest density sum, or nil
// if the tree is empty or CalculateDensitySum has not run. Ties resolve to
// the first node in construction order; the tie-break is not canonical.
func (t *Tree) MaxDensitySumNode() *Node {
	if len(t.nodes) == 0 || !t.nodes[0].HasSum {
		return nil
	}
	best := &t.nodes[0]
	for i := 1; i < len(t.nodes); i++ {
		if t.nodes[i].Sum > best.Sum {
			best = &t.nodes[i]
		}
	}
	return best
}
