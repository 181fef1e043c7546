package density

import "math"

// denominator clamps a count to at least one before it is used as a
// divisor, and converts it to float.
func denominator(v int) float64 {
	if v == 0 {
		return 1
	}
	return float64(v)
}

// saturatingSub returns a-b, floored at zero. Link character counts can
// exceed total character counts in some HTML structures.
func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// CompositeDensity computes the composite text density of a node from its
// own aggregated metrics and the body's, following the CETD formula:
//
//	density = log_base(  (ci/lcb) * (ti/lti) ) * (ci/ti)
//	base    = ln( (ci/nlci)*lci + (lcb/cb)*ci + e )
//
// where ci/ti/lci/lti are the node's char, tag, link-char and link-tag
// counts, nlci the non-link char count, and cb/lcb the body's char and
// link-char counts. A node with no text has density zero.
//
// Every denominator is clamped to at least one, including lcb: the
// reference formula leaves lcb unclamped, which turns the whole expression
// infinite on pages whose body contains no link text. The density here is
// total and finite for all non-negative inputs.
func CompositeDensity(m, body Metrics) float32 {
	if m.CharCount == 0 {
		return 0
	}

	// labeled same as in the paper's formula
	ci := float64(m.CharCount)
	ti := denominator(m.TagCount)
	nlci := denominator(saturatingSub(m.CharCount, m.LinkCharCount))
	lci := float64(m.LinkCharCount)
	cb := denominator(body.CharCount)
	lcb := denominator(body.LinkCharCount)
	lti := denominator(m.LinkTagCount)

	base := ci / ti

	ln1 := (ci / nlci) * lci
	ln2 := (lcb / cb) * ci

	// ln1 and ln2 are non-negative, so logBase >= ln(e) = 1 and value > 0.
	logBase := math.Log(ln1 + ln2 + math.E)
	value := (ci / lcb) * (ti / lti)

	return float32(math.Log(value) / logBase * base)
}

// CalculateDensity computes Density for every node. The body's aggregated
// metrics are captured once from the root and passed explicitly into the
// per-node computation, which keeps CompositeDensity pure and independently
// testable.
func (t *Tree) CalculateDensity() {
	if len(t.nodes) == 0 {
		return
	}
	body := t.nodes[0].Metrics
	for i := range t.nodes {
		t.nodes[i].Density = CompositeDensity(t.nodes[i].Metrics, body)
	}
}
