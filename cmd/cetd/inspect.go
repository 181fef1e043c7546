package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fwojciec/cetd"
	"github.com/fwojciec/cetd/density"
	"github.com/fwojciec/cetd/dom"
	"golang.org/x/net/html"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	rawHTML, err := readInput(deps, c.URL, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
		return err
	}

	doc, err := dom.ParseString(rawHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
		return err
	}

	tree, err := density.Build(doc)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cetd.ErrorMessage(err))
		return err
	}
	tree.CalculateDensity()
	tree.CalculateDensitySum()

	nodes := tree.SortedNodes()
	if len(nodes) == 0 {
		fmt.Fprintln(deps.Stderr, "no text-bearing nodes found")
		return nil
	}

	top := c.Top
	if top <= 0 || top > len(nodes) {
		top = len(nodes)
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NODE\tDENSITY\tSUM\tCHARS/TAG\tCHARS\tTAGS\tLINK CHARS\tLINK TAGS")

	// SortedNodes is ascending; show the densest nodes first.
	for i := len(nodes) - 1; i >= len(nodes)-top; i-- {
		n := nodes[i]
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.1f\t%d\t%d\t%d\t%d\n",
			nodeLabel(doc, n),
			n.Density,
			n.Sum,
			n.Metrics.SimpleDensity(),
			n.Metrics.CharCount,
			n.Metrics.TagCount,
			n.Metrics.LinkCharCount,
			n.Metrics.LinkTagCount,
		)
	}

	return w.Flush()
}

// nodeLabel describes a density node for display.
func nodeLabel(doc *dom.Document, n *density.Node) string {
	hn, err := doc.Node(n.ID)
	if err != nil {
		return "?"
	}
	switch hn.Type {
	case html.ElementNode:
		return "<" + hn.Data + ">"
	case html.TextNode:
		return "#text"
	default:
		return "?"
	}
}
