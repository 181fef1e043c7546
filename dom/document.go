// Package dom provides an id-indexed adapter over HTML documents parsed
// with golang.org/x/net/html. Node ids are stable join keys: the density
// engine stores them instead of node pointers, so the two trees stay
// correlated without sharing structure.
package dom

import (
	"io"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/cetd"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// docSerial tags every parsed document so ids from one document can never
// silently resolve against another.
var docSerial atomic.Uint32

// NodeID identifies a node within the document it was issued by. The high
// 32 bits carry the document serial, the low 32 bits the node's index in
// pre-order.
type NodeID uint64

func (id NodeID) serial() uint32 { return uint32(id >> 32) }
func (id NodeID) index() int     { return int(uint32(id)) }

// Document is a parsed HTML document with an id arena over its nodes.
// The document is read-only after Parse.
type Document struct {
	serial uint32
	root   *html.Node
	nodes  []*html.Node
	ids    map[*html.Node]NodeID
}

// Parse reads and parses an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, cetd.Errorf(cetd.EINVALID, "failed to parse HTML: %v", err)
	}

	d := &Document{
		serial: docSerial.Add(1),
		root:   root,
		ids:    make(map[*html.Node]NodeID),
	}
	d.index(root)
	return d, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// index assigns ids in depth-first pre-order.
func (d *Document) index(n *html.Node) {
	id := NodeID(uint64(d.serial)<<32 | uint64(len(d.nodes)))
	d.ids[n] = id
	d.nodes = append(d.nodes, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.index(c)
	}
}

// Node resolves id to its node. Returns ENODEACCESS if the id was issued
// by a different document or is out of range, which indicates a density
// tree being queried against a document it was not built from.
func (d *Document) Node(id NodeID) (*html.Node, error) {
	if id.serial() != d.serial || id.index() >= len(d.nodes) {
		return nil, cetd.Errorf(cetd.ENODEACCESS, "node %d not found in document", uint64(id))
	}
	return d.nodes[id.index()], nil
}

// ID returns the id assigned to n. The second return value reports whether
// n belongs to this document.
func (d *Document) ID(n *html.Node) (NodeID, bool) {
	id, ok := d.ids[n]
	return id, ok
}

// Root returns the id of the document root node.
func (d *Document) Root() NodeID {
	return d.ids[d.root]
}

// Body returns the id of the document's <body> element. The parser
// guarantees a body for well-formed parses; ok is false only for documents
// parsed from fragments that lack one.
func (d *Document) Body() (NodeID, bool) {
	for _, n := range d.nodes {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			return d.ids[n], true
		}
	}
	return 0, false
}

// Text returns the concatenated text of all descendant text nodes of id,
// each trimmed, joined with single spaces. Empty fragments are skipped.
func (d *Document) Text(id NodeID) (string, error) {
	n, err := d.Node(id)
	if err != nil {
		return "", err
	}

	var fragments []string
	walk(n, func(c *html.Node) {
		if c.Type != html.TextNode {
			return
		}
		if t := strings.TrimSpace(c.Data); t != "" {
			fragments = append(fragments, t)
		}
	})
	return strings.Join(fragments, " "), nil
}

// Links returns the href attribute values of id and its descendants, in
// document order, trimmed. Used by debugging tools and the CLI, not by the
// density engine.
func (d *Document) Links(id NodeID) ([]string, error) {
	n, err := d.Node(id)
	if err != nil {
		return nil, err
	}

	var links []string
	walk(n, func(c *html.Node) {
		if c.Type != html.ElementNode {
			return
		}
		if href, ok := Attr(c, "href"); ok {
			links = append(links, strings.TrimSpace(href))
		}
	})
	return links, nil
}

// Render returns the markup of the subtree rooted at id.
func (d *Document) Render(id NodeID) (string, error) {
	n, err := d.Node(id)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return "", cetd.Errorf(cetd.EINTERNAL, "failed to render node %d: %v", uint64(id), err)
	}
	return sb.String(), nil
}

// Attr returns the value of the named attribute on n.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// walk visits n and all its descendants in pre-order.
func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}
