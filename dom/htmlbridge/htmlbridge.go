/*
Package htmlbridge converts between minihtml document trees and the node
trees of package golang.org/x/net/html.

This allows clients to parse documents with a standards-compliant HTML5
parser and then query them with package selector, or to render minihtml
trees with html.Render.

The two tree models differ in how they represent text: x/net/html uses
text nodes, minihtml attaches text to the element preceding it (see
package dom). Conversions move text accordingly. x/net/html does not
distinguish boolean attributes from attributes with an empty value;
FromHTML converts attributes with an empty value to boolean attributes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlbridge

import (
	"fmt"
	"io"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/maybe"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'minihtml.dom'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.dom")
}

// ParseHTML5 parses a document with the HTML5 parser of x/net/html and
// converts the result.
func ParseHTML5(r io.Reader) (*dom.Node, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("html5 parser: %w", err)
	}
	return FromHTML(h), nil
}

// FromHTML converts an x/net/html sub-tree. Nodes of type html.ErrorNode
// and html.RawNode are dropped. Text nodes at the top of the sub-tree
// result in a document node holding the text.
func FromHTML(h *html.Node) *dom.Node {
	if h == nil {
		return nil
	}
	n := convert(h)
	if n == nil {
		n = dom.NewDocument()
		if h.Type == html.TextNode {
			n.SetInnerText(h.Data)
		}
		return n
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		fromHTML(c, n)
	}
	return n
}

func fromHTML(h *html.Node, parent *dom.Node) {
	if h.Type == html.TextNode {
		if last := parent.LastChild(); last != nil {
			last.AppendAfterText(h.Data)
		} else if err := parent.AppendInnerText(h.Data); err != nil {
			tracer().Errorf("htmlbridge: text for <%s> dropped: %v", parent.Name(), err)
		}
		return
	}
	n := convert(h)
	if n == nil {
		return
	}
	if err := parent.AddChild(n); err != nil {
		tracer().Errorf("htmlbridge: node %s dropped: %v", n, err)
		return
	}
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		fromHTML(c, n)
	}
}

// convert creates a childless node for h, or nil if h has no counterpart.
func convert(h *html.Node) *dom.Node {
	switch h.Type {
	case html.DocumentNode:
		return dom.NewDocument()
	case html.CommentNode:
		return dom.NewComment(h.Data)
	case html.DoctypeNode:
		return dom.NewDoctype(h.Data)
	case html.ElementNode:
		n := dom.NewElement(h.Data)
		for _, a := range h.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + "-" + a.Key
			}
			n.SetAttr(key, maybe.Of(a.Val, a.Val != ""))
		}
		return n
	}
	return nil
}

// ToHTML converts a minihtml sub-tree to an x/net/html tree. Inner texts
// and after texts become text nodes.
func ToHTML(n *dom.Node) *html.Node {
	if n == nil {
		return nil
	}
	h := toHTML(n)
	if n.Kind() == dom.DocumentNode || n.AfterText() == "" {
		return h
	}
	// after text of the root needs a container
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(h)
	doc.AppendChild(textNode(n.AfterText()))
	return doc
}

func toHTML(n *dom.Node) *html.Node {
	var h *html.Node
	switch n.Kind() {
	case dom.DocumentNode:
		h = &html.Node{Type: html.DocumentNode}
	case dom.CommentNode:
		return &html.Node{Type: html.CommentNode, Data: n.InnerText()}
	case dom.DoctypeNode:
		return &html.Node{Type: html.DoctypeNode, Data: n.InnerText()}
	default:
		h = &html.Node{
			Type:     html.ElementNode,
			Data:     n.Name(),
			DataAtom: atom.Lookup([]byte(n.Name())),
		}
		for _, a := range n.Attributes() {
			h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: a.Value.WithDefault("")})
		}
	}
	if t := n.InnerText(); t != "" {
		h.AppendChild(textNode(t))
	}
	for _, ch := range n.Children() {
		h.AppendChild(toHTML(ch))
		if t := ch.AfterText(); t != "" {
			h.AppendChild(textNode(t))
		}
	}
	return h
}

func textNode(t string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: t}
}
