package dom

import (
	"strings"

	"github.com/npillmayer/minihtml/maybe"
)

// Text returns the visible text of a sub-tree: inner texts and after texts of
// all descendants, in document order. Comments, doctypes and the content of
// RawText elements (scripts, styles) are skipped. A <br> contributes a
// newline, an <hr> contributes two newlines.
func (n *Node) Text() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	switch n.kind {
	case CommentNode, DoctypeNode, RawTextNode:
		return
	case SingleNode:
		switch n.name {
		case "br":
			sb.WriteString("\n")
		case "hr":
			sb.WriteString("\n\n")
		}
		return
	}
	sb.WriteString(n.inner)
	for _, ch := range n.Children() {
		ch.writeText(sb)
		sb.WriteString(ch.after)
	}
}

// NewDocumentTemplate creates a minimal HTML5 document:
//
//     <!DOCTYPE html><html><head><meta charset="utf-8"><title>…</title></head><body></body></html>
//
func NewDocumentTemplate(title string) *Node {
	doc := NewDocument()
	html := NewTag("html")
	head := NewTag("head")
	meta := NewSingle("meta")
	meta.SetAttribute("charset", "utf-8")
	t := NewTag("title")
	t.inner = title
	head.AddChild(meta)
	head.AddChild(t)
	html.AddChild(head)
	html.AddChild(NewTag("body"))
	doc.AddChild(NewDoctype("html"))
	doc.AddChild(html)
	return doc
}

// Equal compares two sub-trees structurally: kinds, names, attributes (in
// order), inner and after texts, and children.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	type pair struct{ x, y *Node }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !shallowEqual(p.x, p.y) {
			tracer().Debugf("nodes differ: %s vs %s", p.x, p.y)
			return false
		}
		for i := 0; i < p.x.ChildCount(); i++ {
			stack = append(stack, pair{p.x.Child(i), p.y.Child(i)})
		}
	}
	return true
}

func shallowEqual(x, y *Node) bool {
	if x.kind != y.kind || x.name != y.name || x.inner != y.inner || x.after != y.after {
		return false
	}
	if len(x.attrs) != len(y.attrs) || x.ChildCount() != y.ChildCount() {
		return false
	}
	for i := range x.attrs {
		if x.attrs[i].Key != y.attrs[i].Key {
			return false
		}
		if !maybe.Equal(optional(x.attrs[i].Value), optional(y.attrs[i].Value)) {
			return false
		}
	}
	return true
}

func optional(v maybe.Maybe[string]) maybe.Maybe[string] {
	if v == nil {
		return maybe.Nothing[string]()
	}
	return v
}
