package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/minihtml/tree"
)

// ErrNullArgument is returned if a required node or name is missing.
var ErrNullArgument = errors.New("argument must not be nil or empty")

// ErrItemNotFound is returned if an attribute or a node could not be found.
var ErrItemNotFound = errors.New("item not found")

// ErrNoChildren is returned if a child is added to a node whose kind
// cannot have children.
var ErrNoChildren = errors.New("node kind cannot have children")

// ErrNoAttributes is returned if an attribute is set for a node whose kind
// cannot have attributes.
var ErrNoAttributes = errors.New("node kind cannot have attributes")

// ErrNoText is returned if inner text is set for a node whose kind cannot
// carry inner text.
var ErrNoText = errors.New("node kind cannot have inner text")

// ErrCycle is returned if a node is to become a descendant of itself.
var ErrCycle = errors.New("node cannot be inserted into its own sub-tree")

// ErrDocumentChild is returned if a document is to be inserted as a child.
var ErrDocumentChild = errors.New("document node cannot be a child")

// ErrNotAChild is returned if a reference node is not a child of the node
// operated on.
var ErrNotAChild = errors.New("reference node is not a child")

// Node is a node of an HTML document tree.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	kind             Kind
	name             string
	inner            string
	after            string
	attrs            []Attr
}

// New creates a node of a given kind. name is used for element kinds only and
// is lowercased. If parent is non-nil, the new node is appended to the
// children of parent.
func New(kind Kind, name string, parent *Node) (*Node, error) {
	if kind == NoneNode {
		return nil, fmt.Errorf("cannot create node: %w", ErrNullArgument)
	}
	if kind.Has(HasName) && name == "" {
		return nil, fmt.Errorf("cannot create element without a name: %w", ErrNullArgument)
	}
	n := &Node{kind: kind}
	n.Payload = n // Payload will always reference the node itself
	if kind.Has(HasName) {
		n.name = strings.ToLower(name)
	}
	if parent != nil {
		if err := parent.AddChild(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func newNode(kind Kind, name string) *Node {
	n := &Node{kind: kind, name: strings.ToLower(name)}
	n.Payload = n
	return n
}

// NewDocument creates an empty document node.
func NewDocument() *Node {
	return newNode(DocumentNode, "")
}

// NewElement creates an element node, with the kind derived from the name
// (see KindForName).
func NewElement(name string) *Node {
	return newNode(KindForName(name), name)
}

// NewTag creates a regular element node.
func NewTag(name string) *Node {
	return newNode(TagNode, name)
}

// NewSingle creates an element node which has no closing tag.
func NewSingle(name string) *Node {
	return newNode(SingleNode, name)
}

// NewRawText creates an element node with verbatim content.
func NewRawText(name, content string) *Node {
	n := newNode(RawTextNode, name)
	n.inner = content
	return n
}

// NewComment creates a comment node.
func NewComment(text string) *Node {
	n := newNode(CommentNode, "")
	n.inner = text
	return n
}

// NewDoctype creates a doctype node; text is everything between
// "<!DOCTYPE " and ">", e.g. "html".
func NewDoctype(text string) *Node {
	n := newNode(DoctypeNode, "")
	n.inner = text
	return n
}

// NodeOf gets the dom node from a generic tree node.
func NodeOf(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// Kind returns the kind of the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Name returns the (lowercase) element name, or "" for non-elements.
func (n *Node) Name() string {
	return n.name
}

// DisplayName returns the element name, or a parenthesized description of
// the node kind.
func (n *Node) DisplayName() string {
	switch n.kind {
	case DocumentNode:
		return "(document)"
	case DoctypeNode:
		return "(doctype)"
	case CommentNode:
		return "(comment)"
	}
	return n.name
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.kind.Has(HasName) {
		return fmt.Sprintf("<%s>#%d", n.name, n.ChildCount())
	}
	return fmt.Sprintf("%s#%d", n.DisplayName(), n.ChildCount())
}

// --- Text ------------------------------------------------------------------

// InnerText returns the text owned directly by the node.
func (n *Node) InnerText() string {
	return n.inner
}

// AfterText returns the text following the node, up to the next sibling.
func (n *Node) AfterText() string {
	return n.after
}

// SetInnerText replaces the inner text of a node.
func (n *Node) SetInnerText(text string) error {
	if !n.kind.Has(HasText) {
		return fmt.Errorf("%s: %w", n.kind, ErrNoText)
	}
	n.inner = text
	return nil
}

// AppendInnerText appends to the inner text of a node.
func (n *Node) AppendInnerText(text string) error {
	if !n.kind.Has(HasText) {
		return fmt.Errorf("%s: %w", n.kind, ErrNoText)
	}
	n.inner += text
	return nil
}

// SetAfterText replaces the text following the node.
func (n *Node) SetAfterText(text string) {
	n.after = text
}

// AppendAfterText appends to the text following the node.
func (n *Node) AppendAfterText(text string) {
	n.after += text
}

// --- Navigation ------------------------------------------------------------

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return NodeOf(n.Node.Parent())
}

// Child returns the i-th child, or nil.
func (n *Node) Child(i int) *Node {
	ch, ok := n.Node.Child(i)
	if !ok {
		return nil
	}
	return NodeOf(ch)
}

// Children returns the children of a node. The slice is a copy.
func (n *Node) Children() []*Node {
	children := make([]*Node, n.ChildCount())
	for i := range children {
		children[i] = n.Child(i)
	}
	return children
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	return n.Child(0)
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	return n.Child(n.ChildCount() - 1)
}

// PrevSibling returns the previous sibling, or nil.
func (n *Node) PrevSibling() *Node {
	return NodeOf(n.Node.PrevSibling())
}

// NextSibling returns the next sibling, or nil.
func (n *Node) NextSibling() *Node {
	return NodeOf(n.Node.NextSibling())
}

// IndexOfChild returns the position of ch within the children of n,
// or -1.
func (n *Node) IndexOfChild(ch *Node) int {
	if ch == nil {
		return -1
	}
	return n.Node.IndexOfChild(&ch.Node)
}

// Root returns the top-most ancestor of n, usually a document.
func (n *Node) Root() *Node {
	r := n
	for p := r.Parent(); p != nil; p = p.Parent() {
		r = p
	}
	return r
}

// --- Structural mutation ---------------------------------------------------

// checkInsert validates that ch may become a child of n.
func (n *Node) checkInsert(ch *Node) error {
	if ch == nil {
		return ErrNullArgument
	}
	if !n.kind.Has(HasChildren) {
		return fmt.Errorf("cannot add child to %s: %w", n, ErrNoChildren)
	}
	if ch.kind == DocumentNode {
		return ErrDocumentChild
	}
	if ch.Node.IsAncestorOf(&n.Node) {
		return fmt.Errorf("cannot add %s to %s: %w", ch, n, ErrCycle)
	}
	return nil
}

// AddChild appends ch to the children of n. If ch has a parent, it is
// detached from it first.
func (n *Node) AddChild(ch *Node) error {
	if err := n.checkInsert(ch); err != nil {
		return err
	}
	n.Node.AddChild(&ch.Node)
	return nil
}

// InsertBefore inserts node as a child of n, in front of target. If target is
// nil, node is inserted as the first child.
func (n *Node) InsertBefore(target, node *Node) error {
	if err := n.checkInsert(node); err != nil {
		return err
	}
	if target == nil {
		n.Node.InsertChildAt(0, &node.Node)
		return nil
	}
	if target == node {
		return nil
	}
	i := n.IndexOfChild(target)
	if i < 0 {
		return fmt.Errorf("cannot insert before %s: %w", target, ErrNotAChild)
	}
	n.Node.InsertChildAt(i, &node.Node)
	return nil
}

// InsertAfter inserts node as a child of n, behind target. If target is
// nil, node is appended as the last child.
func (n *Node) InsertAfter(target, node *Node) error {
	if err := n.checkInsert(node); err != nil {
		return err
	}
	if target == nil {
		n.Node.AddChild(&node.Node)
		return nil
	}
	if target == node {
		return nil
	}
	i := n.IndexOfChild(target)
	if i < 0 {
		return fmt.Errorf("cannot insert after %s: %w", target, ErrNotAChild)
	}
	n.Node.InsertChildAt(i+1, &node.Node)
	return nil
}

// RemoveChild detaches ch from n. The sub-tree of ch stays intact.
func (n *Node) RemoveChild(ch *Node) error {
	if ch == nil {
		return ErrNullArgument
	}
	if !n.Node.RemoveChild(&ch.Node) {
		return fmt.Errorf("cannot remove %s from %s: %w", ch, n, ErrNotAChild)
	}
	return nil
}

// Detach removes n from its parent, if any, and returns n.
func (n *Node) Detach() *Node {
	n.Node.Isolate()
	return n
}

// ClearChildren detaches all children of n.
func (n *Node) ClearChildren() {
	n.Node.ClearChildren()
}

// DeepCopy returns a detached copy of the sub-tree starting at n.
func (n *Node) DeepCopy() *Node {
	c := newNode(n.kind, n.name)
	c.inner, c.after = n.inner, n.after
	if len(n.attrs) > 0 {
		c.attrs = make([]Attr, len(n.attrs))
		copy(c.attrs, n.attrs) // values are immutable
	}
	for _, ch := range n.Children() {
		c.Node.AddChild(&ch.DeepCopy().Node)
	}
	return c
}

// Destroy unlinks n from its parent and tears down its sub-tree, bottom-up.
// References to nodes of the sub-tree must not be used afterwards.
func (n *Node) Destroy() {
	n.Detach()
	var nodes []*Node
	tree.Walk(&n.Node, func(t *tree.Node[*Node], _ int) error {
		nodes = append(nodes, NodeOf(t))
		return nil
	})
	for i := len(nodes) - 1; i >= 0; i-- {
		d := nodes[i]
		d.ClearChildren()
		d.attrs = nil
		d.inner, d.after = "", ""
	}
	tracer().Debugf("destroyed %d nodes", len(nodes))
}
