package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of mutable nodes. Each nodes carries a payload of type parameter T.
Nodes maintain a compact slice of children; sibling order is the order within
this slice, thus there are no sibling links to keep in sync.

Trees are not safe for concurrent modification. Clients owning a tree are
expected to serialize access to it.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // ordered children, never containing nil
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node at the end of the list of children.
// If ch is currently attached to another parent, it is isolated first.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.Isolate()
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. Positions beyond the end append the child.
// If ch is currently attached to another parent, it is isolated first.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	if ch.parent == node { // moving within the same parent shifts positions
		if j := node.IndexOfChild(ch); j < i {
			i--
		}
	}
	ch.Isolate()
	if i < 0 {
		i = 0
	}
	if i >= len(node.children) {
		node.children = append(node.children, ch)
	} else {
		node.children = append(node.children, nil)   // make room for one child
		copy(node.children[i+1:], node.children[i:]) // shift i+1..n
		node.children[i] = ch
	}
	ch.parent = node
	return node
}

// RemoveChild detaches a child from node. It returns false if ch is not a
// child of node.
func (node *Node[T]) RemoveChild(ch *Node[T]) bool {
	i := node.IndexOfChild(ch)
	if i < 0 {
		return false
	}
	copy(node.children[i:], node.children[i+1:])
	node.children[len(node.children)-1] = nil
	node.children = node.children[:len(node.children)-1]
	ch.parent = nil
	return true
}

// ClearChildren detaches all children from node.
func (node *Node[T]) ClearChildren() {
	for _, ch := range node.children {
		ch.parent = nil
	}
	node.children = nil
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		node.parent.RemoveChild(node)
	}
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return len(node.children)
}

// Child returns the n-th child of a node. Negative values of n are
// not accepted.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || len(node.children) <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node.
// The slice is a copy and may be modified by the client.
func (node *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	if ch == nil || ch.parent != node {
		return -1
	}
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// PrevSibling returns the sibling before node, or nil.
func (node *Node[T]) PrevSibling() *Node[T] {
	if node.parent == nil {
		return nil
	}
	if i := node.parent.IndexOfChild(node); i > 0 {
		return node.parent.children[i-1]
	}
	return nil
}

// NextSibling returns the sibling after node, or nil.
func (node *Node[T]) NextSibling() *Node[T] {
	if node.parent == nil {
		return nil
	}
	i := node.parent.IndexOfChild(node)
	if i >= 0 && i+1 < len(node.parent.children) {
		return node.parent.children[i+1]
	}
	return nil
}

// IsAncestorOf is a predicate: is node identical to ch or one of ch's
// ancestors?
func (node *Node[T]) IsAncestorOf(ch *Node[T]) bool {
	for n := ch; n != nil; n = n.parent {
		if n == node {
			return true
		}
	}
	return false
}

// Depth returns the number of ancestors of node.
func (node *Node[T]) Depth() int {
	d := 0
	for n := node.parent; n != nil; n = n.parent {
		d++
	}
	return d
}
