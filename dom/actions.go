package dom

import (
	"github.com/npillmayer/minihtml/tree"
)

// NodeIsElement is a predicate to match element nodes (tags, single tags and
// raw-text tags) of a DOM.
var NodeIsElement tree.Predicate[*Node] = func(n *tree.Node[*Node]) bool {
	return NodeOf(n).kind.IsElement()
}

// NodeHasName returns a predicate to match elements by name.
func NodeHasName(name string) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return NodeOf(n).name == name
	}
}

// NodeHasAttribute returns a predicate to match nodes carrying an attribute.
func NodeHasAttribute(key string) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return NodeOf(n).HasAttribute(key)
	}
}

// NodeIsKind returns a predicate to match nodes of a given kind.
func NodeIsKind(kind Kind) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) bool {
		return NodeOf(n).kind == kind
	}
}

// FindAll returns all nodes of the sub-tree starting at n which match a
// predicate, in document order.
func (n *Node) FindAll(pred tree.Predicate[*Node]) []*Node {
	found := tree.FindAll(&n.Node, pred)
	nodes := make([]*Node, len(found))
	for i, f := range found {
		nodes[i] = NodeOf(f)
	}
	return nodes
}

// FindFirst returns the first node in document order matching a predicate,
// or nil.
func (n *Node) FindFirst(pred tree.Predicate[*Node]) *Node {
	return NodeOf(tree.FindFirst(&n.Node, pred))
}

// CountElements returns the number of element nodes below n.
func (n *Node) CountElements() int {
	cnt := 0
	tree.Walk(&n.Node, func(t *tree.Node[*Node], depth int) error {
		if depth > 0 && NodeOf(t).kind.IsElement() {
			cnt++
		}
		return nil
	})
	return cnt
}
