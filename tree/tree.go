/*
Package tree implements an all-purpose tree type.

Nodes carry a payload of a type parameter. Clients usually embed a
tree.Node in their own node type and let the payload reference the
embedding node, like this:

    type MyNode struct {
        tree.Node[*MyNode]
        …
    }

    n := &MyNode{}
    n.Payload = n

Trees are walked synchronously in document order (pre-order). The walker
keeps an explicit stack, thus the depth of a tree is not limited by the
goroutine stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.tree'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.tree")
}

// ErrEmptyTree is returned if a walk is started at a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrSkipChildren may be returned by a visitor to prevent the walker from
// descending into the children of the current node.
var ErrSkipChildren = errors.New("skip children")

// ErrStopWalk may be returned by a visitor to end a walk early. Walk will
// not report it as an error.
var ErrStopWalk = errors.New("stop walking")

// Predicate is a function type to match against nodes of a tree.
type Predicate[T comparable] func(test *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return true
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) bool {
		return test.ChildCount() == 0
	}
}

// Walk visits the sub-tree starting at node in pre-order. The visitor
// function receives every node and its depth relative to node.
// If visit returns ErrSkipChildren, the children of the current node will
// not be visited. ErrStopWalk ends the walk without an error. Every other
// error ends the walk and is returned to the caller.
func Walk[T comparable](node *Node[T], visit func(n *Node[T], depth int) error) error {
	if node == nil {
		return ErrEmptyTree
	}
	type frame struct {
		n     *Node[T]
		depth int
	}
	stack := []frame{{node, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		err := visit(top.n, top.depth)
		if err == ErrStopWalk {
			return nil
		} else if err == ErrSkipChildren {
			continue
		} else if err != nil {
			tracer().Debugf("walk interrupted at depth %d: %v", top.depth, err)
			return err
		}
		for i := len(top.n.children) - 1; i >= 0; i-- { // push in reverse for document order
			stack = append(stack, frame{top.n.children[i], top.depth + 1})
		}
	}
	return nil
}

// FindFirst returns the first node in pre-order matching a predicate,
// or nil.
func FindFirst[T comparable](node *Node[T], pred Predicate[T]) *Node[T] {
	var found *Node[T]
	Walk(node, func(n *Node[T], _ int) error {
		if pred(n) {
			found = n
			return ErrStopWalk
		}
		return nil
	})
	return found
}

// FindAll returns all nodes in pre-order matching a predicate.
func FindAll[T comparable](node *Node[T], pred Predicate[T]) []*Node[T] {
	var found []*Node[T]
	Walk(node, func(n *Node[T], _ int) error {
		if pred(n) {
			found = append(found, n)
		}
		return nil
	})
	return found
}

// Count returns the number of nodes in the sub-tree starting at node,
// including node itself.
func Count[T comparable](node *Node[T]) int {
	cnt := 0
	Walk(node, func(*Node[T], int) error {
		cnt++
		return nil
	})
	return cnt
}
