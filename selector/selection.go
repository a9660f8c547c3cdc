package selector

import (
	"fmt"

	"github.com/npillmayer/minihtml/dom"
)

// task is a frame of the traversal stack: it iterates over the children of
// one node, trying to satisfy one pattern segment.
type task struct {
	pattern *Pattern
	parent  *dom.Node
	cursor  int       // index of the next child
	step    int       // +1 or -1
	counter int       // matches seen so far at this level; negative if reverse
	pending *dom.Node // reverse scans: child to consider after its sub-tree
}

func newTask(p *Pattern, parent *dom.Node) *task {
	t := &task{pattern: p, parent: parent, step: 1}
	if p.reverse() {
		t.cursor, t.step, t.counter = parent.ChildCount()-1, -1, -1
	}
	return t
}

func (t *task) nextChild() *dom.Node {
	if t.cursor < 0 || t.cursor >= t.parent.ChildCount() {
		return nil
	}
	c := t.parent.Child(t.cursor)
	t.cursor += t.step
	return c
}

func (t *task) advance() {
	t.counter += t.step
}

// Selection is a lazy sequence of nodes matching a pattern.
// A selection must not be used after the tree it operates on has been
// modified.
type Selection struct {
	stack []*task
	seen  map[*dom.Node]struct{}
}

// Select starts a query for pattern p below root. root itself is never
// part of the result.
func Select(root *dom.Node, p *Pattern) *Selection {
	s := &Selection{seen: make(map[*dom.Node]struct{})}
	if root != nil && p != nil {
		s.push(newTask(p, root))
	}
	return s
}

// Done is true if the selection is known to be exhausted.
func (s *Selection) Done() bool {
	return len(s.stack) == 0
}

func (s *Selection) top() *task {
	return s.stack[len(s.stack)-1]
}

func (s *Selection) push(t *task) {
	s.stack = append(s.stack, t)
}

func (s *Selection) pop() {
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
}

// Next returns the next matching node, or nil if the selection is exhausted.
func (s *Selection) Next() *dom.Node {
	for len(s.stack) > 0 {
		t := s.top()
		if t.pending != nil {
			c := t.pending
			t.pending = nil
			if n := s.consider(t, c); n != nil {
				return n
			}
			continue
		}
		c := t.nextChild()
		if c == nil {
			s.pop()
			continue
		}
		if c.Kind() == dom.DocumentNode {
			s.push(newTask(t.pattern, c))
			continue
		}
		if t.pattern.next != nil {
			s.descend(t, c)
			continue
		}
		if t.pattern.reverse() && c.Kind() == dom.TagNode {
			t.pending = c
			s.push(newTask(t.pattern, c))
			continue
		}
		n := s.consider(t, c)
		if c.Kind() == dom.TagNode {
			s.push(newTask(t.pattern, c))
		}
		if n != nil {
			return n
		}
	}
	return nil
}

// descend handles a child for a segment which has a successor.
func (s *Selection) descend(t *task, c *dom.Node) {
	if c.Kind() != dom.TagNode {
		return
	}
	if t.pattern.matches(c) {
		if t.counter == t.pattern.index {
			if t.pattern.targeted {
				tracer().Debugf("selector: %s targets <%s>", t.pattern.name, c.Name())
				// the task is retired without a same-pattern search below c:
				// the successor task already visits all descendants of c
				s.pop()
				s.push(newTask(t.pattern.next, c))
				return
			}
			s.push(newTask(t.pattern, c))
			s.push(newTask(t.pattern.next, c))
			return
		}
		t.advance()
	}
	s.push(newTask(t.pattern, c))
}

// consider checks a candidate for a terminal segment. If the candidate is
// to be yielded, it is returned. A targeted task is retired with its answer,
// which requires t to be the top of the stack.
func (s *Selection) consider(t *task, c *dom.Node) *dom.Node {
	if !t.pattern.matches(c) {
		return nil
	}
	if t.counter != t.pattern.index {
		t.advance()
		return nil
	}
	if t.pattern.targeted {
		s.pop()
	}
	if _, dup := s.seen[c]; dup {
		return nil
	}
	s.seen[c] = struct{}{}
	return c
}

// Collect returns up to max nodes below root which match a pattern. A max
// of 0 collects all matches.
func Collect(root *dom.Node, pattern string, max int) ([]*dom.Node, error) {
	if root == nil {
		return nil, dom.ErrNullArgument
	}
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	var result []*dom.Node
	sel := Select(root, p)
	for max <= 0 || len(result) < max {
		n := sel.Next()
		if n == nil {
			break
		}
		result = append(result, n)
	}
	return result, nil
}

// Find returns the first node below root which matches a pattern. If
// there is no match, dom.ErrItemNotFound is returned.
func Find(root *dom.Node, pattern string) (*dom.Node, error) {
	if root == nil {
		return nil, dom.ErrNullArgument
	}
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	if n := Select(root, p).Next(); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("selector %q: %w", pattern, dom.ErrItemNotFound)
}
