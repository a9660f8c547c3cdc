/*
Package selector queries document trees with a small, CSS-like pattern
language.

A pattern is a list of segments, separated by white space. Consecutive
segments are joined by the descendant combinator. Each segment may filter
by element name, by the value of the class attribute and by the value of
the id attribute, and may carry an index:

    div.content#main p[2]
    ul li[-1]
    .note

Class and id are compared against the complete attribute value. An index
[n] selects the n-th match (zero-based) among the children of one element;
a negative index [-n] counts from the last child backwards. Without an
index, every match is selected.

Selections are lazy: nodes are produced one at a time by Selection.Next,
and a selection may be abandoned at any time. The traversal keeps an
explicit stack of tasks, thus there is no recursion on the depth of the
tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.selector'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.selector")
}
