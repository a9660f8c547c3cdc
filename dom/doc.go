/*
Package dom implements the node tree of parsed HTML documents.

Overview

A document is a tree of nodes. Every node has a kind, which decides about the
facets a node may have:

    Kind        name  attributes  text  children
    ---------------------------------------------
    Document                      x     x
    Tag         x     x           x     x
    Single      x     x
    RawText     x     x           x
    Comment                       x
    Doctype                       x

Single nodes are elements without a closing tag and without children, like
<br> or <img>. RawText nodes are <script> and <style> elements, whose body is
kept verbatim as the node's inner text.

Text is not represented by separate nodes. Every node owns the text
immediately following its start (inner text) and the text between its end
and the start of its next sibling (after text). For

    <p>Hello <b>World</b>!</p>

the <p> node has inner text "Hello ", the <b> node has inner text "World"
and after text "!".

Tree Implementation

Nodes are built on top of a general purpose tree type (package tree), by
composition: a dom.Node includes a generic tree node and sets the payload
to point back to itself. Use NodeOf() to get the dom.Node from a generic
tree node.

Nodes are not safe for concurrent use. Do not modify a tree while a
selection or a writer is traversing it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.dom'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.dom")
}
