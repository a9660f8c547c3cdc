/*
Package minihtml parses HTML into a lightweight document tree, queries
the tree with a small selector language and writes it back as HTML.

This package bundles the most common operations of the sub-packages:

    doc, err := minihtml.ParseString(`<div class="a"><p>hi</p><p>bye</p></div>`)
    p, err := minihtml.Find(doc, "div.a p[1]")   // <p>bye</p>
    fmt.Println(minihtml.RenderString(p))

Package parser builds document trees from streams (package stream),
package dom holds the document model, package selector implements queries
and package writer serializes trees. Package fetch loads documents over
HTTP.

The parser is lenient and does not implement the HTML5 tree construction
rules. For standards-compliant parsing, see package dom/htmlbridge.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package minihtml

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml")
}
