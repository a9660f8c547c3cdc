/*
Package parser reads HTML from a stream and builds a document tree.

The parser is a hand-written state machine over a single forward cursor. It
is lenient in the way browsers used to be before HTML5: there is no
encoding sniffing and there are no implicit tags. A closing tag pops every
element up to the matching open element; a closing tag without a matching
open element is ignored and recorded as a diagnostic.

Text is not represented by nodes of its own, but attached to the preceding
element (see package dom). Text consisting of white space only, which is
followed by a tag, is dropped.

The elements <script> and <style> have their content read verbatim, up to
the closing tag. Void elements (br, hr, img, input, link, meta) never
have children.

Errors

If the input ends inside of a construct (a tag, an attribute value, a
comment, a doctype or a script), or if elements are still open at the end
of input, Parse returns an error wrapping ErrMalformedInput. The document
built so far is returned nevertheless.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.parser'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.parser")
}
