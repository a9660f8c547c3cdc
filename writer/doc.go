/*
Package writer serializes document trees as HTML text.

Serialization is the inverse of package parser, up to structural
equivalence: re-parsing the output of the writer yields an equal tree.
Byte-exact reproduction of the original input is not a goal; for example,
unquoted attribute values are always written quoted.

Attribute values are escaped with backslash sequences, which is the
convention understood by the parser, not HTML character references.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package writer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.writer'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.writer")
}
