/*
Package stream provides sequential, optionally seekable byte streams which
act as a source for the HTML parser and as a sink for the HTML writer.

A stream announces what it is able to do through its capabilities:

    Readable   NextChar and Read are functional
    Writable   PutChar and Write are functional
    Seekable   Seek is functional

There are three backends: a growable in-memory Buffer, a fixed read-only
String, and File, which forwards to an OS file. All of them satisfy
io.Reader, io.Writer, io.Seeker and io.ByteReader, thus streams may be
handed to any code consuming the standard I/O interfaces.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.stream'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.stream")
}
