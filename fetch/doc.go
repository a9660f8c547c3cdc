/*
Package fetch loads HTML resources over HTTP.

A Client performs GET requests and buffers the response body in a
stream.Buffer, ready to be handed to the parser. Clients keep cookies
across requests and accept gzip-compressed responses.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fetch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.fetch'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.fetch")
}
