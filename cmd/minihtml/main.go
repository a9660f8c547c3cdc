/*
Command minihtml parses, queries and re-writes HTML documents.

Usage:

    minihtml parse  page.html
    minihtml find   page.html "div.content p[0]"
    minihtml select https://example.org "ul li a" --max 10
    minihtml render page.html --pretty -o out.html

Documents are read from files, from http(s) URLs or, for a name of "-",
from standard input. Settings are taken from a configuration file
minihtml.yaml, searched for in the current directory, in $HOME/.minihtml and
in $HOME/.config/minihtml. A different file may be named with --config.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.cmd")
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
