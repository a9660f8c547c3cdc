package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/minihtml/config"
	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/fetch"
	"github.com/npillmayer/minihtml/parser"
	"github.com/npillmayer/minihtml/stream"
)

var stdin io.Reader = os.Stdin

// loader reads documents with a fixed set of options.
type loader struct {
	opts   config.Options
	strict bool
	warn   io.Writer
}

func isURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// load reads and parses the document named by src, which is either an http(s)
// URL, a file path or "-" for standard input.
//
// Recoverable problems are traced. Malformed input is reported as a warning and
// the partial document is used, unless loading is strict.
func (l loader) load(ctx context.Context, src string) (*dom.Node, error) {
	in, closer, err := l.open(ctx, src)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer.Close()
	}
	p := parser.New(l.opts.ParserOptions()...)
	doc, err := p.Parse(in)
	for _, d := range p.Diagnostics() {
		tracer().Infof("%s: %v", src, d)
	}
	if err != nil && doc != nil && !l.strict && errors.Is(err, parser.ErrMalformedInput) {
		if l.warn != nil {
			fmt.Fprintf(l.warn, "warning: %s: %v\n", src, err)
		}
		return doc, nil
	}
	return doc, err
}

func (l loader) open(ctx context.Context, src string) (stream.Stream, io.Closer, error) {
	switch {
	case isURL(src):
		client, err := fetch.NewClient(l.opts.FetchOptions()...)
		if err != nil {
			return nil, nil, err
		}
		resp, err := client.Get(ctx, src)
		if err != nil {
			return nil, nil, err
		}
		tracer().Debugf("%s: %d bytes of %s", resp.URL, resp.Body.Len(), resp.ContentType)
		return resp.Body, nil, nil
	case src == "-":
		buf := stream.NewBuffer(4096)
		if _, err := io.Copy(buf, stdin); err != nil {
			return nil, nil, fmt.Errorf("reading standard input: %w", err)
		}
		buf.Seek(0, io.SeekStart)
		return buf, nil, nil
	}
	f, err := stream.OpenFile(src)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
