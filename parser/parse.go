package parser

import (
	"fmt"
	"io"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/stream"
)

// ParseString parses HTML held in a string, using default options.
func ParseString(html string, opts ...Option) (*dom.Node, error) {
	return New(opts...).Parse(stream.NewString(html))
}

// ParseReader reads all of r into a buffer and parses it.
func ParseReader(r io.Reader, opts ...Option) (*dom.Node, error) {
	buf := stream.NewBuffer(4096)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, fmt.Errorf("html parser: cannot read input: %w", err)
	}
	buf.Seek(0, io.SeekStart)
	return New(opts...).Parse(buf)
}

// ParseFile parses an HTML file.
func ParseFile(path string, opts ...Option) (*dom.Node, error) {
	f, err := stream.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return New(opts...).Parse(f)
}
