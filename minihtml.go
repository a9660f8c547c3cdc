package minihtml

import (
	"context"
	"fmt"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/fetch"
	"github.com/npillmayer/minihtml/parser"
	"github.com/npillmayer/minihtml/selector"
	"github.com/npillmayer/minihtml/writer"
)

// ParseString parses an HTML document held in a string.
func ParseString(html string, opts ...parser.Option) (*dom.Node, error) {
	return parser.ParseString(html, opts...)
}

// ParseFile parses an HTML file.
func ParseFile(path string, opts ...parser.Option) (*dom.Node, error) {
	return parser.ParseFile(path, opts...)
}

// Fetch loads an HTML document with an HTTP GET request and parses it.
// If client is nil, a client with default settings is used.
func Fetch(ctx context.Context, client *fetch.Client, url string, opts ...parser.Option) (*dom.Node, error) {
	if client == nil {
		var err error
		if client, err = fetch.NewClient(); err != nil {
			return nil, err
		}
	}
	resp, err := client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsing %d bytes from %s", resp.Body.Len(), resp.URL)
	doc, err := parser.New(opts...).Parse(resp.Body)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", resp.URL, err)
	}
	return doc, nil
}

// RenderString serializes a document tree.
func RenderString(n *dom.Node) string {
	return writer.String(n)
}

// RenderFile writes a document tree to a file.
func RenderFile(path string, n *dom.Node) error {
	return writer.WriteFile(path, n)
}

// Find returns the first node matching a selector pattern.
// If no node matches, dom.ErrItemNotFound is returned.
func Find(root *dom.Node, pattern string) (*dom.Node, error) {
	return selector.Find(root, pattern)
}

// Select returns up to max nodes matching a selector pattern, or all
// matching nodes for a max of 0.
func Select(root *dom.Node, pattern string, max int) ([]*dom.Node, error) {
	return selector.Collect(root, pattern, max)
}
