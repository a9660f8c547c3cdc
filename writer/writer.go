package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/stream"
	"github.com/yosssi/gohtml"
)

// escapes maps bytes of attribute values to their escaped representation.
// Bytes without an entry are written unchanged.
var escapes = [256]string{
	'\\': `\\`,
	'"':  `\"`,
	'\'': `\'`,
	'\t': `\t`,
	'\r': `\r`,
	'\n': `\n`,
	'\a': `\a`,
}

// htmlWriter carries the first write error, so that the tree walk does not
// have to check after every write.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) str(s string) {
	if hw.err != nil || s == "" {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) node(n *dom.Node) {
	switch n.Kind() {
	case dom.CommentNode:
		hw.str("<!--")
		hw.str(n.InnerText())
		hw.str("-->")
	case dom.DoctypeNode:
		hw.str("<!DOCTYPE ")
		hw.str(n.InnerText())
		hw.str(">")
	case dom.DocumentNode:
		hw.str(n.InnerText())
		hw.children(n)
	case dom.TagNode, dom.SingleNode, dom.RawTextNode:
		hw.str("<" + n.Name())
		for _, a := range n.Attributes() {
			hw.attribute(a)
		}
		hw.str(">")
		if n.Kind() != dom.SingleNode {
			hw.str(n.InnerText())
			hw.children(n)
			hw.str("</" + n.Name() + ">")
		}
	default:
		tracer().Errorf("writer: cannot write node of kind %s", n.Kind())
	}
	hw.str(n.AfterText())
}

func (hw *htmlWriter) children(n *dom.Node) {
	for _, ch := range n.Children() {
		hw.node(ch)
	}
}

func (hw *htmlWriter) attribute(a dom.Attr) {
	hw.str(" " + a.Key)
	if a.Value == nil {
		return
	}
	var v string
	switch m := a.Value.Match(); m {
	case m.Just(&v):
		hw.str(`="` + Escape(v) + `"`)
	case m.Nothing():
	}
}

// Escape escapes an attribute value, inverting the decoding of quoted
// values done by the parser.
func Escape(value string) string {
	var sb strings.Builder
	for i := 0; i < len(value); i++ {
		if e := escapes[value[i]]; e != "" {
			sb.WriteString(e)
		} else {
			sb.WriteByte(value[i])
		}
	}
	return sb.String()
}

// Render writes the sub-tree starting at n to w.
func Render(w io.Writer, n *dom.Node) error {
	if n == nil || w == nil {
		return dom.ErrNullArgument
	}
	hw := &htmlWriter{w: w}
	hw.node(n)
	if hw.err != nil {
		return fmt.Errorf("html writer: %w", hw.err)
	}
	return nil
}

// WriteNode writes the sub-tree starting at n to a writable stream.
func WriteNode(s stream.Stream, n *dom.Node) error {
	if s == nil {
		return dom.ErrNullArgument
	}
	if !s.Capabilities().Has(stream.Writable) {
		return stream.ErrNotWritable
	}
	return Render(s, n)
}

// String returns the HTML text for the sub-tree starting at n.
func String(n *dom.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	Render(&sb, n)
	return sb.String()
}

// Pretty returns the HTML text for the sub-tree starting at n, indented for
// human readers. Indentation changes text content, thus the result is not
// guaranteed to re-parse to an equal tree.
func Pretty(n *dom.Node) string {
	return gohtml.Format(String(n))
}

// WriteFile creates or truncates a file and writes the sub-tree starting
// at n to it.
func WriteFile(path string, n *dom.Node) (err error) {
	if n == nil {
		return dom.ErrNullArgument
	}
	f, err := stream.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	tracer().Debugf("writing HTML to %s", path)
	return WriteNode(f, n)
}
