package htmlbridge

import (
	"strings"
	"testing"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseHTML5(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.dom")
	defer teardown()
	//
	doc, err := ParseHTML5(strings.NewReader(`<p class=x>Hello <b>World</b>!<script>if (a<b) {}</script>`))
	require.NoError(t, err)
	assert.Equal(t, dom.DocumentNode, doc.Kind())
	p := doc.FindFirst(dom.NodeHasName("p"))
	require.NotNil(t, p, "HTML5 parser inserts html and body")
	assert.Equal(t, "body", p.Parent().Name())
	assert.Equal(t, "x", p.AttrValue("class"))
	assert.Equal(t, "Hello ", p.InnerText())
	b := p.FirstChild()
	assert.Equal(t, "World", b.InnerText())
	assert.Equal(t, "!", b.AfterText())
	script := doc.FindFirst(dom.NodeHasName("script"))
	require.NotNil(t, script)
	assert.Equal(t, dom.RawTextNode, script.Kind())
	assert.Equal(t, "if (a<b) {}", script.InnerText())
}

func TestToHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.dom")
	defer teardown()
	//
	doc, err := parser.ParseString(`<div id="a" hidden><p>x<br>y</p><!-- c --></div>`)
	require.NoError(t, err)
	h := ToHTML(doc)
	var sb strings.Builder
	require.NoError(t, html.Render(&sb, h))
	assert.Equal(t, `<div id="a" hidden=""><p>x<br/>y</p><!-- c --></div>`, sb.String())
	back := FromHTML(h)
	assert.True(t, dom.Equal(doc, back), "conversion must be reversible")
	//
	p := doc.FindFirst(dom.NodeHasName("p"))
	p.SetAfterText("tail")
	h = ToHTML(p)
	assert.Equal(t, html.DocumentNode, h.Type)
	assert.Equal(t, "tail", h.LastChild.Data)
	assert.Nil(t, ToHTML(nil))
	assert.Nil(t, FromHTML(nil))
}
