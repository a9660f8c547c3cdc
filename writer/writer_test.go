package writer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/parser"
	"github.com/npillmayer/minihtml/stream"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roundTrips = []string{
	`<!DOCTYPE html><html><head><title>T</title><meta charset=utf-8></head>` +
		`<body class="Main" hidden data-x=""><p>Hello <b>W</b>!<br>next</p>` +
		`<!-- Note --><script>if (a<b) {}</script></body></html>`,
	`<a title="x\"y\tz\\" href='q'>link</a>`,
	`lead <p>a < b</p> tail`,
	"<ul>\n  <li>1</li>\n  <li>2<hr>x</li>\n</ul>\n",
	`<div/><style>p { color: red }</style>`,
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.writer")
	defer teardown()
	//
	for _, input := range roundTrips {
		doc, err := parser.ParseString(input)
		require.NoError(t, err, input)
		out := String(doc)
		t.Logf("%s", out)
		again, err := parser.ParseString(out)
		require.NoError(t, err, out)
		assert.True(t, dom.Equal(doc, again), "round trip failed for %q", input)
	}
}

func TestSerialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.writer")
	defer teardown()
	//
	for input, expected := range map[string]string{
		`<br>`:                          `<br>`,
		`<!-- Hello -->`:                `<!-- Hello -->`,
		`<DIV ID=Main Hidden>x</DIV>`:   `<div id="main" hidden>x</div>`,
		`<!doctype html>`:               `<!DOCTYPE html>`,
		`<p a="">x<br/>y</p>`:           `<p a="">x<br>y</p>`,
		`<input value="tab\there">`:     `<input value="tab\there">`,
		`<script>x="</b>"</SCRIPT> end`: `<script>x="</b>"</script> end`,
	} {
		doc, err := parser.ParseString(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, String(doc))
	}
	assert.Equal(t, `a\\b\"c\'d\n\r\a`, Escape("a\\b\"c'd\n\r\a"))
	assert.Equal(t, "", String(nil))
}

func TestConstructedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.writer")
	defer teardown()
	//
	doc := dom.NewDocumentTemplate("Hi")
	body := doc.FindFirst(dom.NodeHasName("body"))
	require.NotNil(t, body)
	p := dom.NewTag("p")
	p.SetInnerText("text")
	body.AddChild(p)
	assert.Equal(t, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>Hi</title>`+
		`</head><body><p>text</p></body></html>`, String(doc))
}

func TestStreams(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.writer")
	defer teardown()
	//
	doc, err := parser.ParseString(`<p class="x">y</p>`)
	require.NoError(t, err)
	assert.ErrorIs(t, WriteNode(stream.NewString(""), doc), stream.ErrNotWritable)
	assert.ErrorIs(t, WriteNode(nil, doc), dom.ErrNullArgument)
	buf := stream.NewBuffer(4)
	require.NoError(t, WriteNode(buf, doc))
	assert.Equal(t, `<p class="x">y</p>`, buf.String())
	//
	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, WriteFile(path, doc))
	again, err := parser.ParseFile(path)
	require.NoError(t, err)
	assert.True(t, dom.Equal(doc, again))
	//
	var sb strings.Builder
	require.NoError(t, Render(&sb, doc.FirstChild()))
	assert.Equal(t, `<p class="x">y</p>`, sb.String())
	assert.Contains(t, Pretty(doc), `<p class="x">`)
}
