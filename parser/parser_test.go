package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/stream"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptIsVerbatim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := ParseString(`<script>if (a<b) {}</script>`)
	require.NoError(t, err)
	require.Equal(t, 1, doc.ChildCount())
	script := doc.FirstChild()
	assert.Equal(t, dom.RawTextNode, script.Kind())
	assert.Equal(t, "if (a<b) {}", script.InnerText())
	assert.Equal(t, 0, script.ChildCount())
	//
	doc, err = ParseString(`<style>p { color: red }</STYLE><p>x</p>`)
	require.NoError(t, err)
	assert.Equal(t, "p { color: red }", doc.FirstChild().InnerText())
	assert.Equal(t, "p", doc.LastChild().Name())
}

func TestSingleTag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := ParseString(`<br>`)
	require.NoError(t, err)
	br := doc.FirstChild()
	require.NotNil(t, br)
	assert.Equal(t, dom.SingleNode, br.Kind())
	assert.Equal(t, 0, br.ChildCount())
	//
	doc, err = ParseString(`<p>a<br>b<img src="x.png">c</p>`)
	require.NoError(t, err)
	p := doc.FirstChild()
	assert.Equal(t, 2, p.ChildCount())
	assert.Equal(t, "a", p.InnerText())
	assert.Equal(t, "b", p.Child(0).AfterText())
	assert.Equal(t, "c", p.Child(1).AfterText())
}

func TestMissingClosingTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := ParseString(`<div><span>text`)
	if !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("expected malformed input error, got %v", err)
	}
	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, int64(15), perr.Offset)
	require.NotNil(t, doc)
	assert.Equal(t, dom.DocumentNode, doc.Kind())
	assert.Equal(t, 1, doc.ChildCount())
	div := doc.FirstChild()
	require.NotNil(t, div)
	assert.Equal(t, "div", div.Name())
	span := div.FirstChild()
	require.NotNil(t, span)
	assert.Equal(t, "span", span.Name())
	assert.Equal(t, "text", span.InnerText())
	assert.Equal(t, 0, span.ChildCount())
}

func TestCommentKeepsCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := ParseString(`<!-- Hello --><!DOCTYPE HTML>`)
	require.NoError(t, err)
	require.Equal(t, 2, doc.ChildCount())
	c := doc.FirstChild()
	assert.Equal(t, dom.CommentNode, c.Kind())
	assert.Equal(t, " Hello ", c.InnerText())
	d := doc.LastChild()
	assert.Equal(t, dom.DoctypeNode, d.Kind())
	assert.Equal(t, "HTML", d.InnerText())
	//
	doc, err = ParseString(`<!-- a -- b --->`)
	require.NoError(t, err)
	assert.Equal(t, " a -- b -", doc.FirstChild().InnerText())
}

func TestTextPlacement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := ParseString("lead <p>Hello <b>World</b>!</p> tail")
	require.NoError(t, err)
	assert.Equal(t, "lead ", doc.InnerText())
	p := doc.FirstChild()
	assert.Equal(t, "Hello ", p.InnerText())
	b := p.FirstChild()
	assert.Equal(t, "World", b.InnerText())
	assert.Equal(t, "!", b.AfterText())
	assert.Equal(t, " tail", p.AfterText())
	//
	doc, err = ParseString("<ul>\n  <li>a</li>\n  <li>b</li>\n</ul>\n")
	require.NoError(t, err)
	ul := doc.FirstChild()
	assert.Equal(t, "", ul.InnerText(), "white space before a tag is dropped")
	assert.Equal(t, 2, ul.ChildCount())
	assert.Equal(t, "", ul.FirstChild().AfterText())
	assert.Equal(t, "", ul.AfterText())
}

func TestLiteralLessThan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := ParseString("a < b <3")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.ChildCount())
	assert.Equal(t, "a < b <3", doc.InnerText())
	//
	doc, err = ParseString("<p>x</ y><!foo>z</p>")
	require.NoError(t, err)
	assert.Equal(t, "x</ y><!foo>z", doc.FirstChild().InnerText())
}

func TestAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := ParseString(`<INPUT Type=TEXT disabled value="a\tb\x41\q\xZ" data-x='' class="Big Red">`)
	require.NoError(t, err)
	in := doc.FirstChild()
	require.NotNil(t, in)
	assert.Equal(t, "input", in.Name())
	assert.Equal(t, 5, in.AttributeCount())
	assert.Equal(t, "text", in.AttrValue("type"), "unquoted values are lowercased")
	a, ok := in.Attribute("disabled")
	require.True(t, ok)
	assert.True(t, a.IsBoolean())
	assert.Equal(t, "a\tbA\\q\\xZ", in.AttrValue("value"))
	a, ok = in.Attribute("data-x")
	require.True(t, ok)
	assert.False(t, a.IsBoolean())
	assert.Equal(t, "", in.AttrValue("data-x"))
	assert.Equal(t, "Big Red", in.AttrValue("class"), "quoted values keep their case")
	//
	doc, err = ParseString(`<a href="1" href="2" title='it\'s' , rel=x>`)
	require.Error(t, err) // <a> left open
	a0 := doc.FirstChild()
	assert.Equal(t, 3, a0.AttributeCount())
	assert.Equal(t, "2", a0.AttrValue("href"))
	assert.Equal(t, "it's", a0.AttrValue("title"))
	assert.Equal(t, "x", a0.AttrValue("rel"))
}

func TestSelfClosing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := ParseString(`<div/><p class="x"/>text`)
	require.NoError(t, err)
	require.Equal(t, 2, doc.ChildCount())
	assert.Equal(t, 0, doc.FirstChild().ChildCount())
	assert.Equal(t, "x", doc.LastChild().AttrValue("class"))
	assert.Equal(t, "text", doc.LastChild().AfterText())
}

func TestClosingTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	p := New()
	doc, err := p.Parse(stream.NewString(`<div></span>x</div>`))
	require.NoError(t, err)
	assert.Equal(t, "x", doc.FirstChild().InnerText())
	diags := p.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "span", diags[0].Name)
	assert.Equal(t, int64(5), diags[0].Offset)
	assert.True(t, errors.Is(diags[0].Err, ErrUnmatchedClosingTag))
	//
	doc, err = p.Parse(stream.NewString(`<DIV><p><b>x</Div>after`))
	require.NoError(t, err)
	assert.Empty(t, p.Diagnostics(), "diagnostics are reset for each run")
	div := doc.FirstChild()
	assert.Equal(t, "after", div.AfterText())
	assert.Equal(t, "b", div.FirstChild().FirstChild().Name())
}

func TestEndOfInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	for _, input := range []string{
		`<!-- x`,
		`<!DOCTYPE html`,
		`<div class="x`,
		`<div class=x`,
		`<p></p`,
		`<script>abc`,
	} {
		doc, err := ParseString(input)
		if !errors.Is(err, ErrMalformedInput) {
			t.Errorf("expected malformed input error for %q, got %v", input, err)
		}
		if doc == nil {
			t.Errorf("expected partial document for %q", input)
		}
	}
	doc, _ := ParseString(`<script>abc`)
	assert.Equal(t, "abc", doc.FirstChild().InnerText())
}

func TestNestingDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	input := `<a><b><c></c></b></a>`
	_, err := ParseString(input, MaxDepth(2))
	assert.ErrorIs(t, err, ErrNestingTooDeep)
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = ParseString(input, MaxDepth(3))
	assert.NoError(t, err)
	deep := strings.Repeat("<div>", DefaultMaxDepth+1)
	_, err = ParseString(deep)
	assert.ErrorIs(t, err, ErrNestingTooDeep)
}

type readOnly struct {
	*stream.String
}

func (readOnly) Capabilities() stream.Capability {
	return stream.Readable
}

var errSeekFailed = errors.New("seek failed")

type brokenSeek struct {
	*stream.String
}

func (brokenSeek) Seek(int64, int) (int64, error) {
	return 0, errSeekFailed
}

func TestSeekFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	doc, err := New().Parse(brokenSeek{stream.NewString("<p>text</p><div>more</div>")})
	assert.ErrorIs(t, err, errSeekFailed)
	require.NotNil(t, doc)
	assert.Nil(t, doc.FindFirst(dom.NodeHasName("div")), "parsing stops at the failed seek")
}

func TestStreamCapabilities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.parser")
	defer teardown()
	//
	_, err := New().Parse(readOnly{stream.NewString("<p>")})
	assert.ErrorIs(t, err, stream.ErrNotSeekable)
	_, err = New().Parse(nil)
	assert.ErrorIs(t, err, dom.ErrNullArgument)
	doc, err := ParseReader(strings.NewReader(`<p id="r">read</p>`))
	require.NoError(t, err)
	assert.Equal(t, "read", doc.FirstChild().InnerText())
}
