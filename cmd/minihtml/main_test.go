package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/minihtml/config"
	"github.com/npillmayer/minihtml/parser"
	"github.com/npillmayer/minihtml/selector"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html><head><title> Notes </title><style>p { color: red } a > b { margin: 0 }</style></head>
<body><!-- list --><p class="x" style="margin: 1px">one</p><p>two<br>lines</p></body></html>`

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.cmd")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))
	l := loader{opts: config.Defaults()}
	doc, err := l.load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 8, doc.CountElements())
	//
	stdin = strings.NewReader("<div><span>open")
	defer func() { stdin = os.Stdin }()
	var warnings bytes.Buffer
	l.warn = &warnings
	doc, err = l.load(context.Background(), "-")
	require.NoError(t, err)
	assert.Contains(t, warnings.String(), "warning: -:")
	_, err = selector.Find(doc, "div span")
	assert.NoError(t, err)
	//
	stdin = strings.NewReader("<div><span>open")
	l.strict = true
	_, err = l.load(context.Background(), "-")
	assert.ErrorIs(t, err, parser.ErrMalformedInput)
	_, err = l.load(context.Background(), filepath.Join(t.TempDir(), "missing.html"))
	assert.Error(t, err)
}

func TestLoadURL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.cmd")
	defer teardown()
	//
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer server.Close()
	assert.True(t, isURL(server.URL))
	assert.False(t, isURL("page.html"))
	l := loader{opts: config.Defaults()}
	doc, err := l.load(context.Background(), server.URL)
	require.NoError(t, err)
	var out bytes.Buffer
	printSummary(&out, doc)
	assert.Equal(t, "elements: 8\ncomments: 1\ntitle:    Notes\n", out.String())
}

func TestOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.cmd")
	defer teardown()
	//
	l := loader{opts: config.Defaults()}
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0644))
	doc, err := l.load(context.Background(), path)
	require.NoError(t, err)
	var out bytes.Buffer
	nodes, err := selector.Collect(doc, "body p", 0)
	require.NoError(t, err)
	require.NoError(t, printNodes(&out, nodes))
	assert.Equal(t, "<p class=\"x\" style=\"margin: 1px\">one</p>\n<p>two<br>lines</p>\n", out.String())
	out.Reset()
	printText(&out, nodes)
	assert.Equal(t, "one\ntwo\nlines\n", out.String())
	out.Reset()
	require.NoError(t, printStyles(&out, doc))
	assert.Equal(t, "p { color: red; }  (2 elements)\n"+
		"a > b { margin: 0; }  (selector not supported)\n"+
		"<p>#0 style= margin: 1px;\n", out.String())
	//
	target := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, render(nil, doc, target, false))
	again, err := l.load(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, 8, again.CountElements())
	out.Reset()
	require.NoError(t, render(&out, doc, "", true))
	assert.Contains(t, out.String(), "<title>")
}

func TestConfigFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.cmd")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "minihtml.yaml")
	yaml := "minihtml:\n  parser:\n    maxdepth: 3\n  fetch:\n    useragent: tester\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))
	conf, err := loadConfiguration(path)
	require.NoError(t, err)
	opts := config.FromConfiguration(conf)
	assert.Equal(t, 3, opts.MaxDepth)
	assert.Equal(t, "tester", opts.UserAgent)
	_, err = loadConfiguration(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
