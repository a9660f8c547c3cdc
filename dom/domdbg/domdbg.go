/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/minihtml/dom"
	tp "github.com/xlab/treeprint"
)

// Print returns an indented, multi-line rendering of the sub-tree starting
// at n.
func Print(n *dom.Node) string {
	if n == nil {
		return "<nil>"
	}
	p := tp.New()
	p.SetValue(label(n))
	for _, ch := range n.Children() {
		ppt(p, ch)
	}
	return p.String()
}

func ppt(p tp.Tree, n *dom.Node) {
	if n.ChildCount() == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range n.Children() {
		ppt(branch, ch)
	}
}

func label(n *dom.Node) string {
	var sb strings.Builder
	if n.Kind().IsElement() {
		sb.WriteString("<" + n.Name())
		for _, a := range n.Attributes() {
			sb.WriteString(" " + a.String())
		}
		sb.WriteString(">")
	} else {
		sb.WriteString(n.DisplayName())
	}
	if t := n.InnerText(); t != "" {
		sb.WriteString(" " + abbrev(t, 20))
	}
	if t := n.AfterText(); t != "" {
		sb.WriteString(" … " + abbrev(t, 20))
	}
	return sb.String()
}

func abbrev(s string, max int) string {
	if len(s) > max {
		s = s[:max] + "..."
	}
	return fmt.Sprintf("%q", s)
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	TextTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a DOM tree. The diagram is in
// GraphViz (DOT) format. Inner texts and after texts are drawn as boxes
// attached to their owner node.
func ToGraphViz(doc *dom.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.TextTmpl = template.Must(template.New("domtext").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domTextTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*dom.Node]string, 256)
	if err = nodes(doc, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a DOM node and a testing.T, it will
// create a Graphiviz image of the DOM tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(doc, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

type text struct {
	Owner string
	Name  string
	Text  string
	After bool
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	if err := domNode(n, w, dict, gparams); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, dict[n]}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func domNode(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	if t := n.InnerText(); t != "" {
		if err := gparams.TextTmpl.Execute(w, text{name, name + "i", t, false}); err != nil {
			return err
		}
	}
	if t := n.AfterText(); t != "" {
		if err := gparams.TextTmpl.Execute(w, text{name, name + "a", t, true}); err != nil {
			return err
		}
	}
	return nil
}

type edge struct {
	N1, N2 node
}

func shortText(s string) string {
	q := "\"\\\""
	if len(s) > 10 {
		q += s[:10] + "...\\\"\""
	} else {
		q += s + "\\\"\""
	}
	q = strings.Replace(q, "\n", `\\n`, -1)
	q = strings.Replace(q, "\t", `\\t`, -1)
	q = strings.Replace(q, " ", "␣", -1)
	return q
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .N.Kind.IsElement }}
{{ .Name }}	[ label={{ printf "%q" .N.Name }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.DisplayName }} shape=ellipse style=filled fillcolor=ivory3 ] ;
{{ end }}
`

const domTextTmpl = `{{ .Name }}	[ label={{ shortstring .Text }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ .Owner }} -> {{ .Name }} [dir=none weight=1 style="{{ if .After }}dotted{{ else }}dashed{{ end }}"] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
