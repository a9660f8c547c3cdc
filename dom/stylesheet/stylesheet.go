/*
Package stylesheet reads the CSS embedded in a document.

Style sheets are taken from <style> elements, inline styles from style
attributes. Parsing of CSS is done by package douceur. Rules may be
applied to a document as far as their selectors are understood by package
selector, which covers type, class and id selectors and the descendant
combinator. Property values holding lengths may be read as type Dimen.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stylesheet

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/selector"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minihtml.css'.
func tracer() tracing.Trace {
	return tracing.Select("minihtml.css")
}

// Sheet is a style sheet collected from a document.
type Sheet struct {
	css css.Stylesheet
}

// Extract returns the <style> elements of a document, in document order.
func Extract(doc *dom.Node) []*dom.Node {
	if doc == nil {
		return nil
	}
	return doc.FindAll(dom.NodeHasName("style"))
}

// Parse parses the content of all <style> elements of a document into a
// single style sheet. If a style element contains invalid CSS, parsing
// stops with an error.
func Parse(doc *dom.Node) (*Sheet, error) {
	sheet := &Sheet{}
	for _, st := range Extract(doc) {
		c, err := parser.Parse(st.InnerText())
		if err != nil {
			return sheet, fmt.Errorf("style element: %w", err)
		}
		sheet.css.Rules = append(sheet.css.Rules, c.Rules...)
	}
	tracer().Debugf("found %d CSS rules", len(sheet.css.Rules))
	return sheet, nil
}

// Empty checks if this stylesheet contains any rules.
func (sheet *Sheet) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// Rules returns the rules of a style sheet. Rules nested in at-rules, such
// as @media, are flattened into the list.
func (sheet *Sheet) Rules() []Rule {
	var rules []Rule
	var collect func([]*css.Rule)
	collect = func(rs []*css.Rule) {
		for _, r := range rs {
			if r.Kind == css.AtRule && len(r.Rules) > 0 {
				collect(r.Rules)
				continue
			}
			rules = append(rules, Rule(*r))
		}
	}
	collect(sheet.css.Rules)
	return rules
}

func (sheet *Sheet) String() string {
	return sheet.css.String()
}

// Rules parses the style elements of a document and returns their rules.
func Rules(doc *dom.Node) ([]Rule, error) {
	sheet, err := Parse(doc)
	if err != nil {
		return nil, err
	}
	return sheet.Rules(), nil
}

// Rule is a CSS rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key, e.g. "15px".
func (r Rule) Value(key string) string {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// Matches returns the nodes of a document a rule applies to. Selector lists
// are evaluated one by one. A selector not expressible as a selector pattern
// results in an error wrapping selector.ErrInvalidPattern.
func (r Rule) Matches(doc *dom.Node) ([]*dom.Node, error) {
	var nodes []*dom.Node
	seen := make(map[*dom.Node]bool)
	for _, sel := range strings.Split(r.Prelude, ",") {
		found, err := selector.Collect(doc, sel, 0)
		if err != nil {
			return nil, err
		}
		for _, n := range found {
			if !seen[n] {
				seen[n] = true
				nodes = append(nodes, n)
			}
		}
	}
	return nodes, nil
}

// InlineStyle parses the style attribute of an element.
func InlineStyle(n *dom.Node) ([]*css.Declaration, error) {
	if n == nil || !n.HasAttribute("style") {
		return nil, nil
	}
	decls := strings.TrimSpace(n.AttrValue("style"))
	if !strings.HasSuffix(decls, ";") { // douceur drops an unterminated last value
		decls += ";"
	}
	return parser.ParseDeclarations(decls)
}
