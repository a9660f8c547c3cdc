package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/minihtml/maybe"
)

// Attr is an attribute of an element. Boolean attributes, like `disabled`
// in <input disabled>, have a value of Nothing.
type Attr struct {
	Key   string
	Value maybe.Maybe[string]
}

// IsBoolean is true for attributes without a value.
func (a Attr) IsBoolean() bool {
	return a.Value == nil || a.Value.IsNothing()
}

func (a Attr) String() string {
	if a.Value == nil {
		return a.Key
	}
	var v string
	switch m := a.Value.Match(); m {
	case m.Just(&v):
		return fmt.Sprintf("%s=%q", a.Key, v)
	}
	return a.Key
}

// SetAttribute sets an attribute to a value. Attribute names are matched
// case-insensitively and stored lowercase. An existing attribute is updated
// in place, otherwise the attribute is appended.
func (n *Node) SetAttribute(key, value string) error {
	return n.setAttr(key, maybe.Just(value))
}

// SetBoolAttribute sets an attribute without a value.
func (n *Node) SetBoolAttribute(key string) error {
	return n.setAttr(key, maybe.Nothing[string]())
}

// SetAttr sets an attribute with an optional value.
func (n *Node) SetAttr(key string, value maybe.Maybe[string]) error {
	if value == nil {
		value = maybe.Nothing[string]()
	}
	return n.setAttr(key, value)
}

func (n *Node) setAttr(key string, value maybe.Maybe[string]) error {
	if key == "" {
		return fmt.Errorf("attribute name: %w", ErrNullArgument)
	}
	if !n.kind.Has(HasAttributes) {
		return fmt.Errorf("%s: %w", n.kind, ErrNoAttributes)
	}
	key = strings.ToLower(key)
	if i := n.attrIndex(key); i >= 0 {
		n.attrs[i].Value = value
		return nil
	}
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
	return nil
}

func (n *Node) attrIndex(key string) int {
	for i, a := range n.attrs {
		if strings.EqualFold(a.Key, key) {
			return i
		}
	}
	return -1
}

// Attribute looks up an attribute by name.
func (n *Node) Attribute(key string) (Attr, bool) {
	if i := n.attrIndex(key); i >= 0 {
		return n.attrs[i], true
	}
	return Attr{}, false
}

// HasAttribute is a predicate: does n carry an attribute with the given name?
func (n *Node) HasAttribute(key string) bool {
	return n.attrIndex(key) >= 0
}

// AttrValue returns the value of an attribute. Missing attributes and boolean
// attributes return "".
func (n *Node) AttrValue(key string) string {
	if i := n.attrIndex(key); i >= 0 && n.attrs[i].Value != nil {
		return n.attrs[i].Value.WithDefault("")
	}
	return ""
}

// RemoveAttribute removes an attribute. If the attribute is not present,
// nothing is changed and ErrItemNotFound is returned.
func (n *Node) RemoveAttribute(key string) error {
	i := n.attrIndex(key)
	if i < 0 {
		return fmt.Errorf("attribute %q: %w", key, ErrItemNotFound)
	}
	n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
	return nil
}

// Attributes returns the attributes of n in insertion order. The slice is a copy.
func (n *Node) Attributes() []Attr {
	attrs := make([]Attr, len(n.attrs))
	copy(attrs, n.attrs)
	return attrs
}

// AttributeCount returns the number of attributes of n.
func (n *Node) AttributeCount() int {
	return len(n.attrs)
}

// ClearAttributes removes all attributes.
func (n *Node) ClearAttributes() {
	n.attrs = nil
}
