package dom

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// Kind is the type of a node. The lower bits enumerate the kinds, the higher
// bits are capability flags.
type Kind uint8

// Capability flags of node kinds.
const (
	HasName       Kind = 0x10
	HasAttributes Kind = 0x20
	HasText       Kind = 0x40
	HasChildren   Kind = 0x80
)

// Node kinds.
const (
	NoneNode     Kind = 0
	SingleNode   Kind = 1 | HasName | HasAttributes
	RawTextNode  Kind = 2 | HasName | HasAttributes | HasText
	TagNode      Kind = 3 | HasName | HasAttributes | HasText | HasChildren
	DocumentNode Kind = 4 | HasText | HasChildren
	CommentNode  Kind = 5 | HasText
	DoctypeNode  Kind = 6 | HasText
)

// Has is a predicate: does k carry all the capability flags of flags?
func (k Kind) Has(flags Kind) bool {
	return k&flags == flags
}

// IsElement is true for node kinds which have a name.
func (k Kind) IsElement() bool {
	return k.Has(HasName)
}

func (k Kind) String() string {
	switch k {
	case SingleNode:
		return "SINGLE"
	case RawTextNode:
		return "SCRIPT"
	case TagNode:
		return "TAG"
	case DocumentNode:
		return "DOCUMENT"
	case CommentNode:
		return "COMMENT"
	case DoctypeNode:
		return "DOCTYPE"
	}
	return "NONE"
}

// KindForName classifies an element by its name. Void elements we care
// about are Single, script and style are RawText, everything else is a Tag.
func KindForName(name string) Kind {
	switch atom.Lookup([]byte(strings.ToLower(name))) {
	case atom.Meta, atom.Link, atom.Img, atom.Input, atom.Br, atom.Hr:
		return SingleNode
	case atom.Script, atom.Style:
		return RawTextNode
	}
	return TagNode
}
