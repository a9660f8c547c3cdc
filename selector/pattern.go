package selector

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/minihtml/dom"
)

// ErrEmptyPattern is returned for a pattern without any segment.
var ErrEmptyPattern = errors.New("empty selector pattern")

// ErrInvalidPattern is returned for a pattern with a syntax error.
var ErrInvalidPattern = errors.New("invalid selector pattern")

// Pattern is one compiled segment of a selector. Patterns are chained from
// left to right.
type Pattern struct {
	name     string // lowercased, empty matches any element
	class    string
	id       string
	index    int
	targeted bool // index has been given explicitly
	next     *Pattern
}

// Compile parses a selector pattern.
func Compile(pattern string) (*Pattern, error) {
	segments := strings.Fields(pattern)
	if len(segments) == 0 {
		return nil, ErrEmptyPattern
	}
	var first, last *Pattern
	for _, seg := range segments {
		p, err := compileSegment(seg)
		if err != nil {
			return nil, err
		}
		if first == nil {
			first = p
		} else {
			last.next = p
		}
		last = p
	}
	tracer().Debugf("compiled selector %q", first.String())
	return first, nil
}

// MustCompile is like Compile, but panics if the pattern cannot be parsed.
// It is intended for patterns held in package-level variables.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("selector: MustCompile(%q): %v", pattern, err))
	}
	return p
}

func compileSegment(seg string) (*Pattern, error) {
	p := &Pattern{}
	invalid := func(pos int, msg string) error {
		return fmt.Errorf("%w: %s at position %d of %q", ErrInvalidPattern, msg, pos, seg)
	}
	i := 0
	p.name, i = scanIdent(seg, i)
	p.name = strings.ToLower(p.name)
	for i < len(seg) && (seg[i] == '.' || seg[i] == '#') {
		sym := seg[i]
		var ident string
		ident, i = scanIdent(seg, i+1)
		if ident == "" {
			return nil, invalid(i, "missing identifier")
		}
		target := &p.class
		if sym == '#' {
			target = &p.id
		}
		if *target != "" {
			return nil, invalid(i, fmt.Sprintf("duplicate '%c'", sym))
		}
		*target = ident
	}
	if i < len(seg) && seg[i] == '[' {
		end := strings.IndexByte(seg[i:], ']')
		if end < 0 {
			return nil, invalid(i, "unterminated index")
		}
		num := seg[i+1 : i+end]
		n, err := strconv.Atoi(num)
		if err != nil || num == "" || num[0] == '+' || num == "-0" {
			return nil, invalid(i, "malformed index")
		}
		p.index, p.targeted = n, true
		i += end + 1
	}
	if i < len(seg) {
		return nil, invalid(i, fmt.Sprintf("unexpected '%c'", seg[i]))
	}
	return p, nil
}

func scanIdent(s string, i int) (string, int) {
	start := i
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	return s[start:i], i
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c == '_' || c == '-'
}

// matches checks an element against the filters of p. Indices are not
// considered.
func (p *Pattern) matches(n *dom.Node) bool {
	if !n.Kind().IsElement() {
		return false
	}
	if p.name != "" && n.Name() != p.name {
		return false
	}
	if p.class != "" && n.AttrValue("class") != p.class {
		return false
	}
	if p.id != "" && n.AttrValue("id") != p.id {
		return false
	}
	return true
}

func (p *Pattern) reverse() bool {
	return p.index < 0
}

// Next returns the successor segment of p, or nil.
func (p *Pattern) Next() *Pattern {
	return p.next
}

// String returns the normalized text of the pattern chain starting at p.
func (p *Pattern) String() string {
	var sb strings.Builder
	for seg := p; seg != nil; seg = seg.next {
		if seg != p {
			sb.WriteByte(' ')
		}
		sb.WriteString(seg.name)
		if seg.class != "" {
			sb.WriteString("." + seg.class)
		}
		if seg.id != "" {
			sb.WriteString("#" + seg.id)
		}
		if seg.targeted {
			sb.WriteString("[" + strconv.Itoa(seg.index) + "]")
		}
	}
	return sb.String()
}
