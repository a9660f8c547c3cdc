package parser

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/minihtml/dom"
	"github.com/npillmayer/minihtml/stream"
)

// DefaultMaxDepth is the default limit for the nesting depth of elements.
const DefaultMaxDepth = 512

const eof = -1

// Parser is an HTML parser. A parser may be re-used for multiple inputs,
// but must not be used by more than one goroutine at a time.
type Parser struct {
	maxDepth    int
	in          stream.Stream
	doc         *dom.Node
	current     *dom.Node // innermost open element
	depth       int       // depth of current
	ioerr       error
	diagnostics []Diagnostic
}

// Option configures a parser.
type Option func(*Parser)

// MaxDepth limits the nesting depth of elements. Values < 1 select
// DefaultMaxDepth.
func MaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth < 1 {
			depth = DefaultMaxDepth
		}
		p.maxDepth = depth
	}
}

// New creates a parser.
func New(opts ...Option) *Parser {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Diagnostics returns the recoverable problems found during the last call
// to Parse.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

// Parse reads HTML from a readable and seekable stream and returns the
// document. If err is non-nil, the returned document holds everything
// parsed up to the point of failure.
func (p *Parser) Parse(in stream.Stream) (doc *dom.Node, err error) {
	if in == nil {
		return nil, fmt.Errorf("html parser: %w", dom.ErrNullArgument)
	}
	if !in.Capabilities().Has(stream.Readable) {
		return nil, stream.ErrNotReadable
	}
	if !in.Capabilities().Has(stream.Seekable) {
		return nil, stream.ErrNotSeekable
	}
	p.in = in
	p.doc = dom.NewDocument()
	p.current, p.depth = p.doc, 0
	p.ioerr, p.diagnostics = nil, nil
	err = p.run()
	if p.ioerr != nil { // I/O failures end parsing as if at end of input
		err = fmt.Errorf("html parser: %w", p.ioerr)
	}
	if err == nil && p.current != p.doc {
		err = p.malformed(ErrMalformedInput, "unclosed element <%s>", p.current.Name())
	}
	doc, p.in, p.current = p.doc, nil, nil
	return doc, err
}

// --- Cursor ----------------------------------------------------------------

func (p *Parser) next() int {
	if p.ioerr != nil {
		return eof
	}
	c, err := p.in.NextChar()
	if err != nil {
		if err != io.EOF && p.ioerr == nil {
			p.ioerr = err
		}
		return eof
	}
	return int(c)
}

func (p *Parser) pos() int64 {
	return p.in.Position()
}

func (p *Parser) seek(pos int64) {
	if _, err := p.in.Seek(pos, io.SeekStart); err != nil && p.ioerr == nil {
		p.ioerr = err
	}
}

func (p *Parser) unread() {
	if _, err := p.in.Seek(-1, io.SeekCurrent); err != nil && p.ioerr == nil {
		p.ioerr = err
	}
}

func (p *Parser) skipSpace(c int) int {
	for isSpace(c) {
		c = p.next()
	}
	return c
}

func (p *Parser) malformed(err error, format string, args ...interface{}) error {
	e := &Error{Offset: p.pos(), Msg: fmt.Sprintf(format, args...), Err: err}
	tracer().Errorf("%s", e.Error())
	return e
}

// --- State machine ---------------------------------------------------------

func (p *Parser) run() error {
	for {
		mark := p.pos()
		c := p.skipSpace(p.next())
		if c == eof {
			return nil
		}
		if c != '<' {
			p.text(mark, mark)
			continue
		}
		lt := p.pos() // position behind '<'
		var err error
		switch c = p.next(); {
		case c == '!':
			err = p.markup(mark, lt)
		case c == '/':
			if c = p.next(); isLetter(c) {
				err = p.closingTag(c)
			} else {
				p.text(mark, lt)
			}
		case isLetter(c):
			err = p.element(c)
		default: // '<' not starting a tag is literal text
			p.text(mark, lt)
		}
		if err != nil {
			return err
		}
	}
}

// text re-reads the input starting at mark and appends it as literal text.
// Everything up to position upto is taken unconditionally, then text is read
// up to the next '<' or the end of input.
func (p *Parser) text(mark, upto int64) {
	p.seek(mark)
	var sb strings.Builder
	for p.pos() < upto {
		c := p.next()
		if c == eof {
			break
		}
		sb.WriteByte(byte(c))
	}
	for {
		c := p.next()
		if c == eof {
			break
		}
		if c == '<' {
			p.unread()
			break
		}
		sb.WriteByte(byte(c))
	}
	tracer().Debugf("text %q", sb.String())
	if last := p.current.LastChild(); last != nil {
		last.AppendAfterText(sb.String())
	} else {
		p.current.AppendInnerText(sb.String())
	}
}

// markup handles constructs starting with "<!".
func (p *Parser) markup(mark, lt int64) error {
	head := p.readN(2)
	if head == "--" {
		return p.comment()
	}
	head += p.readN(6)
	if strings.EqualFold(head, "doctype ") {
		return p.doctype()
	}
	p.text(mark, lt)
	return nil
}

func (p *Parser) readN(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		c := p.next()
		if c == eof {
			break
		}
		sb.WriteByte(byte(c))
	}
	return sb.String()
}

func (p *Parser) comment() error {
	var buf []byte
	for {
		c := p.next()
		if c == eof {
			return p.malformed(ErrMalformedInput, "end of input in comment")
		}
		buf = append(buf, byte(c))
		if c == '>' && len(buf) >= 3 && buf[len(buf)-2] == '-' && buf[len(buf)-3] == '-' {
			break
		}
	}
	text := string(buf[:len(buf)-3])
	tracer().Debugf("comment %q", text)
	return p.current.AddChild(dom.NewComment(text))
}

func (p *Parser) doctype() error {
	var sb strings.Builder
	for {
		c := p.next()
		if c == eof {
			return p.malformed(ErrMalformedInput, "end of input in doctype")
		}
		if c == '>' {
			break
		}
		sb.WriteByte(byte(c))
	}
	tracer().Debugf("doctype %q", sb.String())
	return p.current.AddChild(dom.NewDoctype(sb.String()))
}

// closingTag pops open elements up to and including the innermost one
// matching the tag name.
func (p *Parser) closingTag(first int) error {
	start := p.pos() - 3 // position of '<'
	name, c := p.readName(first)
	for c != '>' {
		if c == eof {
			return p.malformed(ErrMalformedInput, "end of input in closing tag </%s>", name)
		}
		c = p.next()
	}
	levels := 0
	for n := p.current; n != nil; n = n.Parent() {
		if n.Kind().Has(dom.HasName) && n.Name() == name {
			p.current = n.Parent()
			p.depth -= levels + 1
			tracer().Debugf("</%s>", name)
			return nil
		}
		levels++
	}
	d := Diagnostic{Offset: start, Name: name, Err: ErrUnmatchedClosingTag}
	tracer().Errorf("%s", d.Error())
	p.diagnostics = append(p.diagnostics, d)
	return nil
}

// element parses a start tag, including its attributes and, for raw-text
// elements, its verbatim content.
func (p *Parser) element(first int) error {
	name, c := p.readName(first)
	kind := dom.KindForName(name)
	node, err := dom.New(kind, name, p.current)
	if err != nil {
		return err
	}
	tracer().Debugf("<%s> is %s", name, kind)
	selfClosing, err := p.attributes(node, c)
	if err != nil {
		return err
	}
	switch {
	case kind == dom.SingleNode || selfClosing:
		return nil
	case kind == dom.RawTextNode:
		return p.rawText(node)
	}
	if p.depth >= p.maxDepth {
		return p.malformed(ErrNestingTooDeep, "element <%s> exceeds depth %d", name, p.maxDepth)
	}
	p.current = node
	p.depth++
	return nil
}

// attributes parses the attribute list of a start tag. c is the first
// character following the tag name. Parsing stops after the closing '>'.
func (p *Parser) attributes(node *dom.Node, c int) (selfClosing bool, err error) {
	for {
		c = p.skipSpace(c)
		switch {
		case c == eof:
			return false, p.malformed(ErrMalformedInput, "end of input in tag <%s>", node.Name())
		case c == '>':
			return false, nil
		case c == '/':
			if c = p.next(); c == '>' {
				return true, nil
			}
		case isNameChar(c):
			var key string
			key, c = p.readName(c)
			if c != '=' {
				node.SetBoolAttribute(key)
				continue
			}
			c = p.next()
			switch {
			case c == '"' || c == '\'':
				val, err := p.quoted(byte(c))
				if err != nil {
					return false, err
				}
				node.SetAttribute(key, val)
				c = p.next()
			case isNameChar(c):
				var val string
				val, c = p.readName(c)
				node.SetAttribute(key, val)
			default:
				node.SetAttribute(key, "")
			}
		default: // skip stray character
			c = p.next()
		}
	}
}

// quoted reads a quoted attribute value, decoding escape sequences.
// The opening quote has already been consumed.
func (p *Parser) quoted(quote byte) (string, error) {
	var sb strings.Builder
	for {
		c := p.next()
		switch c {
		case eof:
			return "", p.malformed(ErrMalformedInput, "end of input in attribute value")
		case int(quote):
			return sb.String(), nil
		case '\\':
			e := p.next()
			if e == eof {
				return "", p.malformed(ErrMalformedInput, "end of input in attribute value")
			}
			if e == 'x' {
				p.hexEscape(&sb)
			} else if d, ok := unescape[byte(e)]; ok {
				sb.WriteByte(d)
			} else {
				sb.WriteByte('\\')
				sb.WriteByte(byte(e))
			}
		default:
			sb.WriteByte(byte(c))
		}
	}
}

// hexEscape decodes \xHH. Malformed sequences are kept verbatim.
func (p *Parser) hexEscape(sb *strings.Builder) {
	h1 := p.next()
	if !isHex(h1) {
		sb.WriteString(`\x`)
		if h1 != eof {
			p.unread()
		}
		return
	}
	h2 := p.next()
	if !isHex(h2) {
		sb.WriteString(`\x`)
		sb.WriteByte(byte(h1))
		if h2 != eof {
			p.unread()
		}
		return
	}
	sb.WriteByte(hexValue(h1)<<4 | hexValue(h2))
}

// rawText reads the content of a <script> or <style> element verbatim, up to
// the closing tag, which is matched case-insensitively.
func (p *Parser) rawText(node *dom.Node) error {
	closing := "</" + node.Name() + ">"
	var buf []byte
	for {
		c := p.next()
		if c == eof {
			node.SetInnerText(string(buf))
			return p.malformed(ErrMalformedInput, "end of input in <%s>", node.Name())
		}
		buf = append(buf, byte(c))
		if c == '>' && len(buf) >= len(closing) &&
			strings.EqualFold(string(buf[len(buf)-len(closing):]), closing) {
			break
		}
	}
	node.SetInnerText(string(buf[:len(buf)-len(closing)]))
	return nil
}

// readName reads a name starting with character first. The name is
// lowercased. readName returns the name and the character following it.
func (p *Parser) readName(first int) (string, int) {
	var sb strings.Builder
	c := first
	for isNameChar(c) {
		sb.WriteByte(toLower(byte(c)))
		c = p.next()
	}
	return sb.String(), c
}

// --- Character classes -----------------------------------------------------

var unescape = map[byte]byte{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'a':  '\a',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

func isSpace(c int) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isLetter(c int) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c int) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_' || c == '-'
}

func isHex(c int) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c int) byte {
	switch {
	case c >= 'a':
		return byte(c-'a') + 10
	case c >= 'A':
		return byte(c-'A') + 10
	}
	return byte(c - '0')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
