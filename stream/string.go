package stream

import (
	"io"
)

// String is a fixed, read-only stream over a string. It may be repositioned
// within the bounds of the string, but never grows.
type String struct {
	s   string
	pos int
}

// NewString creates a read-only stream over s.
func NewString(s string) *String {
	return &String{s: s}
}

// Capabilities is part of interface Stream.
func (str *String) Capabilities() Capability {
	return Readable | Seekable
}

// NextChar is part of interface Stream.
func (str *String) NextChar() (byte, error) {
	if str.pos >= len(str.s) {
		return 0, io.EOF
	}
	c := str.s[str.pos]
	str.pos++
	return c, nil
}

// ReadByte makes String an io.ByteReader.
func (str *String) ReadByte() (byte, error) {
	return str.NextChar()
}

// Read is part of interface Stream.
func (str *String) Read(p []byte) (int, error) {
	if str.pos >= len(str.s) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, str.s[str.pos:])
	str.pos += n
	return n, nil
}

// PutChar always fails with ErrNotWritable.
func (str *String) PutChar(byte) error {
	return ErrNotWritable
}

// Write always fails with ErrNotWritable.
func (str *String) Write([]byte) (int, error) {
	return 0, ErrNotWritable
}

// Seek is part of interface Stream.
func (str *String) Seek(offset int64, whence int) (int64, error) {
	str.pos = int(clamp(int64(str.pos), int64(len(str.s)), offset, whence))
	return int64(str.pos), nil
}

// Position is part of interface Stream.
func (str *String) Position() int64 {
	return int64(str.pos)
}

// Len returns the length of the underlying string.
func (str *String) Len() int {
	return len(str.s)
}

var _ Stream = &String{}
var _ io.ReadSeeker = &String{}
