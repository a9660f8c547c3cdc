package stream

import (
	"io"
)

// Buffer is a growable in-memory stream. It is readable, writable and seekable.
//
// A buffer tracks the length of its content separately from the read/write
// position. Writing at a position inside the content overwrites; writing at
// the end extends the content. Whenever free capacity is exhausted, the
// capacity is grown to (capacity + requested) * 2, making appends amortized O(1).
type Buffer struct {
	data   []byte // len(data) is the capacity
	length int
	pos    int
}

// NewBuffer creates an empty buffer with an initial capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, capacity)}
}

// NewBufferString creates a buffer holding a copy of s, positioned at the start.
func NewBufferString(s string) *Buffer {
	b := NewBuffer(len(s))
	copy(b.data, s)
	b.length = len(s)
	return b
}

// Capabilities is part of interface Stream.
func (b *Buffer) Capabilities() Capability {
	return Readable | Writable | Seekable
}

// NextChar is part of interface Stream.
func (b *Buffer) NextChar() (byte, error) {
	if b.pos >= b.length {
		return 0, io.EOF
	}
	c := b.data[b.pos]
	b.pos++
	return c, nil
}

// ReadByte makes Buffer an io.ByteReader.
func (b *Buffer) ReadByte() (byte, error) {
	return b.NextChar()
}

// Read is part of interface Stream.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.pos >= b.length {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:b.length])
	b.pos += n
	return n, nil
}

// PutChar is part of interface Stream.
func (b *Buffer) PutChar(c byte) error {
	b.grow(1)
	b.data[b.pos] = c
	b.advance(1)
	return nil
}

// Write is part of interface Stream.
func (b *Buffer) Write(p []byte) (int, error) {
	b.grow(len(p))
	n := copy(b.data[b.pos:], p)
	b.advance(n)
	return n, nil
}

// WriteString appends a string at the current position.
func (b *Buffer) WriteString(s string) (int, error) {
	b.grow(len(s))
	n := copy(b.data[b.pos:], s)
	b.advance(n)
	return n, nil
}

// Seek is part of interface Stream.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	b.pos = int(clamp(int64(b.pos), int64(b.length), offset, whence))
	return int64(b.pos), nil
}

// Position is part of interface Stream.
func (b *Buffer) Position() int64 {
	return int64(b.pos)
}

// Len returns the length of the content.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the current capacity.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Bytes returns the content. The slice aliases the buffer's storage and is
// valid only until the next write.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.length]
}

// String returns the content as a string.
func (b *Buffer) String() string {
	return string(b.data[:b.length])
}

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() {
	b.length, b.pos = 0, 0
}

// grow makes room for n more bytes at the current position.
func (b *Buffer) grow(n int) {
	if b.pos+n <= len(b.data) {
		return
	}
	newcap := (len(b.data) + n) * 2
	tracer().Debugf("growing buffer from %d to %d bytes", len(b.data), newcap)
	data := make([]byte, newcap)
	copy(data, b.data[:b.length])
	b.data = data
}

func (b *Buffer) advance(n int) {
	b.pos += n
	if b.pos > b.length {
		b.length = b.pos
	}
}

var _ Stream = &Buffer{}
var _ io.ReadWriteSeeker = &Buffer{}
var _ io.ByteReader = &Buffer{}
