package stream

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"io"
	"strings"
)

// ErrNotReadable is returned if a read operation is requested from a stream
// which has no read capability.
var ErrNotReadable = errors.New("stream is not readable")

// ErrNotWritable is returned if a write operation is requested from a stream
// which has no write capability.
var ErrNotWritable = errors.New("stream is not writable")

// ErrNotSeekable is returned if a stream position cannot be changed.
var ErrNotSeekable = errors.New("stream is not seekable")

// Capability is a set of flags telling which operations a stream supports.
type Capability uint8

// Capabilities of a stream.
const (
	Readable Capability = 1 << iota
	Writable
	Seekable
)

// Has is a predicate: does c include all the flags of other?
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var caps []string
	if c.Has(Readable) {
		caps = append(caps, "read")
	}
	if c.Has(Writable) {
		caps = append(caps, "write")
	}
	if c.Has(Seekable) {
		caps = append(caps, "seek")
	}
	return strings.Join(caps, "|")
}

// Stream is the I/O contract for the parser and the writer.
//
// NextChar returns io.EOF at the end of input.
// Seek takes whence-values as defined by package io (io.SeekStart, io.SeekCurrent
// and io.SeekEnd); positions are clamped to the valid range of the stream
// instead of producing an error.
type Stream interface {
	NextChar() (byte, error)
	Read(p []byte) (int, error)
	PutChar(c byte) error
	Write(p []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Position() int64
	Capabilities() Capability
}

// WriteString writes s to a stream.
func WriteString(s Stream, str string) error {
	if !s.Capabilities().Has(Writable) {
		return ErrNotWritable
	}
	_, err := s.Write([]byte(str))
	return err
}

// ReadAll reads a stream from its current position to the end.
func ReadAll(s Stream) ([]byte, error) {
	if !s.Capabilities().Has(Readable) {
		return nil, ErrNotReadable
	}
	return io.ReadAll(s)
}

// clamp returns the position resulting from a seek request, restricted to
// the range [0…length].
func clamp(pos, length, offset int64, whence int) int64 {
	var p int64
	switch whence {
	case io.SeekCurrent:
		p = pos + offset
	case io.SeekEnd:
		p = length + offset
	default:
		p = offset
	}
	if p < 0 {
		p = 0
	} else if p > length {
		p = length
	}
	return p
}
