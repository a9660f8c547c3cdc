package stream

import (
	"fmt"
	"io"
	"os"
)

// File is a stream forwarding to an OS file. Reads are buffered in chunks,
// as the parser consumes its input one byte at a time.
type File struct {
	f    *os.File
	caps Capability
	buf  []byte
	r, w int   // unread window buf[r:w]
	off  int64 // file offset corresponding to buf[w]
}

const fileChunkSize = 4096

// OpenFile opens a file for reading. The stream is readable and seekable.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewFile(f, Readable|Seekable), nil
}

// CreateFile creates or truncates a file for writing. The stream is writable
// and seekable.
func CreateFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return NewFile(f, Writable|Seekable), nil
}

// NewFile wraps an already opened file. caps must match the mode the file has
// been opened with.
func NewFile(f *os.File, caps Capability) *File {
	var off int64
	if caps.Has(Seekable) {
		off, _ = f.Seek(0, io.SeekCurrent)
	}
	return &File{f: f, caps: caps, off: off}
}

// Capabilities is part of interface Stream.
func (fs *File) Capabilities() Capability {
	return fs.caps
}

// Name returns the name of the underlying file.
func (fs *File) Name() string {
	return fs.f.Name()
}

// NextChar is part of interface Stream.
func (fs *File) NextChar() (byte, error) {
	if !fs.caps.Has(Readable) {
		return 0, ErrNotReadable
	}
	if fs.r >= fs.w {
		if err := fs.fill(); err != nil {
			return 0, err
		}
	}
	c := fs.buf[fs.r]
	fs.r++
	return c, nil
}

// ReadByte makes File an io.ByteReader.
func (fs *File) ReadByte() (byte, error) {
	return fs.NextChar()
}

// Read is part of interface Stream.
func (fs *File) Read(p []byte) (int, error) {
	if !fs.caps.Has(Readable) {
		return 0, ErrNotReadable
	}
	if fs.r < fs.w {
		n := copy(p, fs.buf[fs.r:fs.w])
		fs.r += n
		return n, nil
	}
	fs.r, fs.w = 0, 0 // off no longer ends the buffered window
	n, err := fs.f.Read(p)
	fs.off += int64(n)
	return n, err
}

// PutChar is part of interface Stream.
func (fs *File) PutChar(c byte) error {
	_, err := fs.Write([]byte{c})
	return err
}

// Write is part of interface Stream.
func (fs *File) Write(p []byte) (int, error) {
	if !fs.caps.Has(Writable) {
		return 0, ErrNotWritable
	}
	if fs.r < fs.w { // re-align the OS file offset with our logical position
		if _, err := fs.f.Seek(fs.Position(), io.SeekStart); err != nil {
			return 0, err
		}
		fs.off = fs.Position()
		fs.r, fs.w = 0, 0
	}
	n, err := fs.f.Write(p)
	fs.off += int64(n)
	return n, err
}

// Seek is part of interface Stream.
func (fs *File) Seek(offset int64, whence int) (int64, error) {
	if !fs.caps.Has(Seekable) {
		return fs.Position(), ErrNotSeekable
	}
	info, err := fs.f.Stat()
	if err != nil {
		return fs.Position(), fmt.Errorf("cannot seek in %s: %w", fs.f.Name(), err)
	}
	p := clamp(fs.Position(), info.Size(), offset, whence)
	if p >= fs.off-int64(fs.w) && p <= fs.off { // target is inside the read buffer
		fs.r = fs.w - int(fs.off-p)
		return p, nil
	}
	if _, err = fs.f.Seek(p, io.SeekStart); err != nil {
		return fs.Position(), err
	}
	fs.off = p
	fs.r, fs.w = 0, 0
	return p, nil
}

// Position is part of interface Stream.
func (fs *File) Position() int64 {
	return fs.off - int64(fs.w-fs.r)
}

// Close closes the underlying file.
func (fs *File) Close() error {
	return fs.f.Close()
}

func (fs *File) fill() error {
	if fs.buf == nil {
		fs.buf = make([]byte, fileChunkSize)
	}
	n, err := fs.f.Read(fs.buf)
	fs.r, fs.w = 0, n
	fs.off += int64(n)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return err
	}
	return nil
}

var _ Stream = &File{}
var _ io.ReadWriteSeeker = &File{}
