package stream

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBufferGrowth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.stream")
	defer teardown()
	//
	b := NewBuffer(4)
	if _, err := b.Write([]byte("Hello")); err != nil {
		t.Fatal(err)
	}
	if b.Cap() != (4+5)*2 {
		t.Errorf("expected capacity to have grown to 18, is %d", b.Cap())
	}
	if err := b.PutChar('!'); err != nil {
		t.Fatal(err)
	}
	if b.String() != "Hello!" {
		t.Errorf("expected buffer to contain 'Hello!', has %q", b.String())
	}
	if b.Position() != 6 || b.Len() != 6 {
		t.Errorf("expected position and length to be 6, are %d and %d", b.Position(), b.Len())
	}
}

func TestBufferReadSeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.stream")
	defer teardown()
	//
	b := NewBufferString("abc")
	c, err := b.NextChar()
	if err != nil || c != 'a' {
		t.Fatalf("expected to read 'a', got %q (%v)", c, err)
	}
	b.Seek(-5, io.SeekCurrent)
	if b.Position() != 0 {
		t.Errorf("expected seek to clamp at 0, position is %d", b.Position())
	}
	b.Seek(10, io.SeekStart)
	if b.Position() != 3 {
		t.Errorf("expected seek to clamp at length 3, position is %d", b.Position())
	}
	if _, err = b.NextChar(); err != io.EOF {
		t.Errorf("expected EOF at end of buffer, got %v", err)
	}
	b.Seek(1, io.SeekStart)
	b.PutChar('X')
	if b.String() != "aXc" {
		t.Errorf("expected write inside content to overwrite, have %q", b.String())
	}
}

func TestStringIsReadOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.stream")
	defer teardown()
	//
	s := NewString("<p>")
	if s.Capabilities().Has(Writable) {
		t.Error("expected string stream not to be writable")
	}
	if err := s.PutChar('x'); !errors.Is(err, ErrNotWritable) {
		t.Errorf("expected ErrNotWritable, got %v", err)
	}
	if err := WriteString(s, "x"); !errors.Is(err, ErrNotWritable) {
		t.Errorf("expected ErrNotWritable from WriteString, got %v", err)
	}
	all, err := ReadAll(s)
	if err != nil || string(all) != "<p>" {
		t.Errorf("expected to read '<p>', got %q (%v)", all, err)
	}
}

func TestFileStream(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.stream")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "test.html")
	out, err := CreateFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err = WriteString(out, "<div>file</div>"); err != nil {
		t.Fatal(err)
	}
	if _, err = out.NextChar(); !errors.Is(err, ErrNotReadable) {
		t.Errorf("expected write-only file stream to refuse reading, got %v", err)
	}
	out.Close()
	//
	in, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	c, _ := in.NextChar()
	if c != '<' {
		t.Errorf("expected first char to be '<', is %q", c)
	}
	in.Seek(5, io.SeekStart)
	rest, err := ReadAll(in)
	if err != nil || string(rest) != "file</div>" {
		t.Errorf("expected 'file</div>' after seek, got %q (%v)", rest, err)
	}
	in.Seek(-6, io.SeekEnd)
	c, _ = in.NextChar()
	if c != '<' || in.Position() != 10 {
		t.Errorf("expected '<' at position 9, got %q with position %d", c, in.Position())
	}
	if _, err = os.Stat(path); err != nil {
		t.Error(err)
	}
}

func TestFileMixedReads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.stream")
	defer teardown()
	//
	data := make([]byte, 10000)
	for i := range data {
		data[i] = byte('a' + i%26)
	}
	path := filepath.Join(t.TempDir(), "large.html")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	in, err := OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	for i := 0; i < fileChunkSize; i++ {
		if _, err = in.NextChar(); err != nil {
			t.Fatal(err)
		}
	}
	p := make([]byte, 100)
	if n, err := in.Read(p); err != nil || n != 100 || string(p) != string(data[4096:4196]) {
		t.Fatalf("expected to read 100 bytes at offset 4096, got %d (%v)", n, err)
	}
	if in.Position() != 4196 {
		t.Errorf("expected position 4196 after read, is %d", in.Position())
	}
	for _, pos := range []int64{4150, 4050, 100, 9999} {
		if _, err = in.Seek(pos, io.SeekStart); err != nil {
			t.Fatal(err)
		}
		c, err := in.NextChar()
		if err != nil || c != data[pos] {
			t.Errorf("pos=%d: expected %q, got %q (%v)", pos, data[pos], c, err)
		}
	}
}

func TestCapabilityString(t *testing.T) {
	c := Readable | Seekable
	if c.String() != "read|seek" {
		t.Errorf("expected 'read|seek', got %q", c.String())
	}
}
