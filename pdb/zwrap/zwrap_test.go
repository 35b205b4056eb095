// Test Zwrap
package zwrap_test

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/pdbtools/pdb/zwrap"
	"github.com/andrew-torda/pdbtools/pkg/common"
)

// both of these are "andrewsays", but the first is compressed.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

type closeCount struct {
	io.Reader
	n int
}

func (c *closeCount) Close() error { c.n++; return nil }

func TestMaybe(t *testing.T) {
	b := make([]byte, 256)
	for _, x := range gztests {
		src := &closeCount{Reader: bytes.NewReader(x.data)}
		r, err := zwrap.Maybe(src)
		if err != nil {
			t.Fatalf("Fail on data where compressed was %v: %v", x.gzipped, err)
		}
		if r.Compressed() != x.gzipped {
			t.Errorf("Compressed() says %v, want %v", r.Compressed(), x.gzipped)
		}
		if n, err := r.Read(b); n < 5 {
			t.Errorf("Short read of %d bytes, %s", n, err)
		}
		if string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b[:10])
		}
		if err := r.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
		if src.n != 1 {
			t.Errorf("underlying stream closed %d times", src.n)
		}
	}
}

// The same, but going through a real file, since that is how the
// pipeline uses it.
func TestMaybeFile(t *testing.T) {
	b := make([]byte, 256)
	for _, x := range gztests {
		fname, err := common.WrtTemp(string(x.data))
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fname)
		fp, err := os.Open(fname)
		if err != nil {
			t.Fatal(err)
		}
		r, err := zwrap.Maybe(fp)
		if err != nil {
			t.Fatal(err)
		}
		if n, err := r.Read(b); n < 5 {
			t.Errorf("Short read of %d bytes, %s", n, err)
		}
		if string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b[:10])
		}
		if err := r.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

func TestShortInput(t *testing.T) {
	for _, s := range []string{"", "A"} {
		r, err := zwrap.Maybe(io.NopCloser(bytes.NewReader([]byte(s))))
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		got, err := io.ReadAll(r)
		if err != nil || string(got) != s {
			t.Errorf("%q: got %q, err %v", s, got, err)
		}
	}
}

// Right magic number, broken header.
func TestBrokenGzip(t *testing.T) {
	data := []byte{0x1f, 0x8b, 0x01}
	if _, err := zwrap.Maybe(io.NopCloser(bytes.NewReader(data))); err == nil {
		t.Error("expected error on broken gzip header")
	}
}
