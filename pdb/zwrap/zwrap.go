// Package zwrap takes an input stream and, if it starts with the
// gzip magic number, puts a decompressor in front of it. Calling
// Close closes the decompressor, followed by the underlying stream.
// We only peek at the first bytes, so the source does not have to
// be able to seek. Standard input works as well as a file.

package zwrap

import (
	"bufio"
	"compress/gzip"
	"errors"
	"io"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// Reader is what we return.
type Reader struct {
	src  io.ReadCloser
	zrdr *gzip.Reader // nil if the stream was not compressed
	rdr  io.Reader    // where Read gets its bytes
}

// Compressed says if we are decompressing.
func (r *Reader) Compressed() bool { return r.zrdr != nil }

// Read makes sure we read from the decompressor, if there is one,
// and not the underlying stream.
func (r *Reader) Read(p []byte) (int, error) { return r.rdr.Read(p) }

// Close closes the decompressor, then the underlying stream.
func (r *Reader) Close() error {
	var zerr error
	if r.zrdr != nil {
		zerr = r.zrdr.Close()
	}
	return errors.Join(zerr, r.src.Close())
}

// Maybe decides if src is compressed and wraps it if necessary.
// An empty or one byte stream is simply not compressed.
func Maybe(src io.ReadCloser) (*Reader, error) {
	br := bufio.NewReader(src)
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(magic) == len(gzipMagic) && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		z, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.New("gzip header: " + err.Error())
		}
		return &Reader{src: src, zrdr: z, rdr: z}, nil
	}
	return &Reader{src: src, rdr: br}, nil
}
