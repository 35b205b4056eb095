// brokenio is a wrapper around an io.ReadCloser which breaks on
// purpose. It is for testing what the pipeline does when a file
// cannot be read to the end.
// Typical use: you have a reader from a file or a string. You write
// reader = brokenio.NewReader(reader) and set how it should fail.
// Everything then works as before until the failure point.
// Failures happen at a fixed place, so tests are repeatable.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what a failing read returns.
var ErrBroken = errors.New("brokenio: simulated read failure")

// BrknRdrClsr reads from the wrapped reader until failAfter bytes
// have gone through, then every Read returns ErrBroken.
// A negative failAfter means never fail.
type BrknRdrClsr struct {
	rdrOrig   io.ReadCloser // Wrapped reader
	failAfter int
	zeroFile  bool // return EOF on the first read, like an empty file
	nCalled   int
	nByte     int
	closed    bool
}

// NewReader returns a new Reader - a wrapper around the old one.
// It does not fail until told to.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn, failAfter: -1}
}

// SetFailAfter sets the number of bytes to deliver before failing.
func (r *BrknRdrClsr) SetFailAfter(n int) { r.failAfter = n }

// SetZeroFile makes the reader look like a zero length file.
func (r *BrknRdrClsr) SetZeroFile(z bool) { r.zeroFile = z }

// NByte is the number of bytes delivered so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Closed says if Close has been called.
func (r *BrknRdrClsr) Closed() bool { return r.closed }

// Read wraps the original reader. Once failAfter bytes have been
// delivered, we return ErrBroken. A read that crosses the failure
// point is cut short.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	r.nCalled++
	if r.zeroFile && r.nCalled == 1 {
		return 0, io.EOF
	}
	if r.failAfter >= 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	r.closed = true
	return r.rdrOrig.Close()
}
