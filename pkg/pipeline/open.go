// 13 Oct 2026

package pipeline

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/mattn/go-isatty"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pdb/zwrap"
)

// ErrNoData is returned when there is nothing to read: no file and
// nothing piped in, or an input without a single line.
var ErrNoData = errors.New("No data to process!")

// FileAccessError is returned when the input cannot be opened or
// read to the end.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return "File not found or not readable: " + e.Path
}

func (e *FileAccessError) Unwrap() error { return e.Err }

const stdinName = "<stdin>"

// mapped is a memory mapped file that reads like any other file.
type mapped struct {
	*bytes.Reader
	fp *os.File
	mm mmap.MMap
}

func (m *mapped) Close() error {
	return errors.Join(m.mm.Unmap(), m.fp.Close())
}

// openFile opens a file and, if asked to and it is a normal file
// with something in it, maps it. If mapping fails, we just read the
// file the ordinary way.
func openFile(path string, useMmap bool) (io.ReadCloser, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if fi.IsDir() {
		fp.Close()
		return nil, errors.New(path + " is a directory")
	}
	if !useMmap || !fi.Mode().IsRegular() || fi.Size() == 0 {
		return fp, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return fp, nil
	}
	return &mapped{Reader: bytes.NewReader(mm), fp: fp, mm: mm}, nil
}

// OpenOrFail gives us the input for one tool invocation.
// With a path, we open the file, or return a *FileAccessError.
// Without one, we read stdin, but only if something is piped in.
// A terminal or a nil stdin gives ErrNoData.
// If cfg says so, gzipped input is decompressed on the fly.
// Closing the result never closes stdin.
func OpenOrFail(path string, stdin *os.File, cfg *config.Config) (io.ReadCloser, error) {
	var src io.ReadCloser
	name := path
	if path == "" {
		if stdin == nil || isatty.IsTerminal(stdin.Fd()) || isatty.IsCygwinTerminal(stdin.Fd()) {
			return nil, ErrNoData
		}
		src = io.NopCloser(stdin)
		name = stdinName
	} else {
		var err error
		if src, err = openFile(path, cfg.Mmap); err != nil {
			return nil, &FileAccessError{Path: path, Err: err}
		}
	}
	if !cfg.Gunzip {
		return src, nil
	}
	z, err := zwrap.Maybe(src)
	if err != nil {
		src.Close()
		return nil, &FileAccessError{Path: name, Err: err}
	}
	return z, nil
}

// AsAccessError turns a read failure in the middle of a pass into a
// *FileAccessError for path. Other errors are returned unchanged.
func AsAccessError(path string, err error) error {
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		return err
	}
	if path == "" {
		path = stdinName
	}
	return &FileAccessError{Path: path, Err: err}
}
