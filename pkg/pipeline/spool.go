package pipeline

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// spoolMem is how much output is held in memory before it goes to a
// temporary file.
var spoolMem = 4 << 20

// spool collects the output of a filter until we know the whole
// input could be read. Small outputs stay in memory, big ones move
// to a temporary file.
type spool struct {
	mem   bytes.Buffer
	limit int
	fp    *os.File // nil until the output outgrows limit
}

func newSpool(limit int) *spool { return &spool{limit: limit} }

func (s *spool) Write(p []byte) (int, error) {
	if s.fp == nil {
		if s.mem.Len()+len(p) <= s.limit {
			return s.mem.Write(p)
		}
		fp, err := os.CreateTemp("", "pdbtools_spool")
		if err != nil {
			return 0, err
		}
		s.fp = fp
		if _, err := s.fp.Write(s.mem.Bytes()); err != nil {
			return 0, err
		}
		s.mem.Reset()
	}
	return s.fp.Write(p)
}

// commit copies everything collected to w.
func (s *spool) commit(w io.Writer) error {
	if s.fp == nil {
		_, err := w.Write(s.mem.Bytes())
		return err
	}
	if _, err := s.fp.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err := io.Copy(w, s.fp)
	return err
}

// close throws the temporary file away, if there is one.
func (s *spool) close() error {
	if s.fp == nil {
		return nil
	}
	name := s.fp.Name()
	err := errors.Join(s.fp.Close(), os.Remove(name))
	s.fp = nil
	return err
}
