// Package pipeline is the read loop shared by all the tools. Lines
// are read one at a time, turned into records, handed to the tool and,
// for the filters, written out straight away in the order they came.
// Nothing is held back except the current line.
package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/andrew-torda/pdbtools/pdb/record"
)

// Action is what a filter wants done with a record.
type Action uint8

const (
	Keep      Action = iota // write the record as it was read
	Transform               // write the record the Decider returned
	Drop                    // write nothing
)

// A Decider looks at one record. The returned record is only used
// for Transform.
type Decider func(r record.Record) (record.Record, Action)

// ErrStop can be returned by the function given to Each to finish
// early. Each then returns without an error.
var ErrStop = errors.New("stop reading")

// ReadError is a failure of the underlying reader.
type ReadError struct {
	Line int // lines read successfully before the failure
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read failed after line %d: %v", e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Stats counts what happened in Run.
type Stats struct {
	Read, Kept, Transformed, Dropped int
}

const bufSize = 64 * 1024

// splitEOL cuts the line terminator off, so it can be written back
// exactly as it was. The last line of a file may not have one.
func splitEOL(s string) (body, eol string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"
	}
	return s, ""
}

// scan is the loop. It calls fn for every line in the order read.
func scan(src io.Reader, fn func(r record.Record, eol string) error) (int, error) {
	br := bufio.NewReaderSize(src, bufSize)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			n++
			body, eol := splitEOL(line)
			if ferr := fn(record.Decode(body), eol); ferr != nil {
				if ferr == ErrStop {
					return n, nil
				}
				return n, ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, &ReadError{Line: n, Err: err}
		}
	}
	if n == 0 {
		return 0, ErrNoData
	}
	return n, nil
}

// Each reads src and calls fn on every record. It is for the tools
// which produce a report rather than a new file. It returns the
// number of lines read, and ErrNoData if there were none.
func Each(src io.Reader, fn func(r record.Record) error) (int, error) {
	return scan(src, func(r record.Record, _ string) error { return fn(r) })
}

// Run filters src into w. Every record goes to decide. Kept records
// are written byte for byte as read, transformed ones as returned by
// decide, both with their original line terminator.
// Nothing reaches w unless the whole input was read, so a failure
// part way through leaves w untouched, however big the file. Output
// is held in memory up to a limit and in a temporary file beyond it.
// lg may be nil.
func Run(src io.Reader, decide Decider, w io.Writer, lg *log.Logger) (st Stats, err error) {
	sp := newSpool(spoolMem)
	defer func() {
		if cerr := sp.close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriterSize(sp, bufSize)
	n, err := scan(src, func(r record.Record, eol string) error {
		out, act := decide(r)
		switch act {
		case Drop:
			st.Dropped++
			return nil
		case Transform:
			st.Transformed++
		default:
			st.Kept++
			out = r
		}
		if _, err := bw.WriteString(out.Encode()); err != nil {
			return err
		}
		_, err := bw.WriteString(eol)
		return err
	})
	st.Read = n
	if err != nil {
		return st, err
	}
	if err := bw.Flush(); err != nil {
		return st, err
	}
	if lg != nil {
		lg.Printf("read %d kept %d transformed %d dropped %d",
			st.Read, st.Kept, st.Transformed, st.Dropped)
	}
	return st, sp.commit(w)
}
