// 14 Oct 2026

// Package splitseg writes each segment of a structure to its own file.
// For input foo.pdb and segments T and Y we get foo_T.pdb and
// foo_Y.pdb in the output directory. Only ATOM, HETATM, ANISOU and TER
// records go to the files. A TER belongs to the segment of the atom
// before it. Records with a blank segment identifier are left out.
package splitseg

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pdb/record"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/pipeline"
	"github.com/andrew-torda/pdbtools/pkg/selopt"
)

const (
	name        = "pdb_splitseg"
	stdinBase   = "output"
	outExt      = ".pdb"
	gzExt       = ".gz"
	replacement = "_"
)

// BaseName is the start of the output file names for input path.
// Directory, a trailing .gz and then the extension are removed.
func BaseName(path string) string {
	if path == "" {
		return stdinBase
	}
	b := filepath.Base(path)
	b = strings.TrimSuffix(b, gzExt)
	if ext := filepath.Ext(b); ext != "" && ext != b {
		b = strings.TrimSuffix(b, ext)
	}
	if b == "" {
		return stdinBase
	}
	return b
}

// fileSeg makes a segment identifier safe for a file name.
func fileSeg(seg string) string {
	return strings.NewReplacer("/", replacement, string(filepath.Separator), replacement).Replace(seg)
}

type segFile struct {
	fp *os.File
	bw *bufio.Writer
}

// splitter holds the open output files, keyed by segment.
type splitter struct {
	dir, base string
	files     map[string]*segFile
	order     []string // segments in the order first seen
	last      string   // segment of the last atom
}

func (s *splitter) path(seg string) string {
	return filepath.Join(s.dir, s.base+"_"+fileSeg(seg)+outExt)
}

func (s *splitter) write(seg, line string) error {
	f, ok := s.files[seg]
	if !ok {
		fp, err := os.Create(s.path(seg))
		if err != nil {
			return err
		}
		f = &segFile{fp: fp, bw: bufio.NewWriter(fp)}
		s.files[seg] = f
		s.order = append(s.order, seg)
	}
	if _, err := f.bw.WriteString(line); err != nil {
		return err
	}
	return f.bw.WriteByte('\n')
}

func (s *splitter) record(r record.Record) error {
	var seg string
	switch {
	case r.HasAtomFields():
		seg = r.SegID()
		s.last = seg
	case r.Kind() == record.Ter:
		seg = s.last
	default:
		return nil
	}
	if seg == "" {
		return nil
	}
	return s.write(seg, r.Encode())
}

// close flushes and closes everything, returning the first error.
func (s *splitter) close() error {
	var errs []error
	for _, seg := range s.order {
		f := s.files[seg]
		errs = append(errs, f.bw.Flush(), f.fp.Close())
	}
	return errors.Join(errs...)
}

// Split reads src and writes one file per segment into dir. It
// returns the names of the files written, in the order their
// segments first appeared.
func Split(src io.Reader, dir, base string, lg *log.Logger) ([]string, error) {
	s := &splitter{dir: dir, base: base, files: make(map[string]*segFile)}
	_, err := pipeline.Each(src, s.record)
	if cerr := s.close(); err == nil {
		err = cerr
	}
	paths := make([]string, len(s.order))
	for i, seg := range s.order {
		paths[i] = s.path(seg)
	}
	if err != nil {
		return paths, err
	}
	if lg != nil {
		lg.Printf("wrote %d segment files to %s", len(paths), dir)
	}
	return paths, nil
}

// Main runs the tool and returns the exit code.
func Main(args []string, stdio common.Stdio, cfg *config.Config) int {
	file, err := selopt.FileOnly(args)
	if err != nil {
		return common.Fail(stdio.Err, err)
	}
	if fi, err := os.Stat(cfg.OutDir); err != nil || !fi.IsDir() {
		return common.Fail(stdio.Err, fmt.Errorf("Output directory not usable: %s", cfg.OutDir))
	}
	return pipeline.WithInput(file, stdio, cfg, name, func(src io.Reader, lg *log.Logger) error {
		_, err := Split(src, cfg.OutDir, BaseName(file), lg)
		return err
	})
}
