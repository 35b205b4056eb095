// 14 Oct 2026

// Package delaltloc removes alternate locations. For every atom
// position only one conformer is kept: the one named on the command
// line or, without an option, the first one in the file. The kept
// record gets a blank alternate location column.
//
//	pdb_delaltloc file.pdb
//	pdb_delaltloc -B file.pdb
//
// With -B, an atom which has alternate locations but no B conformer
// disappears completely. We only see one line at a time, so we cannot
// know this in advance.
package delaltloc

import (
	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pdb/record"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/pipeline"
	"github.com/andrew-torda/pdbtools/pkg/selopt"
)

const name = "pdb_delaltloc"

// Options is the command line after checking.
type Options struct {
	AltLoc byte   // conformer to keep, 0 means the first seen
	File   string // "" means stdin
}

// Parse checks the command line.
func Parse(args []string) (*Options, error) {
	opt, file, err := selopt.Split(args)
	if err != nil {
		return nil, err
	}
	o := &Options{File: file}
	if opt != "" {
		if o.AltLoc, err = selopt.Single(opt, "Alternate location identifiers"); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// position is an atom without its alternate location.
type position struct {
	chain  byte
	resSeq string
	iCode  byte
	name   string
}

// Decider keeps the chosen conformer. To find the first conformer of
// each atom, it remembers atom positions which have alternate
// locations, but only within one model.
func (o *Options) Decider() pipeline.Decider {
	first := make(map[position]byte)
	return func(r record.Record) (record.Record, pipeline.Action) {
		if r.Kind() == record.ModelStart {
			clear(first)
			return r, pipeline.Keep
		}
		if !r.HasAtomFields() {
			return r, pipeline.Keep
		}
		alt := r.AltLoc()
		if alt == ' ' {
			return r, pipeline.Keep
		}
		want := o.AltLoc
		if want == 0 {
			pos := position{r.ChainID(), r.ResSeqText(), r.ICode(), r.Name()}
			var seen bool
			if want, seen = first[pos]; !seen {
				want = alt
				first[pos] = alt
			}
		}
		if alt != want {
			return r, pipeline.Drop
		}
		r.SetAltLoc(' ')
		return r, pipeline.Transform
	}
}

// Main runs the tool and returns the exit code.
func Main(args []string, stdio common.Stdio, cfg *config.Config) int {
	o, err := Parse(args)
	if err != nil {
		return common.Fail(stdio.Err, err)
	}
	return pipeline.Filter(o.File, o.Decider(), stdio, cfg, name)
}
