// 14 Oct 2026

// Package delchain removes all records of the chains we are given.
// ATOM, HETATM, ANISOU and TER records are looked at. Everything else
// goes through untouched.
//
//	pdb_delchain -A,B file.pdb
//	pdb_delchain -AB file.pdb
package delchain

import (
	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pdb/record"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/pipeline"
	"github.com/andrew-torda/pdbtools/pkg/selopt"
)

const name = "pdb_delchain"

// Options is the command line after checking.
type Options struct {
	Chains []byte // identifiers of chains to delete, may be empty
	File   string // "" means stdin
}

// Parse checks the command line. No option at all means no chains,
// so the file comes out unchanged.
func Parse(args []string) (*Options, error) {
	opt, file, err := selopt.Split(args)
	if err != nil {
		return nil, err
	}
	chains, err := selopt.CharSet(opt, "Chain identifiers")
	if err != nil {
		return nil, err
	}
	return &Options{Chains: chains, File: file}, nil
}

// Decider drops records belonging to one of the chains.
func (o *Options) Decider() pipeline.Decider {
	del := selopt.NewChars(o.Chains)
	return func(r record.Record) (record.Record, pipeline.Action) {
		if (r.HasAtomFields() || r.Kind() == record.Ter) && del.Has(r.ChainID()) {
			return r, pipeline.Drop
		}
		return r, pipeline.Keep
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
