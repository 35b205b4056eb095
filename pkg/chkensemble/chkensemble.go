// 15 Oct 2026

// Package chkensemble checks that all the models in a file have the
// same atoms in the same order. Two atoms are the same if they have
// the same chain, residue number, insertion code, residue name and
// atom name. Coordinates are not looked at, so two models with the
// same atoms in completely different places are consistent.
//
// Models are compared 1 with 2, 2 with 3 and so on. We stop at the
// first pair that differs. A difference is reported on stderr, but it
// is not an error, so the exit code is still 0.
package chkensemble

import (
	"fmt"
	"io"
	"log"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pdb/record"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/pipeline"
	"github.com/andrew-torda/pdbtools/pkg/selopt"
)

const name = "pdb_chkensemble"

// Verdict is the result of a Check. If OK is false, models First and
// Second (counting from 1) differ at atom At (also from 1). Want is
// the atom in First and Got the one in Second. One of them is nil if
// that model ran out of atoms.
type Verdict struct {
	Models        int // number of models read
	OK            bool
	First, Second int
	At            int
	Want, Got     *record.AtomIdentity
}

// checker holds one model, the one before it and where we are.
type checker struct {
	prev, cur []record.AtomIdentity
	nBlock    int  // explicit blocks opened
	inBlock   bool // between MODEL and ENDMDL
	v         Verdict
}

func ptr(a record.AtomIdentity) *record.AtomIdentity { return &a }

func (c *checker) differ(at int, want, got *record.AtomIdentity) error {
	c.v = Verdict{Models: c.nBlock, First: c.nBlock - 1, Second: c.nBlock,
		At: at, Want: want, Got: got}
	return pipeline.ErrStop
}

// closeBlock finishes the current block. The previous one may be
// longer than this one.
func (c *checker) closeBlock() error {
	c.inBlock = false
	if c.nBlock > 1 && len(c.cur) < len(c.prev) {
		return c.differ(len(c.cur)+1, ptr(c.prev[len(c.cur)]), nil)
	}
	c.prev, c.cur = c.cur, c.prev[:0]
	return nil
}

func (c *checker) atom(id record.AtomIdentity) error {
	if c.nBlock > 1 {
		i := len(c.cur)
		if i >= len(c.prev) {
			return c.differ(i+1, nil, ptr(id))
		}
		if c.prev[i] != id {
			return c.differ(i+1, ptr(c.prev[i]), ptr(id))
		}
	}
	c.cur = append(c.cur, id)
	return nil
}

func (c *checker) record(r record.Record) error {
	switch r.Kind() {
	case record.ModelStart:
		if c.inBlock {
			if err := c.closeBlock(); err != nil {
				return err
			}
		}
		c.nBlock++
		c.inBlock = true
	case record.ModelEnd:
		if c.inBlock {
			return c.closeBlock()
		}
	case record.Atom, record.Hetatm:
		if !c.inBlock {
			return nil
		}
		id, _ := r.Identity()
		return c.atom(id)
	}
	return nil
}

// Check reads src and compares its models. Without any MODEL
// records, the whole file is one model and there is nothing to
// compare. Atoms outside of MODEL and ENDMDL are ignored when there
// are MODEL records.
func Check(src io.Reader) (Verdict, error) {
	c := &checker{}
	if _, err := pipeline.Each(src, c.record); err != nil {
		return Verdict{}, err
	}
	if c.v.Second != 0 {
		return c.v, nil
	}
	if c.inBlock {
		if err := c.closeBlock(); err != nil {
			return c.v, nil
		}
	}
	return Verdict{Models: max(1, c.nBlock), OK: true}, nil
}

func describe(a *record.AtomIdentity) string {
	if a == nil {
		return "no atom"
	}
	return a.String()
}

// Report writes the verdict the way the tool does.
func Report(v Verdict, stdout, stderr io.Writer) {
	if v.OK {
		fmt.Fprintf(stdout, "%d model(s) compared, models *seems* OK\n", v.Models)
		return
	}
	fmt.Fprintf(stderr, "Models %d and %d differ:\n", v.First, v.Second)
	fmt.Fprintf(stderr, "atom %d: model %d has %s, model %d has %s\n",
		v.At, v.First, describe(v.Want), v.Second, describe(v.Got))
}

// Main runs the tool and returns the exit code.
func Main(args []string, stdio common.Stdio, cfg *config.Config) int {
	file, err := selopt.FileOnly(args)
	if err != nil {
		return common.Fail(stdio.Err, err)
	}
	return pipeline.WithInput(file, stdio, cfg, name, func(src io.Reader, lg *log.Logger) error {
		v, err := Check(src)
		if err != nil {
			return err
		}
		lg.Printf("models %d ok %t", v.Models, v.OK)
		Report(v, stdio.Out, stdio.Err)
		return nil
	})
}
