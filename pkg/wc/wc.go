// 15 Oct 2026

// Package wc summarises a structure file: how many models, chains,
// residues and atoms, whether there are alternate locations, insertion
// codes or gaps in the numbering and so on. Everything is counted in
// one pass over the file and nothing is remembered beyond the keys
// being counted.
//
//	pdb_wc file.pdb       everything except the chain table
//	pdb_wc -rc file.pdb   residues, then chains
//	pdb_wc -p file.pdb    one line per chain
package wc

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pdb/record"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/pipeline"
	"github.com/andrew-torda/pdbtools/pkg/selopt"
)

const name = "pdb_wc"

// Selector letters.
const (
	SelModels   = 'm'
	SelChains   = 'c'
	SelResidues = 'r'
	SelAtoms    = 'a'
	SelHetatm   = 'h'
	SelMultOcc  = 'o'
	SelInserts  = 'i'
	SelGaps     = 'g'
	SelWaters   = 'w'
	SelSSBond   = 's'
	SelPerChain = 'p'
)

const (
	allSel     = "mcrahoigwsp"
	defaultSel = "mcrahoigws"
)

// Options is the command line after checking.
type Options struct {
	Sel  []byte // what to print, in this order
	File string
}

// Parse checks the command line. Letters may come in any order and
// are printed in that order. A repeated letter is printed once.
func Parse(args []string) (*Options, error) {
	opt, file, err := selopt.Split(args)
	if err != nil {
		return nil, err
	}
	if opt == "" {
		opt = defaultSel
	}
	var seen selopt.Chars
	o := &Options{File: file}
	for i := 0; i < len(opt); i++ {
		c := opt[i]
		if strings.IndexByte(allSel, c) < 0 {
			return nil, &selopt.OptionError{Msg: fmt.Sprintf("Unknown option: '%c'", c)}
		}
		if !seen[c] {
			seen[c] = true
			o.Sel = append(o.Sel, c)
		}
	}
	return o, nil
}

// Columns of the per chain table.
const (
	colRes = iota
	colAtom
	colHet
	nCol
)

const initChains = 4

// MaxExact is the biggest count a float32 table cell holds exactly.
// Per chain counts stop there. No real structure comes close.
const MaxExact = 1 << 24

var waterNames = map[string]bool{
	"HOH": true, "WAT": true, "H2O": true, "DOD": true, "D2O": true,
}

type resKey struct {
	chain  byte
	resSeq string
	iCode  byte
}

// Counts is what one pass over a file gives us.
type Counts struct {
	Models   int // MODEL records, but at least 1
	Chains   int // summed over models
	Residues int // summed over models
	Atoms    int // ATOM and HETATM
	Hetatm   int
	Waters   int
	SSBond   int
	MultOcc  bool // any alternate location
	Inserts  bool // any insertion code
	Gaps     bool // a jump of more than one in the numbering of a chain

	ChainIDs []byte // in the order first seen
	perChain *matrix.FMatrix2d
	capped   []bool // per chain, a count reached MaxExact
}

// PerChain returns residues, atoms and HETATM for chain i of ChainIDs.
// exact is false if a count stopped at MaxExact, so the true number
// is at least what is returned.
func (c *Counts) PerChain(i int) (res, atoms, het int, exact bool) {
	row := c.perChain.Mat[i]
	return int(row[colRes]), int(row[colAtom]), int(row[colHet]), !c.capped[i]
}

// bump adds one to a table cell unless it is already at MaxExact.
// It says if the count is still exact.
func bump(row []float32, col int) bool {
	if row[col] >= MaxExact {
		return false
	}
	row[col]++
	return true
}

// counter is the state during the pass. The maps are emptied at each
// MODEL.
type counter struct {
	c        Counts
	nModel   int
	chainRow map[byte]int
	chains   map[byte]bool
	residues map[resKey]bool
	lastRes  map[byte]int // last ATOM residue number per chain
}

func newCounter() *counter {
	return &counter{
		c:        Counts{perChain: matrix.NewFMatrix2d(initChains, nCol)},
		chainRow: make(map[byte]int),
		chains:   make(map[byte]bool),
		residues: make(map[resKey]bool),
		lastRes:  make(map[byte]int),
	}
}

// row gives the table row of a chain, growing the table if needed.
func (cn *counter) row(chain byte) int {
	if i, ok := cn.chainRow[chain]; ok {
		return i
	}
	i := len(cn.c.ChainIDs)
	if nrow, _ := cn.c.perChain.Size(); i >= nrow {
		bigger := matrix.NewFMatrix2d(2*nrow, nCol)
		for j := range cn.c.perChain.Mat {
			copy(bigger.Mat[j], cn.c.perChain.Mat[j])
		}
		cn.c.perChain = bigger
	}
	cn.chainRow[chain] = i
	cn.c.ChainIDs = append(cn.c.ChainIDs, chain)
	cn.c.capped = append(cn.c.capped, false)
	return i
}

func (cn *counter) record(r record.Record) error {
	switch {
	case r.Kind() == record.ModelStart:
		cn.nModel++
		clear(cn.chains)
		clear(cn.residues)
		clear(cn.lastRes)
		return nil
	case r.Kind() == record.Opaque && r.Tag() == "SSBOND":
		cn.c.SSBond++
		return nil
	case !r.IsAtom():
		return nil
	}
	c := &cn.c
	chain := r.ChainID()
	i := cn.row(chain)
	row := c.perChain.Mat[i]
	c.Atoms++
	exact := bump(row, colAtom)
	if r.Kind() == record.Hetatm {
		c.Hetatm++
		exact = bump(row, colHet) && exact
	}
	if !exact {
		c.capped[i] = true
	}
	if r.AltLoc() != ' ' {
		c.MultOcc = true
	}
	if r.ICode() != ' ' {
		c.Inserts = true
	}
	if !cn.chains[chain] {
		cn.chains[chain] = true
		c.Chains++
	}
	key := resKey{chain, r.ResSeqText(), r.ICode()}
	if cn.residues[key] {
		return nil
	}
	cn.residues[key] = true
	c.Residues++
	if !bump(row, colRes) {
		c.capped[i] = true
	}
	if waterNames[r.ResName()] {
		c.Waters++
	}
	if r.Kind() == record.Atom {
		if n, ok := r.ResSeq(); ok {
			if last, seen := cn.lastRes[chain]; seen && n-last > 1 {
				c.Gaps = true
			}
			cn.lastRes[chain] = n
		}
	}
	return nil
}

// Count reads src and counts everything.
func Count(src io.Reader) (*Counts, error) {
	cn := newCounter()
	if _, err := pipeline.Each(src, cn.record); err != nil {
		return nil, err
	}
	cn.c.Models = max(1, cn.nModel)
	return &cn.c, nil
}

func trueFalse(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// Write prints the selected counts, one line each.
func (c *Counts) Write(w io.Writer, sel []byte) {
	perModel := func(n int) float64 { return float64(n) / float64(c.Models) }
	for _, s := range sel {
		switch s {
		case SelModels:
			fmt.Fprintf(w, "No. models:\t%d\n", c.Models)
		case SelChains:
			fmt.Fprintf(w, "No. chains:\t%d\t(%4.1f/model)\n", c.Chains, perModel(c.Chains))
		case SelResidues:
			fmt.Fprintf(w, "No. residues:\t%d\t(%4.1f/model)\n", c.Residues, perModel(c.Residues))
		case SelAtoms:
			fmt.Fprintf(w, "No. atoms:\t%d\t(%4.1f/model)\n", c.Atoms, perModel(c.Atoms))
		case SelHetatm:
			fmt.Fprintf(w, "No. HETATM:\t%d\n", c.Hetatm)
		case SelMultOcc:
			fmt.Fprintf(w, "Multiple Occ.:\t%s\n", trueFalse(c.MultOcc))
		case SelInserts:
			fmt.Fprintf(w, "Res. Inserts:\t%s\n", trueFalse(c.Inserts))
		case SelGaps:
			fmt.Fprintf(w, "Has seq. gaps:\t%s\n", trueFalse(c.Gaps))
		case SelWaters:
			fmt.Fprintf(w, "No. waters:\t%d\n", c.Waters)
		case SelSSBond:
			fmt.Fprintf(w, "No. SSBOND:\t%d\n", c.SSBond)
		case SelPerChain:
			for i, id := range c.ChainIDs {
				res, atoms, het, exact := c.PerChain(i)
				more := ""
				if !exact {
					more = "\t(at least)"
				}
				fmt.Fprintf(w, "Chain %c:\t%d residues\t%d atoms\t%d HETATM%s\n", id, res, atoms, het, more)
			}
		}
	}
}

// Main runs the tool and returns the exit code.
func Main(args []string, stdio common.Stdio, cfg *config.Config) int {
	o, err := Parse(args)
	if err != nil {
		return common.Fail(stdio.Err, err)
	}
	return pipeline.WithInput(o.File, stdio, cfg, name, func(src io.Reader, lg *log.Logger) error {
		c, err := Count(src)
		if err != nil {
			return err
		}
		lg.Printf("chains seen %d", len(c.ChainIDs))
		c.Write(stdio.Out, o.Sel)
		return nil
	})
}
