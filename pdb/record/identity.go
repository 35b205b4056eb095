package record

import (
	"fmt"
	"strings"
)

// AtomIdentity says which atom a record describes, but not where it
// is. Coordinates, occupancy and B-factor are deliberately left out,
// so two models with the same atoms in the same order have equal
// identities however different their geometry.
type AtomIdentity struct {
	Chain   byte
	ResSeq  string // trimmed column text, so odd numbering still compares
	ICode   byte
	ResName string
	Name    string // four columns, untrimmed
}

// Identity returns the identity of an ATOM or HETATM record.
func (r Record) Identity() (AtomIdentity, bool) {
	if !r.IsAtom() {
		return AtomIdentity{}, false
	}
	return AtomIdentity{
		Chain:   r.ChainID(),
		ResSeq:  r.ResSeqText(),
		ICode:   r.ICode(),
		ResName: r.ResName(),
		Name:    r.Name(),
	}, true
}

func (a AtomIdentity) String() string {
	res := a.ResSeq
	if a.ICode != ' ' {
		res += string(a.ICode)
	}
	return fmt.Sprintf("chain %c residue %s %s atom %s",
		a.Chain, res, a.ResName, strings.TrimSpace(a.Name))
}
