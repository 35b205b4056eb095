// Package record reads and writes single lines of a PDB format
// file. A Record keeps the text it came from. Fields are cut out by
// column, using the tables in layout.go, and a setter only rewrites
// the columns of its own field. A record that nobody touched is
// written back exactly as it was read, padding and all.
// Lines we do not recognise, or which are too short to trust, become
// Opaque records. They are never an error.
package record

import (
	"errors"
	"strconv"
	"strings"
)

// Kind says what sort of line a Record holds.
type Kind uint8

const (
	Opaque Kind = iota
	Atom
	Hetatm
	Anisou
	ModelStart
	ModelEnd
	Ter
	nKind
)

var kindNames = [nKind]string{"opaque", "ATOM", "HETATM", "ANISOU", "MODEL", "ENDMDL", "TER"}

func (k Kind) String() string {
	if k >= nKind {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ErrNoField is returned by a setter when the record kind does not
// have the field.
var ErrNoField = errors.New("record kind has no such field")

// Record is one line of a file, without its line terminator.
type Record struct {
	kind Kind
	line string
}

// Decode classifies a line. It cannot fail.
func Decode(line string) Record {
	tag := line
	if len(tag) > tagWidth {
		tag = tag[:tagWidth]
	} else if len(tag) < tagWidth {
		tag += strings.Repeat(" ", tagWidth-len(tag))
	}
	l, ok := byTag[tag]
	if !ok || len(line) < l.minWidth {
		return Record{kind: Opaque, line: line}
	}
	return Record{kind: l.kind, line: line}
}

// Encode returns the text of the record.
func (r Record) Encode() string { return r.line }

// Kind of the record.
func (r Record) Kind() Kind { return r.kind }

// IsAtom is true for ATOM and HETATM.
func (r Record) IsAtom() bool { return r.kind == Atom || r.kind == Hetatm }

// HasAtomFields is true for the kinds that carry chain, residue and
// atom names: ATOM, HETATM and ANISOU.
func (r Record) HasAtomFields() bool { return r.IsAtom() || r.kind == Anisou }

// Tag returns the record name from the first six columns without
// trailing blanks. This is the way to look at opaque records like
// SSBOND or REMARK.
func (r Record) Tag() string {
	t := r.line
	if len(t) > tagWidth {
		t = t[:tagWidth]
	}
	return strings.TrimRight(t, " ")
}

// col returns the span for a field, if this kind has it.
func (r Record) col(f fieldID) (span, bool) {
	l := byKind[r.kind]
	if l == nil || !l.cols[f].present() {
		return span{}, false
	}
	return l.cols[f], true
}

// raw returns the untrimmed text of a field. Short lines give
// a short (maybe empty) string.
func (r Record) raw(f fieldID) string {
	s, ok := r.col(f)
	if !ok || s.start >= len(r.line) {
		return ""
	}
	end := s.end
	if end > len(r.line) {
		end = len(r.line)
	}
	return r.line[s.start:end]
}

func (r Record) trimmed(f fieldID) string { return strings.TrimSpace(r.raw(f)) }

// char returns a one column field, or a blank if it is missing.
func (r Record) char(f fieldID) byte {
	if s := r.raw(f); len(s) > 0 {
		return s[0]
	}
	return ' '
}

func (r Record) integer(f fieldID) (int, bool) {
	n, err := strconv.Atoi(r.trimmed(f))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Serial is the atom serial number, or the model number for MODEL.
func (r Record) Serial() (int, bool) { return r.integer(fSerial) }

// Name is the four column atom name, not trimmed, since " CA " and
// "CA  " are different atoms.
func (r Record) Name() string { return r.raw(fName) }

func (r Record) AltLoc() byte { return r.char(fAltLoc) }
func (r Record) ResName() string { return r.trimmed(fResName) }
func (r Record) ChainID() byte { return r.char(fChainID) }
func (r Record) ResSeq() (int, bool) { return r.integer(fResSeq) }

// ResSeqText is the residue number as written, without blanks.
func (r Record) ResSeqText() string { return r.trimmed(fResSeq) }

func (r Record) ICode() byte { return r.char(fICode) }
func (r Record) SegID() string { return r.trimmed(fSegID) }
func (r Record) Element() string { return r.trimmed(fElement) }
func (r Record) Occupancy() string { return r.trimmed(fOccupancy) }
func (r Record) TempFactor() string { return r.trimmed(fTempFactor) }

// Coords returns the coordinate columns exactly as written. They are
// never converted to numbers here.
func (r Record) Coords() [3]string {
	return [3]string{r.raw(fX), r.raw(fY), r.raw(fZ)}
}

// setField overwrites the columns of one field with s, left
// justified and blank padded to the width of the field. A line that
// is too short is extended with blanks.
func (r *Record) setField(f fieldID, s string) error {
	c, ok := r.col(f)
	if !ok {
		return ErrNoField
	}
	w := c.width()
	if len(s) > w {
		s = s[:w]
	} else if len(s) < w {
		s += strings.Repeat(" ", w-len(s))
	}
	line := r.line
	if len(line) < c.end {
		line += strings.Repeat(" ", c.end-len(line))
	}
	r.line = line[:c.start] + s + line[c.end:]
	return nil
}

func (r *Record) SetAltLoc(c byte) error { return r.setField(fAltLoc, string(c)) }
func (r *Record) SetChainID(c byte) error { return r.setField(fChainID, string(c)) }
func (r *Record) SetSegID(s string) error { return r.setField(fSegID, s) }
