// 14 Oct 2026
// Column layouts for the record kinds we understand. Every accessor
// in record.go goes through these tables, so a change to the format
// is a change here and nowhere else.

package record

import (
	"fmt"
	"strings"
)

const tagWidth = 6 // record name occupies columns 1-6

type fieldID uint8

const (
	fSerial fieldID = iota
	fName
	fAltLoc
	fResName
	fChainID
	fResSeq
	fICode
	fX
	fY
	fZ
	fOccupancy
	fTempFactor
	fSegID
	fElement
	fCharge
	nField
)

var fieldNames = [nField]string{
	"serial", "name", "altLoc", "resName", "chainID", "resSeq", "iCode",
	"x", "y", "z", "occupancy", "tempFactor", "segID", "element", "charge",
}

// span is a zero based, half open byte range. end == 0 means the
// kind does not carry the field.
type span struct{ start, end int }

func (s span) present() bool { return s.end > 0 }
func (s span) width() int    { return s.end - s.start }

type layout struct {
	kind     Kind
	tag      string // exactly tagWidth bytes, space padded
	minWidth int    // shorter lines are not trusted and stay opaque
	cols     [nField]span
}

// atomCols is the layout shared by ATOM and HETATM.
var atomCols = [nField]span{
	fSerial:     {6, 11},
	fName:       {12, 16},
	fAltLoc:     {16, 17},
	fResName:    {17, 20},
	fChainID:    {21, 22},
	fResSeq:     {22, 26},
	fICode:      {26, 27},
	fX:          {30, 38},
	fY:          {38, 46},
	fZ:          {46, 54},
	fOccupancy:  {54, 60},
	fTempFactor: {60, 66},
	fSegID:      {72, 76},
	fElement:    {76, 78},
	fCharge:     {78, 80},
}

// anisouCols has the identity columns of an atom, but columns 29-70
// are the six U(ij) values, not coordinates.
var anisouCols = [nField]span{
	fSerial:  {6, 11},
	fName:    {12, 16},
	fAltLoc:  {16, 17},
	fResName: {17, 20},
	fChainID: {21, 22},
	fResSeq:  {22, 26},
	fICode:   {26, 27},
	fSegID:   {72, 76},
	fElement: {76, 78},
	fCharge:  {78, 80},
}

var terCols = [nField]span{
	fSerial:  {6, 11},
	fResName: {17, 20},
	fChainID: {21, 22},
	fResSeq:  {22, 26},
	fICode:   {26, 27},
}

var modelCols = [nField]span{
	fSerial: {10, 14},
}

const atomMinWidth = 27 // through the insertion code

var layouts = []layout{
	{kind: Atom, tag: "ATOM  ", minWidth: atomMinWidth, cols: atomCols},
	{kind: Hetatm, tag: "HETATM", minWidth: atomMinWidth, cols: atomCols},
	{kind: Anisou, tag: "ANISOU", minWidth: atomMinWidth, cols: anisouCols},
	{kind: ModelStart, tag: "MODEL ", minWidth: 5, cols: modelCols},
	{kind: ModelEnd, tag: "ENDMDL", minWidth: 6},
	{kind: Ter, tag: "TER   ", minWidth: 3, cols: terCols},
}

var (
	byTag  = make(map[string]*layout)
	byKind [nKind]*layout
)

// checkLayout makes sure a table is usable: the tag has the right
// width, and the fields come in order, do not overlap and do not
// reach into the tag.
func checkLayout(l *layout) error {
	if len(l.tag) != tagWidth {
		return fmt.Errorf("tag %q is not %d wide", l.tag, tagWidth)
	}
	if n := len(strings.TrimRight(l.tag, " ")); l.minWidth < n {
		return fmt.Errorf("%s: minimum width %d shorter than tag", l.tag, l.minWidth)
	}
	prev := tagWidth
	for i, s := range l.cols {
		if !s.present() {
			continue
		}
		if s.start >= s.end {
			return fmt.Errorf("%s: %s has empty range %v", l.tag, fieldNames[i], s)
		}
		if s.start < prev {
			return fmt.Errorf("%s: %s starts at %d, overlaps previous field", l.tag, fieldNames[i], s.start)
		}
		prev = s.end
	}
	return nil
}

func init() {
	for i := range layouts {
		l := &layouts[i]
		if err := checkLayout(l); err != nil {
			panic("record layout: " + err.Error())
		}
		if _, dup := byTag[l.tag]; dup {
			panic("record layout: duplicate tag " + l.tag)
		}
		byTag[l.tag] = l
		byKind[l.kind] = l
	}
}
