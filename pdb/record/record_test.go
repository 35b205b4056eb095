package record_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/pdbtools/pdb/record"
)

const (
	atomLine  = "ATOM      1  N   ASN A   1      22.066  40.557   0.420  1.00  0.00      T    N  "
	hetLine   = "HETATM 1641  O   HOH G 220      -6.311  30.049  22.519  1.00 39.57      Y    O"
	altLine   = "ATOM      3  CA AARG B  12A     10.000  20.000  30.000  0.50 10.00           C"
	anisoLine = "ANISOU    1  N   ASN A   1     2406   1892   1614    198    519   -328       N"
)

var roundTrip = []string{
	atomLine,
	hetLine,
	altLine,
	anisoLine,
	"MODEL        1",
	"MODEL     2",
	"ENDMDL",
	"TER",
	"TER    1642      HOH G 220",
	"REMARK   2 RESOLUTION. 1.90 ANGSTROMS.",
	"SSBOND   1 CYS A    6    CYS A  127                          1555   1555  2.03",
	"END",
	"",
	"AT",
	"ATOM      1  N   ASN A",                    // too short, stays opaque
	"ATOM      1  N   ASN A   1",                // exactly the minimum width
	"ATOM  99999 ABCD XYZ Z9999Z    trailing\t", // junk in every field
	"atom      1  N   ASN A   1      22.066  40.557   0.420",
}

func TestRoundTrip(t *testing.T) {
	for _, s := range roundTrip {
		if got := Decode(s).Encode(); got != s {
			t.Errorf("round trip changed line\n%q\n%q", s, got)
		}
	}
}

var kinds = []struct {
	line string
	kind Kind
}{
	{atomLine, Atom},
	{hetLine, Hetatm},
	{anisoLine, Anisou},
	{"MODEL        1", ModelStart},
	{"MODEL", ModelStart},
	{"ENDMDL", ModelEnd},
	{"ENDMD", Opaque},
	{"TER", Ter},
	{"TER    1642      HOH G 220", Ter},
	{"END", Opaque},
	{"REMARK 500", Opaque},
	{"", Opaque},
	{"ATOM      1  N   ASN A", Opaque},
	{"atom      1  N   ASN A   1", Opaque},
	{"ATOMS     1  N   ASN A   1", Opaque},
}

func TestKind(t *testing.T) {
	for _, k := range kinds {
		if got := Decode(k.line).Kind(); got != k.kind {
			t.Errorf("%q: got kind %v, want %v", k.line, got, k.kind)
		}
	}
}

func TestAtomFields(t *testing.T) {
	r := Decode(altLine)
	if n, ok := r.Serial(); !ok || n != 3 {
		t.Errorf("serial %d %v", n, ok)
	}
	if r.Name() != " CA " {
		t.Errorf("name %q", r.Name())
	}
	if r.AltLoc() != 'A' || r.ChainID() != 'B' || r.ICode() != 'A' {
		t.Errorf("altloc %c chain %c icode %c", r.AltLoc(), r.ChainID(), r.ICode())
	}
	if n, ok := r.ResSeq(); !ok || n != 12 {
		t.Errorf("resseq %d %v", n, ok)
	}
	if r.ResName() != "ARG" || r.Element() != "C" || r.SegID() != "" {
		t.Errorf("resname %q element %q segid %q", r.ResName(), r.Element(), r.SegID())
	}
	if r.Occupancy() != "0.50" || r.TempFactor() != "10.00" {
		t.Errorf("occupancy %q bfac %q", r.Occupancy(), r.TempFactor())
	}
	want := [3]string{"  10.000", "  20.000", "  30.000"}
	if diff := cmp.Diff(want, r.Coords()); diff != "" {
		t.Errorf("coordinates (-want +got)\n%s", diff)
	}
	if s := Decode(atomLine).SegID(); s != "T" {
		t.Errorf("segid %q", s)
	}
}

func TestShortAtom(t *testing.T) {
	r := Decode("ATOM      1  N   ASN A   1")
	if r.Kind() != Atom {
		t.Fatal("minimum width line not an atom")
	}
	if r.SegID() != "" || r.Element() != "" {
		t.Error("fields past the end of line should be empty")
	}
	if c := r.Coords(); c[0] != "" || c[2] != "" {
		t.Error("missing coordinates should be empty, got", c)
	}
}

func TestModelSerial(t *testing.T) {
	if n, ok := Decode("MODEL       12").Serial(); !ok || n != 12 {
		t.Error("model serial", n, ok)
	}
	if _, ok := Decode("MODEL").Serial(); ok {
		t.Error("bare MODEL should have no serial")
	}
	if _, ok := Decode("ENDMDL").Serial(); ok {
		t.Error("ENDMDL has no serial")
	}
}

func TestTag(t *testing.T) {
	for _, x := range []struct{ line, tag string }{
		{atomLine, "ATOM"},
		{"SSBOND   1 CYS A    6", "SSBOND"},
		{"TER", "TER"},
		{"", ""},
	} {
		if got := Decode(x.line).Tag(); got != x.tag {
			t.Errorf("%q: tag %q want %q", x.line, got, x.tag)
		}
	}
}

func TestSetters(t *testing.T) {
	r := Decode(altLine)
	if err := r.SetAltLoc(' '); err != nil {
		t.Fatal(err)
	}
	want := "ATOM      3  CA  ARG B  12A     10.000  20.000  30.000  0.50 10.00           C"
	if r.Encode() != want {
		t.Errorf("after SetAltLoc\n%q\n%q", r.Encode(), want)
	}
	if err := r.SetChainID('Z'); err != nil || r.ChainID() != 'Z' {
		t.Error("SetChainID", err)
	}
	if len(r.Encode()) != len(altLine) {
		t.Error("setter changed line length")
	}
	if r.Coords() != Decode(altLine).Coords() {
		t.Error("setter touched coordinates")
	}
}

func TestSetSegIDExtends(t *testing.T) {
	r := Decode("ATOM      1  N   ASN A   1")
	if err := r.SetSegID("LONGER"); err != nil {
		t.Fatal(err)
	}
	s := r.Encode()
	if len(s) != 76 {
		t.Fatalf("line length %d, want 76", len(s))
	}
	if r.SegID() != "LONG" {
		t.Errorf("segid %q, should be cut to the field width", r.SegID())
	}
}

func TestSetterNoField(t *testing.T) {
	r := Decode("REMARK 1")
	if err := r.SetChainID('A'); err != ErrNoField {
		t.Error("expected ErrNoField on opaque record, got", err)
	}
	r = Decode("ENDMDL")
	if err := r.SetAltLoc('A'); err != ErrNoField {
		t.Error("expected ErrNoField on ENDMDL, got", err)
	}
	if r.Encode() != "ENDMDL" {
		t.Error("failed setter changed the line")
	}
}

func TestIdentity(t *testing.T) {
	a, ok := Decode(altLine).Identity()
	if !ok {
		t.Fatal("no identity for atom")
	}
	want := AtomIdentity{Chain: 'B', ResSeq: "12", ICode: 'A', ResName: "ARG", Name: " CA "}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("identity (-want +got)\n%s", diff)
	}
	if _, ok := Decode(anisoLine).Identity(); ok {
		t.Error("ANISOU should not have an atom identity")
	}
	if _, ok := Decode("TER").Identity(); ok {
		t.Error("TER should not have an atom identity")
	}
}

// Identities ignore where an atom is.
func TestIdentityIgnoresGeometry(t *testing.T) {
	moved := "ATOM      1  N   ASN A   1      99.999 -40.557 100.420  0.10 80.00      T    N  "
	a, _ := Decode(atomLine).Identity()
	b, _ := Decode(moved).Identity()
	if a != b {
		t.Errorf("identities differ: %v %v", a, b)
	}
}

func TestIdentityString(t *testing.T) {
	a, _ := Decode(altLine).Identity()
	if s := a.String(); s != "chain B residue 12A ARG atom CA" {
		t.Error("got", s)
	}
}

func TestCheckLayout(t *testing.T) {
	good := MakeLayout("XXXX  ", 4, MakeSpan(6, 11), MakeSpan(12, 16))
	if err := CheckLayout(good); err != nil {
		t.Error("good layout rejected", err)
	}
	bad := []*Layout{
		MakeLayout("XXX", 3, MakeSpan(6, 11), MakeSpan(12, 16)),    // short tag
		MakeLayout("XXXX  ", 2, MakeSpan(6, 11), MakeSpan(12, 16)), // min width shorter than tag
		MakeLayout("XXXX  ", 4, MakeSpan(4, 11), MakeSpan(12, 16)), // inside the tag
		MakeLayout("XXXX  ", 4, MakeSpan(6, 13), MakeSpan(12, 16)), // overlap
		MakeLayout("XXXX  ", 4, MakeSpan(6, 11), MakeSpan(16, 12)), // backwards
	}
	for i, l := range bad {
		if err := CheckLayout(l); err == nil {
			t.Error("bad layout", i, "accepted")
		}
	}
}
