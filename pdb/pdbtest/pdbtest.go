// Package pdbtest has small PDB files used by the tests of several
// packages. They are written out with common.WrtTemp when a test needs
// a real file.
package pdbtest

// FullExample has chains A, B and G, segments T and Y, a water, an
// ion, alternate locations, an insertion code, a gap in the numbering
// of chain A and one SSBOND record. No MODEL records.
const FullExample = `HEADER    TEST STRUCTURE                          14-OCT-26   XXXX
REMARK   1 SMALL STRUCTURE WITH TWO SEGMENTS FOR TESTING
SSBOND   1 CYS A    2    CYS A    2                          1555   1555  2.03
ATOM      1  N   ASN A   1      22.066  40.557   0.420  1.00 10.00      T    N
ATOM      2  CA  ASN A   1      21.000  39.100   0.500  1.00 11.00      T    C
ATOM      3  N   CYS A   2      20.210  38.400   1.880  1.00 12.00      T    N
ATOM      4  CA ACYS A   2      19.100  37.600   2.300  0.50 13.00      T    C
ATOM      5  CA BCYS A   2      19.300  37.800   2.100  0.50 13.50      T    C
ATOM      6  N   GLY A   4      18.000  36.100   3.200  1.00 14.00      T    N
ATOM      7  N   SER A   4A     17.000  35.000   4.100  1.00 15.00      T    N
TER       8      SER A   4A
ATOM      9  N   ALA B   1       5.000   6.000   7.000  1.00 20.00      Y    N
ATOM     10  CA  ALA B   1       6.000   7.000   8.000  1.00 21.00      Y    C
TER      11      ALA B   1
HETATM   12  O   HOH G 101      -6.311  30.049  22.519  1.00 39.57      Y    O
HETATM   13  O   HOH G 102      -7.000  31.000  23.000  1.00 40.00      Y    O
HETATM   14 ZN    ZN G 201       1.000   2.000   3.000  1.00 30.00      Y   ZN
END
`

// TwoModels has two models with the same atoms in different places.
const TwoModels = `MODEL        1
ATOM      1  N   MET A   1       1.000   2.000   3.000  1.00  0.00           N
ATOM      2  CA  MET A   1       2.000   3.000   4.000  1.00  0.00           C
ATOM      3  N   LYS A   2       3.000   4.000   5.000  1.00  0.00           N
TER       4      LYS A   2
ENDMDL
MODEL        2
ATOM      1  N   MET A   1       1.500   2.500   3.500  1.00  0.00           N
ATOM      2  CA  MET A   1       2.500   3.500   4.500  1.00  0.00           C
ATOM      3  N   LYS A   2       3.500   4.500   5.500  1.00  0.00           N
TER       4      LYS A   2
ENDMDL
END
`

// TwoModelsDiff is TwoModels with the residue name of the second
// atom of model 2 changed.
const TwoModelsDiff = `MODEL        1
ATOM      1  N   MET A   1       1.000   2.000   3.000  1.00  0.00           N
ATOM      2  CA  MET A   1       2.000   3.000   4.000  1.00  0.00           C
ATOM      3  N   LYS A   2       3.000   4.000   5.000  1.00  0.00           N
TER       4      LYS A   2
ENDMDL
MODEL        2
ATOM      1  N   MET A   1       1.500   2.500   3.500  1.00  0.00           N
ATOM      2  CA  GLY A   1       2.500   3.500   4.500  1.00  0.00           C
ATOM      3  N   LYS A   2       3.500   4.500   5.500  1.00  0.00           N
TER       4      LYS A   2
ENDMDL
END
`
