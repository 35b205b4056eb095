/*
pdb_wc summarises a PDB file.

Usage:

	pdb_wc [-mcrahoigwsp] [file]

The letters pick what is printed, in the order given:

	m	number of models
	c	number of chains, and per model
	r	number of residues, and per model
	a	number of ATOM and HETATM records, and per model
	h	number of HETATM records
	o	whether there are alternate locations
	i	whether there are insertion codes
	g	whether residue numbering has gaps
	w	number of water molecules
	s	number of SSBOND records
	p	residues, atoms and HETATM for each chain

Without a letter, everything except p is printed.
Without a file, a piped stdin is read. Gzipped input is fine.
*/
package main
