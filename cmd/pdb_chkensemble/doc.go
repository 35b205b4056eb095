/*
pdb_chkensemble checks that all models in a file have the same atoms
in the same order. Only the chain, residue number, insertion code,
residue name and atom name are compared. Coordinates are not.

Usage:

	pdb_chkensemble [file]

If all is well, a line ending in "models *seems* OK" goes to stdout.
Otherwise, the first pair of models that differ is named on stderr.
Either way the exit code is 0. It is only 1 if the file could not be
read or the command line was wrong.
*/
package main
