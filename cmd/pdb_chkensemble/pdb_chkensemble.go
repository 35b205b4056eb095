// 15 Oct 2026
// pdb_chkensemble checks that the models of an ensemble have the same atoms.

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pkg/chkensemble"
	"github.com/andrew-torda/pdbtools/pkg/common"
)

func mymain() int {
	cfg, err := config.New(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, common.ErrPrefix+err.Error())
		return common.ExitFailure
	}
	return chkensemble.Main(os.Args[1:], common.OsStdio(), cfg)
}

func main() {
	os.Exit(mymain())
}
