// 15 Oct 2026
// pdb_wc counts models, chains, residues and atoms.

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/wc"
)

func mymain() int {
	cfg, err := config.New(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, common.ErrPrefix+err.Error())
		return common.ExitFailure
	}
	return wc.Main(os.Args[1:], common.OsStdio(), cfg)
}

func main() {
	os.Exit(mymain())
}
