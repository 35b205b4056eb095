// 15 Oct 2026
// pdb_delaltloc keeps one alternate location of each atom.

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/delaltloc"
)

func mymain() int {
	cfg, err := config.New(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, common.ErrPrefix+err.Error())
		return common.ExitFailure
	}
	return delaltloc.Main(os.Args[1:], common.OsStdio(), cfg)
}

func main() {
	os.Exit(mymain())
}
