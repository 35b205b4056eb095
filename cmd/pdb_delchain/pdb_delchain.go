// 15 Oct 2026
// pdb_delchain removes the records of the chains given as an option.

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/delchain"
)

func mymain() int {
	cfg, err := config.New(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, common.ErrPrefix+err.Error())
		return common.ExitFailure
	}
	return delchain.Main(os.Args[1:], common.OsStdio(), cfg)
}

func main() {
	os.Exit(mymain())
}
