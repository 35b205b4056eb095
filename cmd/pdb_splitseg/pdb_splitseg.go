// 15 Oct 2026
// pdb_splitseg writes each segment of a file to its own file.

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/splitseg"
)

func mymain() int {
	cfg, err := config.New(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, common.ErrPrefix+err.Error())
		return common.ExitFailure
	}
	return splitseg.Main(os.Args[1:], common.OsStdio(), cfg)
}

func main() {
	os.Exit(mymain())
}
