// 15 Oct 2026
// pdbtools runs any of the tools as a subcommand.

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/toolcmd"
)

func mymain() int {
	cfg, err := config.New(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, common.ErrPrefix+err.Error())
		return common.ExitFailure
	}
	return toolcmd.Execute(os.Args[1:], common.OsStdio(), cfg)
}

func main() {
	os.Exit(mymain())
}
