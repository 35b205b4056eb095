// 15 Oct 2026

// Package toolcmd puts all the tools under one command, so
//
//	pdbtools delchain -A file.pdb
//
// does the same as pdb_delchain -A file.pdb. The tools parse their own
// arguments. cobra only picks the tool.
package toolcmd

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pkg/chkensemble"
	"github.com/andrew-torda/pdbtools/pkg/common"
	"github.com/andrew-torda/pdbtools/pkg/delaltloc"
	"github.com/andrew-torda/pdbtools/pkg/delchain"
	"github.com/andrew-torda/pdbtools/pkg/splitseg"
	"github.com/andrew-torda/pdbtools/pkg/wc"
)

// Version of the whole suite.
const Version = "0.1.0"

type mainFunc func(args []string, stdio common.Stdio, cfg *config.Config) int

type tool struct {
	use, short, example string
	main                mainFunc
}

var tools = []tool{
	{"delchain [-A,B] [file]", "Delete all records of the given chains",
		"  pdbtools delchain -A,B 1abc.pdb", delchain.Main},
	{"delaltloc [-A] [file]", "Keep one alternate location per atom",
		"  pdbtools delaltloc -B 1abc.pdb", delaltloc.Main},
	{"splitseg [file]", "Write one file per segment identifier",
		"  pdbtools splitseg 1abc.pdb", splitseg.Main},
	{"chkensemble [file]", "Check that all models have the same atoms",
		"  pdbtools chkensemble ensemble.pdb", chkensemble.Main},
	{"wc [-mcrahoigwsp] [file]", "Count models, chains, residues, atoms and more",
		"  pdbtools wc -rc 1abc.pdb", wc.Main},
}

// NewRoot builds the command tree. The exit code of whichever tool
// ran ends up in *code.
func NewRoot(stdio common.Stdio, cfg *config.Config, code *int) *cobra.Command {
	root := &cobra.Command{
		Use:           "pdbtools",
		Short:         "Filters and summaries for PDB format files",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.SetOut(stdio.Out)
	root.SetErr(stdio.Err)
	for _, t := range tools {
		t := t
		root.AddCommand(&cobra.Command{
			Use:                        t.use,
			Short:                      t.short,
			Example:                    t.example,
			SuggestionsMinimumDistance: 2,
			DisableFlagParsing:         true,
			Run: func(cmd *cobra.Command, args []string) {
				*code = t.main(args, stdio, cfg)
			},
		})
	}
	return root
}

// Execute runs the tool named in args[0] on the rest of args and
// returns the exit code.
func Execute(args []string, stdio common.Stdio, cfg *config.Config) int {
	code := common.ExitSuccess
	root := NewRoot(stdio, cfg, &code)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return common.Fail(stdio.Err, err)
	}
	return code
}
