package pipeline

import (
	"io"
	"log"

	"github.com/andrew-torda/pdbtools/config"
	"github.com/andrew-torda/pdbtools/pkg/common"
)

// WithInput does the part every tool shares: set up the logger, open
// the input and, if that worked, hand it to fn. Any error is printed
// and turned into an exit code. name is the tool name, for the log.
func WithInput(path string, stdio common.Stdio, cfg *config.Config, name string,
	fn func(src io.Reader, lg *log.Logger) error) int {
	lg, lgClose, err := Logger(cfg.Log, name+" ")
	if err != nil {
		return common.Fail(stdio.Err, err)
	}
	defer lgClose.Close()
	src, err := OpenOrFail(path, stdio.In, cfg)
	if err != nil {
		return common.Fail(stdio.Err, err)
	}
	defer src.Close()
	if err := fn(src, lg); err != nil {
		return common.Fail(stdio.Err, AsAccessError(path, err))
	}
	return common.ExitSuccess
}

// Filter is WithInput for the tools that write a new file to stdout.
func Filter(path string, decide Decider, stdio common.Stdio, cfg *config.Config, name string) int {
	return WithInput(path, stdio, cfg, name, func(src io.Reader, lg *log.Logger) error {
		_, err := Run(src, decide, stdio.Out, lg)
		return err
	})
}
