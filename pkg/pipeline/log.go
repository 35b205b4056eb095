package pipeline

import (
	"io"
	"log"
	"os"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logger decides where to send debugging output.
// "" throws it away, "stdout" and "stderr" are what they say and
// anything else is a file we append to. The caller closes the
// returned Closer when finished, which only matters for a file.
func Logger(dest, prefix string) (*log.Logger, io.Closer, error) {
	var iowriter io.Writer
	var closer io.Closer = nopCloser{}
	switch dest {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	case "stderr":
		iowriter = os.Stderr
	default:
		fp, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		iowriter, closer = fp, fp
	}
	return log.New(iowriter, prefix, log.Lshortfile), closer, nil
}
