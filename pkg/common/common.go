// 12 Oct 2026

// Package common has the few things every tool needs: exit codes,
// the way errors are printed and the streams a tool talks to.
package common

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
)

// Error prefixes. Almost everything uses the double one.
const (
	ErrPrefix     = "ERROR!! "
	ErrPrefixWeak = "ERROR! "
)

// Stdio holds the streams of one tool invocation. In is only used
// when there is no file argument. Nil means there is no piped input.
type Stdio struct {
	In  *os.File
	Out io.Writer
	Err io.Writer
}

// OsStdio is what the commands use.
func OsStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// A weakError is printed with the single exclamation mark prefix.
type weakError interface {
	Weak() bool
}

// Fail prints an error message with the usual prefix and returns
// the failure exit code, so a tool can write
//
//	return common.Fail(stdio.Err, err)
func Fail(w io.Writer, err error) int {
	prefix := ErrPrefix
	var wk weakError
	if errors.As(err, &wk) && wk.Weak() {
		prefix = ErrPrefixWeak
	}
	fmt.Fprintln(w, prefix+err.Error())
	return ExitFailure
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
