// 13 Oct 2026

// Package selopt reads the command lines of the tools. They all look
// like
//
//	tool [-option] [file]
//
// where the option is glued to its value, as in -A,B or -AG for chains
// A and B, or A and G. Everything here runs before any file is opened.
package selopt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// OptionError is a bad command line.
type OptionError struct {
	Msg  string
	weak bool
}

func (e *OptionError) Error() string { return e.Msg }

// Weak errors get the single exclamation mark prefix.
func (e *OptionError) Weak() bool { return e.weak }

func optErr(format string, a ...any) error {
	return &OptionError{Msg: fmt.Sprintf(format, a...)}
}

// Split separates the option token from the file name. The leading
// "-" is removed from the option. Either, or both, may be empty.
func Split(args []string) (opt, file string, err error) {
	isOpt := func(s string) bool { return strings.HasPrefix(s, "-") && len(s) > 1 }
	switch len(args) {
	case 0:
		return "", "", nil
	case 1:
		if isOpt(args[0]) {
			return args[0][1:], "", nil
		}
		return "", args[0], nil
	case 2:
		if !isOpt(args[0]) {
			return "", "", &OptionError{
				Msg:  fmt.Sprintf("First argument is not an option: '%s'", args[0]),
				weak: true,
			}
		}
		return args[0][1:], args[1], nil
	}
	return "", "", optErr("Too many arguments: %s", strings.Join(args, " "))
}

// FileOnly is Split for tools which take no option.
func FileOnly(args []string) (string, error) {
	opt, file, err := Split(args)
	if err != nil {
		return "", err
	}
	if opt != "" {
		return "", optErr("This tool takes no options: '-%s'", opt)
	}
	return file, nil
}

// CharSet reads a set of one character identifiers. A value with
// commas is a list (A,B). Without commas, every character is an
// identifier (AB). Identifiers go into fixed width columns, so they
// must be printable ASCII.
// what names the identifiers in the error message.
func CharSet(token, what string) ([]byte, error) {
	bad := func() error { return optErr("%s must be single characters: %s", what, token) }
	var parts []string
	if strings.Contains(token, ",") {
		parts = strings.Split(token, ",")
	} else {
		for i := 0; i < len(token); i++ {
			parts = append(parts, token[i:i+1])
		}
	}
	ids := make([]byte, 0, len(parts))
	for _, s := range parts {
		if len(s) != 1 || s[0] >= utf8.RuneSelf || s[0] < ' ' {
			return nil, bad()
		}
		ids = append(ids, s[0])
	}
	return ids, nil
}

// Single reads exactly one identifier character.
func Single(token, what string) (byte, error) {
	if len(token) != 1 || token[0] >= utf8.RuneSelf || token[0] < ' ' {
		return 0, optErr("%s must be single characters: %s", what, token)
	}
	return token[0], nil
}

// Chars is a set of bytes for quick lookup.
type Chars [256]bool

// NewChars makes a set from a list of identifiers.
func NewChars(ids []byte) *Chars {
	var c Chars
	for _, b := range ids {
		c[b] = true
	}
	return &c
}

// Has says if b is in the set.
func (c *Chars) Has(b byte) bool { return c[b] }
