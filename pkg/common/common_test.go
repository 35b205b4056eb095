package common_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	. "github.com/andrew-torda/pdbtools/pkg/common"
)

type quiet struct{}

func (quiet) Error() string { return "First argument is not an option: 'c'" }
func (quiet) Weak() bool    { return true }

func TestFail(t *testing.T) {
	var tests = []struct {
		err  error
		want string
	}{
		{errors.New("No data to process!"), "ERROR!! No data to process!\n"},
		{quiet{}, "ERROR! First argument is not an option: 'c'\n"},
		{fmt.Errorf("wrapped: %w", quiet{}), "ERROR! wrapped: First argument is not an option: 'c'\n"},
	}
	for _, tt := range tests {
		var b bytes.Buffer
		if code := Fail(&b, tt.err); code != ExitFailure {
			t.Error("exit code", code)
		}
		if b.String() != tt.want {
			t.Errorf("got %q want %q", b.String(), tt.want)
		}
	}
}

func TestWrtTemp(t *testing.T) {
	const s = "MODEL        1\nENDMDL\n"
	fname, err := WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != s {
		t.Errorf("read back %q", b)
	}
}
