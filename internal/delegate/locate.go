package delegate

import (
	"errors"
	"fmt"
	"os/exec"
)

// DefaultName is the delegate executable looked up on PATH.
const DefaultName = "lattis"

// ErrNotFound is returned when no delegate executable can be located.
var ErrNotFound = errors.New("lattis executable not found")

// pythonShim calls the lattis CLI entry point with the forwarded arguments.
const pythonShim = "import sys; from lattis.cli import main; main(sys.argv[1:])"

var pythonCandidates = []string{"python3", "python"}

// Command is a located delegate: the executable and any arguments that
// precede the forwarded argv.
type Command struct {
	Path   string
	Prefix []string
}

// Argv returns the full argument list passed to the executable.
func (c Command) Argv(args []string) []string {
	out := make([]string, 0, len(c.Prefix)+len(args))
	out = append(out, c.Prefix...)
	return append(out, args...)
}

// Locate finds the delegate. An explicit name must resolve; otherwise the
// default lattis executable is tried, then a Python interpreter that can
// import lattis.cli. lookPath defaults to exec.LookPath.
func Locate(name string, lookPath func(string) (string, error)) (Command, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	if name != "" {
		path, err := lookPath(name)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %s: %v", ErrNotFound, name, err)
		}
		return Command{Path: path}, nil
	}

	if path, err := lookPath(DefaultName); err == nil {
		return Command{Path: path}, nil
	}
	for _, py := range pythonCandidates {
		if path, err := lookPath(py); err == nil {
			return Command{Path: path, Prefix: []string{"-c", pythonShim}}, nil
		}
	}
	return Command{}, fmt.Errorf("%w on PATH (install lattis or set BINSMITH_LATTIS_BIN)", ErrNotFound)
}
