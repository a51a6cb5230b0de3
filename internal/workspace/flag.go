package workspace

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// FlagName is the long flag that selects the workspace mode on the
// command line.
const FlagName = "workspace"

// firstValue latches the first assignment and ignores later ones. Shielded
// tokens are translated back to their original spelling.
type firstValue struct {
	value     string
	set       bool
	originals map[string]string
}

func (v *firstValue) Set(s string) error {
	if v.set {
		return nil
	}
	if orig, ok := v.originals[s]; ok {
		s = orig
	}
	v.value, v.set = s, true
	return nil
}

func (v *firstValue) String() string { return v.value }
func (v *firstValue) Type() string   { return "string" }

// sink accepts any value so a help flag never aborts the scan.
type sink struct{}

func (sink) Set(string) error { return nil }
func (sink) String() string   { return "" }
func (sink) Type() string     { return "bool" }

// ExtractMode returns the raw value of the first --workspace flag in argv,
// spelled either --workspace=<v> or --workspace <v>. Every other flag is
// tolerated and left alone; argv itself is never modified. The whole argv
// is scanned, including anything after a bare "--". A trailing --workspace
// with no value does not count.
func ExtractMode(argv []string) (string, bool) {
	args, originals := shield(argv)

	fs := pflag.NewFlagSet("binsmith", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetInterspersed(true)

	ws := firstValue{originals: originals}
	fs.Var(&ws, FlagName, "workspace mode (central or local)")
	fs.VarP(sink{}, "help", "h", "")
	fs.Lookup("help").NoOptDefVal = "true"

	// Once shielded, the only parse error left is a trailing --workspace
	// without a value, so nothing after it is lost.
	_ = fs.Parse(args)
	return ws.value, ws.set
}

// shield replaces tokens that would stop pflag early (the "--" terminator
// and malformed long flags such as "---x" or "--=x") with positional
// placeholders. The placeholders map back to the original tokens in case
// one of them is consumed as a --workspace value.
func shield(argv []string) ([]string, map[string]string) {
	var originals map[string]string
	args := make([]string, len(argv))
	for i, a := range argv {
		if !stopsParse(a) {
			args[i] = a
			continue
		}
		if originals == nil {
			originals = make(map[string]string)
		}
		placeholder := fmt.Sprintf("\x00arg%d", i)
		originals[placeholder] = a
		args[i] = placeholder
	}
	return args, originals
}

func stopsParse(a string) bool {
	if !strings.HasPrefix(a, "--") {
		return false
	}
	return len(a) == 2 || a[2] == '-' || a[2] == '='
}
