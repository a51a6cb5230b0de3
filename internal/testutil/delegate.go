package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// EchoScript prints each argument as "arg=<value>" and then the variables
// the launcher produces, one "KEY=value" per line ("KEY" alone when unset).
const EchoScript = `for a in "$@"; do echo "arg=$a"; done
for k in AGENT_DEFAULT LATTIS_DATA_DIR LATTIS_WORKSPACE_MODE; do
  eval "v=\${$k+set}"
  if [ "$v" = set ]; then eval "echo $k=\$$k"; else echo "$k"; fi
done
`

// FakeLattis writes an executable shell script named lattis into a temp
// directory and returns its path. Tests that need it are skipped on Windows.
func FakeLattis(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake delegate needs /bin/sh")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "lattis")
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
	return path
}

// Lines splits script output into trimmed, non-empty lines.
func Lines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
