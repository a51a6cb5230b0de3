//go:build unix

package delegate

import (
	"os/exec"
	"syscall"
)

// signalCode maps a signal-terminated child to the shell convention 128+n.
func signalCode(ee *exec.ExitError) int {
	if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}
