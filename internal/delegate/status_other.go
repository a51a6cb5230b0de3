//go:build !unix

package delegate

import "os/exec"

func signalCode(*exec.ExitError) int { return 1 }
