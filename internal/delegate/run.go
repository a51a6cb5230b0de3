package delegate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/caesarnine/binsmith/internal/environ"
)

// ExitError carries a non-zero delegate exit status. The delegate has
// already reported the failure itself.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("lattis exited with status %d", e.Code)
}

// Invocation describes one delegate run.
type Invocation struct {
	Command Command
	Args    []string
	Env     environ.Env
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run executes the delegate and waits for it. SIGTERM and SIGHUP sent to
// the launcher are forwarded. SIGINT is forwarded only when stdin is not a
// terminal; with a terminal the child already gets it from the foreground
// process group.
func Run(ctx context.Context, inv Invocation) error {
	c := exec.CommandContext(ctx, inv.Command.Path, inv.Command.Argv(inv.Args)...)
	c.Env = inv.Env.Environ()
	c.Stdin = inv.Stdin
	c.Stdout = inv.Stdout
	c.Stderr = inv.Stderr

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigs)

	if err := c.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", inv.Command.Path, err)
	}

	done := make(chan struct{})
	defer close(done)
	go forward(c.Process, sigs, done, !isTerminal(inv.Stdin))

	return exitStatus(c.Wait())
}

func forward(p *os.Process, sigs <-chan os.Signal, done <-chan struct{}, interrupt bool) {
	for {
		select {
		case sig := <-sigs:
			if sig == os.Interrupt && !interrupt {
				continue
			}
			_ = p.Signal(sig)
		case <-done:
			return
		}
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func exitStatus(err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code := ee.ExitCode()
		if code < 0 {
			code = signalCode(ee)
		}
		return &ExitError{Code: code}
	}
	return fmt.Errorf("running lattis: %w", err)
}
