package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caesarnine/binsmith/internal/delegate"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var exitErr *delegate.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "binsmith:", err)
		os.Exit(1)
	}
}
