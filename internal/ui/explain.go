// Package ui renders launcher output for humans and scripts.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/caesarnine/binsmith/internal/config"
	"github.com/caesarnine/binsmith/internal/workspace"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Report describes what the launcher would do for one invocation.
type Report struct {
	Version     string               `yaml:"version"`
	Resolution  workspace.Resolution `yaml:"resolution"`
	Environment map[string]string    `yaml:"environment"`
	Delegate    []string             `yaml:"delegate,omitempty"`
	DelegateErr string               `yaml:"delegate_error,omitempty"`
}

// Explain writes r to w in the given format. Table output is styled when
// w is a terminal.
func Explain(w io.Writer, r Report, format config.ExplainFormat) error {
	if format == config.ExplainYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	}

	tbl := NewTable(w, IsTerminal(w), "KEY", "VALUE")
	tbl.Row("version", r.Version)
	if r.Resolution.Mode != "" {
		tbl.Row("mode", r.Resolution.Mode)
	}
	tbl.Row("source", r.Resolution.Source)
	tbl.Row("data_dir", r.Resolution.DataDir)
	for _, ig := range r.Resolution.Ignored {
		tbl.Row("ignored", ig)
	}
	keys := make([]string, 0, len(r.Environment))
	for k := range r.Environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tbl.Row("env "+k, r.Environment[k])
	}
	switch {
	case r.DelegateErr != "":
		tbl.Row("delegate", r.DelegateErr)
	case len(r.Delegate) > 0:
		tbl.Row("delegate", strings.Join(r.Delegate, " "))
	}
	return tbl.Flush()
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
