package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caesarnine/binsmith/internal/environ"
)

// Environment variables read and written by the resolver.
const (
	EnvDataDir       = "LATTIS_DATA_DIR"
	EnvWorkspaceMode = "LATTIS_WORKSPACE_MODE"
	EnvProjectRoot   = "LATTIS_PROJECT_ROOT"
	EnvAgentDefault  = "AGENT_DEFAULT"
)

const (
	// DirName is the data directory name under home or the project root.
	DirName = ".binsmith"
	// DefaultAgent is exported as AGENT_DEFAULT when unset.
	DefaultAgent = "binsmith"
)

// Resolver derives the data directory for one invocation.
type Resolver struct {
	Env environ.Env
	// Home returns the user's home directory. Defaults to os.UserHomeDir.
	Home func() (string, error)
}

// Resolution is the outcome of Resolve. It is computed once and not
// modified afterwards.
type Resolution struct {
	Mode     Mode   `yaml:"mode,omitempty"`
	Source   Source `yaml:"source"`
	DataDir  string `yaml:"data_dir"`
	Explicit bool   `yaml:"explicit"`
	// Ignored lists mode strings that were present but not recognized.
	Ignored []string `yaml:"ignored,omitempty"`
	// HomeErr is set when central mode was requested but the home
	// directory could not be determined.
	HomeErr error `yaml:"-"`
}

// Resolve applies the resolution order: an explicit LATTIS_DATA_DIR wins
// outright, then LATTIS_WORKSPACE_MODE, then --workspace in argv, then the
// local default.
func (r Resolver) Resolve(argv []string) Resolution {
	if dir, ok := r.Env.Lookup(EnvDataDir); ok {
		return Resolution{Source: SourceExplicit, DataDir: dir, Explicit: true}
	}

	var res Resolution
	mode, source := DefaultMode, SourceDefault

	envMode, envOK := r.fromEnv(&res)
	flagMode, flagOK := r.fromArgs(argv, &res)
	switch {
	case envOK:
		mode, source = envMode, SourceEnv
	case flagOK:
		mode, source = flagMode, SourceFlag
	}

	res.Mode = mode
	res.Source = source
	res.DataDir, res.HomeErr = r.dataDir(mode)
	return res
}

func (r Resolver) fromEnv(res *Resolution) (Mode, bool) {
	raw, ok := r.Env.Lookup(EnvWorkspaceMode)
	if !ok {
		return "", false
	}
	mode, ok := ParseMode(raw)
	if !ok {
		res.noteIgnored(EnvWorkspaceMode, raw)
	}
	return mode, ok
}

func (r Resolver) fromArgs(argv []string, res *Resolution) (Mode, bool) {
	raw, ok := ExtractMode(argv)
	if !ok {
		return "", false
	}
	mode, ok := ParseMode(raw)
	if !ok {
		res.noteIgnored("--"+FlagName, raw)
	}
	return mode, ok
}

func (res *Resolution) noteIgnored(source, raw string) {
	res.Ignored = append(res.Ignored, fmt.Sprintf("%s=%q", source, raw))
}

// dataDir derives the default data directory for mode. If the home
// directory is unavailable in central mode, the local derivation is used
// and the error returned for reporting.
func (r Resolver) dataDir(mode Mode) (string, error) {
	if mode == ModeCentral {
		home := r.Home
		if home == nil {
			home = os.UserHomeDir
		}
		dir, err := home()
		if err == nil && dir != "" {
			return filepath.Join(dir, DirName), nil
		}
		if err == nil {
			err = fmt.Errorf("empty home directory")
		}
		local, _ := r.dataDir(ModeLocal)
		return local, fmt.Errorf("resolving home directory: %w", err)
	}
	if root := r.Env.Get(EnvProjectRoot); root != "" {
		return filepath.Join(root, DirName), nil
	}
	return DirName, nil
}

// Apply returns the environment handed to the delegate: env plus
// AGENT_DEFAULT when unset and LATTIS_DATA_DIR when it was not given
// explicitly. env itself is not modified.
func (res Resolution) Apply(env environ.Env) environ.Env {
	out := env.WithDefault(EnvAgentDefault, DefaultAgent)
	if !res.Explicit {
		out = out.With(EnvDataDir, res.DataDir)
	}
	return out
}

// Produced lists the variables Apply sets or keeps for the delegate, in
// a stable order, for reporting.
func (res Resolution) Produced(env environ.Env) [][2]string {
	applied := res.Apply(env)
	return [][2]string{
		{EnvAgentDefault, applied.Get(EnvAgentDefault)},
		{EnvDataDir, applied.Get(EnvDataDir)},
	}
}
