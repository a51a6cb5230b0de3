package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caesarnine/binsmith/internal/config"
	"github.com/caesarnine/binsmith/internal/delegate"
	"github.com/caesarnine/binsmith/internal/environ"
	"github.com/caesarnine/binsmith/internal/ui"
	"github.com/caesarnine/binsmith/internal/workspace"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, args []string) error {
	env := environ.FromOS()
	cfg, cfgErr := config.Load(env)
	logger := cfg.Logger(cmd.ErrOrStderr())

	if !cfg.NoDotenv {
		env = loadDotenv(env, logger)
		cfg, cfgErr = config.Load(env)
		logger = cfg.Logger(cmd.ErrOrStderr())
	}
	if cfgErr != nil {
		logger.Warn("using defaults for invalid settings", "err", cfgErr)
	}

	res := workspace.Resolver{Env: env, Home: os.UserHomeDir}.Resolve(args)
	logResolution(logger, res)
	produced := res.Apply(env)

	bin, locErr := delegate.Locate(cfg.LattisBin, nil)

	if cfg.Explain != config.ExplainOff {
		return ui.Explain(cmd.OutOrStdout(), newReport(res, env, bin, args, locErr), cfg.Explain)
	}
	if locErr != nil {
		return locErr
	}

	logger.Debug("running delegate", "path", bin.Path, "args", len(args))
	return delegate.Run(cmd.Context(), delegate.Invocation{
		Command: bin,
		Args:    args,
		Env:     produced,
		Stdin:   cmd.InOrStdin(),
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
}

// loadDotenv merges the project's .env file under the process environment.
func loadDotenv(env environ.Env, logger *slog.Logger) environ.Env {
	dir := env.Get(workspace.EnvProjectRoot)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			logger.Debug("skipping .env", "error", err)
			return env
		}
		dir = wd
	}
	path := filepath.Join(dir, environ.DotenvFile)
	merged, err := env.LoadDotenv(path, config.DotenvPrefixes...)
	if err != nil {
		logger.Warn("ignoring unreadable .env", "path", path, "error", err)
		return env
	}
	return merged
}

func logResolution(logger *slog.Logger, res workspace.Resolution) {
	for _, ig := range res.Ignored {
		logger.Warn("ignoring unrecognized workspace mode", "value", ig)
	}
	if res.HomeErr != nil {
		logger.Warn("home directory unavailable, using local data dir", "data_dir", res.DataDir, "error", res.HomeErr)
	}
	logger.Debug("workspace resolved",
		"mode", res.Mode,
		"source", res.Source,
		"data_dir", res.DataDir,
	)
}

func newReport(res workspace.Resolution, env environ.Env, bin delegate.Command, args []string, locErr error) ui.Report {
	r := ui.Report{
		Version:     version,
		Resolution:  res,
		Environment: map[string]string{},
	}
	for _, kv := range res.Produced(env) {
		r.Environment[kv[0]] = kv[1]
	}
	if locErr != nil {
		r.DelegateErr = locErr.Error()
		return r
	}
	r.Delegate = append([]string{bin.Path}, bin.Argv(args)...)
	return r
}
