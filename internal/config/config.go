// Package config reads the launcher's own BINSMITH_* settings from an
// environment snapshot.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/caesarnine/binsmith/internal/environ"
)

// Environment variables that configure the launcher itself. They match the
// env tags on Config.
const (
	EnvLogLevel  = "BINSMITH_LOG_LEVEL"
	EnvExplain   = "BINSMITH_EXPLAIN"
	EnvLattisBin = "BINSMITH_LATTIS_BIN"
	EnvNoDotenv  = "BINSMITH_NO_DOTENV"
)

// DotenvPrefixes limits which .env keys may enter the environment.
var DotenvPrefixes = []string{"LATTIS_", "BINSMITH_", "AGENT_"}

// ExplainFormat selects explain output. The zero value disables explain mode.
type ExplainFormat string

const (
	ExplainOff   ExplainFormat = ""
	ExplainTable ExplainFormat = "table"
	ExplainYAML  ExplainFormat = "yaml"
)

// UnmarshalText accepts a format name or a boolean.
func (f *ExplainFormat) UnmarshalText(text []byte) error {
	switch s := strings.ToLower(strings.TrimSpace(string(text))); s {
	case "", "0", "false":
		*f = ExplainOff
	case "1", "true", "table":
		*f = ExplainTable
	case "yaml", "yml":
		*f = ExplainYAML
	default:
		return fmt.Errorf("unknown explain format %q", s)
	}
	return nil
}

// Config holds launcher settings.
type Config struct {
	LogLevel slog.Level    `env:"BINSMITH_LOG_LEVEL"`
	Explain  ExplainFormat `env:"BINSMITH_EXPLAIN"`
	// LattisBin overrides the delegate executable; empty means the default.
	LattisBin string `env:"BINSMITH_LATTIS_BIN"`
	NoDotenv  bool   `env:"BINSMITH_NO_DOTENV"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{LogLevel: slog.LevelWarn}
}

// Load reads settings from e. Invalid values are reported in the returned
// error and leave their field at the default; the Config is always usable.
func Load(e environ.Env) (Config, error) {
	cfg := Defaults()
	err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string(e)})
	cfg.LattisBin = strings.TrimSpace(cfg.LattisBin)
	if err != nil {
		return cfg, fmt.Errorf("launcher settings: %w", err)
	}
	return cfg, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
