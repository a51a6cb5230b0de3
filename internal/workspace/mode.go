package workspace

import "strings"

// Mode selects where persistent data lives.
type Mode string

const (
	// ModeCentral keeps data in a per-user directory under $HOME.
	ModeCentral Mode = "central"
	// ModeLocal keeps data next to the project.
	ModeLocal Mode = "local"
)

// DefaultMode applies when no source names a recognized mode.
const DefaultMode = ModeLocal

// ParseMode normalizes a user-supplied mode string. Matching is
// case-insensitive and ignores surrounding whitespace. Empty or
// unrecognized input reports false.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "central":
		return ModeCentral, true
	case "local", "project", "cwd":
		return ModeLocal, true
	default:
		return "", false
	}
}

// Source identifies which input decided a Resolution.
type Source string

const (
	// SourceExplicit means LATTIS_DATA_DIR was already set and is kept as is.
	SourceExplicit Source = "explicit"
	// SourceEnv means LATTIS_WORKSPACE_MODE named the mode.
	SourceEnv Source = "env"
	// SourceFlag means --workspace on the command line named the mode.
	SourceFlag Source = "flag"
	// SourceDefault means no source named a recognized mode.
	SourceDefault Source = "default"
)
