package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "binsmith [lattis args...]",
		Short: "Launch lattis with a resolved binsmith workspace",
		Long: `binsmith resolves where lattis keeps its data and then runs lattis with
every argument unchanged.

The data directory is LATTIS_DATA_DIR when set. Otherwise the workspace
mode comes from LATTIS_WORKSPACE_MODE, then --workspace, then defaults to
local: central uses ~/.binsmith, local uses $LATTIS_PROJECT_ROOT/.binsmith
or ./.binsmith.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runRoot,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}
