package cmd

import (
	"github.com/spf13/cobra"

	"github.com/expresskit/cli/internal/cmdtypes"
	"github.com/expresskit/cli/internal/output"
	"github.com/expresskit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show expresskit version information.

Displays the CLI version, commit, build date, Go version and platform.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Println(version.GetInfo().String())
			return nil
		},
	}
}
