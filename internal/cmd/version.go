package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackgen/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show stackgen version information.

Displays:
  - stackgen version, commit, and build date
  - CUE SDK version used to vet project files`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	return nil
}
