package cmd

import (
	"github.com/spf13/cobra"
)

// NewProjectCmd creates the project command group.
func NewProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project file management",
		Long:  `Create and validate stackgen.yaml project files.`,
	}

	cmd.AddCommand(NewProjectInitCmd())
	cmd.AddCommand(NewProjectVetCmd())

	return cmd
}
