package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackgen/cli/internal/config"
	"github.com/stackgen/cli/internal/output"
	"github.com/stackgen/cli/internal/project"
)

var (
	projectInitFile  string
	projectInitForce bool
)

// NewProjectInitCmd creates the project init command.
func NewProjectInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Write a default project file",
		Long: `Write a stackgen.yaml holding the default configuration.

Examples:
  # Create ./stackgen.yaml
  stackgen project init

  # Name the project and overwrite an existing file
  stackgen project init shop --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: runProjectInit,
	}

	cmd.Flags().StringVarP(&projectInitFile, "file", "f", project.FileName,
		"Project file to write")
	cmd.Flags().BoolVar(&projectInitForce, "force", false,
		"Overwrite an existing project file")

	return cmd
}

func runProjectInit(cmd *cobra.Command, args []string) error {
	name := project.DefaultName
	if len(args) == 1 {
		name = args[0]
	}

	// Validate the name before anything is written.
	cfg, err := project.NewConfig(name)
	if err != nil {
		return exitError(err)
	}

	if err := config.WriteProject(projectInitFile, project.DefaultFile(cfg.Name), projectInitForce); err != nil {
		return exitError(err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.FormatCheckmark("Created "+output.FormatNoun(projectInitFile)))
	fmt.Fprintln(w, "Validate with: stackgen project vet --file "+projectInitFile)
	return nil
}
