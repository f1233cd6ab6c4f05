package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackgen/cli/internal/config"
	"github.com/stackgen/cli/internal/output"
	"github.com/stackgen/cli/internal/project"
)

var projectVetFile string

// NewProjectVetCmd creates the project vet command.
func NewProjectVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate a project file",
		Long: `Validate a project file.

Checks performed:
  1. The file exists and is valid YAML
  2. Every key and value matches the project schema
  3. The values form a valid configuration

Examples:
  # Validate ./stackgen.yaml
  stackgen project vet

  # Validate another file
  stackgen project vet --file services/shop.yaml`,
		Args: cobra.NoArgs,
		RunE: runProjectVet,
	}

	cmd.Flags().StringVarP(&projectVetFile, "file", "f", project.FileName,
		"Project file to validate")

	return cmd
}

func runProjectVet(cmd *cobra.Command, args []string) error {
	v, err := config.NewValidator()
	if err != nil {
		return exitError(err)
	}

	output.Debug("validating project file", "path", projectVetFile)

	if err := v.VetFile(projectVetFile); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			for _, e := range verrs {
				output.Error("schema violation", "field", e.Field, "error", e.Message)
			}
			return &ExitError{Err: err, Code: ExitValidationError, Printed: true}
		}
		return exitError(err)
	}

	f, err := config.LoadProject(projectVetFile)
	if err != nil {
		return exitError(err)
	}
	if _, err := f.Config(); err != nil {
		return exitError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Project file is valid: "+output.FormatNoun(projectVetFile)))
	return nil
}
