// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stackgen/cli/internal/config"
	"github.com/stackgen/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	templatesFlag  string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved settings (loaded during PersistentPreRunE)
	resolved config.Resolved
)

// NewRootCmd creates the root command for the stackgen CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stackgen",
		Short: "Generate layered Rust web service workspaces",
		Long: `stackgen composes a multi-crate Rust/Axum workspace from a project file
and a template tree. The built-in templates are used unless --templates
points at a directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to settings file (env: STACKGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&templatesFlag, "templates", "", "Template directory to use instead of the built-in templates (env: STACKGEN_TEMPLATES)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewCreateCmd())
	rootCmd.AddCommand(NewProjectCmd())
	rootCmd.AddCommand(NewTemplateCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals resolves settings and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	flags := config.Flags{
		Config:    configFlag,
		Templates: templatesFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		flags.Timestamps = output.BoolPtr(timestampsFlag)
	}

	res, _, err := config.ResolveAll(config.NewLoader(), flags)
	if err != nil {
		// Commands still run on flag values when the settings file is unreadable.
		output.Debug("settings load error", "error", err)
		res = config.Resolved{
			Templates:  config.ResolvedValue{Key: config.KeyTemplates, Value: templatesFlag, Source: config.SourceFlag},
			Timestamps: config.ResolvedValue{Key: config.KeyTimestamps, Value: "true", Source: config.SourceDefault},
		}
		if flags.Timestamps != nil && !*flags.Timestamps {
			res.Timestamps = config.ResolvedValue{Key: config.KeyTimestamps, Value: "false", Source: config.SourceFlag}
		}
	}
	resolved = res

	output.SetupLogging(output.LogConfig{
		Verbose:    verboseFlag,
		Timestamps: output.BoolPtr(resolved.TimestampsEnabled()),
	})

	if verboseFlag {
		config.LogResolvedValues(resolved.Values())
	}

	return nil
}

// GetTemplatesDir returns the resolved template directory, or "" for the bundle.
func GetTemplatesDir() string {
	dir := resolved.Templates.Value
	if expanded, err := config.ExpandPath(dir); err == nil {
		return expanded
	}
	return dir
}

// GetOutputParent returns the resolved parent directory for new projects.
func GetOutputParent() string {
	dir := resolved.Output.Value
	if dir == "" {
		return "."
	}
	if expanded, err := config.ExpandPath(dir); err == nil {
		return expanded
	}
	return dir
}
