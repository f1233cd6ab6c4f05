package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/stackgen/cli/internal/config"
	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/generator"
	"github.com/stackgen/cli/internal/output"
	"github.com/stackgen/cli/internal/project"
	"github.com/stackgen/cli/internal/templates"
	"github.com/stackgen/cli/internal/wizard"
)

var (
	newFile        string
	newOutput      string
	newInteractive bool
	newForce       bool
	newSet         []string
)

// NewCreateCmd creates the new command.
func NewCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new [name]",
		Aliases: []string{"create"},
		Short:   "Generate a new project",
		Long: `Generate a new Rust/Axum workspace.

The project configuration is read from --file, or from ./stackgen.yaml
when present, and falls back to the built-in defaults. --set overrides
single keys; list keys take comma-separated values.

Examples:
  # Generate with defaults into ./my-app
  stackgen new my-app

  # Generate from a project file into a specific directory
  stackgen new --file stackgen.yaml --output ./services/shop

  # Override keys without editing the file
  stackgen new shop --set database=mysql --set infrastructure=redis,kafka

  # Answer questions interactively
  stackgen new shop --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNew,
	}

	cmd.Flags().StringVarP(&newFile, "file", "f", "",
		"Project file (defaults to ./"+project.FileName+" when present)")
	cmd.Flags().StringVarP(&newOutput, "output", "o", "",
		"Output directory (defaults to <output setting>/<name>)")
	cmd.Flags().BoolVarP(&newInteractive, "interactive", "i", false,
		"Ask for each setting interactively")
	cmd.Flags().BoolVar(&newForce, "force", false,
		"Generate into a non-empty output directory")
	cmd.Flags().StringArrayVar(&newSet, "set", nil,
		fmt.Sprintf("Override a project key (key=value). Keys: %s", strings.Join(config.ProjectKeys(), ", ")))

	return cmd
}

func runNew(cmd *cobra.Command, args []string) error {
	f, err := loadNewProjectFile()
	if err != nil {
		return exitError(err)
	}
	if len(args) == 1 {
		f.Name = args[0]
	}

	if newInteractive {
		answered, err := wizard.RunWithDefaults(*f)
		if err != nil {
			return exitError(err)
		}
		f = &answered
	}

	cfg, err := f.Config()
	if err != nil {
		return exitError(err)
	}

	target := newOutput
	if target == "" {
		target = filepath.Join(GetOutputParent(), cfg.Name)
	}
	if err := checkTarget(target, newForce); err != nil {
		return exitError(err)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return exitError(oerrors.WrapPath(oerrors.ErrFilesystem, target, err))
	}

	src, backend := templates.Resolve(GetTemplatesDir())
	output.Debug("generating project",
		"name", cfg.Name,
		"output", target,
		"templates", src.String(),
	)

	gen := generator.New(src, osfs.New(target), generator.WithBackend(backend))

	var report *generator.Report
	err = output.RunWithSpinner(cmd.Context(), func(ctx context.Context) error {
		var genErr error
		report, genErr = gen.Generate(ctx, cfg, generator.RunOptions{Timestamp: time.Now()})
		return genErr
	}, output.WithTitle(fmt.Sprintf("Generating %s", cfg.Name)))
	if err != nil {
		return exitError(oerrors.NewGenerationError(err, target, map[string]string{
			"Templates": src.String(),
			"Backend":   string(backend),
			"Router":    cfg.RouterStrategy.String(),
			"Frontend":  cfg.Frontend.Tag(),
		}))
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Created %s in %s", output.FormatNoun(cfg.Name), target)))
	fmt.Fprintln(w)
	if err := output.RenderFileTree(w, cfg.Name, report.Files); err != nil {
		return exitError(err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSummary.Render(fmt.Sprintf("%d files, %s router, %s templates",
		countUnique(report.Files), report.RouterStrategy, report.Backend)))

	return nil
}

// loadNewProjectFile reads --file, or ./stackgen.yaml when present, or the defaults.
func loadNewProjectFile() (*project.File, error) {
	path := newFile
	if path == "" {
		if _, err := os.Stat(project.FileName); err == nil {
			path = project.FileName
		}
	}
	if path != "" {
		output.Debug("loading project file", "path", path)
	}
	return config.LoadProject(path, newSet...)
}

// checkTarget refuses a non-empty output directory unless force is set.
func checkTarget(target string, force bool) error {
	entries, err := os.ReadDir(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return oerrors.WrapPath(oerrors.ErrFilesystem, target, err)
	}
	if len(entries) > 0 && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "output directory is not empty",
			Location: target,
			Hint:     "Choose another --output or use --force to write into it.",
			Cause:    oerrors.ErrValidation,
		}
	}
	return nil
}

func countUnique(paths []string) int {
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		seen[p] = struct{}{}
	}
	return len(seen)
}
