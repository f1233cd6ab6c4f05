package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/stackgen/cli/internal/errors"
	"github.com/stackgen/cli/internal/output"
	"github.com/stackgen/cli/internal/templates"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect the active template source",
		Long: `Inspect the template tree used for generation.

The source is the directory given by --templates (or STACKGEN_TEMPLATES,
or the settings file) when it exists, and the built-in templates otherwise.`,
	}

	cmd.AddCommand(NewTemplateListCmd())
	cmd.AddCommand(NewTemplateShowCmd())

	return cmd
}

// NewTemplateListCmd creates the template list command.
func NewTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List template regions and their status",
		Long: `List every region the generator reads, whether it is present in the
active template source, and how many files it holds.

Fails when a required region is missing.`,
		Args: cobra.NoArgs,
		RunE: runTemplateList,
	}
}

func runTemplateList(cmd *cobra.Command, args []string) error {
	src, backend := templates.Resolve(GetTemplatesDir())

	statuses, err := templates.Inspect(src)
	if err != nil {
		return exitError(err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Template source: %s (%s)\n\n", output.FormatNoun(src.String()), backend)
	fmt.Fprintln(w, output.RenderRegionTable(statuses))

	var missing []string
	for _, st := range statuses {
		if st.Status == output.StatusMissing {
			missing = append(missing, st.Region)
		}
	}
	if len(missing) > 0 {
		return exitError(&oerrors.DetailError{
			Type:     "incomplete template source",
			Message:  "missing required regions: " + strings.Join(missing, ", "),
			Location: src.String(),
			Hint:     "Add the regions above or omit --templates to use the built-in templates.",
			Cause:    oerrors.ErrMissingSubtree,
		})
	}
	return nil
}

// NewTemplateShowCmd creates the template show command.
func NewTemplateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <region>",
		Short: "Show the files of one template region",
		Long: `Show the file tree of one template region.

Examples:
  stackgen template show core
  stackgen template show api/router_strategies/axum_controller`,
		Args: cobra.ExactArgs(1),
		RunE: runTemplateShow,
	}
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	region, err := templates.Get(strings.Trim(args[0], "/"))
	if err != nil {
		return exitError(err)
	}

	src, _ := templates.Resolve(GetTemplatesDir())
	sub, ok := src.Descend(region.Path)
	if !ok || !sub.Exists() {
		return exitError(oerrors.NewNotFoundError(
			fmt.Sprintf("region %s is not present", region.Path), src.String(),
			"Run 'stackgen template list' to see which regions exist."))
	}

	entries, err := sub.Entries()
	if err != nil {
		return exitError(err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir {
			files = append(files, e.Path)
		}
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s: %s\n\n", output.FormatNoun(region.Path), region.Description)
	return output.RenderFileTree(w, region.Path, files)
}
