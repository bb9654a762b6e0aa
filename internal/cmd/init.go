package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/expresskit/cli/internal/cmdtypes"
	"github.com/expresskit/cli/internal/cmdutil"
	"github.com/expresskit/cli/internal/config"
	"github.com/expresskit/cli/internal/output"
)

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		tf cmdutil.TemplateFlags
		sf cmdutil.ScaffoldFlags
	)

	c := &cobra.Command{
		Use:   "init",
		Short: "Scaffold an Express API project",
		Long: `Scaffold an Express API project.

Creates the template's directories under the project root, then writes every
template file verbatim. Existing directories are kept and existing files are
overwritten.

Write failure policies:
  collect    Attempt every file and report all failures (default)
  fail-fast  Stop issuing writes after the first failure

Examples:
  # Scaffold into the current directory
  expresskit init

  # Scaffold into ./my-api, writing through temp files
  expresskit init --dir ./my-api --atomic

  # Stop at the first failed write, two writes at a time
  expresskit init --policy fail-fast --jobs 2`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, &tf, &sf)
		},
	}

	tf.AddTo(c)
	sf.AddTo(c)

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, tf *cmdutil.TemplateFlags, sf *cmdutil.ScaffoldFlags) error {
	tmpl, err := tf.Resolve()
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err}
	}

	resolved, err := config.Resolve(sf.ResolveOptions(c, cfg.Config))
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err}
	}
	config.LogResolvedValues(resolved.Values)

	layout, err := tmpl.Layout()
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("loading template %s: %w", tmpl.Name, err)}
	}

	report, err := cmdutil.RunScaffold(c.Context(), cmdutil.RunScaffoldOpts{
		Layout:   layout,
		Resolved: resolved,
		Spinner:  !cfg.Verbose,
	})
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(resolved.Root)
	if err != nil {
		absRoot = resolved.Root
	}

	output.Println(fmt.Sprintf("Created %s project in %s\n", tmpl.Name, output.StyleNoun.Render(absRoot)))
	output.Print(output.RenderTree(filepath.Base(absRoot), cmdutil.ReportTreeEntries(report, tmpl.Describe)))
	output.Println("")
	output.Println(cmdutil.ReportSummary(report))

	return nil
}
