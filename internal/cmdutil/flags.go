// Package cmdutil provides shared command utilities.
// It centralizes flag group management, scaffold run orchestration
// and report formatting helpers.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/expresskit/cli/internal/config"
	oerrors "github.com/expresskit/cli/internal/errors"
	"github.com/expresskit/cli/internal/output"
	"github.com/expresskit/cli/internal/scaffold"
	"github.com/expresskit/cli/internal/templates"
)

// TemplateFlags selects a project template (init, layout).
type TemplateFlags struct {
	Template string
}

// AddTo registers the template flag on the given cobra command.
func (f *TemplateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Template, "template", "t", templates.DefaultTemplateName,
		fmt.Sprintf("Template to use (%s)", strings.Join(templates.Names(), ", ")))
}

// Resolve returns the selected template, or a validation error listing the
// known names.
func (f *TemplateFlags) Resolve() (templates.Template, error) {
	if !templates.IsValidTemplate(f.Template) {
		return templates.Template{}, &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown template: %s", f.Template),
			Hint:    fmt.Sprintf("Valid templates: %s", strings.Join(templates.Names(), ", ")),
			Cause:   oerrors.ErrValidation,
		}
	}
	return templates.Get(f.Template)
}

// ScaffoldFlags holds flags controlling how a layout is written (init).
type ScaffoldFlags struct {
	Dir    string
	Policy string
	Jobs   int
	Atomic bool
}

// AddTo registers the scaffold flags on the given cobra command.
func (f *ScaffoldFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Dir, "dir", "d", "",
		"Project root to scaffold into (env: EXPRESSKIT_ROOT, default: current directory)")
	cmd.Flags().StringVar(&f.Policy, "policy", "",
		fmt.Sprintf("Write failure policy: %s (env: EXPRESSKIT_POLICY)", strings.Join(scaffold.ValidPolicies(), ", ")))
	cmd.Flags().IntVarP(&f.Jobs, "jobs", "j", 0,
		"Maximum concurrent file writes, 0 for one per file (env: EXPRESSKIT_JOBS)")
	cmd.Flags().BoolVar(&f.Atomic, "atomic", false,
		"Write files through a temp file and rename (env: EXPRESSKIT_ATOMIC)")
}

// ResolveOptions builds resolver input from the flags the user actually set.
// Flags left at their zero value must not shadow env or config values.
func (f *ScaffoldFlags) ResolveOptions(cmd *cobra.Command, cfg *config.Config) config.ResolveOptions {
	opts := config.ResolveOptions{Config: cfg}
	flags := cmd.Flags()
	if flags.Changed("dir") {
		opts.RootFlag = &f.Dir
	}
	if flags.Changed("policy") {
		opts.PolicyFlag = &f.Policy
	}
	if flags.Changed("jobs") {
		opts.JobsFlag = &f.Jobs
	}
	if flags.Changed("atomic") {
		opts.AtomicFlag = &f.Atomic
	}
	return opts
}

// OutputFlags holds the output format flag (layout).
type OutputFlags struct {
	Format string
}

// AddTo registers the output flag on the given cobra command.
func (f *OutputFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Format, "output", "o", string(output.FormatTree),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// Parse returns the selected format or a validation error.
func (f *OutputFlags) Parse() (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(f.Format)
	if !ok {
		return "", &oerrors.DetailError{
			Type:    "validation failed",
			Message: fmt.Sprintf("unknown output format: %s", f.Format),
			Hint:    fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
			Cause:   oerrors.ErrValidation,
		}
	}
	return format, nil
}
