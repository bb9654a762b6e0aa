package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/expresskit/cli/internal/cmdtypes"
	"github.com/expresskit/cli/internal/cmdutil"
	"github.com/expresskit/cli/internal/config"
	oerrors "github.com/expresskit/cli/internal/errors"
	"github.com/expresskit/cli/internal/output"
	"github.com/expresskit/cli/internal/scaffold"
)

func newInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new expresskit configuration file",
		Long: `Create a new expresskit configuration file with default values.

The configuration file is created at ~/.expresskit/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	configFile, err := configFilePath(cfg)
	if err != nil {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitNotFound,
			Err:  oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory"),
		}
	}

	exists, err := config.ConfigFileExists(configFile)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:     "validation failed",
				Message:  "configuration already exists",
				Location: configFile,
				Hint:     "Use --force to overwrite existing configuration.",
				Cause:    oerrors.ErrValidation,
			},
		}
	}

	data, err := config.DefaultConfig().Render()
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}

	// The config file is a one-directory, one-file layout rooted at its parent.
	layout := scaffold.NewLayout(
		[]string{"."},
		[]scaffold.FileSpec{{Path: filepath.Base(configFile), Content: data}},
	)

	_, err = cmdutil.RunScaffold(c.Context(), cmdutil.RunScaffoldOpts{
		Layout: layout,
		Resolved: &config.ResolvedConfig{
			Root:   filepath.Dir(configFile),
			Policy: string(scaffold.PolicyCollect),
			Atomic: true,
		},
		Logger: output.ScopedLogger("config"),
	})
	if err != nil {
		return err
	}

	output.Println(output.FormatCheckmark("Config file created: " + output.StyleNoun.Render(configFile)))
	return nil
}
