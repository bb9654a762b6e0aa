package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expresskit/cli/internal/cmdtypes"
	"github.com/expresskit/cli/internal/config"
	oerrors "github.com/expresskit/cli/internal/errors"
	"github.com/expresskit/cli/internal/output"
	"github.com/expresskit/cli/internal/scaffold"
)

func newVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the expresskit configuration",
		Long: `Validate the expresskit configuration file and show the effective value
of every setting with its source.

Values are resolved using precedence:
  flag > EXPRESSKIT_* env > config file > default

Examples:
  # Validate default configuration
  expresskit config vet

  # Validate custom config path
  expresskit config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVet(cfg)
		},
	}
}

func runVet(cfg *cmdtypes.GlobalConfig) error {
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
	if !exists {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitNotFound,
			Err: &oerrors.DetailError{
				Type:     "not found",
				Message:  "configuration file not found",
				Location: configFile,
				Hint:     "Run 'expresskit config init' to create default configuration.",
				Cause:    oerrors.ErrNotFound,
			},
		}
	}

	loaded, err := config.NewLoader().Load(configFile)
	if err != nil {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), configFile, "Check the file is valid YAML."),
		}
	}

	resolved, err := config.Resolve(config.ResolveOptions{Config: loaded})
	if err != nil {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), configFile, ""),
		}
	}

	if _, err := scaffold.ParsePolicy(resolved.Policy); err != nil {
		return &cmdtypes.ExitError{
			Code: cmdtypes.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), configFile, ""),
		}
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range resolved.Values {
		tbl.Row(v.Key, v.Value, string(v.Source))
	}
	output.Println(tbl.String())
	output.Println(output.FormatCheckmark("Configuration is valid: " + output.StyleNoun.Render(configFile)))

	return nil
}
