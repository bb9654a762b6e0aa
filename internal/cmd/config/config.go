// Package config provides CLI command implementations for the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/expresskit/cli/internal/cmdtypes"
	"github.com/expresskit/cli/internal/config"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for the expresskit CLI.`,
	}

	c.AddCommand(newInitCmd(cfg))
	c.AddCommand(newVetCmd(cfg))

	return c
}

// configFilePath returns the --config value, or the default path, with ~ expanded.
func configFilePath(cfg *cmdtypes.GlobalConfig) (string, error) {
	configFile := cfg.ConfigPath
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return "", err
		}
	}
	return config.ExpandTilde(configFile), nil
}
