// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	configcmd "github.com/expresskit/cli/internal/cmd/config"
	"github.com/expresskit/cli/internal/cmdtypes"
	"github.com/expresskit/cli/internal/config"
	"github.com/expresskit/cli/internal/output"
	"github.com/expresskit/cli/internal/version"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the expresskit CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "expresskit",
		Short: "Express API project scaffolder",
		Long: `expresskit creates the directory structure and starter files of an
Express/Mongoose API project.

It provides commands to:
  - Scaffold a project into the current or a given directory
  - Preview the layout a template would create
  - Manage CLI configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: EXPRESSKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(NewLayoutCmd(cfg))
	rootCmd.AddCommand(configcmd.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	// Load configuration first so config values can drive logging setup.
	loaded, loadErr := config.NewLoader().Load(flags.config)

	cfg.Config = loaded
	cfg.ConfigPath = flags.config
	cfg.Verbose = flags.verbose

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded != nil && loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if loadErr != nil {
		// Commands fall back to env and defaults; config vet reports the problem.
		output.Warn("could not load config file", "error", loadErr)
	}

	info := version.GetInfo()
	output.Debug("expresskit started", "version", info.Version, "config", flags.config)

	return nil
}
