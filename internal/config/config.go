// Package config provides configuration loading and management.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Nil means the default (on). Override with --timestamps.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the expresskit configuration.
// Loaded from ~/.expresskit/config.yaml; EXPRESSKIT_* variables override file values.
type Config struct {
	// Root is the project root to scaffold into.
	// Env: EXPRESSKIT_ROOT, Default: "."
	Root string `mapstructure:"root" yaml:"root,omitempty"`

	// Policy is the write failure policy: "collect" or "fail-fast".
	// Env: EXPRESSKIT_POLICY, Default: "collect"
	Policy string `mapstructure:"policy" yaml:"policy,omitempty"`

	// Jobs bounds concurrent file writes. Zero means one per file.
	// Env: EXPRESSKIT_JOBS
	Jobs int `mapstructure:"jobs" yaml:"jobs,omitempty"`

	// Atomic enables temp-file-and-rename writes.
	// Env: EXPRESSKIT_ATOMIC
	Atomic bool `mapstructure:"atomic" yaml:"atomic"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// Defaults.
const (
	DefaultRoot   = "."
	DefaultPolicy = "collect"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `expresskit config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Root:   DefaultRoot,
		Policy: DefaultPolicy,
		Log:    LogConfig{Timestamps: &timestamps},
	}
}

// Render encodes c in the config file format.
func (c *Config) Render() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append([]byte(configHeader), data...), nil
}

const configHeader = `# expresskit configuration
# Values may be overridden with EXPRESSKIT_* environment variables or flags.
`
