package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"

	"github.com/expresskit/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records a resolved setting and what it overrode.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveOptions carries the raw inputs for resolution.
// Nil flag pointers mean the flag was not set on the command line.
type ResolveOptions struct {
	RootFlag   *string
	PolicyFlag *string
	JobsFlag   *int
	AtomicFlag *bool

	// Config is the loaded config file (may be nil).
	Config *Config
}

// ResolvedConfig holds the effective settings for a run.
type ResolvedConfig struct {
	Root   string
	Policy string
	Jobs   int
	Atomic bool

	// Values records every resolution for verbose logging.
	Values []ResolvedValue
}

// Resolve applies precedence flag > env > config file > default to every setting.
func Resolve(opts ResolveOptions) (*ResolvedConfig, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	root := resolve("root", opts.RootFlag, "EXPRESSKIT_ROOT", cfg.Root, DefaultRoot)
	root.Value = ExpandTilde(root.Value)
	policy := resolve("policy", opts.PolicyFlag, "EXPRESSKIT_POLICY", cfg.Policy, DefaultPolicy)

	var jobsFlag, atomicFlag *string
	if opts.JobsFlag != nil {
		s := cast.ToString(*opts.JobsFlag)
		jobsFlag = &s
	}
	if opts.AtomicFlag != nil {
		s := cast.ToString(*opts.AtomicFlag)
		atomicFlag = &s
	}

	jobsCfg := ""
	if cfg.Jobs != 0 {
		jobsCfg = cast.ToString(cfg.Jobs)
	}
	atomicCfg := ""
	if cfg.Atomic {
		atomicCfg = "true"
	}

	jobs := resolve("jobs", jobsFlag, "EXPRESSKIT_JOBS", jobsCfg, "0")
	atomic := resolve("atomic", atomicFlag, "EXPRESSKIT_ATOMIC", atomicCfg, "false")

	jobsVal, err := cast.ToIntE(jobs.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid jobs value %q from %s: %w", jobs.Value, jobs.Source, err)
	}
	if jobsVal < 0 {
		return nil, fmt.Errorf("invalid jobs value %d from %s: must not be negative", jobsVal, jobs.Source)
	}
	atomicVal, err := cast.ToBoolE(atomic.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid atomic value %q from %s: %w", atomic.Value, atomic.Source, err)
	}

	return &ResolvedConfig{
		Root:   root.Value,
		Policy: policy.Value,
		Jobs:   jobsVal,
		Atomic: atomicVal,
		Values: []ResolvedValue{root, policy, jobs, atomic},
	}, nil
}

// resolve picks the highest-precedence non-empty value for key.
func resolve(key string, flagValue *string, envVar, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	envValue := os.Getenv(envVar)

	candidates := []struct {
		source ConfigSource
		value  string
		set    bool
	}{
		{SourceFlag, ptrString(flagValue), flagValue != nil},
		{SourceEnv, envValue, envValue != ""},
		// The loader already merges env over the file; only count the
		// file when env is unset.
		{SourceConfig, configValue, configValue != "" && envValue == ""},
		{SourceDefault, defaultValue, true},
	}

	for _, c := range candidates {
		if !c.set {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		if c.source != SourceDefault {
			result.Shadowed[c.source] = c.value
		}
	}

	return result
}

func ptrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
