package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for expresskit.
type Paths struct {
	// ConfigFile is the path to the config file (~/.expresskit/config.yaml).
	ConfigFile string

	// HomeDir is the expresskit home directory (~/.expresskit).
	HomeDir string
}

const configFileName = "config.yaml"

// DefaultPaths returns the default paths for expresskit.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".expresskit")

	return &Paths{
		ConfigFile: filepath.Join(home, configFileName),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If EXPRESSKIT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("EXPRESSKIT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandTilde expands a leading ~ or ~/ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandTilde(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
