package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths contains the standard filesystem paths for APM.
type Paths struct {
	// ConfigFile is the path to the config file (~/.apm/config.yaml).
	ConfigFile string

	// HomeDir is the APM home directory (~/.apm).
	HomeDir string
}

// DefaultPaths returns the default paths for APM.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	apmHome := filepath.Join(homeDir, ".apm")

	return &Paths{
		ConfigFile: filepath.Join(apmHome, "config.yaml"),
		HomeDir:    apmHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If APM_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("APM_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		if path == "~" {
			return homeDir, nil
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
