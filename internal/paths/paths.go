// Package paths resolves where the chemicals CLI keeps its configuration
// file and its JSONL data files.
//
// Configuration directory: --config-dir > CHEMICALS_CONFIG_DIR > platform
// config directory.
//
// Data directory: --data-dir > CHEMICALS_DATA_DIR > data_dir in config.yaml >
// $(CWD)/.chemicals-db.
//
// Every resolved path is absolute.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName = "chemicals"

	// DefaultDataDirName is the data directory created in the working
	// directory when nothing else names one.
	DefaultDataDirName = ".chemicals-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "CHEMICALS_CONFIG_DIR"
	EnvDataDir   = "CHEMICALS_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform configuration directory:
// $XDG_CONFIG_HOME/chemicals or ~/.config/chemicals on Linux, and the
// directory from os.UserConfigDir elsewhere.
func DefaultConfigDir() (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// ResolveConfigDir returns the configuration directory for the given
// --config-dir flag value.
func ResolveConfigDir(flag string) (string, error) {
	if dir := firstSet(flag, os.Getenv(EnvConfigDir)); dir != "" {
		return filepath.Abs(dir)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory for the given --data-dir flag
// value and data_dir value from config.yaml.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir := firstSet(flag, os.Getenv(EnvDataDir), configValue); dir != "" {
		return filepath.Abs(dir)
	}
	return filepath.Abs(DefaultDataDirName)
}

func firstSet(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
