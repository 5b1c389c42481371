// Package config provides configuration management for rescale-util.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rescale/rescale-util/internal/constants"
)

// ConfigDirectory returns the directory holding the settings file.
//
// Locations:
//   - Windows: %APPDATA%\Rescale\rescale-util
//   - Unix: ~/.config/rescale/rescale-util
func ConfigDirectory() string {
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), constants.AppName)
			}
			appData = filepath.Join(homeDir, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Rescale", constants.AppName)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), constants.AppName)
		}
		return filepath.Join(homeDir, ".config", "rescale", constants.AppName)
	}
	return filepath.Join(configDir, "rescale", constants.AppName)
}

// DefaultSettingsPath returns the settings file location used when --config
// is not given.
func DefaultSettingsPath() string {
	return filepath.Join(ConfigDirectory(), constants.SettingsFileName)
}

// LogDirectory returns the directory for rotated log files.
func LogDirectory() string {
	return filepath.Join(ConfigDirectory(), "logs")
}

// DefaultLogPath returns the log file used by --log-file when no path is given.
func DefaultLogPath() string {
	return filepath.Join(LogDirectory(), constants.AppName+".log")
}
