// Package constants holds application-wide defaults.
package constants

// Application identity
const (
	// AppName is used for the config directory and the binary name.
	AppName = "rescale-util"

	// SettingsFileName - settings file inside the config directory
	SettingsFileName = "settings.ini"
)

// List encoding
const (
	// DefaultListSeparator - separator for encoded lists in settings and on the CLI
	DefaultListSeparator = ';'
)

// Recent files
const (
	// DefaultMaxRecent - recent-files entries kept when the setting is missing or invalid
	DefaultMaxRecent = 10

	// MinMaxRecent / MaxMaxRecent bound the max_recent setting
	MinMaxRecent = 1
	MaxMaxRecent = 100
)

// Window geometry
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// Logging
const (
	// LogTimeFormat - console log timestamp format
	LogTimeFormat = "15:04:05"
)
