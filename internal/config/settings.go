package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"gopkg.in/ini.v1"

	"github.com/rescale/rescale-util/internal/constants"
	"github.com/rescale/rescale-util/internal/util/check"
	"github.com/rescale/rescale-util/internal/util/listcodec"
	"github.com/rescale/rescale-util/internal/util/numparse"
	"github.com/rescale/rescale-util/internal/util/paths"
	"github.com/rescale/rescale-util/internal/validation"
)

// Settings is the persisted user state.
//
// INI format:
//
//	[recent]
//	separator = ";"
//	max = 10
//	files = "/home/me/a.txt;/home/me/b\\;c.txt"
//
//	[window]
//	size = 800,600
//
// separator and files are written as Go string literals; unquoted values are
// accepted on load. Every value is parsed leniently: a damaged or hand-edited
// file falls back to defaults value by value instead of failing.
type Settings struct {
	Separator  rune  // List separator for recent files
	MaxRecent  int   // Recent-files entries kept, 1-100
	WindowSize []int // Width, height

	recent []string
}

// iniOptions keeps ';', '#', trailing backslashes and surrounding quotes
// inside values, which encoded lists and Windows paths contain.
var iniOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// quoteValue writes v as a Go string literal. ini.v1 rewrites values with
// surrounding whitespace, quotes, backticks or newlines; the quoted form has
// none of these at its edges and escapes everything else, invalid UTF-8
// included.
func quoteValue(v string) string {
	return strconv.Quote(v)
}

// unquoteValue reverses quoteValue. Hand-written unquoted values are
// returned as they are.
func unquoteValue(raw string) string {
	if v, err := strconv.Unquote(raw); err == nil {
		return v
	}
	return raw
}

// NewSettings returns settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Separator:  constants.DefaultListSeparator,
		MaxRecent:  constants.DefaultMaxRecent,
		WindowSize: []int{constants.DefaultWindowWidth, constants.DefaultWindowHeight},
	}
}

// LoadSettings reads settings from path. If path is empty, uses the default
// path. If the file doesn't exist, returns defaults and no error. If the file
// exists but is not valid INI, returns an error.
func LoadSettings(path string) (*Settings, error) {
	s := NewSettings()

	if path == "" {
		path = DefaultSettingsPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	f, err := ini.LoadSources(iniOptions, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	recent := f.Section("recent")
	if sep, err := validation.ValidateSeparator(unquoteValue(recent.Key("separator").String())); err == nil {
		s.Separator = sep
	}
	s.MaxRecent = numparse.Clamp(
		numparse.ToInt(recent.Key("max").String(), constants.DefaultMaxRecent),
		constants.MinMaxRecent, constants.MaxMaxRecent,
	)
	// An empty value is an empty list, not a list with one empty entry.
	if raw := unquoteValue(recent.Key("files").String()); raw != "" {
		s.recent = listcodec.Decode(s.Separator, raw)
	}
	s.truncate()

	size := numparse.ToIntArray(f.Section("window").Key("size").String(), s.WindowSize)
	if len(size) == 2 {
		s.WindowSize = size
	}

	return s, nil
}

// SaveSettings writes s to path. If path is empty, uses the default path.
// Creates parent directories if they don't exist.
func SaveSettings(s *Settings, path string) error {
	check.NotNil(s)

	if path == "" {
		path = DefaultSettingsPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f := ini.Empty(iniOptions)

	recent, err := f.NewSection("recent")
	if err != nil {
		return fmt.Errorf("failed to create recent section: %w", err)
	}
	recent.Key("separator").SetValue(quoteValue(string(s.Separator)))
	recent.Key("max").SetValue(strconv.Itoa(s.MaxRecent))
	recent.Key("files").SetValue(quoteValue(listcodec.Encode(s.Separator, s.recent)))

	window, err := f.NewSection("window")
	if err != nil {
		return fmt.Errorf("failed to create window section: %w", err)
	}
	window.Key("size").SetValue(joinInts(s.WindowSize))

	// Use temporary file + rename for atomicity
	tmpPath := path + ".tmp"
	if err := f.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0600); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set settings permissions: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// RecentFiles returns a copy of the recent-files list, most recent first.
func (s *Settings) RecentFiles() []string {
	return slices.Clone(s.recent)
}

// AddRecent puts path at the front of the recent-files list. The path is
// normalized to '/' separators; an existing entry for it is moved rather than
// duplicated. The list is cut to MaxRecent entries.
func (s *Settings) AddRecent(path string) {
	path = paths.Normalize(path)
	s.recent = slices.DeleteFunc(s.recent, func(p string) bool { return p == path })
	s.recent = slices.Insert(s.recent, 0, path)
	s.truncate()
}

// RemoveRecent removes path from the recent-files list and reports whether
// it was present.
func (s *Settings) RemoveRecent(path string) bool {
	path = paths.Normalize(path)
	n := len(s.recent)
	s.recent = slices.DeleteFunc(s.recent, func(p string) bool { return p == path })
	return len(s.recent) != n
}

// RemoveRecentUnder removes every entry located below dir and returns how
// many were removed. dir itself is kept if listed.
func (s *Settings) RemoveRecentUnder(dir string) int {
	n := len(s.recent)
	s.recent = slices.DeleteFunc(s.recent, func(p string) bool { return paths.Contains(dir, p) })
	return n - len(s.recent)
}

// ClearRecent empties the recent-files list.
func (s *Settings) ClearRecent() {
	s.recent = nil
}

func (s *Settings) truncate() {
	if len(s.recent) > s.MaxRecent {
		s.recent = s.recent[:s.MaxRecent]
	}
}

func joinInts(values []int) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += strconv.Itoa(v)
	}
	return out
}
