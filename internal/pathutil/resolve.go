// Package pathutil turns user-supplied paths into absolute paths.
//
// Every absolute path has two spellings: Normalized uses '/' only and is what
// gets displayed, stored and compared; Native uses the platform separator and
// is what gets handed to other programs. Both are always kept.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rescale/rescale-util/internal/util/paths"
)

// Path is an absolute path in both spellings.
type Path struct {
	Normalized string
	Native     string
}

func (p Path) String() string {
	return p.Normalized
}

// Resolve makes path absolute against the working directory. A leading "~"
// expands to the home directory and "" means the working directory. The file
// system is not consulted beyond that; symlinks and junctions are left alone.
func Resolve(path string) (Path, error) {
	native, err := SystemAbsPath(path)
	if err != nil {
		return Path{}, err
	}
	return Path{Normalized: paths.Normalize(native), Native: native}, nil
}

// AbsPath returns the absolute path with '/' separators.
func AbsPath(path string) (string, error) {
	p, err := Resolve(path)
	return p.Normalized, err
}

// SystemAbsPath returns the absolute path with the platform's separators.
func SystemAbsPath(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand ~: %w", err)
		}
		path = home + path[1:]
	}

	abs, err := filepath.Abs(filepath.FromSlash(path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// ParentDir returns the parent of path's absolute form, so that a bare
// relative name like "notes.txt" still has a parent directory.
func ParentDir(path string) (Path, error) {
	p, err := Resolve(path)
	if err != nil {
		return Path{}, err
	}
	native := filepath.Dir(p.Native)
	return Path{Normalized: paths.Normalize(native), Native: native}, nil
}

// ContainsAbs reports whether dir is a proper ancestor of fileOrDir after
// both are made absolute.
func ContainsAbs(dir, fileOrDir string) (bool, error) {
	d, err := AbsPath(dir)
	if err != nil {
		return false, err
	}
	f, err := AbsPath(fileOrDir)
	if err != nil {
		return false, err
	}
	return paths.Contains(d, f), nil
}
