// Package validation checks user input before it reaches the helper packages.
//
// The helpers themselves treat bad arguments as programmer errors and panic;
// input typed on a command line or read from a file is validated here first
// and rejected with an ordinary error.
package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateSeparator checks that s is a single printable character usable as
// a list separator. Backslash is the escape character and cannot separate.
func ValidateSeparator(s string) (rune, error) {
	if s == "" {
		return 0, fmt.Errorf("separator cannot be empty")
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("separator must be a single character: %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("separator is not valid UTF-8: %q", s)
	}
	if r == '\\' {
		return 0, fmt.Errorf("separator cannot be a backslash")
	}
	if !unicode.IsPrint(r) {
		return 0, fmt.Errorf("separator must be printable: %q", s)
	}
	return r, nil
}

// ValidateFilename validates a filename (not a full path).
//
// Returns an error if the filename:
//   - Is empty
//   - Contains path separators (/ or \)
//   - Is "." or ".."
//   - Contains null bytes
func ValidateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	if strings.ContainsRune(filename, 0) {
		return fmt.Errorf("filename contains null byte: %q", filename)
	}

	if strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("filename cannot contain path separators: %s", filename)
	}

	// "foo..bar.txt" is fine, only the directory references are rejected.
	if filename == "." || filename == ".." {
		return fmt.Errorf("filename cannot be '%s'", filename)
	}

	return nil
}

// ValidateRange returns an error if minimum > maximum.
func ValidateRange(minimum, maximum int) error {
	if minimum > maximum {
		return fmt.Errorf("invalid range: minimum %d is greater than maximum %d", minimum, maximum)
	}
	return nil
}
