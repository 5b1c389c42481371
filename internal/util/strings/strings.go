// Package strings provides string utility functions.
package strings

import (
	"strings"
)

// Pluralize returns singular or plural form based on count.
// Example: Pluralize("element", 1) returns "element", Pluralize("element", 2) returns "elements"
func Pluralize(word string, count int64) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// EnsureLinuxLineSep converts CRLF line endings to LF.
func EnsureLinuxLineSep(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// EnsureWindowsLineSep converts all line endings to CRLF.
func EnsureWindowsLineSep(s string) string {
	// Normalize first so existing CRLF doesn't become CRCRLF.
	return strings.ReplaceAll(EnsureLinuxLineSep(s), "\n", "\r\n")
}

// SplitLines splits s into lines, accepting LF and CRLF endings. A final line
// ending does not produce a trailing empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(EnsureLinuxLineSep(s), "\n")
	return strings.Split(s, "\n")
}
