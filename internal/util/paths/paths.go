// Package paths provides utilities for slash-delimited path strings.
//
// Paths may use '/' or '\' as separators on input. Everything returned for
// display or comparison uses '/' only; use pathutil for the native form that
// is handed to other programs.
package paths

import (
	"iter"
	"slices"
	"strings"
)

const separators = `/\`

func isSeparator(c byte) bool {
	return c == '/' || c == '\\'
}

// SplitPath splits path at every '/' or '\'.
//
// A leading separator produces a leading empty element; a single trailing
// separator does not produce a trailing one. Runs of separators produce empty
// elements in between: "a//b" -> ["a", "", "b"].
func SplitPath(path string) []string {
	parts := []string{}
	start := 0
	for i := 0; i < len(path); i++ {
		if isSeparator(path[i]) {
			parts = append(parts, path[start:i])
			start = i + 1
		}
	}
	if start < len(path) {
		parts = append(parts, path[start:])
	}
	return parts
}

// JoinPath joins parts with '/'. Leading and trailing separators are stripped
// from every part except the first, which keeps its leading separators so a
// root ("/", "C:") survives. All backslashes in the result become '/'.
func JoinPath(parts ...string) string {
	return JoinPathSeq(slices.Values(parts))
}

// JoinPathSeq is JoinPath over an iterator.
func JoinPathSeq(parts iter.Seq[string]) string {
	var sb strings.Builder
	first := true
	for p := range parts {
		if first {
			sb.WriteString(strings.TrimRight(p, separators))
			first = false
			continue
		}
		sb.WriteByte('/')
		sb.WriteString(strings.Trim(p, separators))
	}
	return Normalize(sb.String())
}

// SplitPathLast splits path at its last separator. Without a separator the
// result is (path, "").
func SplitPathLast(path string) (head, tail string) {
	i := strings.LastIndexAny(path, separators)
	if i < 0 {
		return path, ""
	}
	return path[:i], path[i+1:]
}

// Normalize replaces every backslash with '/'.
func Normalize(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// Contains reports whether dirPath is a proper ancestor of fileOrDirPath.
// Both are normalized first. The match must end on a separator boundary, so
// "/a/b" contains "/a/b/c" but not "/a/bc" and not "/a/b" itself.
func Contains(dirPath, fileOrDirPath string) bool {
	dirPath = Normalize(dirPath)
	fileOrDirPath = Normalize(fileOrDirPath)
	if len(dirPath) >= len(fileOrDirPath) {
		return false
	}
	return fileOrDirPath[len(dirPath)] == '/' && strings.HasPrefix(fileOrDirPath, dirPath)
}
