// Package listcodec stores an ordered list of strings in a single string,
// e.g. a recent-files list in one settings value.
//
// Elements are joined with a caller-chosen separator rune. Inside an element,
// backslashes are doubled and literal separators are prefixed with a
// backslash, so Decode(sep, Encode(sep, parts)) returns parts for any
// non-empty list.
//
// Note the asymmetry at the empty edge: Encode of an empty list is "", and
// Decode of "" is a list holding one empty string. Callers that persist lists
// which may be empty must check for "" before decoding.
package listcodec

import (
	"strings"
	"unicode/utf8"

	"github.com/rescale/rescale-util/internal/util/check"
)

const escape = '\\'

// Encode joins parts with sep, escaping backslashes and separators inside
// each part. It panics with a check.Violation if sep is a backslash.
func Encode(sep rune, parts []string) string {
	check.That(sep != escape, "listcodec: separator must not be a backslash")
	if len(parts) == 0 {
		return ""
	}

	sepStr := string(sep)
	escapedSep := string(escape) + sepStr

	var sb strings.Builder
	for i, part := range parts {
		if i > 0 {
			sb.WriteString(sepStr)
		}
		// Backslashes first, otherwise the separator's escape gets doubled.
		part = strings.ReplaceAll(part, `\`, `\\`)
		part = strings.ReplaceAll(part, sepStr, escapedSep)
		sb.WriteString(part)
	}
	return sb.String()
}

// Decode splits s at every separator not escaped by a backslash and removes
// the escapes. It accepts any input and always returns at least one element.
// Bytes that are not valid UTF-8 are copied through unchanged.
func Decode(sep rune, s string) []string {
	var parts []string
	var sb strings.Builder
	escaped := false

	for i := 0; i < len(s); {
		c, size := utf8.DecodeRuneInString(s[i:])
		if c == utf8.RuneError && size == 1 {
			// Invalid byte: never a separator or escape.
			c = -1
		}
		switch {
		case c == sep && !escaped:
			parts = append(parts, sb.String())
			sb.Reset()
		case c != escape || escaped:
			sb.WriteString(s[i : i+size])
		}
		escaped = c == escape && !escaped
		i += size
	}
	return append(parts, sb.String())
}
