// Package numparse parses integers from settings and user input without ever
// failing: out-of-range numbers are clamped and junk falls back to a default.
package numparse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rescale/rescale-util/internal/util/check"
)

var (
	positiveOverflow = regexp.MustCompile(`^\d{10,}$`)
	negativeOverflow = regexp.MustCompile(`^-\d{10,}$`)

	// Anything other than digits and '-' separates list values.
	listSeparator = regexp.MustCompile(`[^-\d]+`)
)

// ToInt parses value as a base-10 int. Surrounding whitespace is ignored.
// Numbers too large or too small for int are clamped to math.MaxInt or
// math.MinInt; anything else that does not parse yields def.
func ToInt(value string, def int) int {
	n, ok := parseClamped(strings.TrimSpace(value), strconv.IntSize, math.MinInt, math.MaxInt)
	if !ok {
		return def
	}
	return int(n)
}

// ToInt32 is ToInt for 32-bit values.
func ToInt32(value string, def int32) int32 {
	n, ok := parseClamped(strings.TrimSpace(value), 32, math.MinInt32, math.MaxInt32)
	if !ok {
		return def
	}
	return int32(n)
}

// ToIntArray splits value at every run of characters that are neither digits
// nor '-' and parses each piece with the 32-bit clamping rule of ToInt32.
//
// A blank value yields an empty slice. If any piece fails to parse, defaults
// is returned unchanged. Example: "800, 600" -> [800 600].
func ToIntArray(value string, defaults []int) []int {
	if strings.TrimSpace(value) == "" {
		return []int{}
	}
	tokens := listSeparator.Split(value, -1)
	// Trailing separators don't produce values; leading ones do (and fail).
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		n, ok := parseClamped(tok, 32, math.MinInt32, math.MaxInt32)
		if !ok {
			return defaults
		}
		out[i] = int(n)
	}
	return out
}

// Clamp limits value to [minimum, maximum]. It panics with a check.Violation
// if minimum > maximum.
func Clamp(value, minimum, maximum int) int {
	check.That(minimum <= maximum, "clamp: minimum > maximum")
	if value > maximum {
		return maximum
	}
	if value < minimum {
		return minimum
	}
	return value
}

func parseClamped(s string, bitSize int, lo, hi int64) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, bitSize)
	if err == nil {
		return n, true
	}
	switch {
	case positiveOverflow.MatchString(s):
		return hi, true
	case negativeOverflow.MatchString(s):
		return lo, true
	}
	return 0, false
}
