// Package filename splits filenames into base name and extension.
//
// Extensions are returned lower-cased and without the leading dot. A name
// ending in ".<x>.gz" has the compound extension "<x>.gz":
//
//	"archive.tar.gz" -> ("archive", "tar.gz")
//	"data.XML"       -> ("data", "xml")
//	"README"         -> ("README", "")
//
// Full paths are accepted; the dot search covers the whole string.
package filename

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// minBaseLen is the shortest base name DerivedName produces.
const minBaseLen = 3

// cases.Caser is stateful, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// Split returns the base name and the lower-cased extension of name.
func Split(name string) (base, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return name, ""
	}
	ext = lower(name[i+1:])
	if ext == "gz" {
		if j := strings.LastIndexByte(name[:i], '.'); j >= 0 {
			return name[:j], lower(name[j+1:])
		}
	}
	return name[:i], ext
}

// Extension returns the lower-cased extension of name, or "" if it has none.
func Extension(name string) string {
	_, ext := Split(name)
	return ext
}

// HasExtension reports whether name ends in "." followed by one of exts,
// ignoring case. "report.PDF" has extension "pdf" and also "Pdf".
func HasExtension(name string, exts ...string) bool {
	folded := fold(name)
	for _, ext := range exts {
		if strings.HasSuffix(folded, "."+fold(ext)) {
			return true
		}
	}
	return false
}

// DerivedName builds a temporary filename from name and a unique id, keeping
// the extension so the result opens with the same program:
//
//	DerivedName("report.PDF", 1700000000000) -> "report_1700000000000.pdf"
//	DerivedName("a.tar.gz", 7)               -> "a___7.tar.gz"
//
// Base names shorter than three characters are padded with '_'.
func DerivedName(name string, id int64) string {
	base, ext := Split(name)
	if n := utf8.RuneCountInString(base); n < minBaseLen {
		base += strings.Repeat("_", minBaseLen-n)
	}
	if ext == "" {
		return fmt.Sprintf("%s_%d", base, id)
	}
	return fmt.Sprintf("%s_%d.%s", base, id, ext)
}
