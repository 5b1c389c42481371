package filename

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		wantBase string
		wantExt  string
	}{
		{"archive.tar.gz", "archive", "tar.gz"},
		{"abiword.abw.gz", "abiword", "abw.gz"},
		{"data.xml", "data", "xml"},
		{"README", "README", ""},
		{"Photo.JPG", "Photo", "jpg"},
		{"Backup.TAR.GZ", "Backup", "tar.gz"},
		{"single.gz", "single", "gz"},
		{"a.b.c.gz", "a.b", "c.gz"},
		{".bashrc", "", "bashrc"},
		{"trailingdot.", "trailingdot", ""},
		{"many.dots.here.txt", "many.dots.here", "txt"},
		{"/some/dir.d/file.Log", "/some/dir.d/file", "log"},
		{"/some/dir.d/file.gz", "/some/dir", "d/file.gz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, ext := Split(tt.name)
			require.Equal(t, tt.wantBase, base)
			require.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestExtension(t *testing.T) {
	require.Equal(t, "tar.gz", Extension("x.tar.gz"))
	require.Equal(t, "", Extension("Makefile"))
	require.Equal(t, "html", Extension("INDEX.HTML"))
}

func TestHasExtension(t *testing.T) {
	require.True(t, HasExtension("some_file.TXT", "txt"))
	require.True(t, HasExtension("some_file.txt", "TXT"))
	require.True(t, HasExtension("/path/to/doc.pdf", "doc", "pdf"))
	require.True(t, HasExtension("archive.tar.gz", "gz"))
	require.True(t, HasExtension("archive.tar.gz", "tar.gz"))
	require.False(t, HasExtension("archive.tar.gz", "tar"))
	require.False(t, HasExtension("txt", "txt"))
	require.False(t, HasExtension("file.txt"))
	require.False(t, HasExtension("filetxt", "txt"))
}

func TestDerivedName(t *testing.T) {
	tests := []struct {
		name string
		id   int64
		want string
	}{
		{"report.PDF", 1700000000000, "report_1700000000000.pdf"},
		{"a.tar.gz", 7, "a___7.tar.gz"},
		{"ab", 1, "ab__1"},
		{"", 2, "____2"},
		{"notes", 3, "notes_3"},
		{"äö.txt", 4, "äö__4.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DerivedName(tt.name, tt.id))
		})
	}
}
