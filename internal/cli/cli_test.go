package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rescale/rescale-util/internal/config"
	"github.com/rescale/rescale-util/internal/util/check"
	"github.com/rescale/rescale-util/internal/util/timestamp"
)

// run executes the full command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := NewRootCmd()
	AddCommands(root)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := execute(root)
	logger = nil
	return stdout.String(), stderr.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRootCommandsRegistered(t *testing.T) {
	root := NewRootCmd()
	AddCommands(root)

	for _, name := range []string{"path", "list", "name", "int", "timestamp", "recent", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered (err=%v)", name, err)
			continue
		}
		if cmd.Short == "" {
			t.Errorf("command %q has no short description", name)
		}
	}
}

func TestPathCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"split", []string{"path", "split", `/a\b/c`}, "\na\nb\nc\n"},
		{"join", []string{"path", "join", `C:\data\`, "runs/", "out.csv"}, "C:/data/runs/out.csv\n"},
		{"last", []string{"path", "last", "/a/b/c.txt"}, "/a/b\nc.txt\n"},
		{"contains", []string{"path", "contains", "/a/b", "/a/b/c"}, "true\n"},
		{"contains sibling prefix", []string{"path", "contains", "/a/b", "/a/bc"}, "false\n"},
		{"contains itself", []string{"path", "contains", "/a/b", "/a/b"}, "false\n"},
		{"dedupe", []string{"path", "dedupe", "out/a.tar.gz", `out\a.tar.gz`, "out/b.txt"}, "out/a_1.tar.gz\nout\\a_2.tar.gz\nout/b.txt\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestPathAbs(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, _, err := run(t, "path", "abs", "--native", "sub")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "sub") + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	out, _, err = run(t, "path", "parent", "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.ToSlash(dir) + "\n"; out != want {
		t.Errorf("parent: got %q, want %q", out, want)
	}

	out, _, err = run(t, "path", "contains", "--abs", ".", "sub/file.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("contains --abs: got %q", out)
	}
}

func TestListEncodeDecode(t *testing.T) {
	out, _, err := run(t, "list", "encode", "a;b", `C:\dir`, "")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	encoded := strings.TrimSuffix(out, "\n")
	if want := `a\;b;C:\\dir;`; encoded != want {
		t.Fatalf("encode: got %q, want %q", encoded, want)
	}

	out, _, err = run(t, "list", "decode", "--quote", encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := "[0] \"a;b\"\n[1] \"C:\\\\dir\"\n[2] \"\"\n"
	if out != want {
		t.Errorf("decode: got %q, want %q", out, want)
	}
}

func TestListDecodeCRLF(t *testing.T) {
	out, _, err := run(t, "list", "decode", "--crlf", `a;b\;c`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "a\r\nb;c\r\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestListEncodeStdin(t *testing.T) {
	root := NewRootCmd()
	AddCommands(root)
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader("one|1\r\ntwo\n"))
	root.SetArgs([]string{"list", "encode", "--sep", "|", "--stdin", "zero"})
	defer func() { logger = nil }()

	if err := root.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := stdout.String(), "zero|one\\|1|two\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestListInvalidSeparator(t *testing.T) {
	for _, sep := range []string{`\`, "ab", ""} {
		if _, _, err := run(t, "list", "decode", "--sep", sep, "x"); err == nil {
			t.Errorf("--sep %q: expected error", sep)
		}
	}
}

func TestNameCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"split compound", []string{"name", "split", "Archive.TAR.GZ"}, "Archive\ntar.gz\n"},
		{"split none", []string{"name", "split", "README"}, "README\n\n"},
		{"ext", []string{"name", "ext", "photo.JPEG"}, "jpeg\n"},
		{"has-ext", []string{"name", "has-ext", "Report.PDF", "doc", "pdf"}, "true\n"},
		{"has-ext miss", []string{"name", "has-ext", "Report.PDF", "doc"}, "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

func TestNameTemp(t *testing.T) {
	gen := timestamp.NewWithClock(func() int64 { return 1700000000000 })
	cmd := newNameTempCmd(gen)
	var out bytes.Buffer
	cmd.SetOut(&out)

	cmd.SetArgs([]string{"/tmp/report.pdf"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), "report_1700000000000.pdf\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	cmd.SetArgs([]string{"/tmp/dir/"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for a directory path")
	}
}

func TestIntCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"parse", []string{"int", "parse", " 42 "}, "42\n"},
		{"parse default", []string{"int", "parse", "abc", "--default", "7"}, "7\n"},
		{"parse overflow", []string{"int", "parse", "-99999999999999999999"}, strconv.Itoa(minInt) + "\n"},
		{"list", []string{"int", "list", "800, 600"}, "800,600\n"},
		{"list clamps", []string{"int", "list", "1,99999999999"}, "1,2147483647\n"},
		{"list default", []string{"int", "list", "800,x", "--default", "1024,768"}, "1024,768\n"},
		{"clamp high", []string{"int", "clamp", "500", "--min", "1", "--max", "100"}, "100\n"},
		{"clamp junk", []string{"int", "clamp", "junk", "--min", "5", "--max", "10"}, "5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("got %q, want %q", out, tt.want)
			}
		})
	}
}

const minInt = -1 << (strconv.IntSize - 1)

func TestIntClampInvalidRange(t *testing.T) {
	if _, _, err := run(t, "int", "clamp", "5", "--min", "10", "--max", "1"); err == nil {
		t.Error("expected error for min > max")
	}
}

func TestTimestamp(t *testing.T) {
	out, _, err := run(t, "timestamp", "--count", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var prev int64
	for i, line := range lines(out) {
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			t.Fatalf("line %d is not a number: %q", i, line)
		}
		if n <= prev {
			t.Errorf("timestamps not increasing: %d after %d", n, prev)
		}
		prev = n
	}

	if _, _, err := run(t, "timestamp", "--count", "0"); err == nil {
		t.Error("expected error for --count 0")
	}
}

func TestRecentCommands(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg := filepath.Join(dir, "conf", "settings.ini")

	if _, _, err := run(t, "-c", cfg, "recent", "add", "a.txt", "sub/b.txt", "sub/deep/c.txt"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := os.Stat(cfg); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	out, _, err := run(t, "-c", cfg, "recent", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	base := filepath.ToSlash(dir)
	want := []string{base + "/sub/deep/c.txt", base + "/sub/b.txt", base + "/a.txt"}
	if got := lines(out); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("list: got %v, want %v", got, want)
	}

	if _, _, err := run(t, "-c", cfg, "recent", "prune", "sub"); err != nil {
		t.Fatalf("prune: %v", err)
	}
	s, err := config.LoadSettings(cfg)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got := s.RecentFiles(); len(got) != 1 || got[0] != base+"/a.txt" {
		t.Errorf("after prune: got %v", got)
	}

	if _, _, err := run(t, "-c", cfg, "recent", "clear"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out, _, err = run(t, "-c", cfg, "recent", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out != "" {
		t.Errorf("after clear: got %q", out)
	}
}

func TestLogFileFlag(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "cli.log")
	cfg := filepath.Join(t.TempDir(), "settings.ini")

	if _, _, err := run(t, "--log-file", logPath, "-c", cfg, "recent", "clear"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "Cleared recent files") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestVerboseLevelDoesNotLeak(t *testing.T) {
	if _, _, err := run(t, "-v", "int", "parse", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Errorf("with --verbose: level %v, want debug", got)
	}

	if _, _, err := run(t, "int", "parse", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("after --verbose run: level %v, want info", got)
	}
}

func TestExecuteReportsPreconditionViolations(t *testing.T) {
	root := NewRootCmd()
	root.AddCommand(&cobra.Command{
		Use: "boom",
		RunE: func(cmd *cobra.Command, args []string) error {
			check.That(false, "boom: bad argument")
			return nil
		},
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"boom"})
	defer func() { logger = nil }()

	err := execute(root)
	if !errors.Is(err, check.ErrPrecondition) {
		t.Errorf("expected precondition error, got %v", err)
	}
}
