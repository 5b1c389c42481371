package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rescale/rescale-util/internal/pathutil"
	"github.com/rescale/rescale-util/internal/util/paths"
)

// newPathCmd creates the 'path' command group.
func newPathCmd() *cobra.Command {
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Split, join, resolve and compare paths",
		Long: `Path helpers. Both '/' and '\' are accepted as separators on input;
output uses '/' unless --native is given.`,
	}

	pathCmd.AddCommand(newPathSplitCmd())
	pathCmd.AddCommand(newPathJoinCmd())
	pathCmd.AddCommand(newPathLastCmd())
	pathCmd.AddCommand(newPathAbsCmd())
	pathCmd.AddCommand(newPathParentCmd())
	pathCmd.AddCommand(newPathContainsCmd())
	pathCmd.AddCommand(newPathDedupeCmd())

	return pathCmd
}

func newPathSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <path>",
		Short: "Print each path element on its own line",
		Long: `Print each path element on its own line.

A leading separator yields a leading empty line.

Examples:
  rescale-util path split /home/me/file.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := paths.SplitPath(args[0])
			GetLogger().Debug().Str("path", args[0]).Int("elements", len(parts)).Msg("split path")
			for _, p := range parts {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newPathJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <part>...",
		Short: "Join path elements with '/'",
		Long: `Join path elements with '/'.

Surrounding separators are stripped from every element except the leading
separators of the first one.

Examples:
  rescale-util path join 'C:\data\' runs/ out.csv   # C:/data/runs/out.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), paths.JoinPath(args...))
			return nil
		},
	}
}

func newPathLastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "last <path>",
		Short: "Split a path at its last separator",
		Long: `Print the part before the last separator and the part after it, one per line.
Without a separator the second line is empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			head, tail := paths.SplitPathLast(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), head)
			fmt.Fprintln(cmd.OutOrStdout(), tail)
			return nil
		},
	}
}

func newPathAbsCmd() *cobra.Command {
	var native bool

	cmd := &cobra.Command{
		Use:   "abs <path>",
		Short: "Print the absolute form of a path",
		Long: `Print the absolute form of a path relative to the working directory.

By default the path is printed with '/' separators. Use --native for the
platform's own separators, e.g. to pass the path to another program.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pathutil.Resolve(args[0])
			if err != nil {
				return err
			}
			GetLogger().Debug().Str("normalized", p.Normalized).Str("native", p.Native).Msg("resolved path")
			if native {
				fmt.Fprintln(cmd.OutOrStdout(), p.Native)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), p.Normalized)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&native, "native", false, "Print with the platform's native separators")

	return cmd
}

func newPathParentCmd() *cobra.Command {
	var native bool

	cmd := &cobra.Command{
		Use:   "parent <path>",
		Short: "Print the parent directory of a path",
		Long: `Print the parent directory of a path's absolute form. A bare name like
"notes.txt" has the working directory as its parent.

Examples:
  rescale-util path parent notes.txt
  rescale-util path parent --native /home/me/docs/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pathutil.ParentDir(args[0])
			if err != nil {
				return err
			}
			if native {
				fmt.Fprintln(cmd.OutOrStdout(), p.Native)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&native, "native", false, "Print with the platform's native separators")

	return cmd
}

func newPathContainsCmd() *cobra.Command {
	var absolute bool

	cmd := &cobra.Command{
		Use:   "contains <dir> <path>",
		Short: "Report whether dir is a proper ancestor of path",
		Long: `Print true if <dir> is a parent directory (direct or indirect) of <path>,
false otherwise. A path does not contain itself, and "/a/b" does not contain
"/a/bc".

Examples:
  rescale-util path contains /home/me /home/me/docs/file.txt   # true
  rescale-util path contains --abs . sub/file.txt              # true`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ok bool
			if absolute {
				var err error
				ok, err = pathutil.ContainsAbs(args[0], args[1])
				if err != nil {
					return err
				}
			} else {
				ok = paths.Contains(args[0], args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok))
			return nil
		},
	}

	cmd.Flags().BoolVar(&absolute, "abs", false, "Resolve both paths against the working directory first")

	return cmd
}

func newPathDedupeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dedupe <path>...",
		Short: "Make destination paths unique",
		Long: `Print the given destination paths with collisions resolved. Paths that are
equal after normalization get "_<n>" inserted before the extension, where n is
the argument's position (starting at 1). Other paths are printed unchanged.

Examples:
  rescale-util path dedupe out/a.tar.gz 'out\a.tar.gz' out/b.txt
  # out/a_1.tar.gz
  # out\a_2.tar.gz
  # out/b.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := make([]paths.Target, len(args))
			for i, arg := range args {
				_, name := paths.SplitPathLast(arg)
				targets[i] = paths.Target{ID: strconv.Itoa(i + 1), Name: name, LocalPath: arg}
			}
			targets, n := paths.ResolveCollisions(targets)
			if n > 0 {
				GetLogger().Debug().Int("renamed", n).Msg("resolved path collisions")
			}
			for _, t := range targets {
				fmt.Fprintln(cmd.OutOrStdout(), t.LocalPath)
			}
			return nil
		},
	}
}
