package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rescale/rescale-util/internal/util/filename"
	"github.com/rescale/rescale-util/internal/util/paths"
	"github.com/rescale/rescale-util/internal/util/timestamp"
	"github.com/rescale/rescale-util/internal/validation"
)

// newNameCmd creates the 'name' command group.
func newNameCmd() *cobra.Command {
	nameCmd := &cobra.Command{
		Use:   "name",
		Short: "Filename and extension helpers",
		Long: `Filename and extension helpers.

Extensions are lower-cased and printed without the dot. Names ending in
".<x>.gz" have the two-part extension "<x>.gz" (archive.tar.gz -> tar.gz).`,
	}

	nameCmd.AddCommand(newNameSplitCmd())
	nameCmd.AddCommand(newNameExtCmd())
	nameCmd.AddCommand(newNameHasExtCmd())
	nameCmd.AddCommand(newNameTempCmd(timestamp.Default()))

	return nameCmd
}

func newNameSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <filename>",
		Short: "Print base name and extension on separate lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, ext := filename.Split(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), base)
			fmt.Fprintln(cmd.OutOrStdout(), ext)
			return nil
		},
	}
}

func newNameExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ext <filename>",
		Short: "Print the extension (empty if none)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), filename.Extension(args[0]))
			return nil
		},
	}
}

func newNameHasExtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "has-ext <filename> <ext>...",
		Short: "Report whether the filename has one of the extensions",
		Long: `Print true if the filename ends in "." plus one of the given extensions,
ignoring case.

Examples:
  rescale-util name has-ext Report.PDF pdf doc   # true`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(filename.HasExtension(args[0], args[1:]...)))
			return nil
		},
	}
}

// newNameTempCmd creates the 'name temp' command. gen supplies the unique part.
func newNameTempCmd(gen *timestamp.Generator) *cobra.Command {
	return &cobra.Command{
		Use:   "temp <filename>",
		Short: "Derive a unique temporary filename",
		Long: `Derive a unique temporary filename from a filename, keeping its extension.
Only the name is printed; no file is created.

Examples:
  rescale-util name temp report.pdf   # report_1718000000000.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, name := paths.SplitPathLast(args[0])
			if name == "" {
				name = args[0]
			}
			if err := validation.ValidateFilename(name); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filename.DerivedName(name, gen.Next()))
			return nil
		},
	}
}
