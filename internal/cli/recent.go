package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rescale/rescale-util/internal/config"
	"github.com/rescale/rescale-util/internal/pathutil"
	ustrings "github.com/rescale/rescale-util/internal/util/strings"
)

// newRecentCmd creates the 'recent' command group.
func newRecentCmd() *cobra.Command {
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Manage the recent-files list in the settings file",
		Long: `Manage the recent-files list stored in the settings file.

The list is stored as one encoded value, newest first, and holds at most
"max" entries (see the [recent] section of the settings file).`,
	}

	recentCmd.AddCommand(newRecentListCmd())
	recentCmd.AddCommand(newRecentAddCmd())
	recentCmd.AddCommand(newRecentPruneCmd())
	recentCmd.AddCommand(newRecentClearCmd())

	return recentCmd
}

func newRecentListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the recent files, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings(settingsPath())
			if err != nil {
				return err
			}
			for _, f := range s.RecentFiles() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
}

func newRecentAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "Add files to the front of the recent list",
		Long: `Add files to the front of the recent list. Paths are made absolute first.
A path already in the list moves to the front.

Examples:
  rescale-util recent add results/run1.csv ~/notes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateRecent(func(s *config.Settings) (string, error) {
				for _, arg := range args {
					abs, err := pathutil.AbsPath(arg)
					if err != nil {
						return "", fmt.Errorf("failed to resolve %s: %w", arg, err)
					}
					s.AddRecent(abs)
				}
				return fmt.Sprintf("Added %d %s", len(args), ustrings.Pluralize("file", int64(len(args)))), nil
			})
		},
	}
}

func newRecentPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune <dir>",
		Short: "Remove recent files located under a directory",
		Long: `Remove every recent file located under <dir>, e.g. after the directory has
been deleted or moved. The directory is made absolute first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := pathutil.AbsPath(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve %s: %w", args[0], err)
			}
			return updateRecent(func(s *config.Settings) (string, error) {
				n := s.RemoveRecentUnder(dir)
				return fmt.Sprintf("Removed %d %s under %s", n, ustrings.Pluralize("file", int64(n)), dir), nil
			})
		},
	}
}

func newRecentClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recent files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateRecent(func(s *config.Settings) (string, error) {
				s.ClearRecent()
				return "Cleared recent files", nil
			})
		},
	}
}

// updateRecent loads the settings, applies fn and saves the result.
// The message returned by fn is logged after a successful save.
func updateRecent(fn func(s *config.Settings) (string, error)) error {
	path := settingsPath()
	s, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	msg, err := fn(s)
	if err != nil {
		return err
	}
	if err := config.SaveSettings(s, path); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	GetLogger().Info().Str("settings", path).Msg(msg)
	return nil
}
