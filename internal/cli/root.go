// Package cli provides the command-line interface for rescale-util.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rescale/rescale-util/internal/config"
	"github.com/rescale/rescale-util/internal/constants"
	"github.com/rescale/rescale-util/internal/logging"
	"github.com/rescale/rescale-util/internal/util/check"
	"github.com/rescale/rescale-util/internal/validation"
	"github.com/rescale/rescale-util/internal/version"
)

var (
	// Global flags
	cfgFile   string
	logFile   string
	separator string
	verbose   bool
	debug     bool

	// Global logger
	logger *logging.Logger
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Path, filename and list-encoding helpers",
		Long: constants.AppName + ` ` + version.Version + ` - Built: ` + version.BuildTime + `
Deterministic helpers for paths, filenames, encoded lists and settings values.

Paths are printed with '/' separators. Commands that produce a path for
another program (path abs --native) print the platform's native form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = logging.NewLogger(cmd.ErrOrStderr())
			if verbose || debug {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				logging.SetGlobalLevel(zerolog.InfoLevel)
			}
			if logFile != "" {
				if err := logger.EnableFileLogging(logFile); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return GetLogger().Close()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Settings file path (default "+config.DefaultSettingsPath()+")")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this rotating file")
	rootCmd.PersistentFlags().StringVar(&separator, "sep", string(constants.DefaultListSeparator), "Separator for encoded lists")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		ValidArgs: []string{
			"bash", "zsh", "fish", "powershell",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(out)
			case "zsh":
				return rootCmd.GenZshCompletion(out)
			case "fish":
				return rootCmd.GenFishCompletion(out, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletion(out)
			}
			return fmt.Errorf("unsupported shell: %s", args[0])
		},
	}
	rootCmd.AddCommand(completionCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	return execute(rootCmd)
}

// execute runs rootCmd, reporting precondition violations from the helper
// packages as errors instead of crashing.
func execute(rootCmd *cobra.Command) (err error) {
	defer check.Recover(&err)
	return rootCmd.Execute()
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newNameCmd())
	rootCmd.AddCommand(newIntCmd())
	rootCmd.AddCommand(newTimestampCmd())
	rootCmd.AddCommand(newRecentCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// listSeparator validates the --sep flag.
func listSeparator() (rune, error) {
	sep, err := validation.ValidateSeparator(separator)
	if err != nil {
		return 0, fmt.Errorf("invalid --sep: %w", err)
	}
	return sep, nil
}

// settingsPath returns --config or the default settings path.
func settingsPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultSettingsPath()
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
