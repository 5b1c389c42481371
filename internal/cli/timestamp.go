package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rescale/rescale-util/internal/util/timestamp"
)

// newTimestampCmd creates the 'timestamp' command.
func newTimestampCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "timestamp",
		Short: "Print unique, increasing millisecond timestamps",
		Long: `Print unique, strictly increasing millisecond timestamps, one per line.

Each value is a wall-clock time in milliseconds since the Unix epoch. Asking
for several values in one call waits for the clock to advance between them.

Examples:
  rescale-util timestamp
  rescale-util timestamp --count 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			return printTimestamps(cmd, timestamp.Default(), count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of timestamps to print")

	return cmd
}

func printTimestamps(cmd *cobra.Command, gen *timestamp.Generator, count int) error {
	for range count {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), gen.Next()); err != nil {
			return err
		}
	}
	GetLogger().Debug().Int64("last", gen.Last()).Msg("timestamps issued")
	return nil
}
