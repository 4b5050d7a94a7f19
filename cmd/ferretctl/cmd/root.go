package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "ferretctl",
		Short:        "ferretctl",
		SilenceUsage: true,
		Long:         `Command-line glue around the ferret search engine: index a set of files and run a query against them, all within one process, since the engine itself keeps no state between runs.`,
	}

	quiet bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress info-level logging")
	return rootCmd.Execute()
}

func init() {
	logLevel := &slog.LevelVar{}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	cobra.OnInitialize(func() {
		if quiet {
			logLevel.Set(slog.LevelWarn)
		}
	})
}
