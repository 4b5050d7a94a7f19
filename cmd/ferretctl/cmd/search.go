package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/farrow-labs/ferret"
	"github.com/spf13/cobra"
)

var searchVerbose bool

var searchCmd = &cobra.Command{
	Use:   "search <query> <file>...",
	Short: "Index the given files and print those matching query",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchVerbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}

		query := args[0]
		paths := args[1:]

		searcher := ferret.NewSearcher[string]()
		for _, path := range paths {
			if err := indexFile(searcher, path); err != nil {
				return fmt.Errorf("indexing %s: %w", path, err)
			}
		}

		matches, err := searcher.Search(query)
		if err != nil {
			var bad ferret.BadQuery
			if errors.As(err, &bad) {
				return bad
			}
			return err
		}

		sort.Strings(matches)
		for _, path := range matches {
			fmt.Println(path)
		}
		return nil
	},
}

func indexFile(searcher *ferret.Searcher[string], path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return searcher.AddDocument(path, f)
}

func init() {
	searchCmd.Flags().BoolVarP(&searchVerbose, "verbose", "v", false, "log tokenization detail for each indexed file")
	rootCmd.AddCommand(searchCmd)
}
