package cmd

import (
	"fmt"
	"os"

	"github.com/farrow-labs/ferret"
	"github.com/spf13/cobra"
)

var tokenizeShowPositions bool

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <file>",
	Short: "Print the term stream a file would contribute to the index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		for _, tok := range ferret.Tokenize(string(content)) {
			if tokenizeShowPositions {
				fmt.Printf("%d\t%s\n", tok.Position, tok.Term)
			} else {
				fmt.Println(tok.Term)
			}
		}
		return nil
	},
}

func init() {
	tokenizeCmd.Flags().BoolVarP(&tokenizeShowPositions, "positions", "p", false, "prefix each term with its ordinal position")
	rootCmd.AddCommand(tokenizeCmd)
}
