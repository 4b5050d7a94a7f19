package main

import (
	"os"

	"github.com/farrow-labs/ferret/cmd/ferretctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
