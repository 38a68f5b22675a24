package main

import (
	"os"

	"github.com/Andreyhiitola/family-tree-v2/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
