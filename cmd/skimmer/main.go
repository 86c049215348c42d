package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "skimmer",
		Short: "Extract document outlines and rank sections by persona relevance",
	}

	root.AddCommand(outlineCmd())
	root.AddCommand(rankCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
