package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "synapse",
		Short: "Extract the title, heading outline, and section content of PDF documents",
	}

	root.AddCommand(extractCmd())
	root.AddCommand(chunkCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
