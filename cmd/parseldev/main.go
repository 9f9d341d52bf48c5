package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parseldev",
		Short: "Development tools for parsel",
	}

	rootCmd.AddCommand(newGenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
