package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("parsel")

func main() {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "parsel",
		Short: "Parser combinators for the command line",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newNumberCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
