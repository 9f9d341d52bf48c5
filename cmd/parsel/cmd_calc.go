package main

import (
	"fmt"
	"os"

	"github.com/BenchR267/parsel/calc"
	"github.com/BenchR267/parsel/combinator"
	"github.com/BenchR267/parsel/format"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:           "calc <expression>",
		Short:         "Evaluate an arithmetic expression",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			log.Debugf("parsing expression %q", input)
			value, rest, err := calc.Parser().Parse(input).Get()
			if err != nil {
				printDiagnostic(input, input, err)
				return err
			}
			if rest != "" {
				err := combinator.Unexpected("end of input", fmt.Sprintf("%q", rest))
				printDiagnostic(input, rest, err)
				return err
			}
			log.Debugf("evaluated to %v", value)

			return encoder.Encode(&format.Outcome{Input: input, Value: value})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text or json)")

	return cmd
}
