package main

import (
	"fmt"
	"os"

	"github.com/BenchR267/parsel/combinator"
	"github.com/BenchR267/parsel/format"
	"github.com/BenchR267/parsel/lexical"
	"github.com/spf13/cobra"
)

func newNumberCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:           "number <literal>",
		Short:         "Parse an integer literal in any supported base",
		Long:          "Parses a decimal, 0b-, 0o- or 0x-prefixed integer literal and reports the value plus any unconsumed input.",
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

			// Prefixed forms first: a bare decimal parse of "0x1F"
			// would stop after the leading zero.
			parser := combinator.Choice(
				lexical.HexNumber(),
				lexical.OctalNumber(),
				lexical.BinaryNumber(),
				lexical.Number(),
			)

			log.Debugf("parsing number literal %q", input)
			value, rest, err := parser.Parse(input).Get()
			if err != nil {
				printDiagnostic(input, input, err)
				return err
			}

			return encoder.Encode(&format.Outcome{Input: input, Value: value, Rest: rest})
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text or json)")

	return cmd
}
