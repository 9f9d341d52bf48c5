package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gen",
		Short:         "Code generators",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGenSequenceCmd())

	return cmd
}

func newGenSequenceCmd() *cobra.Command {
	var maxArity int
	var outFile string

	cmd := &cobra.Command{
		Use:           "sequence",
		Short:         "Generate the fixed-arity tuple sequencing operators",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxArity < 2 {
				return fmt.Errorf("max arity must be at least 2, got %d", maxArity)
			}

			src, err := renderSequenceFile(maxArity)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			if outFile == "" || outFile == "-" {
				_, err := os.Stdout.Write(src)
				return err
			}

			if err := os.WriteFile(outFile, src, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outFile, err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxArity, "max", 10, "maximum sequencing arity")
	cmd.Flags().StringVarP(&outFile, "out", "o", "-", "output file (- for stdout)")

	return cmd
}

var numberWords = []string{
	2: "two", 3: "three", 4: "four", 5: "five", 6: "six",
	7: "seven", 8: "eight", 9: "nine", 10: "ten",
}

// arity carries the pre-rendered pieces of one TupleN/SeqN pair.
type arity struct {
	N          int
	Word       string
	TypeParams string   // T1, T2, ...
	Fields     []string // struct fields, padded for alignment
	Params     string   // p1 Parser[I, T1], ...
	Nested     string   // Then(Then(p1, p2), p3)...
	PairType   string   // Pair[Pair[T1, T2], T3]...
	TupleType  string   // TupleN[T1, ...]
	Assigns    string   // V1: p.First..., ...
}

func buildArity(n int) arity {
	word := fmt.Sprintf("%d", n)
	if n < len(numberWords) && numberWords[n] != "" {
		word = numberWords[n]
	}

	typeParams := make([]string, n)
	params := make([]string, n)
	for i := 1; i <= n; i++ {
		typeParams[i-1] = fmt.Sprintf("T%d", i)
		params[i-1] = fmt.Sprintf("p%d Parser[I, T%d]", i, i)
	}

	nameWidth := len(fmt.Sprintf("V%d", n))
	fields := make([]string, n)
	for i := 1; i <= n; i++ {
		fields[i-1] = fmt.Sprintf("%-*s T%d", nameWidth, fmt.Sprintf("V%d", i), i)
	}

	nested := "Then(p1, p2)"
	pairType := "Pair[T1, T2]"
	for i := 3; i <= n; i++ {
		nested = fmt.Sprintf("Then(%s, p%d)", nested, i)
		pairType = fmt.Sprintf("Pair[%s, T%d]", pairType, i)
	}

	assigns := make([]string, n)
	for i := 1; i <= n; i++ {
		accessor := "p" + strings.Repeat(".First", n-i)
		if i > 1 {
			accessor += ".Second"
		}
		assigns[i-1] = fmt.Sprintf("V%d: %s", i, accessor)
	}

	return arity{
		N:          n,
		Word:       word,
		TypeParams: strings.Join(typeParams, ", "),
		Fields:     fields,
		Params:     strings.Join(params, ", "),
		Nested:     nested,
		PairType:   pairType,
		TupleType:  fmt.Sprintf("Tuple%d[%s]", n, strings.Join(typeParams, ", ")),
		Assigns:    strings.Join(assigns, ", "),
	}
}

const sequenceTemplate = `// Code generated by parseldev gen sequence; DO NOT EDIT.

package combinator
{{range .}}
// Tuple{{.N}} holds the {{.Word}} values produced by Seq{{.N}}.
type Tuple{{.N}}[{{.TypeParams}} any] struct {
{{- range .Fields}}
	{{.}}
{{- end}}
}

// Seq{{.N}} runs {{.N}} parsers in order, each consuming from the remainder left
// by its predecessor, and combines their values into a flat tuple. Any
// step's failure fails the whole sequence with that step's error; no
// partial tuple is exposed.
func Seq{{.N}}[I, {{.TypeParams}} any]({{.Params}}) Parser[I, {{.TupleType}}] {
	return Map({{.Nested}}, func(p {{.PairType}}) {{.TupleType}} {
		return {{.TupleType}}{ {{- .Assigns -}} }
	})
}
{{end}}`

func renderSequenceFile(maxArity int) ([]byte, error) {
	arities := make([]arity, 0, maxArity-1)
	for n := 2; n <= maxArity; n++ {
		arities = append(arities, buildArity(n))
	}

	tmpl, err := template.New("sequence").Parse(sequenceTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
