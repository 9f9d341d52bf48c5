package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// printDiagnostic reports a parse error on stderr, pointing a caret at
// the spot where rest diverges from input. rest must be a suffix of
// input; pass the full input when the divergence offset is unknown.
func printDiagnostic(input, rest string, err error) {
	offset := len(input) - len(rest)
	fmt.Fprintf(os.Stderr, "%s: %s\n", color.RedString("error"), err)
	fmt.Fprintf(os.Stderr, "  %s\n", input)
	fmt.Fprintf(os.Stderr, "  %s%s\n", strings.Repeat(" ", offset), color.YellowString("^"))
}
