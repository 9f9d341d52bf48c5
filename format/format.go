// Package format renders parse outcomes for the command line, either
// as plain text or as JSON.
package format

import "encoding"

// Outcome is what the encoders render: the original input, the parsed
// value and whatever input was left unconsumed.
type Outcome struct {
	Input string `json:"input"`
	Value any    `json:"value"`
	Rest  string `json:"rest,omitempty"`
}

// Encoder renders an Outcome to its output writer.
type Encoder interface {
	encoding.TextMarshaler
	Encode(outcome *Outcome) error
}
