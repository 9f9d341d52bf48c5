package format

import (
	"bytes"
	"fmt"
	"io"
)

type TextEncoder struct {
	w       io.Writer
	outcome *Outcome
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(outcome *Outcome) error {
	e.outcome = outcome
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%v\n", e.outcome.Value)
	if e.outcome.Rest != "" {
		fmt.Fprintf(&buf, "rest: %q\n", e.outcome.Rest)
	}
	return buf.Bytes(), nil
}
