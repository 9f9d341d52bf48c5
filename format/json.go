package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w       io.Writer
	outcome *Outcome
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(outcome *Outcome) error {
	e.outcome = outcome
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(text); err != nil {
		return err
	}
	_, err = io.WriteString(e.w, "\n")
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.outcome, "", "  ")
}
