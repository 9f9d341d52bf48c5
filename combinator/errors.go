package combinator

import "fmt"

// UnexpectedError describes input that diverged from what a parser
// required. It is the only error kind the engine itself produces;
// parsers built on the engine are free to fail with any error type.
type UnexpectedError struct {
	Expected string
	Got      string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// Unexpected creates an UnexpectedError from descriptions of the
// expected and the actually encountered input.
func Unexpected(expected, got string) error {
	return &UnexpectedError{Expected: expected, Got: got}
}
