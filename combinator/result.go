package combinator

// Result is the outcome of one parse attempt: either a typed value
// plus the unconsumed remainder of the input, or an error. Exactly one
// variant is populated. A failure never carries a remainder — by
// convention the input is unaffected when a parser fails, which is
// what makes backtracking in Or and Filter sound.
type Result[I, O any] struct {
	value O
	rest  I
	err   error
}

// Success creates a successful result. rest must be a suffix of the
// input handed to the parser invocation that produced it.
func Success[I, O any](value O, rest I) Result[I, O] {
	return Result[I, O]{value: value, rest: rest}
}

// Failure creates a failed result carrying err, which must be non-nil.
func Failure[I, O any](err error) Result[I, O] {
	return Result[I, O]{err: err}
}

// Succeeded reports whether the parse produced a value.
func (r Result[I, O]) Succeeded() bool {
	return r.err == nil
}

// Failed reports whether the parse produced an error.
func (r Result[I, O]) Failed() bool {
	return r.err != nil
}

// Value returns the parsed value. The second return is false if the
// result is a failure, in which case the value is the zero value.
func (r Result[I, O]) Value() (O, bool) {
	return r.value, r.err == nil
}

// Rest returns the unconsumed remainder of the input. The second
// return is false if the result is a failure; failures carry no
// remainder.
func (r Result[I, O]) Rest() (I, bool) {
	return r.rest, r.err == nil
}

// Err returns the parse error, or nil on success.
func (r Result[I, O]) Err() error {
	return r.err
}

// Get unpacks the result into its parts. On failure, value and rest
// are zero values and err is non-nil.
func (r Result[I, O]) Get() (value O, rest I, err error) {
	return r.value, r.rest, r.err
}
