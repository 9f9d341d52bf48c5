// Package combinator provides a generic parser-combinator engine:
// primitive parsers are wrapped as Parser values and composed with
// sequencing, ordered choice, transformation and repetition operators
// into recursive-descent parsers over text, token slices or byte buffers.
package combinator

// Parser attempts to recognize a prefix of an input of type I and
// produce a value of type O. A Parser is an immutable closure: it holds
// no mutable state, and every combinator returns a new Parser instead
// of modifying an existing one. Once constructed, a Parser may be
// shared and invoked concurrently on independent inputs.
type Parser[I, O any] struct {
	run func(I) Result[I, O]
}

// New creates a Parser from a raw parse function. This is the only
// primitive creation path; everything else is built by combinators
// acting on existing Parsers.
func New[I, O any](run func(I) Result[I, O]) Parser[I, O] {
	return Parser[I, O]{run: run}
}

// Parse runs the parser against the given input.
func (p Parser[I, O]) Parse(input I) Result[I, O] {
	return p.run(input)
}

// Just returns a parser that always succeeds with v without consuming
// any input. Do not use it directly inside repetition combinators; a
// parser that succeeds without consuming cannot make progress.
func Just[I, O any](v O) Parser[I, O] {
	return New(func(input I) Result[I, O] {
		return Success(v, input)
	})
}

// Fail returns a parser that always fails with err.
func Fail[I, O any](err error) Parser[I, O] {
	return New(func(I) Result[I, O] {
		return Failure[I, O](err)
	})
}

// Lazy defers construction of a parser until it is first used, which
// allows grammars to refer to themselves. Go evaluates initializers
// eagerly, so a directly recursive definition would recurse forever
// during construction; routing the recursive reference through Lazy
// breaks the cycle.
func Lazy[I, O any](build func() Parser[I, O]) Parser[I, O] {
	return New(func(input I) Result[I, O] {
		return build().Parse(input)
	})
}
