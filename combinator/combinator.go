package combinator

// Map transforms the value of a successful parse with f; the remainder
// is untouched. Failures propagate unchanged.
func Map[I, A, B any](p Parser[I, A], f func(A) B) Parser[I, B] {
	return New(func(input I) Result[I, B] {
		r := p.Parse(input)
		if r.Failed() {
			return Failure[I, B](r.err)
		}
		return Success(f(r.value), r.rest)
	})
}

// FlatMap runs p, then uses its value to build the parser applied to
// the remainder. Either failure propagates unchanged.
func FlatMap[I, A, B any](p Parser[I, A], f func(A) Parser[I, B]) Parser[I, B] {
	return New(func(input I) Result[I, B] {
		r := p.Parse(input)
		if r.Failed() {
			return Failure[I, B](r.err)
		}
		return f(r.value).Parse(r.rest)
	})
}

// Filter runs pred on a successful parse; a non-nil error rejects the
// value and turns the whole parse into a failure with that error. The
// sub-parser's consumption is discarded on rejection, so alternatives
// retry from the original input.
func (p Parser[I, O]) Filter(pred func(O) error) Parser[I, O] {
	return New(func(input I) Result[I, O] {
		r := p.Parse(input)
		if r.Failed() {
			return r
		}
		if err := pred(r.value); err != nil {
			return Failure[I, O](err)
		}
		return r
	})
}

// Or tries p against the input; if it fails, tries q against the same
// original input. Partial consumption by p is discarded, so this is
// true backtracking. When both fail, the second alternative's error is
// surfaced.
func (p Parser[I, O]) Or(q Parser[I, O]) Parser[I, O] {
	return New(func(input I) Result[I, O] {
		if r := p.Parse(input); r.Succeeded() {
			return r
		}
		return q.Parse(input)
	})
}

// Choice tries each parser in order against the original input and
// returns the first success. When all fail, the last alternative's
// error is surfaced. Choice of no parsers always fails.
func Choice[I, O any](parsers ...Parser[I, O]) Parser[I, O] {
	return New(func(input I) Result[I, O] {
		var last Result[I, O]
		if len(parsers) == 0 {
			return Failure[I, O](Unexpected("at least one alternative", "empty choice"))
		}
		for _, p := range parsers {
			last = p.Parse(input)
			if last.Succeeded() {
				return last
			}
		}
		return last
	})
}

// Optional succeeds with a pointer to the value when p succeeds, and
// with nil without consuming input when p fails. It never fails.
//
// It is a package-level function rather than a method because Go does
// not permit a method to instantiate its receiver type with a type
// derived from the receiver's own type parameters (Parser[I, *O]).
func Optional[I, O any](p Parser[I, O]) Parser[I, *O] {
	return New(func(input I) Result[I, *O] {
		r := p.Parse(input)
		if r.Failed() {
			return Success[I, *O](nil, input)
		}
		v := r.value
		return Success(&v, r.rest)
	})
}

// Fallback substitutes v when p fails, leaving the input unconsumed.
// It never fails.
func (p Parser[I, O]) Fallback(v O) Parser[I, O] {
	return New(func(input I) Result[I, O] {
		r := p.Parse(input)
		if r.Failed() {
			return Success(v, input)
		}
		return r
	})
}

// AtLeastOnce applies p to successive remainders until it fails,
// collecting the values. At least one success is required; with zero
// successes the first failure is surfaced, otherwise the terminating
// failure is swallowed.
//
// A success that consumes no input ends the repetition (see Many for
// the measuring caveat).
//
// It is a package-level function for the same reason as Optional.
func AtLeastOnce[I, O any](p Parser[I, O]) Parser[I, []O] {
	return New(func(input I) Result[I, []O] {
		values, rest, err := repeat(p, input)
		if len(values) == 0 {
			return Failure[I, []O](err)
		}
		return Success(values, rest)
	})
}

// Many applies p zero or more times, collecting the values. It never
// fails; zero matches yield an empty slice and unconsumed input.
//
// A success that consumes no input ends the repetition. Consumption is
// detected for strings, byte and rune slices, and Measurable inputs;
// for any other input type p must consume on success or Many will not
// terminate.
//
// It is a package-level function for the same reason as Optional.
func Many[I, O any](p Parser[I, O]) Parser[I, []O] {
	return New(func(input I) Result[I, []O] {
		values, rest, _ := repeat(p, input)
		return Success(values, rest)
	})
}

// Exactly applies p exactly count times in sequence. Any failure
// before reaching count aborts with that failure and no partial slice.
// A count of zero or less succeeds immediately with an empty slice.
//
// It is a package-level function for the same reason as Optional.
func Exactly[I, O any](p Parser[I, O], count int) Parser[I, []O] {
	return New(func(input I) Result[I, []O] {
		var values []O
		rest := input
		for i := 0; i < count; i++ {
			r := p.Parse(rest)
			if r.Failed() {
				return Failure[I, []O](r.err)
			}
			values = append(values, r.value)
			rest = r.rest
		}
		return Success(values, rest)
	})
}

// repeat drives AtLeastOnce and Many: it applies p until it fails or
// stops consuming, returning the collected values, the remainder after
// the last success, and the error that ended the loop (nil when the
// loop ended because p stopped consuming).
func repeat[I, O any](p Parser[I, O], input I) ([]O, I, error) {
	var values []O
	rest := input
	for {
		r := p.Parse(rest)
		if r.Failed() {
			return values, rest, r.err
		}
		values = append(values, r.value)
		if !consumed(rest, r.rest) {
			return values, r.rest, nil
		}
		rest = r.rest
	}
}

// consumed reports whether after is strictly shorter than before.
// Inputs that cannot be measured are assumed to have been consumed.
func consumed[I any](before, after I) bool {
	b, ok := remaining(any(before))
	if !ok {
		return true
	}
	a, _ := remaining(any(after))
	return a < b
}
