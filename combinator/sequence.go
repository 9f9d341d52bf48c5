package combinator

//go:generate go run github.com/BenchR267/parsel/cmd/parseldev gen sequence --max 10 --out seq_gen.go

// Pair holds the two values produced by Then.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Then runs a on the input and, on success, b on a's remainder,
// pairing both values. The combined parser fails with the failing
// side's error and exposes no partial consumption.
func Then[I, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, Pair[A, B]] {
	return New(func(input I) Result[I, Pair[A, B]] {
		ra := a.Parse(input)
		if ra.Failed() {
			return Failure[I, Pair[A, B]](ra.err)
		}
		rb := b.Parse(ra.rest)
		if rb.Failed() {
			return Failure[I, Pair[A, B]](rb.err)
		}
		return Success(Pair[A, B]{First: ra.value, Second: rb.value}, rb.rest)
	})
}

// SkipThen sequences a and b, keeping only b's value.
func SkipThen[I, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, B] {
	return Map(Then(a, b), func(p Pair[A, B]) B {
		return p.Second
	})
}

// ThenSkip sequences a and b, keeping only a's value.
func ThenSkip[I, A, B any](a Parser[I, A], b Parser[I, B]) Parser[I, A] {
	return Map(Then(a, b), func(p Pair[A, B]) A {
		return p.First
	})
}
