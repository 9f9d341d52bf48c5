package combinator

// Measurable is implemented by input types that can report how many
// elements remain. Repetition combinators use it to detect a
// sub-parser that succeeds without consuming input, which would
// otherwise loop forever. Strings, byte slices and rune slices are
// measured directly; custom input types opt in by implementing Len.
type Measurable interface {
	Len() int
}

// remaining reports the number of elements left in an input, if the
// input type supports measuring.
func remaining(input any) (int, bool) {
	switch in := input.(type) {
	case string:
		return len(in), true
	case []byte:
		return len(in), true
	case []rune:
		return len(in), true
	case Measurable:
		return in.Len(), true
	}
	return 0, false
}

// Tokens is an immutable view over a slice of lexer tokens (or any
// other element type) suitable as parser input. Dropping or taking
// elements returns a fresh view; the underlying slice is never
// modified.
type Tokens[E any] struct {
	items []E
}

// NewTokens wraps a slice as parser input.
func NewTokens[E any](items []E) Tokens[E] {
	return Tokens[E]{items: items}
}

// Len returns the number of remaining tokens.
func (t Tokens[E]) Len() int {
	return len(t.items)
}

// Peek returns the first remaining token without consuming it. The
// second return is false when no tokens remain.
func (t Tokens[E]) Peek() (E, bool) {
	if len(t.items) == 0 {
		var zero E
		return zero, false
	}
	return t.items[0], true
}

// Drop returns a view with the first token removed. Dropping from an
// empty view returns the view unchanged.
func (t Tokens[E]) Drop() Tokens[E] {
	if len(t.items) == 0 {
		return t
	}
	return Tokens[E]{items: t.items[1:]}
}

// Take returns the first n tokens and the view past them. The second
// return is false when fewer than n tokens remain.
func (t Tokens[E]) Take(n int) ([]E, Tokens[E], bool) {
	if n < 0 || n > len(t.items) {
		return nil, t, false
	}
	return t.items[:n], Tokens[E]{items: t.items[n:]}, true
}

// HasPrefix reports whether the view starts with the given tokens,
// compared with eq.
func (t Tokens[E]) HasPrefix(prefix []E, eq func(a, b E) bool) bool {
	if len(prefix) > len(t.items) {
		return false
	}
	for i, want := range prefix {
		if !eq(t.items[i], want) {
			return false
		}
	}
	return true
}
