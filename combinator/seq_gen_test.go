package combinator

import "testing"

func TestSeq2MatchesThen(t *testing.T) {
	a, b := charP('a'), charP('b')

	tuple, rest := mustSucceed(t, Seq2(a, b).Parse("abc"))
	pair, pairRest := mustSucceed(t, Then(a, b).Parse("abc"))

	if tuple.V1 != pair.First || tuple.V2 != pair.Second {
		t.Errorf("Seq2 = %+v, Then = %+v", tuple, pair)
	}
	if rest != pairRest {
		t.Errorf("rest = %q, Then rest = %q", rest, pairRest)
	}
}

func TestSeq3MatchesNestedThen(t *testing.T) {
	a, b, c := charP('a'), charP('b'), charP('c')

	tuple, rest := mustSucceed(t, Seq3(a, b, c).Parse("abcd"))
	nested, nestedRest := mustSucceed(t, Then(Then(a, b), c).Parse("abcd"))

	if tuple.V1 != nested.First.First || tuple.V2 != nested.First.Second || tuple.V3 != nested.Second {
		t.Errorf("Seq3 = %+v, nested Then = %+v", tuple, nested)
	}
	if rest != nestedRest {
		t.Errorf("rest = %q, nested rest = %q", rest, nestedRest)
	}
}

func TestSeq10ThreadsLeftToRight(t *testing.T) {
	p := Seq10(
		charP('a'), charP('b'), charP('c'), charP('d'), charP('e'),
		charP('f'), charP('g'), charP('h'), charP('i'), charP('j'),
	)

	tuple, rest := mustSucceed(t, p.Parse("abcdefghij!"))
	got := string([]byte{
		tuple.V1, tuple.V2, tuple.V3, tuple.V4, tuple.V5,
		tuple.V6, tuple.V7, tuple.V8, tuple.V9, tuple.V10,
	})
	if got != "abcdefghij" {
		t.Errorf("tuple elements = %q, want %q", got, "abcdefghij")
	}
	if rest != "!" {
		t.Errorf("rest = %q, want %q", rest, "!")
	}
}

func TestSeqFailsWithStepError(t *testing.T) {
	p := Seq4(charP('a'), charP('b'), charP('c'), charP('d'))

	r := p.Parse("abxd")
	if r.Succeeded() {
		t.Fatal("parse succeeded, want failure")
	}
	if got, want := r.Err().Error(), "expected c, got x"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	if _, ok := r.Value(); ok {
		t.Error("failure exposed a partial tuple")
	}
}

func TestSeqMixedTypes(t *testing.T) {
	length := Map(AtLeastOnce(charP('a')), func(bs []byte) int { return len(bs) })
	tag := Map(charP('b'), func(b byte) string { return string(b) })

	tuple, rest := mustSucceed(t, Seq2(length, tag).Parse("aaab!"))
	if tuple.V1 != 3 || tuple.V2 != "b" {
		t.Errorf("tuple = %+v, want {3 b}", tuple)
	}
	if rest != "!" {
		t.Errorf("rest = %q, want %q", rest, "!")
	}
}
