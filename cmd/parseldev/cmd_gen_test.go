package main

import (
	"os"
	"strings"
	"testing"
)

func TestRenderSequenceFileMatchesCommitted(t *testing.T) {
	got, err := renderSequenceFile(10)
	if err != nil {
		t.Fatalf("renderSequenceFile failed: %v", err)
	}

	want, err := os.ReadFile("../../combinator/seq_gen.go")
	if err != nil {
		t.Fatalf("read committed file: %v", err)
	}

	if string(got) != string(want) {
		t.Error("generated output differs from committed combinator/seq_gen.go; re-run go generate ./combinator")
	}
}

func TestRenderSequenceFileStructure(t *testing.T) {
	got, err := renderSequenceFile(4)
	if err != nil {
		t.Fatalf("renderSequenceFile failed: %v", err)
	}
	src := string(got)

	for _, want := range []string{
		"// Code generated by parseldev gen sequence; DO NOT EDIT.",
		"package combinator",
		"type Tuple2[T1, T2 any] struct {",
		"func Seq4[I, T1, T2, T3, T4 any]",
		"Then(Then(Then(p1, p2), p3), p4)",
		"V4: p.Second",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output does not contain %q", want)
		}
	}

	if strings.Contains(src, "Tuple5") {
		t.Error("output contains Tuple5 although max arity is 4")
	}
}

func TestBuildArityAccessors(t *testing.T) {
	a := buildArity(3)

	if a.Nested != "Then(Then(p1, p2), p3)" {
		t.Errorf("Nested = %q", a.Nested)
	}
	if a.PairType != "Pair[Pair[T1, T2], T3]" {
		t.Errorf("PairType = %q", a.PairType)
	}
	if want := "V1: p.First.First, V2: p.First.Second, V3: p.Second"; a.Assigns != want {
		t.Errorf("Assigns = %q, want %q", a.Assigns, want)
	}
}
