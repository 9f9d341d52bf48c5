package combinator

import (
	"errors"
	"testing"
)

func TestResultSuccess(t *testing.T) {
	r := Success[string, int](42, "rest")

	if !r.Succeeded() {
		t.Error("Succeeded() = false, want true")
	}
	if r.Failed() {
		t.Error("Failed() = true, want false")
	}
	if v, ok := r.Value(); !ok || v != 42 {
		t.Errorf("Value() = %d, %v, want 42, true", v, ok)
	}
	if rest, ok := r.Rest(); !ok || rest != "rest" {
		t.Errorf("Rest() = %q, %v, want %q, true", rest, ok, "rest")
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestResultFailure(t *testing.T) {
	wantErr := errors.New("boom")
	r := Failure[string, int](wantErr)

	if r.Succeeded() {
		t.Error("Succeeded() = true, want false")
	}
	if !r.Failed() {
		t.Error("Failed() = false, want true")
	}
	if v, ok := r.Value(); ok || v != 0 {
		t.Errorf("Value() = %d, %v, want 0, false", v, ok)
	}
	if rest, ok := r.Rest(); ok || rest != "" {
		t.Errorf("Rest() = %q, %v, want %q, false", rest, ok, "")
	}
	if err := r.Err(); !errors.Is(err, wantErr) {
		t.Errorf("Err() = %v, want %v", err, wantErr)
	}
}

func TestUnexpectedError(t *testing.T) {
	err := Unexpected("a", "x")
	if got, want := err.Error(), "expected a, got x"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
