package core

import "testing"

func TestAnnotationTypeString(t *testing.T) {
	if got, want := AnnotationSelectedMatch.String(), "selected-match"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := AnnotationNone.String(), "none"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
