// Package core_test contains test helpers for the workbench's core.Graph.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities.
//   - Keep tests stdlib-only (no third-party assertion frameworks).
package core_test

import (
	"errors"
	"sort"
	"testing"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"

	VertexX = "X"
	VertexY = "Y"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 float64 = 0
	Weight1 float64 = 1
	Weight2 float64 = 2
	Weight5 float64 = 5
)

// Common cardinalities used across core tests.
const (
	Count0 = 0
	Count1 = 1
	Count2 = 2
)

// MustErrorNil fails the test if err != nil.
func MustErrorNil(t *testing.T, err error, op string) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs fails the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if errors.Is(err, target) {
		return
	}
	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustEqualBool fails the test if got != want.
func MustEqualBool(t *testing.T, got, want bool, op string) {
	t.Helper()
	if got == want {
		return
	}
	t.Fatalf("%s: got=%t want=%t", op, got, want)
}

// MustEqualInt fails the test if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got == want {
		return
	}
	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustEqualString fails the test if got != want.
func MustEqualString(t *testing.T, got, want string, op string) {
	t.Helper()
	if got == want {
		return
	}
	t.Fatalf("%s: got=%q want=%q", op, got, want)
}

// MustNotEqualString fails the test if got == want.
func MustNotEqualString(t *testing.T, got, want string, op string) {
	t.Helper()
	if got != want {
		return
	}
	t.Fatalf("%s: got=%q want=%q", op, got, want)
}

// MustSortedStrings fails the test if ids are not sorted ascending.
func MustSortedStrings(t *testing.T, ids []string, op string) {
	t.Helper()
	if sort.StringsAreSorted(ids) {
		return
	}
	t.Fatalf("%s: not sorted asc: %v", op, ids)
}
