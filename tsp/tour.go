// Package tsp — tour representation helpers shared by every solver.
//
// A tour is always a closed walk encoded as a slice of length n+1 with
// tour[0] == tour[n] == the configured start vertex; the n entries in
// between are a permutation of {0,...,n-1}. Every helper in this file
// operates purely on that index sequence — no distance matrix involved —
// so they stay O(n) and allocation-light, and are safe to call from the
// hot loops of 2-opt/3-opt as well as from exact solvers and tests.
package tsp

import "fmt"

// ValidatePermutation reports whether perm is a bijection on {0,...,n-1}.
//
// Complexity: O(n) time, O(n) space for the visited marker.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// findIndex returns the position of target within seq[:limit], or -1.
func findIndex(seq []int, limit, target int) int {
	for i := 0; i < limit; i++ {
		if seq[i] == target {
			return i
		}
	}

	return -1
}

// rotateClosed builds a fresh closed tour of length n+1 from seq[:n] rotated
// so that seq[pivot] lands at position 0, with the start vertex appended to
// close the cycle.
func rotateClosed(seq []int, n, pivot, start int) []int {
	out := make([]int, n+1)
	for i := 0; i < n; i++ {
		out[i] = seq[(pivot+i)%n]
	}
	out[n] = start

	return out
}

// MakeTourFromPermutation builds a closed Hamiltonian tour from a vertex
// permutation: it validates perm, rotates it so start leads, and appends the
// closing start vertex.
//
// Contract: perm is a permutation of {0,...,n-1} containing start.
// Result: len(tour) == n+1, tour[0] == tour[n] == start.
//
// Complexity: O(n) time, O(n) space.
func MakeTourFromPermutation(perm []int, n int, start int) ([]int, error) {
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, err
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	pivot := findIndex(perm, n, start)
	if pivot < 0 {
		return nil, ErrDimensionMismatch
	}

	return rotateClosed(perm, n, pivot, start), nil
}

// ValidateTour enforces the Hamiltonian-cycle invariant described at the top
// of this file: len(tour) == n+1, matching closed endpoints at start, and
// every vertex in [0,n) appearing exactly once in the open prefix.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a fresh copy of tour cyclically shifted so it
// opens and closes at start. The input may already be closed (len == n+1,
// tour[0] == tour[len-1]) or a bare path (len == n); either way the result
// is always closed.
//
// Pre-condition: start occurs somewhere in the open prefix of tour.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrDimensionMismatch
	}

	n := len(tour)
	if tour[0] == tour[n-1] {
		n--
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	pivot := findIndex(tour, n, start)
	if pivot < 0 {
		return nil, ErrDimensionMismatch
	}

	return rotateClosed(tour, n, pivot, start), nil
}

// CanonicalizeOrientationInPlace picks a single canonical winding direction
// for a closed tour with a fixed start: whichever of start's two neighbors
// (tour[1] vs tour[n-1]) is the larger index must end up on the right, so
// the interior segment is reversed in place when tour[1] > tour[n-1].
//
// Pre-condition: tour is closed (len == n+1, tour[0] == tour[n]).
//
// Complexity: O(n) time, O(1) space.
func CanonicalizeOrientationInPlace(tour []int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] {
		return ErrDimensionMismatch
	}
	if tour[1] > tour[n-1] {
		return reverseArcInPlace(tour, 1, n-1)
	}

	return nil
}

// reverseArcInPlace reverses the inclusive interior segment tour[i..k],
// leaving the closing vertex untouched. This is the primitive 2-opt and
// simulated annealing use to apply the move whose delta they evaluate.
//
// Contract: tour is closed and 1 <= i < k <= n-1 where n = len(tour)-1.
//
// Complexity: O(k-i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] || i < 1 || k > n-1 || i >= k {
		return ErrDimensionMismatch
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}

// IndexOfStart locates the first occurrence of start in the open prefix of
// tour (position n is the closing duplicate and is never inspected).
// Returns -1 if absent.
//
// Complexity: O(n) time.
func IndexOfStart(tour []int, start int) int {
	if len(tour) == 0 {
		return -1
	}

	n := len(tour)
	if tour[0] == tour[n-1] {
		n--
	}

	return findIndex(tour, n, start)
}

// CopyTour returns an independent copy of tour, preserving nil.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}

	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualToursModuloRotation reports whether two closed tours describe the
// same cycle, allowing the second to be rotated (but not reversed) to align
// with the first's start.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}

	n := len(a) - 1
	start := a[0]
	if a[n] != start || b[n] != b[0] {
		return false
	}

	shift := findIndex(b, n, start)
	if shift < 0 {
		return false
	}

	for i := 0; i < n; i++ {
		if a[i] != b[(shift+i)%n] {
			return false
		}
	}

	return true
}

// DebugString renders a tour as "[v0 v1 ... | vn]", marking the closing
// vertex after the bar. Intended for test failure messages, not for parsing.
//
// Complexity: O(n) time and space.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}

	n := len(tour) - 1
	s := "["
	for i := 0; i < n; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d", tour[i])
	}

	return s + fmt.Sprintf(" | %d]", tour[n])
}

// ShortcutEulerianToHamiltonian collapses an Eulerian vertex walk (which may
// revisit vertices) into a Hamiltonian cycle by keeping only each vertex's
// first appearance, then rotating the result to open and close at start.
// This is Christofides' shortcutting step.
//
// Contract: every entry of euler lies in [0,n); euler must touch all n
// vertices exactly once after deduplication; start is in [0,n).
//
// Complexity: O(len(euler) + n) time, O(n) space.
func ShortcutEulerianToHamiltonian(euler []int, n int, start int) ([]int, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	seen := make([]bool, n)
	firstSeen := make([]int, 0, n)
	for _, v := range euler {
		if v < 0 || v >= n {
			return nil, ErrDimensionMismatch
		}
		if !seen[v] {
			seen[v] = true
			firstSeen = append(firstSeen, v)
		}
	}
	if len(firstSeen) != n {
		return nil, ErrDimensionMismatch
	}

	pivot := findIndex(firstSeen, n, start)
	if pivot < 0 {
		return nil, ErrDimensionMismatch
	}

	return rotateClosed(firstSeen, n, pivot, start), nil
}
