// Package tsp_test verifies the odd-vertex matching step via the hooks
// TestHookGreedyMatch / TestHookBlossomMatch exported from matching.go.
package tsp_test

import (
	"errors"
	"testing"

	"github.com/tsplab/workbench/tsp"
)

// occurrences counts how many times v appears in adj[u] (parallel edges
// allowed).
func occurrences(adj [][]int, u, v int) int {
	n := 0
	for _, x := range adj[u] {
		if x == v {
			n++
		}
	}

	return n
}

// hasSingleUndirectedEdge reports whether adj has exactly one u->v entry and
// one v->u entry — a single undirected edge, no duplicates.
func hasSingleUndirectedEdge(adj [][]int, u, v int) bool {
	return occurrences(adj, u, v) == 1 && occurrences(adj, v, u) == 1
}

// equalAdj checks order-sensitive structural equality of two adjacency
// lists.
func equalAdj(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}

// TestGreedyMatch_K4_UniquePairs checks that greedy matching picks the two
// cheap pairs {0,1} and {2,3} on a 4-vertex instance with a unique optimum,
// never a cross pair.
func TestGreedyMatch_K4_UniquePairs(t *testing.T) {
	a := [][]float64{
		{0, 1, 5, 5},
		{1, 0, 5, 5},
		{5, 5, 0, 1},
		{5, 5, 1, 0},
	}
	m := testDense{a: a}

	odd := []int{0, 1, 2, 3}
	adj := make([][]int, 4)
	tsp.TestHookGreedyMatch(odd, m, adj)

	if !hasSingleUndirectedEdge(adj, 0, 1) {
		t.Fatalf("missing or duplicated edge 0-1 in adjacency: %+v", adj)
	}
	if !hasSingleUndirectedEdge(adj, 2, 3) {
		t.Fatalf("missing or duplicated edge 2-3 in adjacency: %+v", adj)
	}
	crossEdges := occurrences(adj, 0, 2) + occurrences(adj, 2, 0) +
		occurrences(adj, 1, 3) + occurrences(adj, 3, 1)
	if crossEdges != 0 {
		t.Fatalf("unexpected cross edges present: %+v", adj)
	}
}

// TestGreedyMatch_K6_TieBreakDeterminism checks the tie-break policy on a
// fully tied K6 instance: the matcher pops a vertex from the tail of its
// working set and pairs it with the smallest-id remaining candidate, which
// deterministically yields (5,0), (3,1), (2,4) for this input order.
func TestGreedyMatch_K6_TieBreakDeterminism(t *testing.T) {
	const n = 6
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			if i != j {
				a[i][j] = 1
			}
		}
	}
	m := testDense{a: a}

	wantPartner := [n]int{5, 3, 4, 1, 2, 0}

	for rep := 0; rep < 3; rep++ {
		odd := []int{0, 1, 2, 3, 4, 5}
		adj := make([][]int, n)
		tsp.TestHookGreedyMatch(odd, m, adj)

		for u := 0; u < n; u++ {
			if len(adj[u]) != 1 {
				t.Fatalf("deg[%d]=%d; want 1; adj=%+v", u, len(adj[u]), adj)
			}
			if adj[u][0] != wantPartner[u] {
				t.Fatalf("unexpected partner for %d: got %d, want %d; adj=%+v",
					u, adj[u][0], wantPartner[u], adj)
			}
		}
	}
}

// TestBlossomMatch_Sentinel_NoMutation checks that the unimplemented
// Blossom matcher reports ErrMatchingNotImplemented and never mutates its
// adjacency argument, so callers can safely fall back to greedy matching.
func TestBlossomMatch_Sentinel_NoMutation(t *testing.T) {
	a := [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	m := testDense{a: a}

	odd := []int{0, 1}
	adj := [][]int{
		{1},
		{0, 2},
		{1},
	}
	before := make([][]int, len(adj))
	for r := range adj {
		before[r] = append([]int(nil), adj[r]...)
	}

	err := tsp.TestHookBlossomMatch(odd, m, adj)
	if !errors.Is(err, tsp.ErrMatchingNotImplemented) {
		t.Fatalf("want ErrMatchingNotImplemented, got %v", err)
	}
	if !equalAdj(before, adj) {
		t.Fatalf("adjacency mutated by blossomMatch; before=%+v after=%+v", before, adj)
	}
}
