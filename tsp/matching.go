// Package tsp — odd-degree matching for the Christofides pipeline.
//
// The MST built in mst.go leaves an even number of odd-degree vertices
// (handshake lemma); this file turns them into a minimum-weight perfect
// matching so their degrees become even again, producing an Eulerian
// multigraph. greedyMatch is a deterministic O(k²) nearest-partner
// heuristic (k = |odd|); blossomMatch is reserved for a true
// minimum-weight perfect matching and currently reports
// ErrMatchingNotImplemented without touching its inputs, letting callers
// fall back to the greedy variant.
//
// Both functions break cost ties by the smaller vertex id, so repeated
// runs on the same input are reproducible.
package tsp

import (
	"math"

	"github.com/tsplab/workbench/matrix"
)

// greedyMatch pairs up the odd-degree vertices in `odd` by repeatedly
// taking one endpoint and joining it to its cheapest remaining partner,
// appending each chosen pair as a new (possibly parallel) edge in `adj`.
//
// Contract: `odd` holds a distinct, even-length set of vertex ids in
// [0,n); `adj` is the MST's adjacency list being grown into a multigraph;
// `dist` is an already-validated symmetric matrix.
//
// Complexity: O(k²) time, O(k) extra space for the working copy of `odd`.
func greedyMatch(odd []int, dist matrix.Matrix, adj [][]int) {
	if len(odd) == 0 {
		return
	}

	remaining := append([]int(nil), odd...)

	for len(remaining) > 1 {
		u, rest := popLast(remaining)
		remaining = rest

		partnerIdx := nearestPartner(dist, u, remaining)
		if partnerIdx < 0 {
			// Every candidate was non-finite; shouldn't happen on a validated
			// instance, but bail out rather than pair with a bogus edge.
			return
		}

		v := remaining[partnerIdx]
		remaining = removeAt(remaining, partnerIdx)

		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
}

// popLast removes and returns the last element of xs along with the shrunk slice.
func popLast(xs []int) (int, []int) {
	last := len(xs) - 1

	return xs[last], xs[:last]
}

// removeAt deletes xs[i] via swap-with-last, which is O(1) since the
// matching loop doesn't care about remaining order.
func removeAt(xs []int, i int) []int {
	last := len(xs) - 1
	xs[i] = xs[last]

	return xs[:last]
}

// nearestPartner returns the index within candidates of the cheapest edge
// to u, breaking ties toward the smaller vertex id. Returns -1 if candidates
// is empty.
func nearestPartner(dist matrix.Matrix, u int, candidates []int) int {
	best, bestCost := -1, math.Inf(1)
	for i, v := range candidates {
		cost, _ := edgeCost(dist, u, v) // validated instance: no error expected
		tied := math.Abs(cost-bestCost) <= symTol
		if cost < bestCost || (tied && best >= 0 && v < candidates[best]) {
			bestCost = cost
			best = i
		}
	}

	return best
}

// blossomMatch is reserved for a true minimum-weight perfect matching (e.g.
// Edmonds' Blossom algorithm). It never mutates adj and always reports
// ErrMatchingNotImplemented so callers can deterministically fall back to
// greedyMatch.
func blossomMatch(odd []int, dist matrix.Matrix, adj [][]int) error {
	_ = odd
	_ = dist
	_ = adj

	return ErrMatchingNotImplemented
}

// TestHookGreedyMatch exposes greedyMatch to black-box tests in this package.
func TestHookGreedyMatch(odd []int, dist matrix.Matrix, adj [][]int) {
	greedyMatch(odd, dist, adj)
}

// TestHookBlossomMatch exposes blossomMatch to black-box tests in this package.
func TestHookBlossomMatch(odd []int, dist matrix.Matrix, adj [][]int) error {
	return blossomMatch(odd, dist, adj)
}
