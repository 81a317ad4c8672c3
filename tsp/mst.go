// Package tsp — minimum spanning tree construction for the Christofides pipeline.
//
// MinimumSpanningTree builds an MST over a dense, non-negative distance
// matrix using Prim's algorithm without a heap: O(n²) time, O(n) extra
// state. That beats a heap-based O(E log V) approach precisely when the
// graph is dense (as every TSP instance here is, since dist is complete),
// and keeps memory predictable.
//
// Contracts (already checked by the dispatcher before Christofides runs):
//   - dist is square n×n, n ≥ 2;
//   - diagonal ≈ 0, no negative weights, no NaN;
//   - no +Inf edges unless metric closure already ran.
//
// This file still defends against malformed input on its own, since
// MinimumSpanningTree is exported and callable outside the dispatcher:
//   - shape/At() errors surface as ErrNonSquare / ErrDimensionMismatch,
//   - a negative weight surfaces as ErrNegativeWeight,
//   - a vertex left unreachable by +Inf edges surfaces as ErrIncompleteGraph.
//
// Returns the total tree weight (stabilized to 1e-9) and an undirected
// adjacency list — a simple graph, never carrying parallel edges.
package tsp

import (
	"math"

	"github.com/tsplab/workbench/matrix"
)

// edgeSource abstracts the single operation Prim's algorithm needs from a
// distance matrix, letting the *matrix.Dense fast path and the generic
// matrix.Matrix path share one search loop instead of two copies of it.
type edgeSource func(u, v int) (float64, error)

// MinimumSpanningTree runs Prim's algorithm in O(n²) over any matrix.Matrix,
// taking a fast path for *matrix.Dense to skip interface dispatch.
func MinimumSpanningTree(dist matrix.Matrix) (totalWeight float64, adjacency [][]int, err error) {
	if dist == nil {
		return 0, nil, ErrNonSquare
	}

	n, nc := dist.Rows(), dist.Cols()
	if n != nc || n <= 0 {
		return 0, nil, ErrNonSquare
	}
	if n == 1 {
		return 0, make([][]int, 1), nil
	}

	if d, ok := dist.(*matrix.Dense); ok {
		return primMST(n, d.At)
	}

	return primMST(n, dist.At)
}

// primMST grows a spanning tree one vertex at a time, always attaching the
// cheapest edge crossing the current tree/non-tree cut.
func primMST(n int, at edgeSource) (float64, [][]int, error) {
	bestCost := make([]float64, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	adjacency := make([][]int, n)

	for v := range bestCost {
		bestCost[v] = math.Inf(1)
		parent[v] = -1
	}
	bestCost[0] = 0 // arbitrary root; the resulting MST doesn't depend on it

	var total float64
	for step := 0; step < n; step++ {
		u := nearestOutsideTree(inTree, bestCost)
		if u < 0 {
			return 0, nil, ErrIncompleteGraph
		}
		inTree[u] = true

		if p := parent[u]; p != -1 {
			adjacency[u] = append(adjacency[u], p)
			adjacency[p] = append(adjacency[p], u)
			total += bestCost[u]
		}

		if err := relaxFrontier(u, n, at, inTree, bestCost, parent); err != nil {
			return 0, nil, err
		}
	}

	return round1e9(total), adjacency, nil
}

// nearestOutsideTree returns the not-yet-included vertex with the cheapest
// known connection to the tree, or -1 if none remains reachable.
func nearestOutsideTree(inTree []bool, bestCost []float64) int {
	u, min := -1, math.Inf(1)
	for v, cost := range bestCost {
		if !inTree[v] && cost < min {
			u, min = v, cost
		}
	}

	return u
}

// relaxFrontier updates bestCost/parent for every vertex outside the tree
// reachable from u more cheaply than previously known.
func relaxFrontier(u, n int, at edgeSource, inTree []bool, bestCost []float64, parent []int) error {
	for v := 0; v < n; v++ {
		if inTree[v] {
			continue
		}
		w, err := at(u, v)
		if err != nil || math.IsNaN(w) {
			return ErrDimensionMismatch
		}
		if w < 0 {
			return ErrNegativeWeight
		}
		// +Inf passes through untouched; a vertex stuck at +Inf forever
		// triggers ErrIncompleteGraph once no finite candidate remains.
		if w < bestCost[v] {
			bestCost[v] = w
			parent[v] = u
		}
	}

	return nil
}
