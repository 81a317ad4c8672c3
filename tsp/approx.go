// Package tsp — Christofides 1.5-approximation for the symmetric, metric
// case.
//
// The pipeline runs four stages:
//
//  1. Minimum spanning tree over the complete metric graph.
//  2. Minimum-weight matching on the tree's odd-degree vertices.
//  3. Eulerian circuit over the resulting multigraph.
//  4. Shortcutting the walk into a Hamiltonian cycle, skipping revisits.
//
// When the matching stage is a true minimum-weight perfect matching, the
// returned tour is within 1.5x of optimal for metric instances (triangle
// inequality, non-negative, symmetric weights). The matching used here is
// greedy: GreedyMatch runs it directly, and BlossomMatch falls back to it
// because blossomMatch always reports ErrMatchingNotImplemented. Greedy
// matching keeps the pipeline valid and deterministic, but the 1.5x bound
// is not guaranteed.
//
// TSPApprox assumes the dispatcher already validated dist and opts via
// validateAll; it only re-checks the start vertex, which is cheap relative
// to full O(n^2) validation. Local-search polishing (2-opt/3-opt) is layered
// on by the dispatcher, not here — Christofides stays a pure, predictable
// building block.
package tsp

import (
	"errors"

	"github.com/tsplab/workbench/matrix"
)

// TSPApprox runs Christofides on a symmetric, metric instance and returns a
// closed tour starting and ending at opts.StartVertex.
func TSPApprox(dist matrix.Matrix, opts Options) (TSResult, error) {
	n := dist.Rows()
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	_, treeAdj, err := MinimumSpanningTree(dist)
	if err != nil {
		return TSResult{}, err
	}

	oddVertices := collectOddDegree(treeAdj, n)

	if mErr := matchOddVertices(oddVertices, dist, treeAdj, opts.MatchingAlgo); mErr != nil {
		return TSResult{}, mErr
	}

	walk := EulerianCircuit(treeAdj, opts.StartVertex)

	tour, err := ShortcutEulerianToHamiltonian(walk, n, opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}
	_ = CanonicalizeOrientationInPlace(tour)

	cost, err := TourCost(dist, tour)
	if err != nil {
		return TSResult{}, err
	}
	if err := ValidateTour(tour, n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}

// collectOddDegree returns the vertices whose degree in adj is odd, found
// via a bit test on the adjacency length rather than an explicit mod.
func collectOddDegree(adj [][]int, n int) []int {
	odd := make([]int, 0, n/2+1)
	for v := 0; v < n; v++ {
		if len(adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// matchOddVertices augments adj in-place with a matching over odd, turning
// the spanning tree into an Eulerian multigraph. Unknown or unimplemented
// matching choices fall back to the deterministic greedy matcher so the
// pipeline always produces a valid tour.
func matchOddVertices(odd []int, dist matrix.Matrix, adj [][]int, algo MatchingAlgo) error {
	switch algo {
	case BlossomMatch:
		if err := blossomMatch(odd, dist, adj); err != nil {
			if !errors.Is(err, ErrMatchingNotImplemented) {
				return err
			}
			greedyMatch(odd, dist, adj)
		}
	default:
		greedyMatch(odd, dist, adj)
	}

	return nil
}
