// Package tsp - brute-force exact solvers by permutation enumeration.
//
// TSPExhaustive and TSPExhaustivePruned both enumerate Hamiltonian cycles by
// recursively permuting every vertex except a fixed start vertex (fixing the
// start removes rotations of the same cycle; both orientations are still
// enumerated). The pruned variant additionally abandons a branch as soon as its
// partial cost already meets or exceeds the best complete tour found so far.
//
// Neither variant scales past about a dozen vertices; MaxExhaustiveN (10)
// and MaxExhaustivePrunedN (12) enforce that at the boundary.
//
// Complexity:
//   - TSPExhaustive:       O(n!) tours, O(n) work per tour.
//   - TSPExhaustivePruned: O(n!) worst case, typically far less in practice.
package tsp

import (
	"math"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// TSPExhaustive enumerates every Hamiltonian cycle through recursive swaps
// and returns the cheapest one found. n must not exceed MaxExhaustiveN.
func TSPExhaustive(dist matrix.Matrix, opts Options) (TSResult, error) {
	return exhaustiveCore(dist, opts, false, MaxExhaustiveN, ErrExhaustiveSizeTooLarge)
}

// TSPExhaustivePruned behaves like TSPExhaustive but abandons a branch once
// its accumulated partial cost is no longer better than the incumbent best
// cost, avoiding full enumeration of dominated subtrees. n must not exceed
// MaxExhaustivePrunedN.
func TSPExhaustivePruned(dist matrix.Matrix, opts Options) (TSResult, error) {
	return exhaustiveCore(dist, opts, true, MaxExhaustivePrunedN, ErrExhaustivePrunedSizeTooLarge)
}

// exhaustiveCore implements both the plain and pruned variants behind a
// shared recursive-swap enumerator, switched on the pruned flag.
func exhaustiveCore(dist matrix.Matrix, opts Options, pruned bool, maxN int, sizeErr error) (TSResult, error) {
	if dist == nil {
		return TSResult{}, ErrNonSquare
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return TSResult{}, ErrNonSquare
	}
	if n < 2 {
		return TSResult{}, ErrDimensionMismatch
	}
	if n > maxN {
		return TSResult{}, sizeErr
	}
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, err := dist.At(i, j)
			if err != nil {
				return TSResult{}, ErrDimensionMismatch
			}
			if math.IsNaN(x) {
				return TSResult{}, ErrDimensionMismatch
			}
			if x < 0 {
				return TSResult{}, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	var (
		useDeadline bool
		deadline    time.Time
		step        int
	)
	if compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	deadlineHit := func() bool {
		step++
		if !useDeadline || (step&2047) != 0 {
			return false
		}
		return time.Now().After(deadline)
	}

	// perm holds every vertex except start, in the tail positions [0..n-2];
	// start occupies a fixed implicit head position.
	perm := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != opts.StartVertex {
			perm = append(perm, v)
		}
	}

	var (
		bestCost = math.Inf(1)
		bestPerm []int
		timedOut bool
	)

	// recurse fixes perm[0..k-1] and permutes perm[k..] by swapping each
	// perm[i] (i >= k) into position k, tracking partial cost from start
	// through perm[0..k-1].
	var recurse func(k int, partial float64, prevVertex int)
	recurse = func(k int, partial float64, prevVertex int) {
		if timedOut {
			return
		}
		if deadlineHit() {
			timedOut = true
			return
		}
		if k == len(perm) {
			total := partial + at(prevVertex, opts.StartVertex)
			if total < bestCost {
				bestCost = total
				bestPerm = CopyTour(perm)
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]

			edge := at(prevVertex, perm[k])
			next := partial + edge
			if !pruned || next < bestCost {
				recurse(k+1, next, perm[k])
			}

			perm[k], perm[i] = perm[i], perm[k]
			if timedOut {
				return
			}
		}
	}
	recurse(0, 0, opts.StartVertex)

	if timedOut {
		return TSResult{}, ErrTimeLimit
	}
	if bestPerm == nil || math.IsInf(bestCost, 1) {
		return TSResult{}, ErrIncompleteGraph
	}

	tour := make([]int, n+1)
	tour[0] = opts.StartVertex
	copy(tour[1:n], bestPerm)
	tour[n] = opts.StartVertex

	_ = CanonicalizeOrientationInPlace(tour)
	if verr := ValidateTour(tour, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}

	return TSResult{Tour: tour, Cost: round1e9(bestCost)}, nil
}
