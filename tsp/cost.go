// Package tsp — cost utilities shared by every exact/heuristic solver.
//
// TourCost and edgeCost share one sentinel-mapping rule (NaN, negative,
// +Inf) for the weights they read. TourCost takes a fast path for
// *matrix.Dense to skip interface dispatch in the hot loop, falling back to
// the generic matrix.Matrix interface otherwise; edgeCost always reads
// through the interface. Solvers that prefetch weights into their own
// buffers (prefetchWeights in two_opt.go, loadMatrix in bb.go, and others)
// apply their own checks.
//
// Every returned cost is stabilized to 1e-9 (roundScale) so floating-point
// drift across platforms or optimization levels never flips a comparison
// that should be a tie.
package tsp

import (
	"math"

	"github.com/tsplab/workbench/matrix"
)

// roundScale sets the final cost stabilization precision.
const roundScale = 1e9

// TourCost sums the weight of every edge along a closed tour.
//
// Contract: tour represents a closed cycle (len(tour) ≥ 2, indices in
// [0,n)); dist is square n×n. Validation beyond shape (NaN/negative/+Inf)
// is expected to already have run via validateAll, but this function still
// guards against misuse since it is exported.
//
// Complexity: O(n).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if dist == nil || tour == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	n, nc := dist.Rows(), dist.Cols()
	if n != nc || n <= 0 {
		return 0, ErrNonSquare
	}

	at := dist.At
	if d, ok := dist.(*matrix.Dense); ok {
		at = d.At
	}

	var sum float64
	hops := len(tour) - 1
	for i := 0; i < hops; i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}

		w, err := sentinelWeight(at, u, v)
		if err != nil {
			return 0, err
		}
		sum += w
	}

	return round1e9(sum), nil
}

// sentinelWeight fetches w(u,v) and applies the package-wide weight rules:
// At() errors and NaN map to ErrDimensionMismatch, +Inf means no edge
// (ErrIncompleteGraph), and negative weights are always rejected.
func sentinelWeight(at func(int, int) (float64, error), u, v int) (float64, error) {
	w, err := at(u, v)
	if err != nil || math.IsNaN(w) {
		return 0, ErrDimensionMismatch
	}
	if math.IsInf(w, 0) {
		return 0, ErrIncompleteGraph
	}
	if w < 0 {
		return 0, ErrNegativeWeight
	}

	return w, nil
}

// edgeCost fetches the weight of a single directed edge u→v with the same
// strict validation as TourCost, centralizing sentinel semantics for
// local-search delta computations (2-opt/3-opt).
//
// Complexity: O(1).
func edgeCost(m matrix.Matrix, u, v int) (float64, error) {
	n, nc := m.Rows(), m.Cols()
	if n != nc || n <= 0 {
		return 0, ErrNonSquare
	}
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrDimensionMismatch
	}

	return sentinelWeight(m.At, u, v)
}

// round1e9 rounds x to 1e-9 absolute precision, stabilizing cost
// comparisons across platforms without affecting algorithmic correctness.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
