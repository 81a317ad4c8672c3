// Package tsp - validation helpers shared by every solver in the package.
//
// Three concerns live here:
//  1. Options sanity — internal consistency of the knobs a caller picked.
//  2. Distance-matrix shape/value validation (square, diagonal, sign, ∞, symmetry).
//  3. Auxiliary input validation (vertex IDs, start vertex range).
//
// None of these functions log, panic on bad input, or wrap errors with
// fmt.Errorf — a sentinel from types.go always exists for the failure mode.
package tsp

import (
	"math"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// symTol bounds the structural tolerance used for symmetry/diagonal checks.
// It is intentionally distinct from Options.Eps, which governs what counts
// as an "improving" local-search move rather than matrix well-formedness.
const symTol = 1e-12

// validateAll runs the full precondition chain for a solve call — Options,
// then the distance matrix, then the start vertex, then (optionally) vertex
// IDs — and returns the matrix order n once every stage passes.
//
// Complexity: O(n²) time, plus O(n) extra space when ids != nil.
func validateAll(dist matrix.Matrix, ids []string, opts Options) (int, error) {
	if err := validateOptionsStandalone(opts); err != nil {
		return 0, err
	}

	n, err := validateDistMatrix(dist, true, opts.RunMetricClosure, symTol)
	if err != nil {
		return 0, err
	}

	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return 0, err
	}

	if ids != nil {
		if err := validateIDs(ids, n); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// validateOptionsStandalone checks internal consistency of Options without
// touching any matrix or tour.
//
// Complexity: O(1).
func validateOptionsStandalone(opts Options) error {
	switch {
	case opts.TimeLimit < 0:
		// Negative durations are undefined for a wall-clock budget.
		return ErrDimensionMismatch
	case opts.Eps < 0:
		// A negative epsilon would invert the Δ<−eps acceptance rule.
		return ErrDimensionMismatch
	case opts.TwoOptMaxIters < 0:
		// 0 means unlimited; negative has no meaning.
		return ErrDimensionMismatch
	case opts.ACORho < 0 || opts.ACORho > 1:
		return ErrDimensionMismatch
	case opts.SACoolingRate < 0 || opts.SACoolingRate >= 1:
		return ErrDimensionMismatch
	case opts.GAMutationRate < 0 || opts.GAMutationRate > 1:
		return ErrDimensionMismatch
	}

	if !knownAlgorithm(opts.Algo) {
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// knownAlgorithm reports whether algo names one of the dispatcher's routes.
func knownAlgorithm(algo Algorithm) bool {
	switch algo {
	case Christofides, ExactHeldKarp, TwoOptOnly, ThreeOptOnly, BranchAndBound,
		ExhaustiveSearch, ExhaustiveSearchPruned, NearestNeighborOnly,
		CheapestInsertionOnly, NearestInsertionOnly, SimulatedAnnealingOnly,
		AntColonyOnly, GeneticAlgorithmOnly:
		return true
	default:
		return false
	}
}

// validateStartVertex verifies that start∈[0..n-1].
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}

	return nil
}

// validateIDs enforces len(ids)==n, non-empty strings, and uniqueness.
//
// Complexity: O(n) time and O(n) extra space.
func validateIDs(ids []string, n int) error {
	if len(ids) != n {
		return ErrDimensionMismatch
	}

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		if id == "" {
			return ErrDimensionMismatch
		}
		if _, dup := seen[id]; dup {
			return ErrDimensionMismatch
		}
		seen[id] = struct{}{}
	}

	return nil
}

// validateDistMatrix performs full matrix validation:
//   - non-nil, square, n>=2,
//   - diagonal ≈ 0 (|a_ii| ≤ tol), finite,
//   - no negative off-diagonal distances,
//   - if !allowInf: reject +Inf/−Inf off-diagonal,
//   - if symmetric==true: |a_ij − a_ji| ≤ tol,
//   - NaN anywhere is invalid.
//
// Returns n (matrix order) on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix, symmetric bool, allowInf bool, tol float64) (int, error) {
	if dist == nil {
		return 0, ErrDimensionMismatch
	}

	nr, nc := dist.Rows(), dist.Cols()
	if nr != nc || nr <= 0 {
		return 0, ErrNonSquare
	}
	if nr == 1 {
		// n==1 is well-formed geometrically but trivial; every solver here requires n>=2.
		return 0, ErrDimensionMismatch
	}
	n := nr

	for i := 0; i < n; i++ {
		aii, err := dist.At(i, i)
		if err != nil || math.IsNaN(aii) || math.IsInf(aii, 0) {
			return 0, ErrDimensionMismatch
		}
		if absF(aii) > tol {
			return 0, ErrNonZeroDiagonal
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			aij, err := dist.At(i, j)
			if err != nil || math.IsNaN(aij) {
				return 0, ErrDimensionMismatch
			}
			if aij < 0 {
				return 0, ErrNegativeWeight
			}
			if math.IsInf(aij, 0) && !allowInf {
				return 0, ErrIncompleteGraph
			}
		}
	}

	if symmetric {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				aij, err := dist.At(i, j)
				if err != nil {
					return 0, ErrDimensionMismatch
				}
				aji, err := dist.At(j, i)
				if err != nil {
					return 0, ErrDimensionMismatch
				}
				if absF(aij-aji) > tol {
					return 0, ErrAsymmetry
				}
			}
		}
	}

	return n, nil
}

// absF returns the absolute value of x without pulling in math.Abs's
// float64-only API contract elsewhere in this file.
func absF(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

// compatibleTimeBudget reports whether the remaining time budget is usable.
// Policy: zero means "unlimited".
//
// Complexity: O(1).
func compatibleTimeBudget(tl time.Duration) bool {
	if tl == 0 {
		return true
	}

	return tl > 0
}
