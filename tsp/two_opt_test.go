// Package tsp_test exercises 2-opt local search through the public API:
// correctness on a convex instance, epsilon monotonicity, safe handling of
// +Inf candidates, determinism, and soft time budgets.
package tsp_test

import (
	"errors"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/tsplab/workbench/matrix"
	"github.com/tsplab/workbench/tsp"
)

// run2opt configures Options for TwoOptOnly and executes SolveWithMatrix.
func run2opt(m matrix.Matrix, eps float64, seed int64, start int, timeLimit time.Duration) (tsp.TSResult, error) {
	opt := tsp.DefaultOptions()
	opt.Algo = tsp.TwoOptOnly
	opt.EnableLocalSearch = true
	opt.Eps = eps
	opt.Seed = seed
	opt.StartVertex = start
	opt.TimeLimit = timeLimit

	return tsp.SolveWithMatrix(m, nil, opt)
}

// sameCycleEitherDir reports whether two tours describe the same cycle once
// both are rotated to start at 0, allowing a reversed winding direction.
func sameCycleEitherDir(a, b []int) bool {
	a = normalizeOpenCycle(a)
	b = normalizeOpenCycle(b)

	if len(a) == 0 || len(a) != len(b) || a[0] != 0 || b[0] != 0 {
		return false
	}
	if slices.Equal(a, b) {
		return true
	}

	n := len(a)
	rev := make([]int, n)
	rev[0] = 0
	for i := 1; i < n; i++ {
		rev[i] = a[n-i]
	}

	return slices.Equal(rev, b)
}

// TestTwoOpt_KeepsConvexHexagonPerimeter checks that 2-opt, started by the
// dispatcher from the identity ring (already the perimeter), returns the
// perimeter tour of a convex hexagon in either direction.
func TestTwoOpt_KeepsConvexHexagonPerimeter(t *testing.T) {
	const n = 6
	pts := [][2]float64{
		{1, 0}, {0.5, math.Sqrt(3) / 2}, {-0.5, math.Sqrt(3) / 2},
		{-1, 0}, {-0.5, -math.Sqrt(3) / 2}, {0.5, -math.Sqrt(3) / 2},
	}
	m := euclid(pts)
	want := []int{0, 1, 2, 3, 4, 5}

	Repeat(t, 3, func(t *testing.T) {
		res, err := run2opt(m, epsTiny, seedDet, startV, 0)
		if err != nil {
			t.Fatalf("SolveWithMatrix(2-opt) error: %v", err)
		}
		if err = tsp.ValidateTour(res.Tour, n, 0); err != nil {
			t.Fatalf("returned tour invalid: %v", err)
		}
		rot := rotateToStart0(t, res.Tour)
		if !sameCycleEitherDir(rot, want) {
			t.Fatalf("unexpected tour:\n got:  %v\n want: %v (either direction, start=0)", rot, want)
		}
		if round1e9(res.Cost) <= 0 {
			t.Fatalf("non-positive cost: %.12f", res.Cost)
		}
	})
}

// TestTwoOpt_EpsMonotonicity checks that raising the acceptance threshold can
// never produce a strictly cheaper tour than a looser threshold would.
func TestTwoOpt_EpsMonotonicity(t *testing.T) {
	pts := [][2]float64{
		{0, 0}, {1, 0}, {2, 0.05}, {3, 0}, {4, 0},
	}
	m := euclid(pts)

	lo, err := run2opt(m, epsTiny, seedDet, startV, 0)
	if err != nil {
		t.Fatalf("low-eps run failed: %v", err)
	}
	hi, err := run2opt(m, 1e-1, seedDet, startV, 0)
	if err != nil {
		t.Fatalf("high-eps run failed: %v", err)
	}

	if round1e9(hi.Cost) < round1e9(lo.Cost) {
		t.Fatalf("eps monotonicity violated: high-eps cost %.12f < low-eps cost %.12f", hi.Cost, lo.Cost)
	}
	if err = tsp.ValidateTour(lo.Tour, len(pts), 0); err != nil {
		t.Fatalf("low-eps tour invalid: %v", err)
	}
	if err = tsp.ValidateTour(hi.Tour, len(pts), 0); err != nil {
		t.Fatalf("high-eps tour invalid: %v", err)
	}
	_ = rotateToStart0(t, lo.Tour)
	_ = rotateToStart0(t, hi.Tour)
}

// TestTwoOpt_Dispatcher_RejectsAsymmetry checks that an asymmetric matrix
// never reaches the 2-opt engine: the dispatcher rejects it with
// ErrAsymmetry first.
func TestTwoOpt_Dispatcher_RejectsAsymmetry(t *testing.T) {
	pts := [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	m := euclidAsym(pts, 0.2)

	_, err := run2opt(m, epsTiny, seedDet, startV, 0)
	if !errors.Is(err, tsp.ErrAsymmetry) {
		t.Fatalf("want ErrAsymmetry, got %v", err)
	}
}

// TestTwoOpt_RejectsInfCandidates_NoError checks that a +Inf candidate edge
// either gets rejected up front or is simply never chosen — no panics, no
// silent "improvement" through a non-finite chord.
func TestTwoOpt_RejectsInfCandidates_NoError(t *testing.T) {
	inf := math.Inf(1)

	a := [][]float64{
		{0, 1, 1.04, 9, 1},
		{1, 0, 1, 1.0, 9},
		{1.04, 1, 0, 1.05, 9},
		{9, 1.0, 1.05, 0, 1},
		{1, 9, 9, 1, 0},
	}
	a[0][2], a[2][0] = inf, inf // block an improving move with a non-finite chord
	m := testDense{a: a}

	res, err := run2opt(m, epsTiny, seedDet, startV, 0)
	if err != nil {
		if !errors.Is(err, tsp.ErrIncompleteGraph) && !errors.Is(err, tsp.ErrDimensionMismatch) {
			t.Fatalf("unexpected error: %v", err)
		}

		return
	}

	after, err := tsp.TourCost(m, res.Tour)
	if err != nil {
		t.Fatalf("TourCost failed: %v", err)
	}
	if round1e9(after) != round1e9(res.Cost) {
		t.Fatalf("cost changed unexpectedly in presence of +Inf candidate: base=%.12f after=%.12f",
			res.Cost, after)
	}
}

// TestTwoOpt_Determinism_Repeat5 checks that five identical runs produce an
// identical tour and cost.
func TestTwoOpt_Determinism_Repeat5(t *testing.T) {
	pts := [][2]float64{
		{0, 0}, {1, 0}, {2, 0.05}, {3, 0}, {4, 0}, {5, 0.02},
	}
	m := euclid(pts)

	var baseTour []int
	var baseCost float64

	Repeat(t, 5, func(t *testing.T) {
		res, err := run2opt(m, epsTiny, seedDet, startV, 0)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		if baseTour == nil {
			baseTour = append([]int(nil), normalizeOpenCycle(res.Tour)...)
			baseCost = res.Cost

			return
		}
		if !slices.Equal(normalizeOpenCycle(res.Tour), baseTour) || round1e9(res.Cost) != round1e9(baseCost) {
			t.Fatalf("nondeterministic result.\nfirst tour: %v (%.12f)\n this tour: %v (%.12f)",
				baseTour, baseCost, res.Tour, res.Cost)
		}
	})
}

// TestTwoOpt_TimeLimit_SoftBudget checks that a tiny time budget on a
// moderately sized instance either completes or reports ErrTimeLimit — never
// a panic or an unrelated error.
func TestTwoOpt_TimeLimit_SoftBudget(t *testing.T) {
	pts := make([][2]float64, radiusN120)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(radiusN120)
		pts[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}
	m := euclid(pts)

	_, err := run2opt(m, epsTiny, seedDet, startV, timeTiny)
	if err != nil && !errors.Is(err, tsp.ErrTimeLimit) {
		t.Fatalf("unexpected error under tiny time budget: %v", err)
	}
}
