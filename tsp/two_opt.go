// Package tsp - 2-opt local search engine for symmetric tours.
//
// TwoOpt runs deterministic first-improvement 2-opt starting from an initial
// closed tour. For boundary vertices a=T[i-1], b=T[i], c=T[k], d=T[k+1], the
// classic move reverses the segment [i..k] and changes cost by:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// A move is accepted only when Δ < −eps (strict improvement under tolerance).
//
// Design:
//   - Deterministic scanning order; no RNG (the seed is reserved for other solvers).
//   - Strict sentinel errors only (see types.go); never fmt.Errorf in hot paths.
//   - O(1) per candidate check; O(k−i) only on an accepted move (segment reversal).
//   - Soft wall-clock budget via compatibleTimeBudget plus periodic deadline checks.
//   - Final cost is stabilized to 1e−9 via round1e9.
//
// Contracts:
//   - dist is n×n and already validated by the dispatcher (validateAll ran upstream).
//   - initTour is a closed Hamiltonian cycle: len==n+1, tour[0]==tour[n]==opts.StartVertex.
//
// Complexity:
//   - One sweep: O(n²) candidate checks; first-improvement restarts the sweep
//     after every accepted move.
//   - Each accepted move costs O(n) worst case (segment reversal).
//   - Overall: O(iter·n²) typical, O(n) extra space only while improving.
package tsp

import (
	"math"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// TwoOpt improves initTour with deterministic first-improvement 2-opt moves
// and returns the resulting tour together with its stabilized cost.
func TwoOpt(dist matrix.Matrix, initTour []int, opts Options) ([]int, float64, error) {
	n, err := tourSizeOrErr(initTour)
	if err != nil {
		return nil, 0, err
	}
	if err := ValidateTour(initTour, n, opts.StartVertex); err != nil {
		return nil, 0, err
	}

	weights, err := prefetchWeights(dist, n)
	if err != nil {
		return nil, 0, err
	}
	at := weights.at

	cur := CopyTour(initTour)
	cost, err := TourCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	eps := opts.Eps
	if eps < 0 {
		eps = 0 // validateOptionsStandalone already rejects this; clamp defensively anyway
	}
	maxIters := opts.TwoOptMaxIters // 0 ⇒ unlimited

	watch := newTwoOptClock(opts.TimeLimit)

	accepted := 0
	for {
		moved, err := twoOptSweep(cur, at, n, eps, watch)
		if err != nil {
			return nil, 0, err
		}
		if moved.applied {
			if rerr := reverseArcInPlace(cur, moved.i, moved.k); rerr != nil {
				return nil, 0, rerr
			}
			cost += moved.delta
			accepted++
			if maxIters > 0 && accepted >= maxIters {
				break
			}
			continue
		}

		break // local optimum under this neighborhood
	}

	_ = CanonicalizeOrientationInPlace(cur)
	if verr := ValidateTour(cur, n, opts.StartVertex); verr != nil {
		return nil, 0, verr
	}

	return cur, round1e9(cost), nil
}

// twoOptMove describes a single accepted (or not-found) candidate move.
type twoOptMove struct {
	applied bool
	i, k    int
	delta   float64
}

// twoOptSweep scans candidate pairs 1≤i<k≤n−1 in canonical order and returns
// the first strictly improving move found, or an empty (not applied) move at
// a local optimum.
func twoOptSweep(cur []int, at weightLookup, n int, eps float64, watch *twoOptClock) (twoOptMove, error) {
	for i := 1; i <= n-2; i++ {
		a, b := cur[i-1], cur[i]
		for k := i + 1; k <= n-1; k++ {
			c, d := cur[k], cur[k+1]

			wac, wbd := at(a, c), at(b, d)
			if math.IsInf(wac, 0) || math.IsInf(wbd, 0) {
				continue
			}
			delta := (wac + wbd) - (at(a, b) + at(c, d))
			if delta < -eps {
				return twoOptMove{applied: true, i: i, k: k, delta: delta}, nil
			}
			if watch.tick() {
				return twoOptMove{}, ErrTimeLimit
			}
		}
	}

	return twoOptMove{}, nil
}

// weightLookup is a zero-allocation accessor into a prefetched dense weight buffer.
type weightLookup func(u, v int) float64

// denseWeights holds a row-major n×n buffer prefetched from a matrix.Matrix so
// hot loops avoid repeated interface dispatch.
type denseWeights struct {
	n int
	w []float64
}

func (d denseWeights) at(u, v int) float64 { return d.w[u*d.n+v] }

// prefetchWeights copies dist into a dense buffer, enforcing the shared
// sentinel semantics: NaN is rejected, negatives are rejected, +Inf passes
// through as "no edge" for candidate moves to reject on their own.
func prefetchWeights(dist matrix.Matrix, n int) (denseWeights, error) {
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, err := dist.At(i, j)
			if err != nil || math.IsNaN(x) {
				return denseWeights{}, ErrDimensionMismatch
			}
			if x < 0 {
				return denseWeights{}, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	return denseWeights{n: n, w: w}, nil
}

// tourSizeOrErr extracts n from a closed tour slice, rejecting degenerate shapes.
func tourSizeOrErr(tour []int) (int, error) {
	if tour == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	n := len(tour) - 1
	if n < 2 {
		return 0, ErrDimensionMismatch
	}

	return n, nil
}

// twoOptClock throttles wall-clock checks to a fixed cadence so the overhead
// stays negligible relative to the O(n²) sweep it is embedded in.
type twoOptClock struct {
	enabled  bool
	deadline time.Time
	step     int
}

func newTwoOptClock(limit time.Duration) *twoOptClock {
	w := &twoOptClock{}
	if compatibleTimeBudget(limit) && limit > 0 {
		w.enabled = true
		w.deadline = time.Now().Add(limit)
	}

	return w
}

// tick advances the internal counter and reports whether the deadline has
// passed, but only probes the wall clock every 2048 calls.
func (w *twoOptClock) tick() bool {
	w.step++
	if !w.enabled || (w.step&2047) != 0 {
		return false
	}

	return time.Now().After(w.deadline)
}
