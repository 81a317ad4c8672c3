// Package tsp - simulated annealing over the 2-opt neighborhood.
//
// TSPSimulatedAnnealing starts from a nearest-neighbour seed tour and
// repeatedly proposes a random 2-opt move (reverse a random segment),
// accepting improving moves unconditionally and worsening moves with
// probability exp(-delta/temperature). Temperature cools geometrically by
// opts.SACoolingRate every opts.SAEpochLength proposals, down to
// opts.SAMinTemp.
//
// Design mirrors two_opt.go's dense-weight-buffer and deadline-checking
// idiom, using the package RNG helpers in rng.go for determinism.
//
// Complexity: O(epochs * SAEpochLength * n) time, O(n) space.
package tsp

import (
	"math"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// TSPSimulatedAnnealing runs 2-opt-move simulated annealing from a
// nearest-neighbour seed tour and returns the best tour observed.
func TSPSimulatedAnnealing(dist matrix.Matrix, opts Options) (TSResult, error) {
	w, n, err := prefetchSquareWeights(dist)
	if err != nil {
		return TSResult{}, err
	}
	if n < 3 {
		return TSResult{}, ErrDimensionMismatch
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	seed, serr := TSPNearestNeighbor(dist, opts)
	if serr != nil {
		return TSResult{}, serr
	}
	cur := CopyTour(seed.Tour)
	curCost := seed.Cost

	best := CopyTour(cur)
	bestCost := curCost

	coolingRate := opts.SACoolingRate
	if coolingRate <= 0 {
		coolingRate = DefaultSACoolingRate
	}
	epochLen := opts.SAEpochLength
	if epochLen <= 0 {
		epochLen = DefaultSAEpochLength
	}
	minTemp := opts.SAMinTemp
	if minTemp <= 0 {
		minTemp = DefaultSAMinTemp
	}
	temp := opts.SAInitialTemp
	if temp <= 0 {
		temp = curCost / 10
		if temp < SAMinInitialTemp {
			temp = SAMinInitialTemp
		}
	}

	rng := rngFromSeed(opts.Seed)

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

	for temp > minTemp {
		for e := 0; e < epochLen; e++ {
			if deadlineHit() {
				_ = CanonicalizeOrientationInPlace(best)
				return TSResult{Tour: best, Cost: round1e9(bestCost)}, nil
			}

			// Propose a random reversal of segment [i..k], 1 <= i < k <= n-1.
			i := 1 + rng.Intn(n-2)
			k := i + 1 + rng.Intn(n-1-i)

			a, b, c, d := cur[i-1], cur[i], cur[k], cur[k+1]
			wab, wcd := at(a, b), at(c, d)
			wac, wbd := at(a, c), at(b, d)
			if math.IsInf(wac, 0) || math.IsInf(wbd, 0) {
				continue
			}
			delta := (wac + wbd) - (wab + wcd)

			accept := delta < -opts.Eps
			if !accept && temp > 0 {
				accept = rng.Float64() < math.Exp(-delta/temp)
			}
			if accept {
				if err = reverseArcInPlace(cur, i, k); err != nil {
					return TSResult{}, err
				}
				curCost = round1e9(curCost + delta)
				if curCost < bestCost {
					bestCost = curCost
					best = CopyTour(cur)
				}
			}
		}
		temp *= coolingRate
	}

	_ = CanonicalizeOrientationInPlace(best)
	if verr := ValidateTour(best, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}
	return TSResult{Tour: best, Cost: round1e9(bestCost)}, nil
}
