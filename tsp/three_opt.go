// Package tsp — 3-opt local search for symmetric tours.
//
// ThreeOpt searches the neighborhood of 3-edge exchanges on a closed tour.
//
// Policy:
//   - First-improvement (default): apply the first strictly improving move found.
//   - Best-improvement (Options.BestImprovement): scan the full neighborhood once
//     per sweep and apply only the most improving move.
//
// Neighborhood order:
//   - Options.ShuffleNeighborhood==true scans triples (i,j,k) via a randomized,
//     constraint-respecting cyclic offset seeded from rngFromSeed(opts.Seed).
//   - Otherwise a canonical deterministic order is used.
//
// Reconnection: for segments S1=T[i..j-1], S2=T[j..k-1] with the tail
// S3=T[k..n-1] and the prefix P=T[:i] both fixed, there are 7 distinct
// reconnections: both orders of S1 and S2, each forward or reversed (8
// arrangements), minus the identity. Boundary
// vertices are a=T[i−1], b=T[i], c=T[j−1], d=T[j], e=T[k−1], f=T[k], and
//
//	Δ = (a→first(X)) + (last(X)→first(Y)) + (last(Y)→f) − [(a→b)+(c→d)+(e→f)]
//
// since internal arcs within a segment are unchanged by reversal in a
// symmetric instance.
//
// Contracts & complexity mirror two_opt.go; cost is stabilized to 1e−9.
package tsp

import (
	"math"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// segKind enumerates the four segment orientations a reconnection may choose from.
type segKind uint8

const (
	segS1  segKind = iota // S1 = T[i..j-1], forward
	segS1R                // S1, reversed
	segS2                 // S2 = T[j..k-1], forward
	segS2R                // S2, reversed
)

// the seven non-identity (X,Y) reconnections, listed in a fixed scan order.
var threeOptReconnections = [7][2]segKind{
	{segS1R, segS2},
	{segS1, segS2R},
	{segS2R, segS1R},
	{segS1R, segS2R},
	{segS2, segS1R},
	{segS2R, segS1},
	{segS2, segS1},
}

// randLite is satisfied by any RNG exposing Intn(int), e.g. *rand.Rand from rngFromSeed.
type randLite interface {
	Intn(n int) int
}

// ThreeOpt returns an improved tour and its stabilized cost, using the policy
// recorded in opts.BestImprovement.
func ThreeOpt(dist matrix.Matrix, initTour []int, opts Options) ([]int, float64, error) {
	return threeOptCore(dist, initTour, opts, opts.BestImprovement)
}

// ThreeOptBest is an explicit best-improvement entrypoint, ignoring opts.BestImprovement.
func ThreeOptBest(dist matrix.Matrix, initTour []int, opts Options) ([]int, float64, error) {
	return threeOptCore(dist, initTour, opts, true)
}

// threeOptCore is the shared engine behind ThreeOpt/ThreeOptBest.
func threeOptCore(dist matrix.Matrix, initTour []int, opts Options, bestImprovement bool) ([]int, float64, error) {
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
	maxMoves := opts.TwoOptMaxIters // shared cap with 2-opt; 0 ⇒ unlimited

	var rng randLite
	if opts.ShuffleNeighborhood {
		rng = rngFromSeed(opts.Seed)
	}

	clock := newThreeOptClock(opts.TimeLimit)

	accepted := 0
	for {
		mv, found, err := threeOptScan(cur, at, n, eps, rng, bestImprovement, clock)
		if err != nil {
			return nil, 0, err
		}
		if !found {
			break // local optimum for this neighborhood/policy
		}

		cur = apply3OptSym(cur, mv.i, mv.j, mv.k, mv.x, mv.y)
		cost += mv.delta
		accepted++

		if maxMoves > 0 && accepted >= maxMoves {
			break
		}
	}

	_ = CanonicalizeOrientationInPlace(cur)
	if verr := ValidateTour(cur, n, opts.StartVertex); verr != nil {
		return nil, 0, verr
	}

	return cur, round1e9(cost), nil
}

// threeOptMove names a single candidate reconnection and its cost delta.
type threeOptMove struct {
	i, j, k int
	x, y    segKind
	delta   float64
}

// threeOptScan performs one sweep over triples (i,j,k), returning either the
// first strictly improving move (first-improvement policy) or the best move
// seen across the whole sweep (best-improvement policy).
func threeOptScan(cur []int, at weightLookup, n int, eps float64, rng randLite, bestImprovement bool, clock *threeOptClock) (threeOptMove, bool, error) {
	offI := 0
	if rng != nil && n > 3 {
		offI = rng.Intn(maxi(1, n-3))
	}

	var (
		found     bool
		best      threeOptMove
		bestDelta = 0.0
	)

	for ii := 0; ii < n-3; ii++ {
		i := 1 + ((ii + offI) % (n - 3))

		spanJ := (n - 2) - i
		if spanJ <= 0 {
			continue
		}
		offJ := 0
		if rng != nil {
			offJ = rng.Intn(spanJ)
		}

		for jj := 0; jj < spanJ; jj++ {
			j := i + 1 + ((jj + offJ) % spanJ)

			spanK := (n - 1) - j
			if spanK <= 0 {
				continue
			}
			offK := 0
			if rng != nil {
				offK = rng.Intn(spanK)
			}

			for kk := 0; kk < spanK; kk++ {
				k := j + 1 + ((kk + offK) % spanK)

				a, b := cur[i-1], cur[i]
				c, d := cur[j-1], cur[j]
				e, f := cur[k-1], cur[k]
				removed := at(a, b) + at(c, d) + at(e, f)

				for _, xy := range threeOptReconnections {
					if clock.tick() {
						return threeOptMove{}, false, ErrTimeLimit
					}

					xFirst, xLast := segFirstLast(xy[0], b, c, d, e)
					yFirst, yLast := segFirstLast(xy[1], b, c, d, e)

					w1, w2, w3 := at(a, xFirst), at(xLast, yFirst), at(yLast, f)
					if math.IsInf(w1, 0) || math.IsInf(w2, 0) || math.IsInf(w3, 0) {
						continue
					}
					delta := (w1 + w2 + w3) - removed
					if delta >= -eps {
						continue
					}

					if !bestImprovement {
						return threeOptMove{i: i, j: j, k: k, x: xy[0], y: xy[1], delta: delta}, true, nil
					}
					if !found || delta < bestDelta {
						found = true
						bestDelta = delta
						best = threeOptMove{i: i, j: j, k: k, x: xy[0], y: xy[1], delta: delta}
					}
				}
			}
		}
	}

	return best, found, nil
}

// segFirstLast maps a segment kind to its first/last vertex endpoints, given
// boundary markers b=T[i], c=T[j-1], d=T[j], e=T[k-1].
func segFirstLast(kind segKind, b, c, d, e int) (first, last int) {
	switch kind {
	case segS1:
		return b, c
	case segS1R:
		return c, b
	case segS2:
		return d, e
	default: // segS2R
		return e, d
	}
}

// apply3OptSym assembles out = P + X + Y + S3 and closes the cycle, where
// P=T[:i], S1=T[i:j], S2=T[j:k], S3=T[k:n].
func apply3OptSym(tour []int, i, j, k int, x, y segKind) []int {
	n := len(tour) - 1
	p, s1, s2, s3 := tour[:i], tour[i:j], tour[j:k], tour[k:n]

	out := make([]int, 0, n+1)
	out = append(out, p...)
	out = emitSegment(out, s1, s2, x)
	out = emitSegment(out, s1, s2, y)
	out = append(out, s3...)
	out = append(out, tour[0])

	return out
}

// emitSegment appends s1 or s2 to out, forward or reversed, according to kind.
func emitSegment(out []int, s1, s2 []int, kind segKind) []int {
	var seg []int
	reverse := false
	switch kind {
	case segS1:
		seg = s1
	case segS1R:
		seg, reverse = s1, true
	case segS2:
		seg = s2
	default: // segS2R
		seg, reverse = s2, true
	}

	if !reverse {
		return append(out, seg...)
	}
	for t := len(seg) - 1; t >= 0; t-- {
		out = append(out, seg[t])
	}

	return out
}

// maxi returns the larger of two ints.
func maxi(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// threeOptClock mirrors twoOptClock: a sparse wall-clock probe so deadline
// checks stay cheap relative to the O(n³) candidate enumeration.
type threeOptClock struct {
	enabled  bool
	deadline time.Time
	step     int
}

func newThreeOptClock(limit time.Duration) *threeOptClock {
	c := &threeOptClock{}
	if compatibleTimeBudget(limit) && limit > 0 {
		c.enabled = true
		c.deadline = time.Now().Add(limit)
	}

	return c
}

func (c *threeOptClock) tick() bool {
	c.step++
	if !c.enabled || (c.step&4095) != 0 {
		return false
	}

	return time.Now().After(c.deadline)
}
