// Package tsp — Held-Karp exact solver (DP, O(n^2 * 2^n)).
//
// TSPExact finds a provably optimal Hamiltonian cycle via the classic
// Held-Karp subset dynamic program. It is deliberately lean: shape,
// symmetry, and start-vertex validation already happened in the dispatcher
// before this runs.
//
// Contracts assumed already enforced by the caller:
//   - dist is square n x n, n >= 2, zero diagonal, no NaN, no negative edge.
//   - +Inf marks "no direct edge"; if no Hamiltonian cycle exists the result
//     is ErrIncompleteGraph.
//   - opts.StartVertex is in [0,n).
//
// Behavior: MaxExactN caps n to bound memory, and a soft wall-clock budget
// (opts.TimeLimit) is checked at a fixed cadence without disturbing the hot
// loop. The final cost passes through round1e9 before it's returned.
//
// Complexity: O(n^2 * 2^n) time, O(n * 2^n) memory for the DP and parent
// tables.
package tsp

import (
	"errors"
	"math"
	"math/bits"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// MaxExactN bounds the problem size the Held-Karp solver will attempt.
const MaxExactN = 20

// ErrSizeTooLarge reports that n exceeds MaxExactN.
var ErrSizeTooLarge = errors.New("tsp: exact solver supports at most 20 vertices")

// exactClock throttles wall-clock checks in the DP's hottest loop to a fixed
// cadence, so the deadline probe never dominates actual DP work.
type exactClock struct {
	deadline time.Time
	active   bool
	ticks    int
}

func newExactClock(limit time.Duration) *exactClock {
	if !compatibleTimeBudget(limit) || limit <= 0 {
		return &exactClock{}
	}

	return &exactClock{deadline: time.Now().Add(limit), active: true}
}

// expired increments the tick counter and samples the wall clock every 1024
// calls, trading a small amount of overrun for negligible overhead.
func (c *exactClock) expired() bool {
	c.ticks++
	if !c.active || c.ticks&1023 != 0 {
		return false
	}

	return time.Now().After(c.deadline)
}

// groupMasksBySize buckets every subset mask that contains startBit by its
// population count, so the DP's size-2..n sweep can iterate each bucket
// directly instead of re-testing popcount per mask.
func groupMasksBySize(n, startBit int) [][]int {
	totalMasks := 1 << uint(n)
	bySize := make([][]int, n+1)
	for mask := 0; mask < totalMasks; mask++ {
		if mask&startBit == 0 {
			continue
		}
		if size := bits.OnesCount(uint(mask)); size >= 1 && size <= n {
			bySize[size] = append(bySize[size], mask)
		}
	}

	return bySize
}

// heldKarpTables holds the DP's two flat arrays: dp[mask*n+j] is the minimum
// cost of a path that visits exactly the vertices in mask and ends at j
// (mask always includes start); parent[mask*n+j] is the predecessor that
// achieved it.
type heldKarpTables struct {
	n      int
	dp     []float64
	parent []int
}

func newHeldKarpTables(n, start int) *heldKarpTables {
	totalMasks := 1 << uint(n)
	t := &heldKarpTables{
		n:      n,
		dp:     make([]float64, totalMasks*n),
		parent: make([]int, totalMasks*n),
	}
	for i := range t.dp {
		t.dp[i] = math.Inf(1)
		t.parent[i] = -1
	}

	baseMask := 1 << uint(start)
	t.dp[baseMask*n+start] = 0

	return t
}

func (t *heldKarpTables) at(mask, j int) float64     { return t.dp[mask*t.n+j] }
func (t *heldKarpTables) set(mask, j int, cost float64, from int) {
	t.dp[mask*t.n+j] = cost
	t.parent[mask*t.n+j] = from
}

// relax fills dp[mask,j] from every predecessor state (mask\{j}, k) reachable
// by a finite edge k->j, keeping the cheapest one.
func (t *heldKarpTables) relax(mask, j int, w []float64) {
	jbit := 1 << uint(j)
	prevMask := mask ^ jbit

	best, argBest := math.Inf(1), -1
	for k := 0; k < t.n; k++ {
		if prevMask&(1<<uint(k)) == 0 {
			continue
		}
		base := t.at(prevMask, k)
		if math.IsInf(base, 1) {
			continue
		}
		edge := w[k*t.n+j]
		if math.IsInf(edge, 0) {
			continue
		}
		if cand := base + edge; cand < best {
			best, argBest = cand, k
		}
	}
	if argBest >= 0 {
		t.set(mask, j, best, argBest)
	}
}

// closeTour picks the cheapest vertex to return to start from, given the
// full-mask row, and reports whether a Hamiltonian cycle exists at all.
func (t *heldKarpTables) closeTour(allMask, start int, w []float64) (cost float64, last int, ok bool) {
	cost, last = math.Inf(1), -1
	for j := 0; j < t.n; j++ {
		if j == start {
			continue
		}
		base := t.at(allMask, j)
		if math.IsInf(base, 1) {
			continue
		}
		edge := w[j*t.n+start]
		if math.IsInf(edge, 0) {
			continue
		}
		if total := base + edge; total < cost {
			cost, last = total, j
		}
	}

	return cost, last, last >= 0 && !math.IsInf(cost, 1)
}

// reconstruct walks the parent table backward from (allMask, last) to
// recover the optimal visiting order, producing a closed tour of length n+1.
func (t *heldKarpTables) reconstruct(allMask, last, start int) []int {
	tour := make([]int, t.n+1)
	tour[0], tour[t.n] = start, start

	mask, cur := allMask, last
	for idx := t.n - 1; idx >= 1; idx-- {
		tour[idx] = cur
		prev := t.parent[mask*t.n+cur]
		mask ^= 1 << uint(cur)
		cur = prev
	}

	return tour
}

// TSPExact runs the Held-Karp DP over dist.
func TSPExact(dist matrix.Matrix, opts Options) (TSResult, error) {
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
	if n > MaxExactN {
		return TSResult{}, ErrSizeTooLarge
	}
	if _, err := newSubsetMask(n); err != nil {
		return TSResult{}, err
	}
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	weights, err := prefetchWeights(dist, n)
	if err != nil {
		return TSResult{}, err
	}
	w := weights.w

	start := opts.StartVertex
	startBit := 1 << uint(start)
	tables := newHeldKarpTables(n, start)
	clock := newExactClock(opts.TimeLimit)

	for size, masks := range groupMasksBySize(n, startBit) {
		if size < 2 {
			continue
		}
		for _, mask := range masks {
			for j := 0; j < n; j++ {
				if j == start || mask&(1<<uint(j)) == 0 {
					continue
				}
				tables.relax(mask, j, w)
				if clock.expired() {
					return TSResult{}, ErrTimeLimit
				}
			}
		}
	}

	allMask := (1 << uint(n)) - 1
	bestCost, last, ok := tables.closeTour(allMask, start, w)
	if !ok {
		return TSResult{}, ErrIncompleteGraph
	}

	tour := tables.reconstruct(allMask, last, start)
	_ = CanonicalizeOrientationInPlace(tour)
	if verr := ValidateTour(tour, n, start); verr != nil {
		return TSResult{}, verr
	}

	return TSResult{Tour: tour, Cost: round1e9(bestCost)}, nil
}
