// Package tsp — exact search via Branch & Bound with admissible pruning.
//
// TSPBranchAndBound walks the space of Hamiltonian cycles depth-first,
// branching deterministically and pruning any partial path whose lower
// bound already meets or exceeds the best complete tour found so far.
//
// Pipeline:
//  1. Prefetch the distance matrix into a dense buffer (removes interface
//     dispatch from the hot loop) and validate sign/NaN.
//  2. Seed an initial upper bound (UB) — Christofides when it succeeds,
//     otherwise a trivial ring optionally tightened by 2-opt.
//     A tighter starting UB means more nodes get pruned before expansion.
//  3. Optionally sharpen the root bound with the Held–Karp 1-tree relaxation
//     (see bound_onetree.go) before the DFS proper begins.
//  4. DFS with a degree-1 relaxation lower bound:
//     - unfixed outgoing edges contribute at least minOut[v] each,
//     - unfixed incoming edges contribute at least minIn[v] each,
//     - LB = costSoFar + max(Σ minOut, Σ minIn), which is admissible.
//     A branch is cut once LB ≥ incumbent − eps.
//  5. Branching order at each node tries neighbors in ascending edge weight
//     (index as tiebreak) so the incumbent tightens quickly.
//  6. The wall clock is sampled only every 4096 node visits, keeping the
//     check's overhead negligible relative to the search itself.
//
// Complexity: worst case exponential in n; per node O(n) for the bound plus
// O(1) bookkeeping. Memory is O(n) for the path/visited set and O(n²) for
// the precomputed minima and neighbor orders.
package tsp

import (
	"math"
	"sort"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// searchEngine owns every piece of mutable state a single Branch & Bound run
// touches. Grouping it behind one struct (rather than a nest of closures over
// the calling function's locals) keeps each stage testable in isolation.
type searchEngine struct {
	n        int
	start    int
	useBound bool
	eps      float64

	useDeadline bool
	deadline    time.Time
	ticks       int

	weights []float64 // row-major n×n, weights[u*n+v]

	minOut []float64
	minIn  []float64
	order  [][]int // order[u] = neighbors of u sorted by ascending weight

	onPath []bool
	path   []int

	incumbent     []int
	incumbentCost float64
	hasIncumbent  bool
}

func (e *searchEngine) weight(u, v int) float64 { return e.weights[u*e.n+v] }

// deadlineExceeded reports an expired wall-clock budget, sampled sparsely.
func (e *searchEngine) deadlineExceeded() bool {
	e.ticks++
	if !e.useDeadline || e.ticks&4095 != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// loadMatrix flattens dist into the dense weight buffer, rejecting NaN and
// negative entries; +Inf survives as "no edge".
func (e *searchEngine) loadMatrix(dist matrix.Matrix) error {
	e.weights = make([]float64, e.n*e.n)
	for u := 0; u < e.n; u++ {
		for v := 0; v < e.n; v++ {
			x, err := dist.At(u, v)
			if err != nil || math.IsNaN(x) {
				return ErrDimensionMismatch
			}
			if x < 0 {
				return ErrNegativeWeight
			}
			e.weights[u*e.n+v] = x
		}
	}

	return nil
}

// computeMinima fills minOut/minIn for every vertex, excluding self-loops.
// A vertex lacking any finite outgoing or incoming edge makes the instance
// infeasible, since no Hamiltonian cycle can route through it.
func (e *searchEngine) computeMinima() error {
	e.minOut = make([]float64, e.n)
	e.minIn = make([]float64, e.n)

	for v := 0; v < e.n; v++ {
		minOut, minIn := math.Inf(1), math.Inf(1)
		for u := 0; u < e.n; u++ {
			if u == v {
				continue
			}
			if w := e.weight(v, u); w < minOut {
				minOut = w
			}
			if w := e.weight(u, v); w < minIn {
				minIn = w
			}
		}
		if math.IsInf(minOut, 0) || math.IsInf(minIn, 0) {
			return ErrIncompleteGraph
		}
		e.minOut[v] = minOut
		e.minIn[v] = minIn
	}

	return nil
}

// byAscendingWeight sorts a vertex's neighbor row by edge weight, index as tiebreak.
type byAscendingWeight struct {
	from int
	row  []int
	e    *searchEngine
}

func (s byAscendingWeight) Len() int      { return len(s.row) }
func (s byAscendingWeight) Swap(i, j int) { s.row[i], s.row[j] = s.row[j], s.row[i] }
func (s byAscendingWeight) Less(i, j int) bool {
	vi, vj := s.row[i], s.row[j]
	wi, wj := s.e.weight(s.from, vi), s.e.weight(s.from, vj)
	if wi == wj {
		return vi < vj
	}

	return wi < wj
}

// buildNeighborOrder precomputes, for every vertex, its peers sorted by
// ascending outgoing weight — deterministic branching order that tightens
// the incumbent as fast as possible.
func (e *searchEngine) buildNeighborOrder() {
	e.order = make([][]int, e.n)
	for u := 0; u < e.n; u++ {
		row := make([]int, 0, e.n-1)
		for v := 0; v < e.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		sort.Sort(byAscendingWeight{from: u, row: row, e: e})
		e.order[u] = row
	}
}

// acceptIncumbent overwrites the current best tour/cost.
func (e *searchEngine) acceptIncumbent(tour []int, cost float64) {
	copy(e.incumbent, tour)
	e.incumbentCost = round1e9(cost)
	e.hasIncumbent = true
}

// seedIncumbent primes the search with a starting upper bound: Christofides
// (with its own fallbacks) first, then a trivial ring possibly polished by
// 2-opt if Christofides didn't produce anything usable.
func (e *searchEngine) seedIncumbent(dist matrix.Matrix, opts Options) {
	e.incumbentCost = math.Inf(1)
	e.incumbent = make([]int, e.n+1)

	if res, err := TSPApprox(dist, opts); err == nil {
		e.acceptIncumbent(res.Tour, res.Cost)
		return
	}

	ring, err := trivialRing(e.n, e.start)
	if err != nil {
		return
	}
	cost, err := TourCost(dist, ring)
	if err != nil {
		return
	}
	e.acceptIncumbent(ring, cost)

	if opts.EnableLocalSearch && e.n >= 4 {
		if polished, polishedCost, err := TwoOpt(dist, ring, opts); err == nil {
			e.acceptIncumbent(polished, polishedCost)
		}
	}
}

// lowerBound is the degree-1 relaxation: in any Hamiltonian cycle, every
// vertex has out-degree 1 and in-degree 1, so every edge not yet fixed by
// the partial path still costs at least minOut[v] (outgoing) or minIn[v]
// (incoming). Taking the max of the two aggregate sums keeps the bound
// admissible while using whichever side is currently tighter.
func (e *searchEngine) lowerBound(costSoFar float64, last int) float64 {
	if !e.useBound {
		return costSoFar
	}

	var sumOut, sumIn float64
	for v := 0; v < e.n; v++ {
		switch {
		case !e.onPath[v]:
			sumOut += e.minOut[v]
			sumIn += e.minIn[v]
		case v == last:
			sumOut += e.minOut[v]
		case v == e.start:
			sumIn += e.minIn[v]
		}
	}

	extra := sumOut
	if sumIn > extra {
		extra = sumIn
	}

	return costSoFar + extra
}

// explore runs the depth-first search proper: prune by bound, close the
// cycle at full depth, otherwise branch over unvisited neighbors in order.
func (e *searchEngine) explore(last, depth int, costSoFar float64) {
	if e.deadlineExceeded() {
		return
	}
	if e.lowerBound(costSoFar, last) >= e.incumbentCost-e.eps {
		return
	}

	if depth == e.n {
		closing := e.weight(last, e.start)
		if math.IsInf(closing, 0) {
			return
		}
		if total := costSoFar + closing; total < e.incumbentCost-e.eps {
			e.path[e.n] = e.start
			e.acceptIncumbent(e.path, total)
		}

		return
	}

	for _, v := range e.order[last] {
		if e.onPath[v] {
			continue
		}
		step := e.weight(last, v)
		if math.IsInf(step, 0) {
			continue
		}
		e.onPath[v] = true
		e.path[depth] = v
		e.explore(v, depth+1, costSoFar+step)
		e.onPath[v] = false
	}
}

// TSPBranchAndBound runs exact Branch & Bound search and returns the optimal
// tour. Options.BoundAlgo selects the pruning strategy:
//
//	NoBound      disables the lower bound (testing/benchmarking only)
//	SimpleBound  the degree-1 relaxation computed in explore/lowerBound
//	OneTreeBound additionally sharpens the root bound via a Held–Karp 1-tree
//
// Errors:
//   - ErrTimeLimit if a positive time budget is exceeded before a proof completes.
//   - ErrIncompleteGraph if no Hamiltonian cycle exists.
//   - Strict validation sentinels for malformed inputs (see types.go).
func TSPBranchAndBound(dist matrix.Matrix, opts Options) (TSResult, error) {
	n := dist.Rows()
	if n != dist.Cols() || n < 2 {
		return TSResult{}, ErrNonSquare
	}
	if err := validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	e := &searchEngine{
		n:        n,
		start:    opts.StartVertex,
		eps:      math.Max(opts.Eps, 0),
		useBound: opts.BoundAlgo != NoBound,
	}

	if compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	if err := e.loadMatrix(dist); err != nil {
		return TSResult{}, err
	}
	if err := e.computeMinima(); err != nil {
		return TSResult{}, err
	}
	e.buildNeighborOrder()

	e.onPath = make([]bool, n)
	e.path = make([]int, n+1)
	e.path[0] = e.start
	e.onPath[e.start] = true

	e.seedIncumbent(dist, opts)

	if opts.BoundAlgo == OneTreeBound {
		if proven, ok := e.rootOneTreeProof(dist); ok {
			return proven, nil
		}
	}

	e.explore(e.start, 1, 0)

	if e.useDeadline && time.Now().After(e.deadline) {
		return TSResult{}, ErrTimeLimit
	}
	if !e.hasIncumbent && math.IsInf(e.incumbentCost, 0) {
		return TSResult{}, ErrIncompleteGraph
	}
	_ = CanonicalizeOrientationInPlace(e.incumbent)
	if err := ValidateTour(e.incumbent, n, e.start); err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: e.incumbent, Cost: round1e9(e.incumbentCost)}, nil
}

// rootOneTreeProof attempts to close the search at the root using the
// Held–Karp 1-tree bound: if the bound already meets the incumbent, the
// incumbent is provably optimal and DFS can be skipped entirely.
func (e *searchEngine) rootOneTreeProof(dist matrix.Matrix) (TSResult, bool) {
	cfg := DefaultOneTreeConfig()
	if !math.IsInf(e.incumbentCost, 0) && e.incumbentCost > 0 {
		cfg.UB = e.incumbentCost
	}

	lb, _, err := OneTreeLowerBound(dist, e.start, true, cfg)
	if err != nil || math.IsInf(e.incumbentCost, 0) || lb < e.incumbentCost-e.eps {
		return TSResult{}, false
	}

	_ = CanonicalizeOrientationInPlace(e.incumbent)
	if verr := ValidateTour(e.incumbent, e.n, e.start); verr != nil {
		return TSResult{}, false
	}

	return TSResult{Tour: e.incumbent, Cost: round1e9(e.incumbentCost)}, true
}
