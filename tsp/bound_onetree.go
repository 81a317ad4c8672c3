// Package tsp — Held–Karp 1-tree (Lagrangian) lower bound for symmetric TSP.
//
// OneTreeLowerBound computes an admissible lower bound on OPT via the
// classical Held–Karp relaxation:
//
//   - Pick a root vertex r. For a multiplier vector π ∈ ℝⁿ, define reduced
//     costs c'_{ij} = c_{ij} + π_i + π_j.
//   - Build a minimum 1-tree T(π): an MST on V\{r} under c', plus the two
//     cheapest r-incident edges under c'.
//   - The Lagrangian dual value is L(π) = cost_c'(T(π)) − 2·Σπ_i. Since
//     cost_c'(T) = c(T) + Σ_i deg_T(i)·π_i, this equals the dual form
//     c(T) + Σ_i (deg_T(i) − 2)·π_i.
//   - Ascend via subgradient s_i = deg_T(i) − 2 (a tour needs deg(i)=2 for
//     every i, so this measures how far T(π) is from being one).
//
// L(π) lower-bounds OPT for every π and is typically much tighter than a
// plain degree-1 or MST bound. This file is symmetric-only: the instance
// must already be validated as such upstream (the `symmetric` parameter is
// a caller-asserted guard, independent of any solver-wide toggle).
//
// +Inf edges are tolerated (representing missing edges); a 1-tree that
// can't be formed — a disconnected V\{root}, or fewer than two finite
// root-incident edges — reports ErrIncompleteGraph. NaN and negative
// weights are rejected outright.
//
// Determinism: no RNG anywhere; both Prim and root-edge selection break
// ties on vertex index, and the subgradient schedule is pure arithmetic.
package tsp

import (
	"math"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// OneTreeConfig controls the subgradient loop and an optional wall-clock budget.
type OneTreeConfig struct {
	// MaxIter bounds the number of subgradient iterations (≥ 1).
	MaxIter int
	// Alpha is the step scale, in (0, 2); 0.9 is a common default.
	Alpha float64
	// UB is an optional incumbent tour cost used for adaptive step sizing.
	// UB ≤ 0 or +Inf disables the adaptive schedule in favor of a decreasing one.
	UB float64
	// TimeLimit optionally bounds wall-clock time per call; zero disables the check.
	TimeLimit time.Duration
}

// DefaultOneTreeConfig returns a compact, deterministic configuration that
// works well as a drop-in bound.
func DefaultOneTreeConfig() OneTreeConfig {
	return OneTreeConfig{
		MaxIter:   32,
		Alpha:     0.9,
		UB:        math.Inf(1),
		TimeLimit: 0,
	}
}

// OneTreeLowerBound computes the Held–Karp 1-tree bound using root as the
// distinguished vertex (typically Options.StartVertex). The returned bound
// is stabilized to 1e-9; the degree vector of the final 1-tree is returned
// alongside for diagnostics.
//
// Errors:
//   - ErrATSPNotSupportedByAlgo if symmetric is false.
//   - ErrIncompleteGraph if no 1-tree can be formed.
//   - Strict sentinels for malformed input (NaN/negative weights, bad shape).
//
// Complexity: O(cfg.MaxIter · n²) time, O(n²) memory.
func OneTreeLowerBound(dist matrix.Matrix, root int, symmetric bool, cfg OneTreeConfig) (lb float64, degrees []int, err error) {
	n := dist.Rows()
	if n != dist.Cols() || n < 2 {
		return 0, nil, ErrNonSquare
	}
	if err = validateStartVertex(n, root); err != nil {
		return 0, nil, err
	}
	if !symmetric {
		return 0, nil, ErrATSPNotSupportedByAlgo
	}

	cfg = normalizeOneTreeConfig(cfg)

	weights, err := denseOneTreeWeights(dist, n)
	if err != nil {
		return 0, nil, err
	}

	tree := &oneTree{
		n:      n,
		root:   root,
		w:      weights,
		pi:     make([]float64, n),
		deg:    make([]int, n),
		inTree: make([]bool, n),
		parent: make([]int, n),
		key:    make([]float64, n),
	}

	clock := newOneTreeClock(cfg.TimeLimit)
	bestLB, err := runSubgradientAscent(tree, cfg, clock)
	if err != nil {
		return 0, nil, err
	}

	finalDeg := make([]int, n)
	copy(finalDeg, tree.deg)

	return round1e9(bestLB), finalDeg, nil
}

// normalizeOneTreeConfig fills in safe values for out-of-range knobs.
func normalizeOneTreeConfig(cfg OneTreeConfig) OneTreeConfig {
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = 1
	}
	if cfg.Alpha <= 0 || cfg.Alpha >= 2 {
		cfg.Alpha = 0.9
	}

	return cfg
}

// denseOneTreeWeights prefetches dist into a row-major buffer, rejecting
// NaN/negative entries; +Inf passes through as "no edge".
func denseOneTreeWeights(dist matrix.Matrix, n int) ([]float64, error) {
	w := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, err := dist.At(i, j)
			if err != nil || math.IsNaN(x) {
				return nil, ErrDimensionMismatch
			}
			if x < 0 {
				return nil, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}

	return w, nil
}

// runSubgradientAscent repeatedly rebuilds the 1-tree and nudges π along its
// subgradient, tracking the best dual value seen. It stops early once a
// 1-tree happens to be a Hamiltonian cycle (subgradient is exactly zero) or
// once the step schedule yields no further movement.
func runSubgradientAscent(tree *oneTree, cfg OneTreeConfig, clock *oneTreeClock) (float64, error) {
	bestLB := math.Inf(-1)

	haveUB := !math.IsInf(cfg.UB, 0) && cfg.UB > 0

	for iter := 0; iter < cfg.MaxIter; iter++ {
		if clock.tick() {
			return 0, ErrTimeLimit
		}

		redCost, err := tree.buildReduced()
		if err != nil {
			return 0, err
		}

		bound := redCost - 2*sumFloat(tree.pi)
		if bound > bestLB {
			bestLB = bound
		}

		norm2, violation := subgradientNormSquared(tree.deg)
		if norm2 == 0 {
			break // the 1-tree is already a Hamiltonian cycle
		}

		step := oneTreeStepSize(cfg.Alpha, iter, haveUB, cfg.UB, bound, norm2)
		if step == 0 {
			break
		}

		for i, d := range violation {
			tree.pi[i] += step * float64(d)
		}
	}

	return bestLB, nil
}

// subgradientNormSquared returns ||s||² for s_i = deg(i)-2, along with s itself.
func subgradientNormSquared(deg []int) (float64, []int) {
	violation := make([]int, len(deg))
	var norm2 float64
	for i, d := range deg {
		s := d - 2
		violation[i] = s
		norm2 += float64(s * s)
	}

	return norm2, violation
}

// oneTreeStepSize picks the subgradient step length: the adaptive
// Held–Karp recipe t = α·(UB−L)/‖s‖² when an incumbent is available,
// otherwise a diminishing schedule t = α/(1+iter).
func oneTreeStepSize(alpha float64, iter int, haveUB bool, ub, bound, norm2 float64) float64 {
	if !haveUB {
		return alpha / (1.0 + float64(iter))
	}

	gap := ub - bound
	if gap < 0 {
		gap = 0
	}

	return alpha * gap / norm2
}

func sumFloat(xs []float64) float64 {
	var total float64
	for _, x := range xs {
		total += x
	}

	return total
}

// oneTree holds the mutable state for repeatedly building 1-trees on
// reduced costs. Arrays are reused across subgradient iterations.
type oneTree struct {
	n    int
	root int
	w    []float64 // dense original costs, row-major n×n

	pi []float64 // Lagrange multipliers

	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

// reduced returns c'_{uv} = c_{uv} + π_u + π_v.
func (t *oneTree) reduced(u, v int) float64 {
	return t.w[u*t.n+v] + t.pi[u] + t.pi[v]
}

// buildReduced constructs a minimum 1-tree on reduced costs — an MST over
// V\{root} via Prim, plus the two cheapest root-incident edges — filling
// t.deg and returning the reduced-cost total.
func (t *oneTree) buildReduced() (float64, error) {
	for i := range t.deg {
		t.deg[i] = 0
	}

	mstCost, err := t.primOverNonRoot()
	if err != nil {
		return 0, err
	}

	rootCost, err := t.attachCheapestRootEdges()
	if err != nil {
		return 0, err
	}

	return mstCost + rootCost, nil
}

// primOverNonRoot runs Prim's algorithm on V\{root} under reduced costs,
// accumulating degrees and the reduced-cost total as it commits each edge.
func (t *oneTree) primOverNonRoot() (float64, error) {
	inf := math.Inf(1)
	for v := 0; v < t.n; v++ {
		t.inTree[v] = false
		t.parent[v] = -1
		t.key[v] = inf
	}

	start := 0
	if start == t.root {
		start = 1
	}
	t.key[start] = 0

	var total float64
	for step := 0; step < t.n-1; step++ {
		best := -1
		for v := 0; v < t.n; v++ {
			if v == t.root || t.inTree[v] {
				continue
			}
			if best == -1 || t.key[v] < t.key[best] || (t.key[v] == t.key[best] && v < best) {
				best = v
			}
		}
		if best == -1 || math.IsInf(t.key[best], 0) {
			return 0, ErrIncompleteGraph
		}

		t.inTree[best] = true
		if p := t.parent[best]; p != -1 {
			edgeCost := t.reduced(best, p)
			total += edgeCost
			t.deg[best]++
			t.deg[p]++
		}

		for v := 0; v < t.n; v++ {
			if v == t.root || t.inTree[v] || v == best {
				continue
			}
			if c := t.reduced(best, v); c < t.key[v] {
				t.key[v] = c
				t.parent[v] = best
			}
		}
	}

	return total, nil
}

// attachCheapestRootEdges finds the two cheapest reduced-cost edges
// incident to root, folds them into the degree vector, and returns their
// combined reduced cost.
func (t *oneTree) attachCheapestRootEdges() (float64, error) {
	inf := math.Inf(1)
	firstCost, secondCost := inf, inf
	firstTo, secondTo := -1, -1

	for v := 0; v < t.n; v++ {
		if v == t.root {
			continue
		}
		c := t.reduced(t.root, v)
		switch {
		case c < firstCost || (c == firstCost && v < firstTo):
			secondCost, secondTo = firstCost, firstTo
			firstCost, firstTo = c, v
		case c < secondCost || (c == secondCost && v < secondTo):
			secondCost, secondTo = c, v
		}
	}
	if math.IsInf(firstCost, 0) || math.IsInf(secondCost, 0) {
		return 0, ErrIncompleteGraph
	}

	t.deg[t.root] += 2
	t.deg[firstTo]++
	t.deg[secondTo]++

	return firstCost + secondCost, nil
}

// oneTreeClock throttles wall-clock probes to a fixed cadence.
type oneTreeClock struct {
	enabled  bool
	deadline time.Time
	step     int
}

func newOneTreeClock(limit time.Duration) *oneTreeClock {
	c := &oneTreeClock{}
	if limit > 0 && compatibleTimeBudget(limit) {
		c.enabled = true
		c.deadline = time.Now().Add(limit)
	}

	return c
}

func (c *oneTreeClock) tick() bool {
	c.step++
	if !c.enabled || (c.step&2047) != 0 {
		return false
	}

	return time.Now().After(c.deadline)
}
