// Package tsp - constructive heuristics: nearest neighbour, cheapest
// insertion, and nearest insertion.
//
// All three build a tour from scratch (no seed required) and return it
// without a local-search post-pass; the dispatcher applies 2-opt/3-opt
// afterwards when opts.EnableLocalSearch is set.
//
// Complexity:
//   - TSPNearestNeighbor:    O(n²).
//   - TSPCheapestInsertion:  O(n³) (re-scans every insertion point on every step).
//   - TSPNearestInsertion:   O(n³) for the same reason.
package tsp

import (
	"math"

	"github.com/tsplab/workbench/matrix"
)

// prefetchSquareWeights validates that dist is square, then loads it into a
// dense row-major buffer via prefetchWeights. It is shared by every solver
// that takes the matrix directly rather than a seed tour.
func prefetchSquareWeights(dist matrix.Matrix) ([]float64, int, error) {
	if dist == nil {
		return nil, 0, ErrNonSquare
	}
	n := dist.Rows()
	if n != dist.Cols() || n <= 0 {
		return nil, 0, ErrNonSquare
	}
	d, err := prefetchWeights(dist, n)
	if err != nil {
		return nil, 0, err
	}
	return d.w, n, nil
}

// TSPNearestNeighbor builds a tour by repeatedly walking to the closest
// unvisited vertex, starting from opts.StartVertex, then closing the cycle.
// Ties are broken by the smallest vertex index.
func TSPNearestNeighbor(dist matrix.Matrix, opts Options) (TSResult, error) {
	w, n, err := prefetchSquareWeights(dist)
	if err != nil {
		return TSResult{}, err
	}
	if n < 2 {
		return TSResult{}, ErrDimensionMismatch
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	visited := make([]bool, n)
	tour := make([]int, n+1)
	cur := opts.StartVertex
	tour[0] = cur
	visited[cur] = true

	for step := 1; step < n; step++ {
		best := -1
		bestW := math.Inf(1)
		for cand := 0; cand < n; cand++ {
			if visited[cand] {
				continue
			}
			d := at(cur, cand)
			if d < bestW {
				bestW = d
				best = cand
			}
		}
		if best < 0 || math.IsInf(bestW, 1) {
			return TSResult{}, ErrIncompleteGraph
		}
		tour[step] = best
		visited[best] = true
		cur = best
	}
	tour[n] = opts.StartVertex

	cost, err := TourCost(dist, tour)
	if err != nil {
		return TSResult{}, err
	}
	_ = CanonicalizeOrientationInPlace(tour)
	if verr := ValidateTour(tour, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}
	return TSResult{Tour: tour, Cost: round1e9(cost)}, nil
}

// TSPCheapestInsertion grows a sub-tour one vertex at a time, always
// inserting the unvisited vertex/edge pair with the smallest cost increase
// delta = w(a,v) + w(v,b) - w(a,b). The sub-tour is seeded with the
// triangle (0,1,2).
func TSPCheapestInsertion(dist matrix.Matrix, opts Options) (TSResult, error) {
	return insertionCore(dist, opts, triangleSeed, cheapestInsertionPick)
}

// TSPNearestInsertion grows a sub-tour by first choosing the unvisited
// vertex closest to any vertex already in the sub-tour, then inserting it at
// the cheapest edge position. The sub-tour is seeded with the globally
// closest vertex pair.
func TSPNearestInsertion(dist matrix.Matrix, opts Options) (TSResult, error) {
	return insertionCore(dist, opts, closestPairSeed, nearestInsertionPick)
}

// insertionSeed returns the initial closed sub-tour (first == last) for an
// insertion heuristic, or ErrIncompleteGraph when no seed can be formed.
type insertionSeed func(at func(u, v int) float64, n int) ([]int, error)

// insertionPicker selects which unvisited vertex to insert next and returns
// its index plus the cycle position (edge cur[pos]->cur[pos+1]) to insert
// before. cur is the current closed sub-tour (cur[0]==cur[len(cur)-1]).
type insertionPicker func(at func(u, v int) float64, cur []int, visited []bool, n int) (vertex int, pos int, delta float64)

// triangleSeed starts from the fixed triangle 0→1→2→0.
func triangleSeed(at func(u, v int) float64, n int) ([]int, error) {
	for _, pair := range [3][2]int{{0, 1}, {1, 2}, {2, 0}} {
		if math.IsInf(at(pair[0], pair[1]), 1) {
			return nil, ErrIncompleteGraph
		}
	}

	return []int{0, 1, 2, 0}, nil
}

// closestPairSeed starts from the globally cheapest edge, ties broken by
// the smaller (u, v) index pair.
func closestPairSeed(at func(u, v int) float64, n int) ([]int, error) {
	bu, bv, bw := -1, -1, math.Inf(1)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if d := at(u, v); d < bw {
				bu, bv, bw = u, v, d
			}
		}
	}
	if bu < 0 || math.IsInf(bw, 1) {
		return nil, ErrIncompleteGraph
	}

	return []int{bu, bv, bu}, nil
}

func insertionCore(dist matrix.Matrix, opts Options, seed insertionSeed, pick insertionPicker) (TSResult, error) {
	w, n, err := prefetchSquareWeights(dist)
	if err != nil {
		return TSResult{}, err
	}
	if n < 2 {
		return TSResult{}, ErrDimensionMismatch
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	start := opts.StartVertex

	if n == 2 {
		other := 1 - start
		cur := []int{start, other, start}
		cost, cerr := TourCost(dist, cur)
		if cerr != nil {
			return TSResult{}, cerr
		}
		return TSResult{Tour: cur, Cost: round1e9(cost)}, nil
	}

	cur, err := seed(at, n)
	if err != nil {
		return TSResult{}, err
	}
	visited := make([]bool, n)
	for _, v := range cur[:len(cur)-1] {
		visited[v] = true
	}

	for len(cur)-1 < n {
		vertex, pos, delta := pick(at, cur, visited, n)
		if vertex < 0 || math.IsInf(delta, 1) {
			return TSResult{}, ErrIncompleteGraph
		}
		next := make([]int, len(cur)+1)
		copy(next, cur[:pos+1])
		next[pos+1] = vertex
		copy(next[pos+2:], cur[pos+1:])
		cur = next
		visited[vertex] = true
	}

	// The seed may not contain start at position 0; rotate before validating.
	cur, err = RotateTourToStart(cur, start)
	if err != nil {
		return TSResult{}, err
	}

	cost, err := TourCost(dist, cur)
	if err != nil {
		return TSResult{}, err
	}
	_ = CanonicalizeOrientationInPlace(cur)
	if verr := ValidateTour(cur, n, start); verr != nil {
		return TSResult{}, verr
	}
	return TSResult{Tour: cur, Cost: round1e9(cost)}, nil
}

// cheapestInsertionPick scans every (unvisited vertex, sub-tour edge) pair
// and returns the one with the smallest insertion delta.
func cheapestInsertionPick(at func(u, v int) float64, cur []int, visited []bool, n int) (int, int, float64) {
	bestV, bestPos := -1, -1
	bestDelta := math.Inf(1)
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		for pos := 0; pos < len(cur)-1; pos++ {
			a, b := cur[pos], cur[pos+1]
			delta := at(a, v) + at(v, b) - at(a, b)
			if delta < bestDelta {
				bestDelta = delta
				bestV = v
				bestPos = pos
			}
		}
	}
	return bestV, bestPos, bestDelta
}

// nearestInsertionPick first finds the unvisited vertex closest to any
// vertex currently in the sub-tour, then locates the cheapest edge to
// insert it at.
func nearestInsertionPick(at func(u, v int) float64, cur []int, visited []bool, n int) (int, int, float64) {
	bestV := -1
	bestW := math.Inf(1)
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		for pos := 0; pos < len(cur)-1; pos++ {
			if d := at(cur[pos], v); d < bestW {
				bestW = d
				bestV = v
			}
		}
	}
	if bestV < 0 {
		return -1, -1, math.Inf(1)
	}
	bestPos := -1
	bestDelta := math.Inf(1)
	for pos := 0; pos < len(cur)-1; pos++ {
		a, b := cur[pos], cur[pos+1]
		delta := at(a, bestV) + at(bestV, b) - at(a, b)
		if delta < bestDelta {
			bestDelta = delta
			bestPos = pos
		}
	}
	return bestV, bestPos, bestDelta
}
