// Package tsp - Ant Colony Optimization (ACS-style construction with
// evaporation and deposit).
//
// Each iteration, opts.ACOAnts independent ants construct a tour starting
// from opts.StartVertex, choosing the next unvisited vertex with probability
// proportional to pheromone^alpha * (1/distance)^beta. After every ant has
// finished, pheromone evaporates by a factor of (1-rho) and each ant deposits
// Q/cost along the edges of its tour. The best tour seen across all
// iterations is returned.
//
// Complexity: O(iterations * ants * n²) time, O(n²) space for the pheromone
// matrix.
package tsp

import (
	"math"
	"time"

	"github.com/tsplab/workbench/matrix"
)

// TSPAntColony runs ant colony optimization and returns the best tour found
// across opts.ACOIterations construction cycles.
func TSPAntColony(dist matrix.Matrix, opts Options) (TSResult, error) {
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

	ants := opts.ACOAnts
	if ants <= 0 {
		ants = DefaultACOAnts
	}
	iterations := opts.ACOIterations
	if iterations <= 0 {
		iterations = DefaultACOIterations
	}
	alpha := opts.ACOAlpha
	if alpha <= 0 {
		alpha = DefaultACOAlpha
	}
	beta := opts.ACOBeta
	if beta <= 0 {
		beta = DefaultACOBeta
	}
	rho := opts.ACORho
	if rho <= 0 {
		rho = DefaultACORho
	}
	q := opts.ACOQ
	if q <= 0 {
		q = DefaultACOQ
	}

	// Heuristic visibility eta[u][v] = 1/w(u,v); 0 when no direct edge exists.
	eta := make([]float64, n*n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			d := at(u, v)
			if u != v && !math.IsInf(d, 0) && d > 0 {
				eta[u*n+v] = 1 / d
			}
		}
	}

	pher := make([]float64, n*n)
	for i := range pher {
		pher[i] = 1.0
	}

	baseRNG := rngFromSeed(opts.Seed)

	var (
		best     []int
		bestCost = math.Inf(1)
	)

	var (
		useDeadline bool
		deadline    time.Time
	)
	if compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}

	visited := make([]bool, n)
	probs := make([]float64, n)

	for iter := 0; iter < iterations; iter++ {
		if useDeadline && time.Now().After(deadline) {
			break
		}

		antRNG := deriveRNG(baseRNG, uint64(iter))
		deltaPher := make([]float64, n*n)

		for a := 0; a < ants; a++ {
			for i := range visited {
				visited[i] = false
			}
			tour := make([]int, n+1)
			cur := opts.StartVertex
			tour[0] = cur
			visited[cur] = true

			feasible := true
			for step := 1; step < n && feasible; step++ {
				var sum float64
				for v := 0; v < n; v++ {
					probs[v] = 0
					if visited[v] {
						continue
					}
					e := eta[cur*n+v]
					if e <= 0 {
						continue
					}
					p := math.Pow(pher[cur*n+v], alpha) * math.Pow(e, beta)
					probs[v] = p
					sum += p
				}
				if sum <= 0 {
					feasible = false
					break
				}
				r := antRNG.Float64() * sum
				var acc float64
				next := -1
				for v := 0; v < n; v++ {
					if probs[v] <= 0 {
						continue
					}
					acc += probs[v]
					if r <= acc {
						next = v
						break
					}
				}
				if next < 0 {
					feasible = false
					break
				}
				tour[step] = next
				visited[next] = true
				cur = next
			}
			if !feasible {
				continue
			}
			tour[n] = opts.StartVertex

			cost, cerr := TourCost(dist, tour)
			if cerr != nil {
				continue
			}
			if cost < bestCost {
				bestCost = cost
				best = CopyTour(tour)
			}

			deposit := q / cost
			for i := 0; i < n; i++ {
				u, v := tour[i], tour[i+1]
				deltaPher[u*n+v] += deposit
				deltaPher[v*n+u] += deposit
			}
		}

		for i := range pher {
			pher[i] = (1-rho)*pher[i] + deltaPher[i]
			if pher[i] < 1e-10 {
				pher[i] = 1e-10
			}
		}
	}

	if best == nil {
		return TSResult{}, ErrIncompleteGraph
	}

	_ = CanonicalizeOrientationInPlace(best)
	if verr := ValidateTour(best, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}
	return TSResult{Tour: best, Cost: round1e9(bestCost)}, nil
}
