// Package tsp - genetic algorithm over tour permutations.
//
// TSPGeneticAlgorithm evolves a population of opts.GAPopulationSize tours
// for opts.GAGenerations generations. Each generation: the fittest
// opts.GAElitismCount individuals survive unchanged; the remaining offspring
// are produced by tournament-selecting two parents and recombining them with
// order crossover (github.com/cbarrick/evo/perm.OrderX), then mutated with
// probability opts.GAMutationRate via a random swap
// (github.com/cbarrick/evo/perm.RandSwap). n must not exceed
// MaxGeneticAlgorithmN.
//
// perm.OrderX and perm.RandSwap both draw from math/rand's package-level
// source rather than accepting an injected *rand.Rand, so determinism here
// is obtained by seeding that global source once at the start of the run
// with deriveSeed(opts.Seed, 0). The solver's own random draws come from a
// separate rngFromSeed(opts.Seed) generator.
//
// Complexity: O(generations * population * n) time, O(population * n) space.
package tsp

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/cbarrick/evo/perm"

	"github.com/tsplab/workbench/matrix"
)

// TSPGeneticAlgorithm runs an order-crossover genetic algorithm and returns
// the fittest tour found across every generation.
func TSPGeneticAlgorithm(dist matrix.Matrix, opts Options) (TSResult, error) {
	w, n, err := prefetchSquareWeights(dist)
	if err != nil {
		return TSResult{}, err
	}
	if n < 3 {
		return TSResult{}, ErrDimensionMismatch
	}
	if n > MaxGeneticAlgorithmN {
		return TSResult{}, ErrGeneticAlgorithmSizeTooLarge
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	popSize := opts.GAPopulationSize
	if popSize <= 0 {
		popSize = DefaultGAPopulationSize
	}
	generations := opts.GAGenerations
	if generations <= 0 {
		generations = DefaultGAGenerations
	}
	mutationRate := opts.GAMutationRate
	if mutationRate <= 0 {
		mutationRate = DefaultGAMutationRate
	}
	elitism := opts.GAElitismCount
	if elitism <= 0 {
		elitism = DefaultGAElitismCount
	}
	if elitism > popSize {
		elitism = popSize
	}
	tournamentSize := opts.GATournamentSize
	if tournamentSize <= 0 {
		tournamentSize = DefaultGATournamentSize
	}
	if tournamentSize > popSize {
		tournamentSize = popSize
	}

	rng := rngFromSeed(opts.Seed)
	rand.Seed(deriveSeed(opts.Seed, 0)) // seeds perm.OrderX/perm.RandSwap's global source

	// genomes hold permutations of the non-start vertices only; start is
	// prepended/appended when scoring and reporting.
	tail := n - 1
	others := make([]int, 0, tail)
	for v := 0; v < n; v++ {
		if v != opts.StartVertex {
			others = append(others, v)
		}
	}

	type individual struct {
		genome []int
		cost   float64
	}

	cycleCost := func(genome []int) float64 {
		cost := at(opts.StartVertex, genome[0])
		for i := 0; i+1 < len(genome); i++ {
			cost += at(genome[i], genome[i+1])
		}
		cost += at(genome[len(genome)-1], opts.StartVertex)
		return cost
	}

	pop := make([]individual, popSize)
	for i := range pop {
		g := CopyTour(others)
		shuffleIntsInPlace(g, rng)
		pop[i] = individual{genome: g, cost: cycleCost(g)}
	}

	sortPop := func(p []individual) {
		sort.Slice(p, func(i, j int) bool { return p[i].cost < p[j].cost })
	}
	sortPop(pop)

	tournamentPick := func() []int {
		bestIdx := rng.Intn(popSize)
		for c := 1; c < tournamentSize; c++ {
			cand := rng.Intn(popSize)
			if pop[cand].cost < pop[bestIdx].cost {
				bestIdx = cand
			}
		}
		return pop[bestIdx].genome
	}

	var (
		useDeadline bool
		deadline    time.Time
	)
	if compatibleTimeBudget(opts.TimeLimit) && opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}

	for gen := 0; gen < generations; gen++ {
		if useDeadline && time.Now().After(deadline) {
			break
		}

		next := make([]individual, 0, popSize)
		for i := 0; i < elitism; i++ {
			next = append(next, individual{genome: CopyTour(pop[i].genome), cost: pop[i].cost})
		}

		for len(next) < popSize {
			mom := tournamentPick()
			dad := tournamentPick()
			child := make([]int, tail)
			perm.OrderX(child, mom, dad)

			if rng.Float64() < mutationRate {
				perm.RandSwap(child)
			}

			next = append(next, individual{genome: child, cost: cycleCost(child)})
		}

		pop = next
		sortPop(pop)
	}

	bestGenome := pop[0].genome
	tour := make([]int, n+1)
	tour[0] = opts.StartVertex
	copy(tour[1:n], bestGenome)
	tour[n] = opts.StartVertex

	cost, cerr := TourCost(dist, tour)
	if cerr != nil {
		return TSResult{}, cerr
	}
	if math.IsInf(cost, 1) {
		return TSResult{}, ErrIncompleteGraph
	}

	_ = CanonicalizeOrientationInPlace(tour)
	if verr := ValidateTour(tour, n, opts.StartVertex); verr != nil {
		return TSResult{}, verr
	}
	return TSResult{Tour: tour, Cost: round1e9(cost)}, nil
}
