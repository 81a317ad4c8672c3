// Package tsp solves the symmetric Travelling Salesman Problem over n×n
// distance matrices behind one dispatcher: strict sentinel errors,
// deterministic behavior (every randomized step is driven by Options.Seed),
// and costs stabilized to 1e-9 so platform-level floating-point drift never
// flips a comparison that should be a tie.
//
// # What & why
//
// Given a square distance matrix dist, tsp computes a Hamiltonian cycle
// (tour) that visits every vertex once and returns to the start:
//
//   - Exact: Held-Karp dynamic programming (ExactHeldKarp), plain and
//     cost-pruned permutation enumeration (ExhaustiveSearch,
//     ExhaustiveSearchPruned), and Branch-and-Bound (BranchAndBound) with
//     admissible lower bounds.
//   - Approximation: Christofides' 1.5-factor algorithm (Christofides).
//   - Construction: nearest neighbour (NearestNeighborOnly), cheapest
//     insertion (CheapestInsertionOnly), nearest insertion
//     (NearestInsertionOnly).
//   - Local search: deterministic 2-opt / 3-opt post-passes (TwoOptOnly,
//     ThreeOptOnly), usable standalone or chained by the dispatcher.
//   - Metaheuristics: simulated annealing over random 2-opt moves
//     (SimulatedAnnealingOnly), ant colony optimization (AntColonyOnly),
//     and an order-crossover genetic algorithm (GeneticAlgorithmOnly).
//
// Lower bounds live alongside the solvers: MinimumSpanningTree's total
// weight (any tour contains a spanning tree) and OneTreeLowerBound's
// Held-Karp 1-tree subgradient ascent.
//
// # Algorithms & complexity
//
//	ExactHeldKarp (Held-Karp DP)
//	  Time:   O(n^2 * 2^n)     Memory: O(n * 2^n)
//	  Guards: MaxExactN (=20) bounds resources before the DP even starts.
//
//	BranchAndBound (exact DFS with pruning)
//	  Bound:  degree-1 relaxation (always admissible), plus an optional
//	          root-only Held-Karp 1-tree bound for a tighter root cut.
//	  Branch: neighbors sorted by weight then index — deterministic.
//	  Time:   exponential worst case. Memory: O(n) path + O(n^2) precomputes.
//
//	Christofides (1.5-approximation)
//	  Pipeline: MST -> odd-degree matching (Greedy; BlossomMatch falls back
//	            to Greedy because blossom matching is not implemented) ->
//	            Eulerian circuit -> shortcut to a Hamiltonian tour.
//	  With greedy matching the 1.5 factor is not guaranteed.
//	  Time:   O(n^2) on a dense metric instance.
//
//	ExhaustiveSearch / ExhaustiveSearchPruned (brute force)
//	  Time:   O(n!) tours; the pruned variant cuts any branch whose partial
//	          cost already meets the incumbent. Caps: MaxExhaustiveN (=10),
//	          MaxExhaustivePrunedN (=12).
//
//	NearestNeighborOnly / CheapestInsertionOnly / NearestInsertionOnly
//	  Time:   O(n^2) / O(n^3) / O(n^3). Deterministic lowest-index
//	          tie-breaks; validity guaranteed, optimality not.
//
//	TwoOptOnly / ThreeOptOnly (local search)
//	  2-opt: segment reversal; delta = (a->c)+(b->d)-(a->b)-(c->d).
//	  3-opt: the 7 non-trivial segment reconnections per triple of cut points.
//	  2-opt is deterministic first-improvement in canonical order; 3-opt
//	  supports first- or best-improvement, with optional shuffled candidate
//	  order via Seed.
//
//	SimulatedAnnealingOnly / AntColonyOnly / GeneticAlgorithmOnly
//	  SA:  random 2-opt moves from a nearest-neighbour seed; accept when
//	       delta < 0 or exp(-delta/T) beats a uniform draw; geometric cooling.
//	  ACO: tau^alpha * eta^beta roulette construction, evaporation rho,
//	       deposit Q/cost per ant edge, both directions.
//	  GA:  tournament selection, order crossover, swap mutation, elitism;
//	       capped at MaxGeneticAlgorithmN (=55).
//	  All three draw exclusively from Options.Seed-derived streams.
//
// # Determinism & stability
//
//   - No time-based randomness anywhere; a randomized scan always reads
//     Options.Seed (0 maps to a fixed default stream, never Go's own).
//   - Ties break on index. Every reported cost passes through round1e9.
//   - CanonicalizeOrientationInPlace fixes a single winding direction for a
//     tour under a fixed start vertex, so equivalent tours compare equal.
//
// # Input requirements
//
// dist must be square, n >= 2, with a zero diagonal (|dist[i][i]| <= 1e-12)
// and no negative entries. NaN is always rejected. +Inf marks a missing
// edge; whether that's tolerated depends on Options.RunMetricClosure.
//
// Every solver in this package requires dist[i][j] == dist[j][i]; the
// dispatcher rejects an asymmetric matrix with ErrAsymmetry before any
// solver runs.
//
// # Options
//
// One Options struct configures every solver; a given algorithm reads only
// its own knobs and ignores the rest. The structural fields:
//
//	type Options struct {
//	    StartVertex         int           // start/end vertex [0,n) (default 0)
//	    Algo                Algorithm     // dispatcher route (default Christofides)
//	    MatchingAlgo        MatchingAlgo  // Christofides: GreedyMatch or BlossomMatch (falls back to Greedy on sentinel)
//	    BoundAlgo           BoundAlgo     // BranchAndBound: NoBound / SimpleBound / OneTreeBound
//	    RunMetricClosure    bool          // allow solving partially connected graphs via metric closure
//	    EnableLocalSearch   bool          // run 2-opt (and 3-opt) post-passes where applicable
//	    TwoOptMaxIters      int           // cap accepted local-search moves (0=unlimited)
//	    BestImprovement     bool          // local-search policy: best vs first improvement
//	    ShuffleNeighborhood bool          // shuffle candidate order (deterministic via Seed)
//	    Eps                 float64       // minimal strict improvement (default 1e-12)
//	    TimeLimit           time.Duration // soft wall-clock budget (0=none)
//	    Seed                int64         // deterministic RNG seed (0=stable default)
//	}
//
// plus per-metaheuristic parameter blocks (SAInitialTemp/SACoolingRate/
// SAEpochLength/SAMinTemp, ACOAnts/ACOIterations/ACOAlpha/ACOBeta/ACORho/
// ACOQ, GAPopulationSize/GAGenerations/GAMutationRate/GAElitismCount/
// GATournamentSize), each falling back to its Default* constant when zero.
//
//	func DefaultOptions() Options
//
// # Errors (strict sentinels)
//
//	ErrNonSquare, ErrNegativeWeight, ErrAsymmetry, ErrNonZeroDiagonal,
//	ErrIncompleteGraph, ErrDimensionMismatch, ErrStartOutOfRange,
//	ErrMatchingNotImplemented, ErrUnsupportedAlgorithm, ErrTimeLimit,
//	ErrNodeLimit, ErrSizeTooLarge, ErrExhaustiveSizeTooLarge,
//	ErrExhaustivePrunedSizeTooLarge, ErrGeneticAlgorithmSizeTooLarge.
//
// Errors are never wrapped with fmt.Errorf where a sentinel already says it.
//
// # Results
//
//	type TSResult struct {
//	    Tour []int   // len==n+1, Tour[0]==Tour[n]==StartVertex, each 0..n-1 appears once
//	    Cost float64 // rounded to 1e-9
//	}
//
// # Mathematics (references)
//
//	2-opt delta:        (a->c)+(b->d)-(a->b)-(c->d)
//	1-tree dual bound (Held-Karp):
//	  L(pi) = cost_c'(T(pi)) - 2 * sum(pi_i),
//	  c'_ij = c_ij + pi_i + pi_j.
//	Every reported cost is stabilized by round1e9 for cross-platform
//	reproducibility.
package tsp
