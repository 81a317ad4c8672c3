// Package tsp defines the shared vocabulary for exact and heuristic Traveling
// Salesman Problem solvers: configuration (Options), the algorithm selector,
// the result envelope, and the sentinel errors every solver reports through.
//
// Design goals:
//   - Precise, specialized sentinels instead of ad-hoc fmt.Errorf strings.
//   - One Options struct serves exact solvers, the Christofides pipeline, and
//     every metaheuristic — unused knobs are simply ignored by a given solver.
//   - Determinism: randomized components are driven exclusively by Seed.
//   - Safe zero-touch defaults via DefaultOptions().
package tsp

import (
	"errors"
	"time"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Shape, feasibility, and value-domain errors for inputs.
var (
	// ErrNonSquare indicates the distance matrix is not square.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeWeight indicates a negative distance was encountered.
	ErrNegativeWeight = errors.New("tsp: negative distance encountered")

	// ErrAsymmetry indicates dist[i][j] != dist[j][i]; every solver in this
	// package operates on symmetric instances.
	ErrAsymmetry = errors.New("tsp: asymmetric distance matrix")

	// ErrNonZeroDiagonal indicates some dist[i][i] ≠ 0.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self-distance")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle exists
	// (one or more edges missing, represented by math.Inf(1)).
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix (no Hamiltonian cycle possible)")

	// ErrDimensionMismatch indicates an unexpected matrix/tour/DP shape.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange indicates Options.StartVertex is outside [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrMatchingNotImplemented is returned by BlossomMatch when a true
	// minimum-weight perfect matching is unavailable; callers may fall back.
	ErrMatchingNotImplemented = errors.New("tsp: blossom matching not implemented")

	// Deprecated: ErrBadInput is kept for legacy callers; do not use in new code.
	ErrBadInput = errors.New("tsp: invalid input")
)

// Planner/engine governance sentinels.
var (
	// ErrUnsupportedAlgorithm is returned when Options.Algo selects an unavailable strategy.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrTimeLimit indicates a user-specified time budget was exhausted.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrNodeLimit indicates a search-node budget (e.g., for Branch&Bound) was exhausted.
	ErrNodeLimit = errors.New("tsp: node limit exceeded")

	// ErrATSPNotSupportedByAlgo signals that asymmetric instances were requested
	// from a solver family in this package that only ever solves symmetric TSP.
	ErrATSPNotSupportedByAlgo = errors.New("tsp: algorithm does not support ATSP")

	// ErrExhaustiveSizeTooLarge signals n exceeds MaxExhaustiveN for plain exhaustive search.
	ErrExhaustiveSizeTooLarge = errors.New("tsp: exhaustive search supports at most 10 vertices")

	// ErrExhaustivePrunedSizeTooLarge signals n exceeds MaxExhaustivePrunedN.
	ErrExhaustivePrunedSizeTooLarge = errors.New("tsp: pruned exhaustive search supports at most 12 vertices")

	// ErrGeneticAlgorithmSizeTooLarge signals n exceeds MaxGeneticAlgorithmN.
	ErrGeneticAlgorithmSizeTooLarge = errors.New("tsp: genetic algorithm supports at most 55 vertices")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Matching & bounding enums used by Christofides/BB
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// MatchingAlgo selects the perfect-matching strategy on odd-degree vertices
// inside the Christofides pipeline.
type MatchingAlgo int

const (
	// GreedyMatch pairs odd-degree vertices by nearest neighbor (fast; weaker bound).
	GreedyMatch MatchingAlgo = iota

	// BlossomMatch selects the Edmonds' blossom entry point. It reports
	// ErrMatchingNotImplemented, so Christofides falls back to greedy
	// matching and the 1.5x bound is not guaranteed.
	BlossomMatch
)

// BoundAlgo selects the lower-bound strategy used by Branch & Bound.
type BoundAlgo int

const (
	// NoBound disables lower bounds (testing/benchmarking only).
	NoBound BoundAlgo = iota

	// SimpleBound applies the degree-1 relaxation (fast, always admissible).
	SimpleBound

	// OneTreeBound enables the Held–Karp 1-tree lower bound. Current
	// integration is root-only (pre-DFS) for a safe, deterministic boost.
	OneTreeBound
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// High-level algorithm selector
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Algorithm enumerates the top-level TSP strategies the dispatcher can route to.
type Algorithm int

const (
	// Christofides: 1.5-approx for metric symmetric TSP (MST + perfect matching + Euler + shortcut).
	Christofides Algorithm = iota

	// ExactHeldKarp: Held–Karp DP, O(n²·2ⁿ) time, O(n·2ⁿ) memory.
	ExactHeldKarp

	// TwoOptOnly: local improvement on an internally generated seed tour.
	TwoOptOnly

	// ThreeOptOnly: stronger local improvement than 2-opt, same seeding strategy.
	ThreeOptOnly

	// BranchAndBound: exact DFS search with admissible lower bounds.
	BranchAndBound

	// ExhaustiveSearch: plain recursive permutation enumeration. n ≤ MaxExhaustiveN.
	ExhaustiveSearch

	// ExhaustiveSearchPruned: recursive enumeration with partial-cost pruning.
	// n ≤ MaxExhaustivePrunedN.
	ExhaustiveSearchPruned

	// NearestNeighborOnly: greedy nearest-neighbour construction, no post-pass.
	NearestNeighborOnly

	// CheapestInsertionOnly: greedy cheapest-insertion construction.
	CheapestInsertionOnly

	// NearestInsertionOnly: nearest-insertion construction.
	NearestInsertionOnly

	// SimulatedAnnealingOnly: 2-opt-move simulated annealing from a nearest-neighbour seed.
	SimulatedAnnealingOnly

	// AntColonyOnly: ant colony optimization.
	AntColonyOnly

	// GeneticAlgorithmOnly: order-crossover genetic algorithm.
	GeneticAlgorithmOnly
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Results
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// TSResult encapsulates the output of a TSP solver.
type TSResult struct {
	// Tour is an ordered sequence of vertex indices representing the Hamiltonian cycle.
	// Invariants:
	//   len(Tour) == n + 1
	//   Tour[0] == Tour[n] == StartVertex
	//   each vertex in [0..n-1] appears exactly once in Tour[0:n]
	Tour []int

	// Cost is the total distance along the cycle, computed from the provided distance matrix.
	Cost float64
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Options & defaults
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Tunable defaults used by DefaultOptions. Some Options fields also fall back
// to these when left at zero (see each field); a zero TwoOptMaxIters means
// unlimited.
const (
	// DefaultEps is the minimal strictly-better improvement for local search steps.
	DefaultEps = 1e-12

	// DefaultTwoOptMaxIters caps the number of accepted local-search moves (see Options.TwoOptMaxIters).
	DefaultTwoOptMaxIters = 10_000

	// DefaultSACoolingRate is the geometric cooling multiplier applied every epoch.
	DefaultSACoolingRate = 0.90

	// DefaultSAEpochLength is the number of candidate moves evaluated per temperature step.
	DefaultSAEpochLength = 100

	// DefaultSAMinTemp is the temperature floor at which annealing stops.
	DefaultSAMinTemp = 1e-3

	// SAMinInitialTemp floors the derived initial temperature (cost/10) so that
	// near-zero-cost instances still get a meaningful exploration phase.
	SAMinInitialTemp = 100.0

	// DefaultACOAnts is the number of ants constructing a tour per iteration.
	DefaultACOAnts = 20

	// DefaultACOIterations bounds the number of construction/update cycles.
	DefaultACOIterations = 200

	// DefaultACOAlpha weights pheromone influence in the transition probability.
	DefaultACOAlpha = 1.0

	// DefaultACOBeta weights heuristic (1/distance) influence.
	DefaultACOBeta = 3.0

	// DefaultACORho is the pheromone evaporation rate.
	DefaultACORho = 0.5

	// DefaultACOQ scales the pheromone deposit per ant.
	DefaultACOQ = 100.0

	// DefaultGAPopulationSize is the number of tours per generation.
	DefaultGAPopulationSize = 80

	// DefaultGAGenerations bounds the number of evolutionary generations.
	DefaultGAGenerations = 300

	// DefaultGAMutationRate is the per-offspring probability of a swap mutation.
	DefaultGAMutationRate = 0.05

	// DefaultGAElitismCount is the number of best individuals preserved verbatim.
	DefaultGAElitismCount = 2

	// DefaultGATournamentSize is the number of contenders per tournament draw.
	DefaultGATournamentSize = 4

	// MaxExhaustiveN bounds the plain exhaustive-search solver (n!).
	MaxExhaustiveN = 10

	// MaxExhaustivePrunedN bounds the pruned exhaustive-search solver.
	MaxExhaustivePrunedN = 12

	// MaxGeneticAlgorithmN bounds the genetic algorithm solver.
	MaxGeneticAlgorithmN = 55
)

// Options configures every solver in the package. The zero value is not
// meaningful; build one from DefaultOptions() and override only what you need.
type Options struct {
	// StartVertex selects the start/end vertex index [0..n-1]. Default: 0.
	StartVertex int

	// Algo selects the top-level algorithm (dispatcher). Default: Christofides.
	Algo Algorithm

	// MatchingAlgo chooses between GreedyMatch or BlossomMatch in Christofides.
	MatchingAlgo MatchingAlgo

	// BoundAlgo controls the lower-bound strategy in Branch & Bound.
	BoundAlgo BoundAlgo

	// RunMetricClosure, if true, runs Floyd–Warshall to replace +Inf with shortest paths
	// before solving, enabling partially connected graphs to become metric-closed.
	RunMetricClosure bool

	// EnableLocalSearch applies a post-pass 2-opt (and optionally 3-opt) when supported.
	// Default: true (for Christofides and seed tours).
	EnableLocalSearch bool

	// TwoOptMaxIters bounds the total number of accepted moves in local search
	// (applies to both 2-opt and 3-opt). Zero ⇒ unlimited. Default: 10_000.
	TwoOptMaxIters int

	// BestImprovement, if true: use best-improvement policy in 3-opt; else first-improvement.
	// 2-opt is always first-improvement.
	BestImprovement bool

	// ShuffleNeighborhood, if true: randomize 3-opt's candidate order using Seed; if false: canonical order.
	// 2-opt always scans in canonical order.
	ShuffleNeighborhood bool

	// Eps is the minimal improvement considered significant in local search comparisons.
	// Default: 1e-12.
	Eps float64

	// TimeLimit optionally bounds wall-clock time for long-running heuristics/search.
	// Zero means “no limit”.
	TimeLimit time.Duration

	// Seed controls deterministic behavior of randomized components (seeded RNG).
	// Default: 0 (fixed seed → deterministic).
	Seed int64

	// SAInitialTemp seeds the simulated-annealing temperature. Zero ⇒ derived
	// from the initial tour's cost (cost/10, floored at SAMinInitialTemp).
	SAInitialTemp float64

	// SACoolingRate multiplies the temperature after every epoch, 0 < rate < 1.
	// Zero ⇒ DefaultSACoolingRate.
	SACoolingRate float64

	// SAEpochLength is the number of candidate moves evaluated per temperature
	// step. Zero ⇒ DefaultSAEpochLength.
	SAEpochLength int

	// SAMinTemp stops annealing once the temperature falls below this floor.
	// Zero ⇒ DefaultSAMinTemp.
	SAMinTemp float64

	// ACOAnts is the number of ants per iteration. Zero ⇒ DefaultACOAnts.
	ACOAnts int

	// ACOIterations bounds the number of construction/update cycles. Zero ⇒ DefaultACOIterations.
	ACOIterations int

	// ACOAlpha weights pheromone influence in the transition probability. Zero ⇒ DefaultACOAlpha.
	ACOAlpha float64

	// ACOBeta weights heuristic (1/distance) influence. Zero ⇒ DefaultACOBeta.
	ACOBeta float64

	// ACORho is the pheromone evaporation rate, 0 < rho ≤ 1. Zero ⇒ DefaultACORho.
	ACORho float64

	// ACOQ scales the pheromone deposit per ant. Zero ⇒ DefaultACOQ.
	ACOQ float64

	// GAPopulationSize is the number of tours per generation. Zero ⇒ DefaultGAPopulationSize.
	GAPopulationSize int

	// GAGenerations bounds the number of evolutionary generations. Zero ⇒ DefaultGAGenerations.
	GAGenerations int

	// GAMutationRate is the per-offspring probability of a swap mutation. Zero ⇒ DefaultGAMutationRate.
	GAMutationRate float64

	// GAElitismCount is the number of best individuals carried unchanged into
	// the next generation. Zero ⇒ DefaultGAElitismCount.
	GAElitismCount int

	// GATournamentSize is the number of contenders sampled per tournament
	// selection draw. Zero ⇒ DefaultGATournamentSize.
	GATournamentSize int
}

// DefaultOptions returns a fully populated Options struct with safe, production-ready defaults:
//   - Start at vertex 0
//   - Christofides (metric symmetric), Blossom matching (fallback allowed), no B&B
//   - No metric closure by default
//   - Local search enabled (2-opt) with conservative iteration cap
//   - Deterministic RNG (Seed=0), no time limit
func DefaultOptions() Options {
	return Options{
		StartVertex:       0,
		Algo:              Christofides,
		MatchingAlgo:      BlossomMatch,
		BoundAlgo:         NoBound,
		RunMetricClosure:  false,
		EnableLocalSearch: true,
		TwoOptMaxIters:    DefaultTwoOptMaxIters,
		Eps:               DefaultEps,
		TimeLimit:         0,
		Seed:              0,
		SACoolingRate:     DefaultSACoolingRate,
		SAEpochLength:     DefaultSAEpochLength,
		SAMinTemp:         DefaultSAMinTemp,
		ACOAnts:           DefaultACOAnts,
		ACOIterations:     DefaultACOIterations,
		ACOAlpha:          DefaultACOAlpha,
		ACOBeta:           DefaultACOBeta,
		ACORho:            DefaultACORho,
		ACOQ:              DefaultACOQ,
		GAPopulationSize:  DefaultGAPopulationSize,
		GAGenerations:     DefaultGAGenerations,
		GAMutationRate:    DefaultGAMutationRate,
		GAElitismCount:    DefaultGAElitismCount,
		GATournamentSize:  DefaultGATournamentSize,
	}
}
