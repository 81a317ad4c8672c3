package main

import (
	"fmt"
	"io"
	"time"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"

	"github.com/tsplab/workbench/core"
	"github.com/tsplab/workbench/matrix"
	"github.com/tsplab/workbench/tsp"
)

// randomizedSeeds is the number of independent seeds run for
// stochastic algorithms (simulated annealing, ant colony, genetic
// algorithm) so the report can show a mean and standard deviation
// instead of a single draw.
const randomizedSeeds = 5

// lbTolerance is the relative/absolute slack allowed when checking that a
// solver's reported cost does not fall below a proven lower bound; strict
// equality is too tight given round1e9 stabilization on both sides.
const lbTolerance = 1e-6

// Row summarizes one algorithm's performance against an instance.
type Row struct {
	Algo      string
	MeanCost  float64
	StdDev    float64
	Elapsed   time.Duration
	Skipped   string // non-empty ⇒ row wasn't run (advisory cap exceeded)
	Err       error
	SoundVsLB bool // false only if cost fell below a proven lower bound
}

type algoSpec struct {
	name   string
	algo   tsp.Algorithm
	maxN   int // 0 ⇒ unbounded
	random bool
}

var algoSpecs = []algoSpec{
	{name: "exhaustive", algo: tsp.ExhaustiveSearch, maxN: tsp.MaxExhaustiveN},
	{name: "exhaustive-pruned", algo: tsp.ExhaustiveSearchPruned, maxN: tsp.MaxExhaustivePrunedN},
	{name: "held-karp", algo: tsp.ExactHeldKarp, maxN: 20},
	{name: "branch-and-bound", algo: tsp.BranchAndBound, maxN: 30},
	{name: "christofides", algo: tsp.Christofides, maxN: 0},
	{name: "nearest-neighbor", algo: tsp.NearestNeighborOnly, maxN: 0},
	{name: "cheapest-insertion", algo: tsp.CheapestInsertionOnly, maxN: 0},
	{name: "nearest-insertion", algo: tsp.NearestInsertionOnly, maxN: 0},
	{name: "2-opt", algo: tsp.TwoOptOnly, maxN: 0},
	{name: "3-opt", algo: tsp.ThreeOptOnly, maxN: 0},
	{name: "simulated-annealing", algo: tsp.SimulatedAnnealingOnly, maxN: 0, random: true},
	{name: "ant-colony", algo: tsp.AntColonyOnly, maxN: 0, random: true},
	{name: "genetic-algorithm", algo: tsp.GeneticAlgorithmOnly, maxN: tsp.MaxGeneticAlgorithmN, random: true},
}

// RunAll builds an adjacency matrix from g, computes lower bounds, and runs
// every algorithm whose advisory vertex cap the instance fits under.
func RunAll(g *core.Graph, label string) ([]Row, error) {
	mopts := matrix.NewMatrixOptions(matrix.WithWeighted(true), matrix.WithAllowMulti(false))
	am, err := matrix.NewAdjacencyMatrix(g, mopts)
	if err != nil {
		return nil, err
	}
	n := am.Mat.Rows()

	mstLB, _, err := tsp.MinimumSpanningTree(am.Mat)
	if err != nil {
		return nil, fmt.Errorf("computing MST lower bound: %w", err)
	}
	oneTreeLB, _, err := tsp.OneTreeLowerBound(am.Mat, 0, true, tsp.DefaultOneTreeConfig())
	if err != nil {
		return nil, fmt.Errorf("computing 1-tree lower bound: %w", err)
	}
	lb := mstLB
	if oneTreeLB > lb {
		lb = oneTreeLB
	}

	rows := make([]Row, 0, len(algoSpecs)+2)
	rows = append(rows, Row{Algo: "lower-bound (MST)", MeanCost: mstLB, SoundVsLB: true})
	rows = append(rows, Row{Algo: "lower-bound (1-tree)", MeanCost: oneTreeLB, SoundVsLB: true})

	for _, spec := range algoSpecs {
		if spec.maxN > 0 && n > spec.maxN {
			rows = append(rows, Row{Algo: spec.name, Skipped: fmt.Sprintf("n=%d exceeds advisory cap %d", n, spec.maxN)})
			continue
		}
		rows = append(rows, runSpec(am, spec, n, lb))
	}
	return rows, nil
}

func runSpec(am matrix.AdjacencyMatrix, spec algoSpec, n int, lb float64) Row {
	opts := tsp.DefaultOptions()
	opts.Algo = spec.algo

	seeds := 1
	if spec.random {
		seeds = randomizedSeeds
	}

	costs := make([]float64, 0, seeds)
	var elapsed time.Duration
	var lastErr error
	sound := true

	for s := 0; s < seeds; s++ {
		opts.Seed = int64(s)
		start := time.Now()
		res, err := tsp.SolveWithMatrix(am.Mat, nil, opts)
		d := time.Since(start)
		elapsed += d
		if err != nil {
			lastErr = err
			continue
		}
		costs = append(costs, res.Cost)
		if res.Cost < lb && !scalar.EqualWithinAbsOrRel(res.Cost, lb, lbTolerance, lbTolerance) {
			sound = false
		}
	}

	row := Row{Algo: spec.name, Elapsed: elapsed / time.Duration(seeds), SoundVsLB: sound, Err: lastErr}
	if len(costs) == 0 {
		return row
	}
	weights := make([]float64, len(costs))
	for i := range weights {
		weights[i] = 1
	}
	mean, std := stat.MeanStdDev(costs, weights)
	row.MeanCost = mean
	row.StdDev = std
	return row
}

// PrintReport writes a human-readable summary table to w.
func PrintReport(w io.Writer, label string, n int, rows []Row) {
	fmt.Fprintf(w, "\nTESTING INSTANCE: %s (%d vertices)\n\n", label, n)
	for _, r := range rows {
		switch {
		case r.Skipped != "":
			fmt.Fprintf(w, "  [%-20s] skipped: %s\n", r.Algo, r.Skipped)
		case r.Err != nil:
			fmt.Fprintf(w, "  [%-20s] error: %v\n", r.Algo, r.Err)
		case r.StdDev > 0:
			fmt.Fprintf(w, "  [%-20s] cost=%10.2f ±%.2f  sound=%-5v  time=%v\n", r.Algo, r.MeanCost, r.StdDev, r.SoundVsLB, r.Elapsed)
		default:
			fmt.Fprintf(w, "  [%-20s] cost=%10.2f         sound=%-5v  time=%v\n", r.Algo, r.MeanCost, r.SoundVsLB, r.Elapsed)
		}
	}
}
