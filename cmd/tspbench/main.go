// Command tspbench is a comparative workbench for the tsp package: it
// builds a problem instance (a fixed hand-coded graph, a Euclidean point
// set, a named synthetic benchmark, or a TSPLIB file), computes lower
// bounds, runs every solver whose advisory vertex cap the instance fits
// under, and prints a summary table of tour cost against the best known
// lower bound.
//
// Usage:
//
//	tspbench -instance=oliver30
//	tspbench -instance=matrix15
//	tspbench -instance=random -n=40 -seed=7
//	tspbench -tsplib=berlin52.tsp
//
// Expected output (abridged, instance=matrix15; timings vary):
//
//	TESTING INSTANCE: matrix15 (15 vertices)
//
//	  [lower-bound (MST)   ] cost=    108.00         sound=true   time=0s
//	  ...
//	  [exhaustive          ] skipped: n=15 exceeds advisory cap 10
//	  [exhaustive-pruned   ] skipped: n=15 exceeds advisory cap 12
//	  [held-karp           ] cost=    129.00         sound=true   time=2.1ms
//	  ...
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tsplab/workbench/core"
	"github.com/tsplab/workbench/graphfactory"
	"github.com/tsplab/workbench/matrix"
	"github.com/tsplab/workbench/tsp"
)

func main() {
	var (
		instance = flag.String("instance", "oliver30", "named instance: matrix15, matrix20, euclid15, oliver30, eil51, swiss42, bays29, a280, random")
		n        = flag.Int("n", 30, "vertex count, used only when -instance=random")
		seed     = flag.Int64("seed", 1, "RNG seed, used only when -instance=random")
		tsplib   = flag.String("tsplib", "", "path to a TSPLIB .tsp file; overrides -instance when set")
		dotOut   = flag.String("dot", "", "optional path to write the Christofides tour as Graphviz DOT")
	)
	flag.Parse()

	g, label, err := loadInstance(*instance, *n, *seed, *tsplib)
	if err != nil {
		log.Fatalf("tspbench: %v", err)
	}

	rows, err := RunAll(g, label)
	if err != nil {
		log.Fatalf("tspbench: %v", err)
	}

	PrintReport(os.Stdout, label, g.VertexCount(), rows)

	if *dotOut != "" {
		if err := writeBestTourDOT(*dotOut, g, rows); err != nil {
			log.Fatalf("tspbench: writing DOT: %v", err)
		}
	}
}

// loadInstance resolves the -instance/-tsplib flags into a graph and a
// display label.
func loadInstance(instance string, n int, seed int64, tsplibPath string) (*core.Graph, string, error) {
	if tsplibPath != "" {
		f, err := os.Open(tsplibPath)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		inst, err := graphfactory.ParseTSPLIB(f)
		if err != nil {
			return nil, "", err
		}
		return inst.Graph, inst.Name, nil
	}

	switch instance {
	case "matrix15":
		g, err := graphfactory.MatrixGraph15()
		return g, instance, err
	case "matrix20":
		g, err := graphfactory.MatrixGraph20()
		return g, instance, err
	case "euclid15":
		g, err := graphfactory.EuclideanGraph15()
		return g, instance, err
	case "random":
		g, err := graphfactory.RandomEuclidean(n, 1000, 1000, seed)
		return g, fmt.Sprintf("random-%d", n), err
	case "oliver30", "eil51", "swiss42", "bays29", "a280":
		inst, err := graphfactory.BenchmarkInstance(instance)
		if err != nil {
			return nil, "", err
		}
		return inst.Graph, inst.Name, nil
	default:
		return nil, "", fmt.Errorf("tspbench: unknown instance %q", instance)
	}
}

// writeBestTourDOT re-solves with Christofides (the workbench default) and
// exports its tour for visualization, since Report rows don't retain tours.
// The tour's matrix indices are mapped back to the graph's own vertex IDs
// through the adjacency matrix's index table; the two orderings differ once
// vertex IDs stop sorting numerically ("10" < "2" lexicographically).
func writeBestTourDOT(path string, g *core.Graph, rows []Row) error {
	am, err := matrix.NewAdjacencyMatrix(g, matrix.NewMatrixOptions())
	if err != nil {
		return err
	}
	ids := make([]string, am.Mat.Rows())
	for id, idx := range am.VertexIndex {
		ids[idx] = id
	}

	res, err := tsp.SolveWithMatrix(am.Mat, ids, tsp.DefaultOptions())
	if err != nil {
		return err
	}

	tour := make([]string, len(res.Tour))
	for i, idx := range res.Tour {
		tour[i] = ids[idx]
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return graphfactory.WriteTourDOT(f, tour)
}
