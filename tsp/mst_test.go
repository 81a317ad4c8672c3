// Package tsp_test exercises Prim's MST over dense metric matrices: total
// weight and tree shape on a known instance, tie-break determinism under
// uniform weights, and the disconnection sentinel when +Inf isolates a vertex.
package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/tsplab/workbench/tsp"
)

// degreeSequence returns, for an undirected simple-graph adjacency list, the
// degree of each vertex (its row length).
func degreeSequence(adj [][]int) []int {
	deg := make([]int, len(adj))
	for v, row := range adj {
		deg[v] = len(row)
	}

	return deg
}

func TestMST_PathGraph_WeightAndDegrees(t *testing.T) {
	// A 4-vertex metric where the unique MST is the path 0-1-2-3 (weight 1 per
	// hop); cross edges cost 2, heavy enough to rule out any other spanning tree.
	a := [][]float64{
		{0, 1, 2, 2},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{2, 2, 1, 0},
	}

	total, adj, err := tsp.MinimumSpanningTree(testDense{a: a})
	if err != nil {
		t.Fatalf("MinimumSpanningTree failed: %v", err)
	}

	mustFloatClose(t, total, 3.0, 0, 1e-12)

	if got := edgesCount(adj); got != 3 {
		t.Fatalf("edge count = %d, want 3; adj=%+v", got, adj)
	}

	mustEqualInts(t, degreeSequence(adj), []int{1, 2, 2, 1})
}

func TestMST_UniformWeights_TieBreaksTowardStarAtZero(t *testing.T) {
	// Every off-diagonal weight equal to 1: Prim's "first vertex seen at the
	// minimal cost wins" tie-break, combined with root=0, always produces a
	// star rooted at 0.
	const n = 6
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		for j := range a[i] {
			if i != j {
				a[i][j] = 1
			}
		}
	}

	total, adj, err := tsp.MinimumSpanningTree(testDense{a: a})
	if err != nil {
		t.Fatalf("MinimumSpanningTree failed: %v", err)
	}

	mustFloatClose(t, total, float64(n-1), 0, 1e-12)

	deg := degreeSequence(adj)
	if deg[0] != n-1 {
		t.Fatalf("deg(0) = %d, want %d; adj=%+v", deg[0], n-1, adj)
	}
	for v := 1; v < n; v++ {
		if deg[v] != 1 {
			t.Fatalf("deg(%d) = %d, want 1; adj=%+v", v, deg[v], adj)
		}
	}
}

func TestMST_IsolatedVertexByInfinity_ErrIncompleteGraph(t *testing.T) {
	inf := math.Inf(1)
	a := [][]float64{
		{0, 1, 1, inf},
		{1, 0, 1, inf},
		{1, 1, 0, inf},
		{inf, inf, inf, 0},
	}

	if _, _, err := tsp.MinimumSpanningTree(testDense{a: a}); !errors.Is(err, tsp.ErrIncompleteGraph) {
		t.Fatalf("want ErrIncompleteGraph, got %v", err)
	}
}
