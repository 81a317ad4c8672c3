// Package tsp_test exercises Eulerian circuit construction and the shortcut
// step that turns one into a Hamiltonian tour, the two building blocks
// Christofides adds on top of a minimum spanning tree.
package tsp_test

import (
	"math"
	"slices"
	"testing"

	"github.com/tsplab/workbench/tsp"
)

// degreesOf returns the degree each vertex accumulates in a closed walk,
// counting every consecutive pair walk[i]-walk[i+1] as one edge.
func degreesOf(walk []int, n int) []int {
	deg := make([]int, n)
	for i := 0; i+1 < len(walk); i++ {
		if u := walk[i]; u >= 0 && u < n {
			deg[u]++
		}
		if v := walk[i+1]; v >= 0 && v < n {
			deg[v]++
		}
	}

	return deg
}

// TestEulerian_DoublesMSTIntoEvenDegreeCircuit doubles every MST edge (the
// classic trick for forcing parity) and checks the resulting circuit closes
// at startV, has the expected edge count, and leaves no odd-degree vertex.
func TestEulerian_DoublesMSTIntoEvenDegreeCircuit(t *testing.T) {
	const n = 5
	pts := make([][2]float64, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(th), math.Sin(th)}
	}
	m := euclid(pts)

	_, mstAdj, err := tsp.MinimumSpanningTree(m)
	if err != nil {
		t.Fatalf("MinimumSpanningTree failed: %v", err)
	}
	multi := doubleAdj(mstAdj)

	wantEdges := 2 * (n - 1)
	if got := edgesCount(multi); got != wantEdges {
		t.Fatalf("unexpected multigraph size: got |E|=%d want=%d", got, wantEdges)
	}

	walk := tsp.EulerianCircuit(multi, startV)
	if len(walk) != wantEdges+1 {
		t.Fatalf("walk length mismatch: got=%d want=%d", len(walk), wantEdges+1)
	}
	if walk[0] != startV || walk[len(walk)-1] != startV {
		t.Fatalf("walk must start/end at %d: first=%d last=%d", startV, walk[0], walk[len(walk)-1])
	}

	for v, d := range degreesOf(walk, n) {
		if d&1 != 0 {
			t.Fatalf("degree parity must be even: deg[%d]=%d", v, d)
		}
	}
}

// TestEulerian_ShortcutProducesValidTourWithinDoubledTreeBound shortcuts a
// doubled-MST Eulerian walk to a Hamiltonian tour and checks the classical
// doubled-tree approximation bound: cost <= 2 x MST weight.
func TestEulerian_ShortcutProducesValidTourWithinDoubledTreeBound(t *testing.T) {
	const n = 6
	pts := make([][2]float64, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.03*math.Cos(3*th)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}
	m := euclid(pts)

	mstW, mstAdj, err := tsp.MinimumSpanningTree(m)
	if err != nil {
		t.Fatalf("MinimumSpanningTree failed: %v", err)
	}
	multi := doubleAdj(mstAdj)

	walk := tsp.EulerianCircuit(multi, startV)
	tour, err := tsp.ShortcutEulerianToHamiltonian(walk, n, startV)
	if err != nil {
		t.Fatalf("ShortcutEulerianToHamiltonian failed: %v", err)
	}

	if err = tsp.ValidateTour(tour, n, startV); err != nil {
		t.Fatalf("Hamiltonian tour invalid: %v", err)
	}
	cost, err := tsp.TourCost(m, tour)
	if err != nil {
		t.Fatalf("TourCost failed: %v", err)
	}
	if !(cost > 0) || math.IsInf(cost, 0) || math.IsNaN(cost) {
		t.Fatalf("unexpected tour cost: %.12f", cost)
	}

	limit := 2.0 * mstW
	if round1e9(cost) > round1e9(limit) {
		t.Fatalf("shortcut cost exceeds 2xMST: cost=%.12f mst=%.12f limit=%.12f", cost, mstW, limit)
	}
}

// TestEulerian_RepeatedRunsAgree checks that EulerianCircuit is deterministic
// for a fixed adjacency order — no RNG is involved anywhere in the walk.
func TestEulerian_RepeatedRunsAgree(t *testing.T) {
	const n = 9
	pts := make([][2]float64, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.02*math.Sin(5*th)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}
	m := euclid(pts)

	_, adj, err := tsp.MinimumSpanningTree(m)
	if err != nil {
		t.Fatalf("MinimumSpanningTree failed: %v", err)
	}
	multi := doubleAdj(adj)

	var first []int
	Repeat(t, 3, func(t *testing.T) {
		walk := tsp.EulerianCircuit(multi, startV)
		if first == nil {
			first = append([]int(nil), walk...)
			return
		}
		if !slices.Equal(walk, first) {
			t.Fatalf("nondeterministic Eulerian circuit.\nfirst: %v\nthis:  %v", first, walk)
		}
	})
}

// TestEulerian_NoEdgesReturnsStartOnly covers the degenerate all-isolated
// case: with zero edges, the only valid "circuit" is the start vertex alone.
func TestEulerian_NoEdgesReturnsStartOnly(t *testing.T) {
	adj := make([][]int, 4)
	walk := tsp.EulerianCircuit(adj, startV)
	if len(walk) != 1 || walk[0] != startV {
		t.Fatalf("want single-vertex walk [%d], got %v", startV, walk)
	}
}
