// Package tsp_test exercises the Held-Karp 1-tree lower bound: strict
// sentinels on malformed input, degree invariants on the resulting 1-tree,
// tightness on a triangle, sanity on a pentagon, and root-scan stability.
package tsp_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tsplab/workbench/matrix"
	"github.com/tsplab/workbench/tsp"
)

// degreeSum adds up a degree vector; used to check the handshake identity
// Σdeg == 2n on a 1-tree.
func degreeSum(deg []int) int {
	total := 0
	for _, d := range deg {
		total += d
	}

	return total
}

// triangleMetric builds a 3x3 symmetric metric with edges d01=1, d12=2,
// d20=3; the optimal Hamiltonian cycle costs 1+2+3=6 and the 1-tree matches
// it exactly at n=3.
func triangleMetric() matrix.Matrix {
	a := [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	}

	return testDense{a: a}
}

// tamperedTriangle clones a symmetric 3x3 baseline and overwrites (i,j) (and
// its mirror (j,i)) with w, for probing individual validation sentinels.
func tamperedTriangle(i, j int, w float64) matrix.Matrix {
	base := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	base[i][j], base[j][i] = w, w

	return testDense{a: base}
}

// checkOneTreeDegrees asserts the standard 1-tree degree invariants: the
// root has degree 2, every other vertex has degree >=1, and degrees sum to
// 2n.
func checkOneTreeDegrees(t *testing.T, deg []int, n, root int) {
	t.Helper()

	if len(deg) != n {
		t.Fatalf("degree vector length mismatch: got=%d want=%d", len(deg), n)
	}
	if deg[root] != 2 {
		t.Fatalf("root degree mismatch: got=%d want=2", deg[root])
	}
	for v, d := range deg {
		if v != root && d < 1 {
			t.Fatalf("non-root degree must be >=1: deg[%d]=%d", v, d)
		}
	}
	if got, want := degreeSum(deg), 2*n; got != want {
		t.Fatalf("degree sum mismatch: got=%d want=%d", got, want)
	}
}

// TestOneTreeBound_RejectsMalformedInput checks every strict sentinel the
// bound must raise before touching the subgradient loop: non-square shape,
// an out-of-range root, a NaN entry, a negative entry, and a disconnecting
// +Inf entry. A nil matrix is deliberately not probed here since calling
// Rows() on a nil interface panics at this layer; that path is covered by
// the dispatcher-level validation tests instead.
func TestOneTreeBound_RejectsMalformedInput(t *testing.T) {
	cfg := tsp.DefaultOneTreeConfig()

	cases := []struct {
		name string
		m    matrix.Matrix
		root int
		want error
	}{
		{
			name: "non-square shape",
			m: mkNonSquare([][]float64{
				{0, 1, 2},
				{1, 0, 3},
			}),
			root: 0,
			want: tsp.ErrNonSquare,
		},
		{
			name: "NaN entry caught during dense prefetch",
			m:    tamperedTriangle(0, 1, math.NaN()),
			root: 0,
			want: tsp.ErrDimensionMismatch,
		},
		{
			name: "negative entry",
			m:    tamperedTriangle(0, 1, -1),
			root: 0,
			want: tsp.ErrNegativeWeight,
		},
		{
			name: "+Inf entry disconnects the MST stage",
			m:    tamperedTriangle(1, 2, math.Inf(1)),
			root: 0,
			want: tsp.ErrIncompleteGraph,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			Repeat(t, 2, func(t *testing.T) {
				_, _, err := tsp.OneTreeLowerBound(tc.m, tc.root, true, cfg)
				if !errors.Is(err, tc.want) {
					t.Fatalf("want %v, got %v", tc.want, err)
				}
			})
		})
	}

	// Out-of-range root surfaces either a dedicated sentinel or falls back
	// to ErrDimensionMismatch depending on where validation intercepts it;
	// accept either strictly rather than pick one.
	Repeat(t, 2, func(t *testing.T) {
		_, _, err := tsp.OneTreeLowerBound(triangleMetric(), 9, true, cfg)
		if !(errors.Is(err, tsp.ErrDimensionMismatch) || strings.Contains(err.Error(), "start vertex out of range")) {
			t.Fatalf("want ErrDimensionMismatch (or 'start vertex out of range'), got %v", err)
		}
	})
}

// TestOneTreeBound_TightOnTriangle checks that for n=3 the 1-tree bound is
// tight against the optimal tour cost for any multipliers, and that the
// degree invariants hold.
func TestOneTreeBound_TightOnTriangle(t *testing.T) {
	const n = 3
	const root = 0
	cfg := tsp.DefaultOneTreeConfig()

	lb, deg, err := tsp.OneTreeLowerBound(triangleMetric(), root, true, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	const want = 6.0
	if round1e9(lb) != round1e9(want) {
		t.Fatalf("triangle bound mismatch: got=%.12f want=%.12f", lb, want)
	}

	checkOneTreeDegrees(t, deg, n, root)
}

// TestOneTreeBound_SaneOnPentagon checks that the bound stays positive and
// never exceeds a trivial feasible perimeter tour on a regular pentagon,
// with degree invariants intact.
func TestOneTreeBound_SaneOnPentagon(t *testing.T) {
	const n = 5
	cfg := tsp.DefaultOneTreeConfig()

	pts := make([][2]float64, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}
	m := euclid(pts)

	perim := []int{0, 1, 2, 3, 4, 0}
	perimCost, err := tsp.TourCost(m, perim)
	if err != nil {
		t.Fatalf("TourCost failed on perimeter: %v", err)
	}

	lb, deg, err := tsp.OneTreeLowerBound(m, 0, true, cfg)
	if err != nil {
		t.Fatalf("OneTreeLowerBound failed: %v", err)
	}

	if !(lb > 0) {
		t.Fatalf("lower bound must be positive: %.12f", lb)
	}
	if round1e9(lb) > round1e9(perimCost) {
		t.Fatalf("lower bound exceeds a feasible tour: lb=%.12f perim=%.12f", lb, perimCost)
	}

	checkOneTreeDegrees(t, deg, n, 0)
}

// TestOneTreeBound_StableAcrossRoots checks that the rounded minimum bound
// found across all roots on one instance never gets undercut by a repeat
// single-root recomputation.
func TestOneTreeBound_StableAcrossRoots(t *testing.T) {
	const n = 8
	cfg := tsp.DefaultOneTreeConfig()

	pts := make([][2]float64, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.04*math.Cos(3*theta)
		pts[i] = [2]float64{r * math.Cos(theta), r * math.Sin(theta)}
	}
	m := euclid(pts)

	var minRounded int64
	haveMin := false

	for root := 0; root < n; root++ {
		lb, deg, err := tsp.OneTreeLowerBound(m, root, true, cfg)
		if err != nil {
			t.Fatalf("OneTreeLowerBound failed for root=%d: %v", root, err)
		}
		if len(deg) != n || deg[root] != 2 || degreeSum(deg) != 2*n {
			t.Fatalf("degree invariants broken for root=%d: deg=%v", root, deg)
		}
		if rnd := round1e9(lb); !haveMin || rnd < minRounded {
			minRounded, haveMin = rnd, true
		}
	}

	for root := 0; root < n; root++ {
		lb, _, err := tsp.OneTreeLowerBound(m, root, true, cfg)
		if err != nil {
			t.Fatalf("repeat OneTreeLowerBound failed for root=%d: %v", root, err)
		}
		if round1e9(lb) < minRounded {
			t.Fatalf("found a rounded bound below the recorded min: root=%d lb=%.12f min=%.12f",
				root, lb, float64(minRounded)/1e9)
		}
	}
}
