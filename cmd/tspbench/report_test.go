// Verifies RunAll's bound computation, advisory-cap skipping, and
// PrintReport's formatting, against the small fixed matrix15 instance.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsplab/workbench/graphfactory"
)

func TestRunAll_Matrix15_BoundsAndCoverage(t *testing.T) {
	g, err := graphfactory.MatrixGraph15()
	if err != nil {
		t.Fatalf("MatrixGraph15: %v", err)
	}

	rows, err := RunAll(g, "matrix15")
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	byName := make(map[string]Row, len(rows))
	for _, r := range rows {
		byName[r.Algo] = r
	}

	mst, ok := byName["lower-bound (MST)"]
	if !ok {
		t.Fatal("missing MST lower-bound row")
	}
	if mst.MeanCost <= 0 {
		t.Fatalf("MST lower bound = %v, want > 0", mst.MeanCost)
	}

	oneTree, ok := byName["lower-bound (1-tree)"]
	if !ok {
		t.Fatal("missing 1-tree lower-bound row")
	}
	if oneTree.MeanCost+1e-6 < mst.MeanCost {
		t.Fatalf("1-tree bound (%v) should never be looser than the MST bound (%v)", oneTree.MeanCost, mst.MeanCost)
	}

	// matrix15 has 15 vertices: within held-karp's 20-cap and christofides'/
	// nearest-neighbor's unbounded scope, but above exhaustive's 10-cap and
	// exhaustive-pruned's 12-cap.
	for _, name := range []string{"held-karp", "christofides", "nearest-neighbor"} {
		r, ok := byName[name]
		if !ok {
			t.Fatalf("missing expected row %q", name)
		}
		if r.Skipped != "" {
			t.Fatalf("%s unexpectedly skipped on a 15-vertex instance: %s", name, r.Skipped)
		}
		if r.Err != nil {
			t.Fatalf("%s returned an error: %v", name, r.Err)
		}
		if !r.SoundVsLB {
			t.Fatalf("%s reported a cost below the proven lower bound", name)
		}
	}

	for _, name := range []string{"exhaustive", "exhaustive-pruned"} {
		r, ok := byName[name]
		if !ok {
			t.Fatalf("missing expected row %q", name)
		}
		if r.Skipped == "" {
			t.Fatalf("%s should be skipped on a 15-vertex instance (above its advisory cap)", name)
		}
	}
}

func TestRunAll_GeneticAlgorithm_SkippedAboveCap(t *testing.T) {
	g, err := graphfactory.RandomEuclidean(60, 1000, 1000, 5)
	if err != nil {
		t.Fatalf("RandomEuclidean: %v", err)
	}
	rows, err := RunAll(g, "random-60")
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	for _, r := range rows {
		if r.Algo == "genetic-algorithm" {
			if r.Skipped == "" {
				t.Fatal("genetic-algorithm should be skipped above its 55-vertex advisory cap")
			}
			return
		}
	}
	t.Fatal("missing genetic-algorithm row")
}

func TestPrintReport_ContainsEachAlgorithm(t *testing.T) {
	rows := []Row{
		{Algo: "lower-bound (MST)", MeanCost: 10},
		{Algo: "christofides", MeanCost: 12, SoundVsLB: true},
		{Algo: "genetic-algorithm", Skipped: "n=100 exceeds advisory cap 55"},
	}
	var buf bytes.Buffer
	PrintReport(&buf, "demo", 100, rows)
	out := buf.String()
	for _, want := range []string{"demo", "lower-bound (MST)", "christofides", "genetic-algorithm", "skipped"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report output missing %q:\n%s", want, out)
		}
	}
}
