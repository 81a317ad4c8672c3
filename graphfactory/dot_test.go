// Package graphfactory_test verifies DOT export produces well-formed
// Graphviz syntax for both full graphs and solved tours.
package graphfactory_test

import (
	"strings"
	"testing"

	"github.com/tsplab/workbench/graphfactory"
)

func TestWriteDOT_ContainsEveryEdge(t *testing.T) {
	g, err := graphfactory.MatrixGraph15()
	if err != nil {
		t.Fatalf("MatrixGraph15: %v", err)
	}
	var b strings.Builder
	if err := graphfactory.WriteDOT(&b, g, nil); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "strict graph workbench {") {
		t.Fatalf("missing graph header, got: %q", out[:40])
	}
	for _, e := range g.Edges() {
		if !strings.Contains(out, `"`+e.From+`" -- "`+e.To+`"`) {
			t.Fatalf("DOT output missing edge %s--%s", e.From, e.To)
		}
	}
}

func TestWriteDOT_UsesNameOverlay(t *testing.T) {
	g, err := graphfactory.EuclideanGraph15()
	if err != nil {
		t.Fatalf("EuclideanGraph15: %v", err)
	}
	names := map[string]string{"0": "Depot"}
	var b strings.Builder
	if err := graphfactory.WriteDOT(&b, g, names); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	if !strings.Contains(b.String(), "Depot") {
		t.Fatal("DOT output did not use the provided name overlay")
	}
}

func TestWriteTourDOT_OneArrowPerStep(t *testing.T) {
	tour := []string{"0", "1", "2", "0"}
	var b strings.Builder
	if err := graphfactory.WriteTourDOT(&b, tour); err != nil {
		t.Fatalf("WriteTourDOT: %v", err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "digraph tour {") {
		t.Fatalf("missing digraph header, got: %q", out[:40])
	}
	wantArrows := []string{`"0" -> "1"`, `"1" -> "2"`, `"2" -> "0"`}
	for _, want := range wantArrows {
		if !strings.Contains(out, want) {
			t.Fatalf("missing arrow %q in output", want)
		}
	}
}
