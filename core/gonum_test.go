package core_test

import (
	"testing"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/tsplab/workbench/core"
)

// TestFromWeightedUndirected_RoundTrip verifies that vertices and weighted
// edges in a gonum WeightedUndirectedGraph survive the bridge into a
// workbench Graph, including isolated vertices with no incident edge.
func TestFromWeightedUndirected_RoundTrip(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)

	n0 := simple.Node(0)
	n1 := simple.Node(1)
	n2 := simple.Node(2)
	g.AddNode(n0)
	g.AddNode(n1)
	g.AddNode(n2) // isolated: no incident edge

	g.SetWeightedEdge(simple.WeightedEdge{F: n0, T: n1, W: 7})

	out := core.FromWeightedUndirected(g)

	MustEqualInt(t, out.VertexCount(), 3, "VertexCount after bridge")
	MustEqualInt(t, out.EdgeCount(), 1, "EdgeCount after bridge")
	MustEqualBool(t, out.HasEdge("0", "1"), true, "HasEdge(0,1) after bridge")
	MustEqualBool(t, out.HasEdge("1", "0"), true, "HasEdge(1,0) mirror after bridge")

	w := out.Weight("0", "1")
	v, ok := w.Value()
	MustEqualBool(t, ok, true, "Weight(0,1).Value() ok")
	if v != 7 {
		t.Fatalf("Weight(0,1).Value() = %v, want 7", v)
	}

	MustEqualBool(t, out.HasEdge("2", "0"), false, "isolated vertex 2 must have no edges")
}

// TestFromWeightedUndirected_NoDoubleCounting verifies that each undirected
// edge is copied exactly once, not twice (once per direction of g.From).
func TestFromWeightedUndirected_NoDoubleCounting(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	n0, n1, n2 := simple.Node(0), simple.Node(1), simple.Node(2)
	g.AddNode(n0)
	g.AddNode(n1)
	g.AddNode(n2)
	g.SetWeightedEdge(simple.WeightedEdge{F: n0, T: n1, W: 1})
	g.SetWeightedEdge(simple.WeightedEdge{F: n1, T: n2, W: 2})
	g.SetWeightedEdge(simple.WeightedEdge{F: n0, T: n2, W: 3})

	out := core.FromWeightedUndirected(g)
	MustEqualInt(t, out.EdgeCount(), 3, "EdgeCount for a 3-vertex triangle")
}
