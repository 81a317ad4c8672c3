package graphfactory

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/tsplab/workbench/core"
)

// buildWeightedGraph constructs a complete n-vertex undirected weighted
// graph from a pairwise weight function by first populating a gonum
// simple.WeightedUndirectedGraph, then adapting it to a *core.Graph via
// core.FromWeightedUndirected. This is the shared bridge used by every
// Euclidean and TSPLIB-coordinate constructor in this package.
func buildWeightedGraph(n int, weight func(i, j int) float64) (*core.Graph, error) {
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < n; i++ {
		wg.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wg.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(i)),
				T: simple.Node(int64(j)),
				W: weight(i, j),
			})
		}
	}
	return core.FromWeightedUndirected(wg), nil
}
