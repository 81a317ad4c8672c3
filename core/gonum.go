package core

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// FromWeightedUndirected adapts a gonum simple.WeightedUndirectedGraph into a
// workbench Graph. Node IDs become decimal string vertex IDs ("0", "1", ...)
// so downstream vertex indices stay stable and independent of gonum's own
// internal ID allocation. Only edges reported by g.Weight are copied; nodes
// present in g but carrying no incident edge still appear as isolated
// vertices so NumVertices() round-trips correctly.
//
// Grounded on gonum.org/v1/gonum/graph/simple's dense-graph test fixtures,
// which build instances the same way: allocate nodes, then SetWeightedEdge
// for every pair.
func FromWeightedUndirected(g *simple.WeightedUndirectedGraph) *Graph {
	out := NewGraph(WithWeighted())

	nodes := graph.NodesOf(g.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	id := func(n graph.Node) string { return strconv.FormatInt(n.ID(), 10) }

	for _, n := range nodes {
		_ = out.AddVertex(id(n))
	}

	seen := make(map[[2]int64]bool)
	for _, n := range nodes {
		for _, m := range graph.NodesOf(g.From(n.ID())) {
			key := orderedPair(n.ID(), m.ID())
			if seen[key] {
				continue
			}
			seen[key] = true
			w, ok := g.Weight(n.ID(), m.ID())
			if !ok {
				continue
			}
			_, _ = out.AddEdge(id(n), id(m), w)
		}
	}

	return out
}

func orderedPair(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}

	return [2]int64{a, b}
}
