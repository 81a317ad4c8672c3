package graphfactory

import "github.com/tsplab/workbench/core"

// NamedGraph pairs a *core.Graph with human-readable labels for display
// purposes only. No package tsp solver reads NamedGraph; callers extract
// the plain Graph for solving and consult Name only to print results.
type NamedGraph struct {
	Graph *core.Graph
	names map[string]string
}

// NewNamedGraph wraps g with no names assigned yet.
func NewNamedGraph(g *core.Graph) *NamedGraph {
	return &NamedGraph{Graph: g, names: make(map[string]string)}
}

// SetName assigns a display label to vertex, overwriting any prior label.
func (ng *NamedGraph) SetName(vertex, label string) {
	ng.names[vertex] = label
}

// Name returns vertex's display label, or vertex itself if none was set.
func (ng *NamedGraph) Name(vertex string) string {
	if label, ok := ng.names[vertex]; ok {
		return label
	}
	return vertex
}

// NamedEuclideanGraph15 returns EuclideanGraph15 wrapped with quadrant
// labels: four corner clusters plus a center cluster.
func NamedEuclideanGraph15() (*NamedGraph, error) {
	g, err := EuclideanGraph15()
	if err != nil {
		return nil, err
	}
	ng := NewNamedGraph(g)
	labels := []string{
		"SW-1", "SW-2", "SW-3",
		"SE-1", "SE-2", "SE-3",
		"NW-1", "NW-2", "NW-3",
		"NE-1", "NE-2", "NE-3",
		"Center-1", "Center-2", "Center-3",
	}
	for i, label := range labels {
		ng.SetName(vertexID(i), label)
	}
	return ng, nil
}
