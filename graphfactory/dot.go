package graphfactory

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsplab/workbench/core"
)

// WriteDOT renders g as a Graphviz "strict graph" to w: one undirected edge
// statement per core.Edge, labelled with its weight. Vertex labels come from
// names when non-nil (falling back to the vertex's own ID), so a NamedGraph's
// display names can be threaded through without coupling this function to
// the NamedGraph type.
func WriteDOT(w io.Writer, g *core.Graph, names map[string]string) error {
	label := func(v string) string {
		if names != nil {
			if n, ok := names[v]; ok {
				return n
			}
		}
		return v
	}

	var b strings.Builder
	b.WriteString("strict graph workbench {\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %q -- %q [label=%q];\n", label(e.From), label(e.To), fmt.Sprintf("%.2f", e.Weight))
	}
	b.WriteString("}\n")

	_, err := w.Write([]byte(b.String()))
	return err
}

// WriteTourDOT renders a solved tour (a closed walk of vertex IDs, first and
// last entries equal) as a Graphviz directed graph, so the
// rendered arrows show traversal order rather than the underlying instance's
// full edge set.
func WriteTourDOT(w io.Writer, tour []string) error {
	var b strings.Builder
	b.WriteString("digraph tour {\n")
	for i := 0; i+1 < len(tour); i++ {
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", tour[i], tour[i+1], fmt.Sprintf("%d", i+1))
	}
	b.WriteString("}\n")

	_, err := w.Write([]byte(b.String()))
	return err
}
