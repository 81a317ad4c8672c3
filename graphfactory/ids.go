package graphfactory

import "strconv"

// vertexID maps a 0-based vertex index to the decimal string ID every
// constructor in this package uses, matching core.FromWeightedUndirected's
// convention so vertex indices stay stable across the gonum/core boundary.
func vertexID(i int) string {
	return strconv.Itoa(i)
}
