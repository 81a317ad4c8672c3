package matrix

import (
	"math"
	"sort"

	"github.com/tsplab/workbench/core"
)

// AdjacencyMatrix wraps a Matrix as a graph adjacency representation.
// VertexIndex maps vertex ID to its row/col in Mat. Missing edges are
// stored as +Inf in Mat (the matrix package's internal sentinel; see
// core.EdgeWeight for the typed boundary callers should prefer instead).
type AdjacencyMatrix struct {
	Mat         Matrix
	VertexIndex map[string]int

	vertexByIndex []string
}

// NewAdjacencyMatrix builds a dense AdjacencyMatrix from a core.Graph.
// Vertex order is lexicographic (core.Graph.Vertices() contract), so the
// resulting matrix is deterministic across runs.
//
// Complexity: O(V^2 + E) to build, O(V^3) additionally if MetricClosure is set.
func NewAdjacencyMatrix(g *core.Graph, opts MatrixOptions) (AdjacencyMatrix, error) {
	if g == nil {
		return AdjacencyMatrix{}, ErrNilGraph
	}

	ids := g.Vertices()
	if !sort.StringsAreSorted(ids) {
		cp := append([]string(nil), ids...)
		sort.Strings(cp)
		ids = cp
	}

	n := len(ids)
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	mat, err := NewDense(max1(n), max1(n))
	if err != nil {
		return AdjacencyMatrix{}, err
	}

	// Initialize: 0 on the diagonal, +Inf everywhere else (no edge yet).
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			_ = mat.Set(i, j, math.Inf(1))
		}
	}

	loopSeen := make([]bool, n)
	for _, e := range g.Edges() {
		i, okI := idx[e.From]
		j, okJ := idx[e.To]
		if !okI || !okJ {
			continue
		}
		if i == j && !opts.AllowLoops {
			continue
		}

		w := e.Weight
		if !opts.Weighted {
			w = 1
		}

		if opts.AllowMulti {
			cur, _ := mat.At(i, j)
			if i == j && !loopSeen[i] {
				// The diagonal starts at 0 rather than +Inf, so the first
				// self-loop on a vertex is always written.
				cur = math.Inf(1)
				loopSeen[i] = true
			}
			if w < cur {
				_ = mat.Set(i, j, w)
			}
		} else {
			_ = mat.Set(i, j, w)
		}

		if !opts.Directed && !e.Directed && i != j {
			if opts.AllowMulti {
				cur, _ := mat.At(j, i)
				if w < cur {
					_ = mat.Set(j, i, w)
				}
			} else {
				_ = mat.Set(j, i, w)
			}
		}
	}

	if opts.MetricClosure && n > 0 {
		floydWarshallClosure(mat)
	}

	return AdjacencyMatrix{Mat: mat, VertexIndex: idx, vertexByIndex: ids}, nil
}

// VertexAt returns the vertex ID stored at row/col index i.
func (am AdjacencyMatrix) VertexAt(i int) (string, error) {
	if i < 0 || i >= len(am.vertexByIndex) {
		return "", ErrIndexOutOfBounds
	}

	return am.vertexByIndex[i], nil
}

// floydWarshallClosure replaces unreachable (+Inf) entries in place with
// shortest-path distances, leaving already-finite entries untouched when
// they are already optimal.
// Complexity: O(n^3).
func floydWarshallClosure(m Matrix) {
	n := m.Rows()
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik, _ := m.At(i, k)
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj, _ := m.At(k, j)
				if math.IsInf(dkj, 1) {
					continue
				}
				dij, _ := m.At(i, j)
				if dik+dkj < dij {
					_ = m.Set(i, j, dik+dkj)
				}
			}
		}
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}

	return n
}
