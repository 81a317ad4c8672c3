// Package tsp — Eulerian circuit construction for the Christofides pipeline.
//
// EulerianCircuit walks an undirected multigraph (adjacency lists built from
// an MST plus a matching on its odd-degree vertices) into a single closed
// circuit via Hierholzer's algorithm. The graph is first lowered into a
// half-edge structure with explicit twin pointers so that marking an edge
// "used" is O(1) and the whole traversal runs in O(E) with no quadratic
// splicing.
//
// Preconditions (guaranteed by the Christofides call site, not re-checked
// here): adj is symmetric (u→v implies a matching v→u half-edge), every
// vertex has even degree, and 0 <= start < len(adj).
//
// Postcondition: the returned walk is closed (walk[0] == walk[last] ==
// start) with len(walk) == E+1, and is deterministic for a given adjacency
// order — no randomness is involved.
package tsp

// halfEdges lowers an undirected multigraph into paired directed half-edges,
// letting Hierholzer's algorithm mark an edge used in O(1) without mutating
// adjacency lists in place.
type halfEdges struct {
	dest     []int   // dest[e] is the endpoint half-edge e points to
	partner  []int   // partner[e] is the opposite half-edge sharing the same undirected edge
	spent    []bool  // spent[e] marks a half-edge already consumed by the walk
	incident [][]int // incident[v] lists the half-edge ids leaving v, in adjacency order
}

// buildHalfEdges converts adjacency lists into a halfEdges graph, pairing
// parallel copies of the same undirected edge {u,v} in the order they are
// encountered.
func buildHalfEdges(adj [][]int) *halfEdges {
	n := len(adj)

	total := 0
	for _, nbrs := range adj {
		total += len(nbrs)
	}

	g := &halfEdges{
		dest:     make([]int, 0, total),
		partner:  make([]int, 0, total),
		incident: make([][]int, n),
	}

	// unmatched[key] holds the half-edge id still waiting for its twin, keyed
	// by the undirected endpoint pair; a missing entry means none is pending.
	unmatched := make(map[uint64]int, total/2+1)

	for u, nbrs := range adj {
		g.incident[u] = make([]int, 0, len(nbrs))
		for _, v := range nbrs {
			if v < 0 || v >= n {
				continue
			}

			e := len(g.dest)
			g.dest = append(g.dest, v)
			g.partner = append(g.partner, -1)
			g.incident[u] = append(g.incident[u], e)

			key := packUndirectedKey(u, v)
			if waiting, ok := unmatched[key]; ok {
				g.partner[e] = waiting
				g.partner[waiting] = e
				delete(unmatched, key)
			} else {
				unmatched[key] = e
			}
		}
	}

	g.spent = make([]bool, len(g.dest))

	return g
}

// nextUnspent advances cursor past already-spent half-edges and returns the
// next one to traverse from v, or -1 if v has none left.
func (g *halfEdges) nextUnspent(v int, cursor []int) int {
	incident := g.incident[v]
	for cursor[v] < len(incident) {
		e := incident[cursor[v]]
		if !g.spent[e] {
			return e
		}
		cursor[v]++
	}

	return -1
}

// traverse consumes half-edge e (and its partner, if paired) and returns the
// vertex it leads to.
func (g *halfEdges) traverse(e int) int {
	g.spent[e] = true
	if g.partner[e] >= 0 {
		g.spent[g.partner[e]] = true
	}

	return g.dest[e]
}

// EulerianCircuit returns a closed Eulerian walk over adj starting at start,
// built with Hierholzer's algorithm.
//
// Complexity: O(E) time and space.
func EulerianCircuit(adj [][]int, start int) []int {
	n := len(adj)
	if n == 0 {
		return nil
	}
	if start < 0 || start >= n {
		start = 0
	}

	g := buildHalfEdges(adj)
	if len(g.dest) == 0 {
		return []int{start}
	}

	cursor := make([]int, n)
	path := make([]int, 0, len(g.dest)+1)
	walk := make([]int, 0, len(g.dest)+1)
	path = append(path, start)

	for len(path) > 0 {
		v := path[len(path)-1]

		e := g.nextUnspent(v, cursor)
		if e < 0 {
			walk = append(walk, v)
			path = path[:len(path)-1]

			continue
		}

		path = append(path, g.traverse(e))
	}

	// walk accumulates in the reverse order a depth-first dead-end search
	// retreats from its stack, but that reversal is itself a valid closed
	// Eulerian walk starting and ending at start.
	return walk
}

// packUndirectedKey encodes the unordered pair {u,v} as a single uint64 so
// parallel copies of the same edge can be paired by map lookup regardless of
// which direction each was recorded in.
func packUndirectedKey(u, v int) uint64 {
	a, b := uint64(u), uint64(v)
	if a > b {
		a, b = b, a
	}

	return a<<32 | b
}
