package graphfactory

import (
	"math"
	"math/rand"

	"github.com/tsplab/workbench/core"
)

// Point is a 2-D Euclidean coordinate.
type Point struct {
	X, Y float64
}

// EuclideanGraph15 returns the workbench's fixed 15-point Euclidean
// instance: four tight clusters of three points around the corners of a
// square, plus one cluster near the center.
func EuclideanGraph15() (*core.Graph, error) {
	points := []Point{
		{0, 0}, {2, 0}, {1, 1},
		{10, 0}, {12, 0}, {11, 1},
		{0, 10}, {2, 10}, {1, 11},
		{10, 10}, {12, 10}, {11, 11},
		{5, 5}, {6, 5}, {5.5, 6},
	}
	return FromPoints(points)
}

// RandomEuclidean returns a graph of n points drawn uniformly from
// [0,maxX)×[0,maxY), weighted by Euclidean distance. Generation is
// deterministic for a given seed: the constructor owns its RNG rather than
// reading a process-wide source, so repeated builds with equal arguments
// always produce the same instance.
func RandomEuclidean(n int, maxX, maxY float64, seed int64) (*core.Graph, error) {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: rng.Float64() * maxX, Y: rng.Float64() * maxY}
	}
	return FromPoints(points)
}

// FromPoints builds a complete graph over points weighted by Euclidean
// distance, via a gonum simple.WeightedUndirectedGraph intermediate (see
// points.go) so the construction path is exercised against a real graph
// library rather than a bare slice of slices.
func FromPoints(points []Point) (*core.Graph, error) {
	n := len(points)
	return buildWeightedGraph(n, func(i, j int) float64 {
		dx := points[i].X - points[j].X
		dy := points[i].Y - points[j].Y
		return math.Hypot(dx, dy)
	})
}
