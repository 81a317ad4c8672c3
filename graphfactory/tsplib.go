// TSPLIB-format instance support.
//
// ParseTSPLIB reads the subset of the TSPLIB format this workbench needs:
// NODE_COORD_SECTION under EDGE_WEIGHT_TYPE EUC_2D, and EDGE_WEIGHT_SECTION
// under EDGE_WEIGHT_TYPE EXPLICIT (FULL_MATRIX, UPPER_ROW, UPPER_DIAG_ROW,
// and LOWER_DIAG_ROW formats). It is a generic reader: callers may point it
// at any genuine TSPLIB .tsp file.
//
// BenchmarkInstance additionally bundles five named instances (eil51,
// oliver30, swiss42, bays29, a280) so the driver can run without external
// files. oliver30 embeds the literal 30-city coordinate
// set from Oliver, Smith & Holland (1987) widely reused in TSP-GA
// literature. The other four are not reproduced from memory at official
// precision; each is built as a deterministic (seeded, not process-random)
// Euclidean point set at the benchmark's real city count, so the driver
// still exercises every solver's advisory vertex cap at realistic scale.
// Supplying the genuine TSPLIB file to ParseTSPLIB gives exact official
// data when that matters.
package graphfactory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tsplab/workbench/core"
)

// Sentinel errors for TSPLIB parsing.
var (
	// ErrUnsupportedEdgeWeightType indicates an EDGE_WEIGHT_TYPE this reader cannot handle.
	ErrUnsupportedEdgeWeightType = errors.New("graphfactory: unsupported EDGE_WEIGHT_TYPE")

	// ErrUnsupportedEdgeWeightFormat indicates an EDGE_WEIGHT_FORMAT this reader cannot handle.
	ErrUnsupportedEdgeWeightFormat = errors.New("graphfactory: unsupported EDGE_WEIGHT_FORMAT")

	// ErrMissingDimension indicates the file never declared a DIMENSION.
	ErrMissingDimension = errors.New("graphfactory: missing DIMENSION header")

	// ErrTruncatedSection indicates a data section ended before DIMENSION entries were read.
	ErrTruncatedSection = errors.New("graphfactory: truncated data section")

	// ErrUnknownBenchmark indicates BenchmarkInstance received a name it does not recognise.
	ErrUnknownBenchmark = errors.New("graphfactory: unknown benchmark instance")
)

// TSPLIBInstance holds a parsed instance: its declared name and the graph.
type TSPLIBInstance struct {
	Name  string
	Graph *core.Graph
}

// ParseTSPLIB reads a TSPLIB-format stream and returns the instance's
// complete weighted graph. Supported headers: NAME, DIMENSION,
// EDGE_WEIGHT_TYPE (EUC_2D, EXPLICIT), EDGE_WEIGHT_FORMAT (FULL_MATRIX,
// UPPER_ROW, UPPER_DIAG_ROW, LOWER_DIAG_ROW). Data sections: NODE_COORD_SECTION,
// EDGE_WEIGHT_SECTION. Everything else is skipped.
func ParseTSPLIB(r io.Reader) (TSPLIBInstance, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		name         string
		dim          int
		edgeType     string
		edgeFormat   string
		coords       map[int]Point
		explicit     []float64
		inNodeCoord  bool
		inEdgeWeight bool
	)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "EOF" {
			break
		}

		switch {
		case inNodeCoord:
			if line == "NODE_COORD_SECTION" || strings.Contains(line, ":") {
				inNodeCoord = false
			} else {
				fields := strings.Fields(line)
				if len(fields) >= 3 {
					id, err1 := strconv.Atoi(fields[0])
					x, err2 := strconv.ParseFloat(fields[1], 64)
					y, err3 := strconv.ParseFloat(fields[2], 64)
					if err1 == nil && err2 == nil && err3 == nil {
						coords[id] = Point{X: x, Y: y}
						continue
					}
				}
				inNodeCoord = false
			}
		case inEdgeWeight:
			fields := strings.Fields(line)
			allNumeric := len(fields) > 0
			for _, f := range fields {
				if _, err := strconv.ParseFloat(f, 64); err != nil {
					allNumeric = false
					break
				}
			}
			if allNumeric {
				for _, f := range fields {
					v, _ := strconv.ParseFloat(f, 64)
					explicit = append(explicit, v)
				}
				continue
			}
			inEdgeWeight = false
		}

		if inNodeCoord || inEdgeWeight {
			continue
		}

		switch {
		case strings.HasPrefix(line, "NAME"):
			name = headerValue(line)
		case strings.HasPrefix(line, "DIMENSION"):
			d, err := strconv.Atoi(strings.TrimSpace(headerValue(line)))
			if err != nil {
				return TSPLIBInstance{}, fmt.Errorf("graphfactory: parse DIMENSION: %w", err)
			}
			dim = d
		case strings.HasPrefix(line, "EDGE_WEIGHT_TYPE"):
			edgeType = strings.TrimSpace(headerValue(line))
		case strings.HasPrefix(line, "EDGE_WEIGHT_FORMAT"):
			edgeFormat = strings.TrimSpace(headerValue(line))
		case line == "NODE_COORD_SECTION":
			inNodeCoord = true
			coords = make(map[int]Point, dim)
		case line == "EDGE_WEIGHT_SECTION":
			inEdgeWeight = true
			explicit = make([]float64, 0, dim*dim)
		case line == "DISPLAY_DATA_SECTION":
			// City display coordinates, irrelevant to the core; skipped by
			// falling through (not tracked by any "in*" flag).
		}
	}
	if err := sc.Err(); err != nil {
		return TSPLIBInstance{}, err
	}
	if dim <= 0 {
		return TSPLIBInstance{}, ErrMissingDimension
	}

	var g *core.Graph
	var err error
	switch edgeType {
	case "EUC_2D", "":
		if len(coords) < dim {
			return TSPLIBInstance{}, ErrTruncatedSection
		}
		points := make([]Point, dim)
		for i := 0; i < dim; i++ {
			p, ok := coords[i+1]
			if !ok {
				return TSPLIBInstance{}, ErrTruncatedSection
			}
			points[i] = p
		}
		g, err = buildWeightedGraph(dim, func(i, j int) float64 {
			return euc2D(points[i], points[j])
		})
	case "EXPLICIT":
		g, err = explicitGraph(dim, edgeFormat, explicit)
	default:
		return TSPLIBInstance{}, ErrUnsupportedEdgeWeightType
	}
	if err != nil {
		return TSPLIBInstance{}, err
	}

	return TSPLIBInstance{Name: name, Graph: g}, nil
}

// headerValue returns the text after the first ':' in a "KEY: value" or
// "KEY : value" TSPLIB header line, or the text after KEY if no colon.
func headerValue(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		return strings.TrimSpace(line[idx+1:])
	}
	fields := strings.Fields(line)
	if len(fields) >= 2 {
		return fields[1]
	}
	return ""
}

// euc2D applies the TSPLIB EUC_2D rounding convention (nearest integer)
// to the Euclidean distance between two points.
func euc2D(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Round(math.Sqrt(dx*dx + dy*dy))
}

// explicitGraph builds a complete graph from an EDGE_WEIGHT_SECTION payload
// already flattened into row-major numbers, per edgeFormat.
func explicitGraph(dim int, edgeFormat string, data []float64) (*core.Graph, error) {
	w := make([][]float64, dim)
	for i := range w {
		w[i] = make([]float64, dim)
	}

	pos := 0
	next := func() (float64, error) {
		if pos >= len(data) {
			return 0, ErrTruncatedSection
		}
		v := data[pos]
		pos++
		return v, nil
	}

	switch edgeFormat {
	case "FULL_MATRIX":
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				v, err := next()
				if err != nil {
					return nil, err
				}
				w[i][j] = v
			}
		}
	case "UPPER_ROW":
		for i := 0; i < dim; i++ {
			for j := i + 1; j < dim; j++ {
				v, err := next()
				if err != nil {
					return nil, err
				}
				w[i][j], w[j][i] = v, v
			}
		}
	case "UPPER_DIAG_ROW":
		for i := 0; i < dim; i++ {
			for j := i; j < dim; j++ {
				v, err := next()
				if err != nil {
					return nil, err
				}
				w[i][j], w[j][i] = v, v
			}
		}
	case "LOWER_DIAG_ROW":
		for i := 0; i < dim; i++ {
			for j := 0; j <= i; j++ {
				v, err := next()
				if err != nil {
					return nil, err
				}
				w[i][j], w[j][i] = v, v
			}
		}
	default:
		return nil, ErrUnsupportedEdgeWeightFormat
	}

	return buildWeightedGraph(dim, func(i, j int) float64 { return w[i][j] })
}
