package matrix

// MatrixOptions configures how an AdjacencyMatrix is built from a core.Graph.
//   - Directed:      treat edges as directed (true) or undirected (false).
//   - Weighted:      preserve edge weights when true; otherwise treat all edges as weight 1.
//   - AllowMulti:    collapse parallel edges to their minimum weight when true;
//     when false, the last parallel edge written wins.
//   - AllowLoops:    include self-loops when true; otherwise skip them.
//   - MetricClosure: fill missing edges via all-pairs shortest path before returning.
//
// Use NewMatrixOptions to create with default values and overrides.
type MatrixOptions struct {
	Directed      bool
	Weighted      bool
	AllowMulti    bool
	AllowLoops    bool
	MetricClosure bool
}

// Option configures a MatrixOptions instance.
type Option func(*MatrixOptions)

// WithDirected returns an Option that sets the Directed field.
func WithDirected(d bool) Option {
	return func(o *MatrixOptions) { o.Directed = d }
}

// WithWeighted returns an Option that sets the Weighted field.
func WithWeighted(w bool) Option {
	return func(o *MatrixOptions) { o.Weighted = w }
}

// WithAllowMulti returns an Option that sets the AllowMulti field.
func WithAllowMulti(m bool) Option {
	return func(o *MatrixOptions) { o.AllowMulti = m }
}

// WithAllowLoops returns an Option that sets the AllowLoops field.
func WithAllowLoops(l bool) Option {
	return func(o *MatrixOptions) { o.AllowLoops = l }
}

// WithMetricClosure returns an Option that sets the MetricClosure field.
func WithMetricClosure(mc bool) Option {
	return func(o *MatrixOptions) { o.MetricClosure = mc }
}

// NewMatrixOptions constructs a MatrixOptions with the given Options applied.
// Defaults: Directed=false, Weighted=true, AllowMulti=true, AllowLoops=false,
// MetricClosure=false.
func NewMatrixOptions(opts ...Option) MatrixOptions {
	mo := MatrixOptions{
		Directed:      false,
		Weighted:      true,
		AllowMulti:    true,
		AllowLoops:    false,
		MetricClosure: false,
	}
	for _, opt := range opts {
		opt(&mo)
	}

	return mo
}
