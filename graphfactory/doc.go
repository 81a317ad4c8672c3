// Package graphfactory builds TSP problem instances for the comparative
// workbench: hand-coded distance-matrix literals, Euclidean point sets
// (fixed or randomly generated), and a TSPLIB-format reader, plus a
// display-only named-vertex wrapper and a DOT-file exporter for the
// resulting tours.
//
// None of this is consumed by package tsp: every constructor here returns
// a plain *core.Graph, which tsp.SolveWithGraph accepts without knowing
// where the instance came from. Instance factories, named-vertex display,
// and DOT export are collaborators of the solver core, not part of it.
package graphfactory
