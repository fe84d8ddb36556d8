package lpastar

import "github.com/go-lpastar/lpastar/fibheap"

// VertexID identifies a cell in the four-connected grid by (row, col).
// The grid is the only graph shape this engine supports; a
// general-purpose graph abstraction is not needed by anything in this
// package and is not provided.
type VertexID [2]int

// CostFunc reports the cost of the directed edge from u to v. It must
// be deterministic between calls to NotifyEdgeCostChanged and must
// never return a negative value. A reserved "blocked" value may be any
// very large finite number; +Inf is also permitted.
type CostFunc func(u, v VertexID) float64

// HeuristicFunc reports a lower bound on the remaining cost from v to
// the goal. It is sampled once per vertex during New/Initialize and
// held constant for the lifetime of a search; it must be admissible
// and consistent relative to the cost oracle's values at that time.
type HeuristicFunc func(v VertexID) float64

// vertexState is the per-cell bookkeeping the engine maintains. g and
// rhs follow spec §4.2; h is sampled once and never recomputed.
type vertexState struct {
	g, rhs float64
	h      float64
	handle fibheap.Handle
}

// Engine runs Lifelong Planning A* over a fixed rows x cols grid with
// a single start and goal vertex. Edge costs are read live through the
// cost oracle supplied to New; the heuristic oracle is sampled once.
// An Engine is not safe for concurrent use — spec §5 models a single
// mutation domain per search, matching the cooperative, single-threaded
// scheduling every other package in this module assumes.
type Engine struct {
	rows, cols int
	start, goal VertexID

	cost      CostFunc
	heuristic HeuristicFunc

	vertices []vertexState // row-major, len == rows*cols
	pq       *fibheap.Heap[float64, VertexID]

	opts Options
}

// index returns v's position in the row-major vertices slice.
func (e *Engine) index(v VertexID) int {
	return v[0]*e.cols + v[1]
}

// inBounds reports whether v falls within the grid.
func (e *Engine) inBounds(v VertexID) bool {
	return v[0] >= 0 && v[0] < e.rows && v[1] >= 0 && v[1] < e.cols
}

// state returns a pointer to v's bookkeeping. v must be in bounds.
func (e *Engine) state(v VertexID) *vertexState {
	return &e.vertices[e.index(v)]
}
