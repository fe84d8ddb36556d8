package lpastar

import (
	"math"

	"github.com/go-lpastar/lpastar/fibheap"
)

// New constructs an Engine over a rows x cols four-connected grid with
// the given start and goal vertices, cost oracle, and heuristic
// oracle, and runs Initialize. cost is consulted live on every
// ComputeShortestPath/NotifyEdgeCostChanged call; heuristic is sampled
// once per vertex here and held constant for the engine's lifetime.
func New(rows, cols int, start, goal VertexID, cost CostFunc, heuristic HeuristicFunc, opts ...Option) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}
	if heuristic == nil {
		return nil, ErrNilHeuristicFunc
	}

	e := &Engine{rows: rows, cols: cols, start: start, goal: goal, cost: cost, heuristic: heuristic}
	if !e.inBounds(start) {
		return nil, ErrStartOutOfBounds
	}
	if !e.inBounds(goal) {
		return nil, ErrGoalOutOfBounds
	}

	e.opts = defaultOptions(rows, cols)
	for _, opt := range opts {
		opt(&e.opts)
	}

	e.vertices = make([]vertexState, rows*cols)
	e.pq = fibheap.New[float64, VertexID](e.opts.HeapCapacityHint)
	e.Initialize()
	return e, nil
}

// Initialize resets every vertex to g = rhs = +Inf, sets rhs(start) =
// 0, samples the heuristic for every vertex once, clears the priority
// queue, and enqueues start. Calling Initialize on an Engine that has
// already run a search discards all prior plan state; it is intended
// for building a fresh Engine, not for mid-search resets (use
// NotifyEdgeCostChanged to repair an existing plan instead).
func (e *Engine) Initialize() {
	for i := range e.vertices {
		row, col := i/e.cols, i%e.cols
		v := VertexID{row, col}
		e.vertices[i] = vertexState{
			g:      math.Inf(1),
			rhs:    math.Inf(1),
			h:      e.heuristic(v),
			handle: fibheap.NoHandle,
		}
	}
	e.pq.Reset()

	startState := e.state(e.start)
	startState.rhs = 0
	k1, k2 := e.calculateKey(e.start)
	startState.handle = e.pq.Insert(k1, k2, e.start)
}

// calculateKey computes key(v) = (min(g,rhs) + h(v), min(g,rhs)).
func (e *Engine) calculateKey(v VertexID) (float64, float64) {
	s := e.state(v)
	m := math.Min(s.g, s.rhs)
	return m + s.h, m
}

// updateVertex re-synchronizes v's priority-queue membership with its
// current (g, rhs) values, per spec §4.2's update-vertex protocol.
func (e *Engine) updateVertex(v VertexID) {
	s := e.state(v)
	if v != e.start {
		best := math.Inf(1)
		var scratch [4]VertexID
		for _, p := range e.neighborsOf(v, scratch[:0]) {
			cand := e.state(p).g + e.cost(p, v)
			if cand < best {
				best = cand
			}
		}
		s.rhs = best
	}

	if s.handle != fibheap.NoHandle {
		if err := e.pq.Delete(s.handle); err != nil {
			panic("lpastar: vertex handle stale during update-vertex: " + err.Error())
		}
		s.handle = fibheap.NoHandle
	}

	if s.g != s.rhs {
		k1, k2 := e.calculateKey(v)
		s.handle = e.pq.Insert(k1, k2, v)
	}
}

// keyLess reports whether (a1,a2) sorts strictly before (b1,b2).
func keyLess(a1, a2, b1, b2 float64) bool {
	return a1 < b1 || (a1 == b1 && a2 < b2)
}

// ComputeShortestPath drains the priority queue until the stopping
// predicate on the goal is satisfied or the queue empties, following
// the resolved (strict) stopping predicate: continue while
// k_top < key(goal) OR rhs(goal) != g(goal). Returns ErrNoPath if the
// goal's g value is still +Inf once the loop stops.
func (e *Engine) ComputeShortestPath() error {
	for {
		k1, k2, ok := e.pq.PeekMin()
		if !ok {
			break
		}
		gk1, gk2 := e.calculateKey(e.goal)
		goalState := e.state(e.goal)
		if !keyLess(k1, k2, gk1, gk2) && goalState.g == goalState.rhs {
			break
		}

		u, err := e.pq.ExtractMin()
		if err != nil {
			// The PeekMin above already confirmed the queue was
			// non-empty; any error here is a bug in the heap or in our
			// bookkeeping, not a condition the caller can act on.
			panic("lpastar: extract-min failed after successful peek: " + err.Error())
		}
		uState := e.state(u)
		uState.handle = fibheap.NoHandle

		var scratch [4]VertexID
		successors := e.neighborsOf(u, scratch[:0])

		if uState.g > uState.rhs {
			uState.g = uState.rhs
			for _, s := range successors {
				e.updateVertex(s)
			}
		} else {
			uState.g = math.Inf(1)
			e.updateVertex(u)
			for _, s := range successors {
				e.updateVertex(s)
			}
		}
	}

	if math.IsInf(e.state(e.goal).g, 1) {
		return ErrNoPath
	}
	return nil
}

// NotifyEdgeCostChanged informs the engine that the cost oracle's
// value for the directed edge (u, v) has changed. Since costs in this
// grid are stored per target cell, a change at v affects not only v's
// own rhs but, once v's g value is repaired, the rhs of every
// successor of v that depends on g(v) — so this updates v and every
// successor of v (spec §9's "edge-cost change granularity" note). u is
// accepted for interface symmetry with the notify-edge-cost-changed(u, v)
// contract but does not affect which vertices are re-synchronized.
func (e *Engine) NotifyEdgeCostChanged(u, v VertexID) {
	e.updateVertex(v)
	var scratch [4]VertexID
	for _, s := range e.neighborsOf(v, scratch[:0]) {
		e.updateVertex(s)
	}
}

// G returns the current cost-to-come estimate for v.
func (e *Engine) G(v VertexID) float64 { return e.state(v).g }

// RHS returns the current one-step look-ahead value for v.
func (e *Engine) RHS(v VertexID) float64 { return e.state(v).rhs }

// PathCost returns G(goal), the cost of the best known path from start
// to goal. It is +Inf if the goal is unreachable.
func (e *Engine) PathCost() float64 { return e.G(e.goal) }

// Successors returns every four-connected neighbor of v in bounds, in
// a fixed north/south/west/east order.
func (e *Engine) Successors(v VertexID) []VertexID {
	return e.neighborsOf(v, nil)
}

// Predecessors returns every four-connected neighbor of v in bounds.
// The grid is undirected in its adjacency structure (costs may still
// differ by direction, since CostFunc is not required to be
// symmetric), so Predecessors and Successors agree for this engine.
func (e *Engine) Predecessors(v VertexID) []VertexID {
	return e.neighborsOf(v, nil)
}
