// Package gridworld builds the grid-shaped cost oracle and heuristic
// that the lpastar package consumes. It is a harness concern, deliberately
// kept outside the core per spec: the engine never imports this
// package, and any of LoadCSV, NewUniform, or the oracle adapters could
// be replaced without touching lpastar.
package gridworld

import "github.com/go-lpastar/lpastar/lpastar"

// BlockedThreshold is the per-cell cost at or above which a cell is
// considered an impassable obstacle, matching the original reference
// implementation's convention of marking obstacles with cost 100 on a
// unit-cost grid.
const BlockedThreshold = 100

// DefaultCost is substituted for any missing or non-positive cell
// value loaded from CSV.
const DefaultCost = 1

// Grid is a rows x cols table of per-cell traversal costs; SetCost
// changes a cell in place.
// A cell's cost is charged to any edge whose destination is that cell,
// matching original_source/main.c's get_edge_cost, which looks up cost
// by target cell only.
type Grid struct {
	rows, cols       int
	costs            []float64 // row-major
	defaultCost      float64
	blockedThreshold float64
}

// Rows reports the grid's row count.
func (g Grid) Rows() int { return g.rows }

// Cols reports the grid's column count.
func (g Grid) Cols() int { return g.cols }

// index maps (row, col) to a row-major offset into costs.
func (g Grid) index(row, col int) int { return row*g.cols + col }

// InBounds reports whether (row, col) lies within the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CostAt returns the traversal cost charged to cell (row, col).
func (g Grid) CostAt(row, col int) float64 {
	return g.costs[g.index(row, col)]
}

// SetCost mutates the cost of the cell at v, returning ErrOutOfBounds
// if v falls outside the grid. The caller is responsible for then
// calling the engine's NotifyEdgeCostChanged for v and each of its
// successors, since a Grid has no reference back to any Engine using
// it (spec §9's "the caller decides granularity").
func (g *Grid) SetCost(v lpastar.VertexID, cost float64) error {
	if !g.InBounds(v[0], v[1]) {
		return ErrOutOfBounds
	}
	g.costs[g.index(v[0], v[1])] = cost
	return nil
}

// IsBlocked reports whether the cell at v is at or above the grid's
// blocked threshold (BlockedThreshold, unless overridden by
// WithBlockedThreshold at construction time).
func (g Grid) IsBlocked(v lpastar.VertexID) bool {
	return g.CostAt(v[0], v[1]) >= g.blockedThreshold
}

// CostOracle adapts Grid into an lpastar.CostFunc: the cost of moving
// into v is v's own cell cost, regardless of which neighbor u it is
// entered from, matching original_source/main.c's target-cell cost
// model.
func (g Grid) CostOracle() lpastar.CostFunc {
	return func(u, v lpastar.VertexID) float64 {
		if !g.InBounds(v[0], v[1]) {
			return g.defaultCost
		}
		return g.CostAt(v[0], v[1])
	}
}

// ManhattanHeuristic returns an lpastar.HeuristicFunc giving the
// Manhattan distance from any vertex to goal, admissible and
// consistent whenever every edge cost is >= 1. Load keeps any positive
// CSV value as given, so a cell costing less than 1 breaks that bound.
func (g Grid) ManhattanHeuristic(goal lpastar.VertexID) lpastar.HeuristicFunc {
	return func(v lpastar.VertexID) float64 {
		dr := v[0] - goal[0]
		if dr < 0 {
			dr = -dr
		}
		dc := v[1] - goal[1]
		if dc < 0 {
			dc = -dc
		}
		return float64(dr + dc)
	}
}
