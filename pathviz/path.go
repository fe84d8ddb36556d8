// Package pathviz reconstructs and renders the path an lpastar.Engine
// has computed. Path reconstruction and rendering are explicitly
// external collaborators of the core (spec §1): the engine exposes
// only per-vertex g/rhs/successor/predecessor queries, and everything
// in this package is built purely on top of that public surface.
package pathviz

import (
	"errors"
	"math"

	"github.com/go-lpastar/lpastar/lpastar"
)

// ErrNoPath indicates goal is unreachable from start in e, so no path
// exists to reconstruct.
var ErrNoPath = errors.New("pathviz: no path to reconstruct")

// ReconstructPath walks backward from goal to start, at each step
// choosing the predecessor with the smallest g value, following
// original_source/main.c's print_path backtracking rule. It returns
// the path from start to goal in forward order, or ErrNoPath if
// goal's g is +Inf or no predecessor chain reaches start.
func ReconstructPath(e *lpastar.Engine, start, goal lpastar.VertexID) ([]lpastar.VertexID, error) {
	if math.IsInf(e.G(goal), 1) {
		return nil, ErrNoPath
	}

	path := []lpastar.VertexID{goal}
	cur := goal
	for cur != start {
		preds := e.Predecessors(cur)
		if len(preds) == 0 {
			return nil, ErrNoPath
		}
		best := preds[0]
		bestG := e.G(best)
		for _, p := range preds[1:] {
			if g := e.G(p); g < bestG {
				best, bestG = p, g
			}
		}
		if math.IsInf(bestG, 1) {
			return nil, ErrNoPath
		}
		cur = best
		path = append(path, cur)
	}

	reverse(path)
	return path, nil
}

func reverse(path []lpastar.VertexID) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}
