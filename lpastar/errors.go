package lpastar

import "errors"

// Sentinel errors returned by the lpastar package.
var (
	// ErrNoPath indicates ComputeShortestPath drained the queue with
	// g(goal) still +Inf: the goal is unreachable from start under the
	// current edge costs. This is a normal, non-fatal result.
	ErrNoPath = errors.New("lpastar: goal is unreachable")

	// ErrInvalidDimensions indicates rows or cols was not positive.
	ErrInvalidDimensions = errors.New("lpastar: rows and cols must be positive")

	// ErrStartOutOfBounds indicates the start vertex falls outside the
	// rows x cols grid.
	ErrStartOutOfBounds = errors.New("lpastar: start vertex out of bounds")

	// ErrGoalOutOfBounds indicates the goal vertex falls outside the
	// rows x cols grid.
	ErrGoalOutOfBounds = errors.New("lpastar: goal vertex out of bounds")

	// ErrNilCostFunc indicates a nil cost oracle was supplied to New.
	ErrNilCostFunc = errors.New("lpastar: cost function is nil")

	// ErrNilHeuristicFunc indicates a nil heuristic oracle was supplied
	// to New.
	ErrNilHeuristicFunc = errors.New("lpastar: heuristic function is nil")
)
