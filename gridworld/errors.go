package gridworld

import "errors"

// Sentinel errors for gridworld operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: input must have at least one row and one column")

	// ErrNonRectangular indicates CSV rows of differing length.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate fell outside the grid.
	ErrOutOfBounds = errors.New("gridworld: coordinate out of bounds")
)
