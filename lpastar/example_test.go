// File: lpastar/example_test.go
package lpastar_test

import (
	"fmt"

	"github.com/go-lpastar/lpastar/lpastar"
)

////////////////////////////////////////////////////////////////////////////////
// Example: straight-line search
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine demonstrates computing a path across a 1x5 corridor of
// uniform cost.
func ExampleEngine() {
	start, goal := lpastar.VertexID{0, 0}, lpastar.VertexID{0, 4}
	e, _ := lpastar.New(1, 5, start, goal, uniformCost(1, nil), manhattan(goal))

	e.ComputeShortestPath()
	fmt.Println(e.PathCost())
	// Output:
	// 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: incremental repair after an edge-cost change
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_NotifyEdgeCostChanged demonstrates repairing an
// existing plan after a cell becomes expensive, without recomputing
// the whole search from scratch.
func ExampleEngine_NotifyEdgeCostChanged() {
	start, goal := lpastar.VertexID{0, 0}, lpastar.VertexID{0, 4}
	blocked := map[lpastar.VertexID]float64{}
	e, _ := lpastar.New(2, 5, start, goal, uniformCost(1, blocked), manhattan(goal))

	e.ComputeShortestPath()
	fmt.Println(e.PathCost())

	blocked[lpastar.VertexID{0, 2}] = 100
	e.NotifyEdgeCostChanged(lpastar.VertexID{0, 1}, lpastar.VertexID{0, 2})

	e.ComputeShortestPath()
	fmt.Println(e.PathCost())
	// Output:
	// 4
	// 6
}
