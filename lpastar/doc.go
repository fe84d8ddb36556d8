// Package lpastar implements Lifelong Planning A* (LPA*), an
// incremental shortest-path algorithm that repairs an existing plan
// after edge costs change instead of recomputing it from scratch.
//
// Every vertex carries two cost estimates: g, the current best-known
// cost-to-come from start, and rhs, a one-step look-ahead recomputed
// from a vertex's predecessors. A vertex is consistent when g == rhs;
// otherwise it is enqueued in a fibheap.Heap keyed on
//
//	key(v) = (min(g,rhs) + h(v), min(g,rhs))
//
// so that ComputeShortestPath always expands the vertex most likely to
// still affect the goal's value first. NotifyEdgeCostChanged lets a
// caller push a localized cost change into the engine; the next
// ComputeShortestPath call repairs only the part of the plan the
// change could have affected, rather than restarting the search.
//
// The engine never logs and never reads from a CSV file, a terminal,
// or any other I/O surface — those concerns belong to gridworld and
// pathviz, which sit outside this package and are connected to it only
// through CostFunc, HeuristicFunc, and VertexID.
package lpastar
