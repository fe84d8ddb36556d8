// Package lpastar (root) is the module entry point for go-lpastar: an
// incremental pathfinding library for grids whose edge costs change
// over time.
//
// 🚀 What is go-lpastar?
//
//	A small, dependency-light toolkit that brings together:
//
//	  • A generic Fibonacci heap keyed on lexicographic (k1,k2) pairs
//	  • An LPA* search engine that repairs a plan after local cost
//	    changes instead of recomputing it from scratch
//	  • A grid adapter, path reconstruction and ASCII rendering, and a
//	    runnable CLI harness
//
// ✨ Why LPA*?
//
//   - Incremental    — a localized obstacle only reopens the part of
//     the search the change could actually affect
//   - Optimal        — every ComputeShortestPath call leaves g(goal)
//     at the true shortest distance, exactly like a fresh A* run
//   - I/O-free core  — lpastar never touches a grid, a file, or a
//     logger; those live in the surrounding packages
//
// Everything is organized under:
//
//	fibheap/   — generic Fibonacci-heap priority queue
//	lpastar/   — the LPA* engine: vertex keys, update-vertex, search
//	gridworld/ — 4-connected grid, CSV loading, cost and heuristic oracles
//	pathviz/   — path reconstruction and ASCII grid rendering
//	cmd/lpadroute/ — CLI demo: load a grid, search, apply obstacles, replan
//
// Documented usage scenarios are the Example* functions in each
// package's example_test.go.
//
// Quick mental model:
//
//	g(v)      current shortest known cost to v
//	rhs(v)    one-step lookahead via v's predecessors
//	key(v)    (min(g,rhs)+h(v), min(g,rhs)), ordered lexicographically
//
// See SPEC_FULL.md and DESIGN.md in the module root for the full
// contract and the grounding behind each package.
package lpastar
