package lpastar

// neighborOffsets enumerates the four-connected moves: north, south,
// west, east. Order is fixed so Successors/Predecessors return a
// stable, deterministic ordering for a given vertex.
var neighborOffsets = [4][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

// neighborsOf appends every in-bounds four-connected neighbor of v to
// dst and returns the result, reusing dst's backing array when it has
// spare capacity.
func (e *Engine) neighborsOf(v VertexID, dst []VertexID) []VertexID {
	for _, off := range neighborOffsets {
		n := VertexID{v[0] + off[0], v[1] + off[1]}
		if e.inBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
