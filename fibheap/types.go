package fibheap

import "golang.org/x/exp/constraints"

// Handle is a stable reference to an entry inserted into a Heap. It
// remains valid — and may be used with DecreaseKey or Delete — from the
// moment Insert returns it until the entry is removed by ExtractMin or
// Delete, regardless of how many operations touch other handles in the
// meantime (spec.md §4.1's "stability" contract).
//
// The zero Handle never names a live entry: arena slot 0 is reserved,
// so a Handle-typed struct field defaults to "not currently enqueued"
// without needing a separate boolean.
type Handle struct {
	idx uint32
	gen uint32
}

// NoHandle is the zero Handle; it never names a live entry.
var NoHandle = Handle{}

// entry is one node of the Fibonacci heap's forest of trees. All four
// structural links are arena Handles rather than pointers, so the
// structure has no interior pointers for the garbage collector and no
// possibility of dangling references once the payload type V is itself
// pointer-free.
type entry[K constraints.Float, V any] struct {
	key1, key2    K
	degree        int
	mark          bool
	parent, child Handle
	left, right   Handle // circular doubly-linked sibling ring
	payload       V
	gen           uint32
	alive         bool
}

// Heap is a mergeable min-priority-queue of (key1, key2, payload)
// entries ordered lexicographically on (key1, key2). The zero value is
// not usable; construct one with New.
type Heap[K constraints.Float, V any] struct {
	arena []entry[K, V]
	free  []uint32
	min   Handle
	n     int
}

// New constructs an empty Heap. capHint pre-sizes the backing arena to
// reduce reallocation when the expected entry count is known (e.g. the
// vertex count of a grid); pass 0 if unknown.
func New[K constraints.Float, V any](capHint int) *Heap[K, V] {
	h := &Heap[K, V]{
		arena: make([]entry[K, V], 1, capHint+1), // slot 0 reserved
	}
	return h
}

// Len reports the number of entries currently in the heap.
func (h *Heap[K, V]) Len() int { return h.n }

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[K, V]) IsEmpty() bool { return h.n == 0 }

// Reset empties the heap while retaining the arena's backing storage,
// so a caller that rebuilds the same search repeatedly (lpastar.Engine
// between independent searches) does not re-pay allocation cost.
func (h *Heap[K, V]) Reset() {
	h.arena = h.arena[:1]
	h.free = h.free[:0]
	h.min = NoHandle
	h.n = 0
}

// less reports whether (a1,a2) sorts strictly before (b1,b2) in
// lexicographic order.
func less[K constraints.Float](a1, a2, b1, b2 K) bool {
	return a1 < b1 || (a1 == b1 && a2 < b2)
}

// lessOrEqual reports whether (a1,a2) sorts at or before (b1,b2).
func lessOrEqual[K constraints.Float](a1, a2, b1, b2 K) bool {
	return a1 < b1 || (a1 == b1 && a2 <= b2)
}

// validate resolves a Handle to its live entry, or ErrInvalidHandle if
// the handle is stale (its slot was released) or was never issued by
// this heap.
func (h *Heap[K, V]) validate(hd Handle) (*entry[K, V], error) {
	if hd.idx == 0 || int(hd.idx) >= len(h.arena) {
		return nil, ErrInvalidHandle
	}
	e := &h.arena[hd.idx]
	if !e.alive || e.gen != hd.gen {
		return nil, ErrInvalidHandle
	}
	return e, nil
}

// alloc takes a slot from the free-list or grows the arena, and
// returns it as a singleton ring (its own left/right neighbor).
func (h *Heap[K, V]) alloc(key1, key2 K, payload V) Handle {
	var idx uint32
	if n := len(h.free); n > 0 {
		idx = h.free[n-1]
		h.free = h.free[:n-1]
		h.arena[idx].gen++
	} else {
		idx = uint32(len(h.arena))
		h.arena = append(h.arena, entry[K, V]{})
	}
	hd := Handle{idx: idx, gen: h.arena[idx].gen}
	e := &h.arena[idx]
	e.key1, e.key2 = key1, key2
	e.degree = 0
	e.mark = false
	e.parent, e.child = NoHandle, NoHandle
	e.left, e.right = hd, hd
	e.payload = payload
	e.alive = true
	return hd
}

// release marks hd's slot free for reuse and clears the payload so it
// can be garbage-collected; the generation counter is bumped on the
// next alloc of this slot, which is what makes a retained stale Handle
// provably detectable rather than silently aliasing the next occupant.
func (h *Heap[K, V]) release(hd Handle) {
	e := &h.arena[hd.idx]
	var zero V
	e.payload = zero
	e.alive = false
	e.parent, e.child, e.left, e.right = NoHandle, NoHandle, NoHandle, NoHandle
	h.free = append(h.free, hd.idx)
}
