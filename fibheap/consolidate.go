package fibheap

// maxDegree bounds the degree table used by consolidate. log_phi(2^64)
// is approximately 92.2; 128 leaves comfortable headroom, matching
// spec.md §4.1's stated bound.
const maxDegree = 128

// mergeRings splices the circular ring containing a together with the
// circular ring containing b, producing one ring. Both a and b must
// currently be valid ring members (possibly singletons). This is the
// same technique used to append a new root next to the current
// minimum on Insert, and to promote an extracted root's entire child
// ring into the root list in one step.
func (h *Heap[K, V]) mergeRings(a, b Handle) {
	ae, be := &h.arena[a.idx], &h.arena[b.idx]
	ar, br := ae.right, be.left
	ae.right = b
	be.left = a
	h.arena[ar.idx].left = br
	h.arena[br.idx].right = ar
}

// consolidate merges root-list trees of equal degree until at most one
// tree of each degree remains, then rebuilds the root ring from the
// surviving trees and repositions min. Amortized O(log n); called
// after every ExtractMin that leaves at least one root.
func (h *Heap[K, V]) consolidate() {
	// Capture the root list into a flat slice before mutating it: the
	// ring is rewritten in place as roots are linked under one another.
	var roots []Handle
	start := h.min
	cur := start
	for {
		roots = append(roots, cur)
		cur = h.arena[cur.idx].right
		if cur == start {
			break
		}
	}

	var table [maxDegree]Handle
	for _, w := range roots {
		x := w
		d := h.arena[x.idx].degree
		for table[d] != NoHandle {
			y := table[d]
			xe, ye := &h.arena[x.idx], &h.arena[y.idx]
			if less(ye.key1, ye.key2, xe.key1, xe.key2) {
				// y's key is strictly smaller: link x under y instead.
				// A tie leaves x as the winner (arbitrary tie-break).
				x, y = y, x
			}
			h.link(y, x)
			table[d] = NoHandle
			d++
		}
		table[d] = x
	}

	h.min = NoHandle
	for _, x := range table {
		if x == NoHandle {
			continue
		}
		xe := &h.arena[x.idx]
		xe.left, xe.right = x, x
		if h.min == NoHandle {
			h.min = x
		} else {
			h.mergeRings(h.min, x)
			if less(xe.key1, xe.key2, h.arena[h.min.idx].key1, h.arena[h.min.idx].key2) {
				h.min = x
			}
		}
	}
}

// link removes y from the root list and makes it a child of x.
func (h *Heap[K, V]) link(y, x Handle) {
	ye := &h.arena[y.idx]
	le, re := ye.left, ye.right
	h.arena[le.idx].right = re
	h.arena[re.idx].left = le

	xe := &h.arena[x.idx]
	ye.parent = x
	if xe.child == NoHandle {
		xe.child = y
		ye.left, ye.right = y, y
	} else {
		c := xe.child
		ce := &h.arena[c.idx]
		yl := ce.left
		h.arena[yl.idx].right = y
		ce.left = y
		ye.left, ye.right = yl, c
	}
	xe.degree++
	ye.mark = false
}

// cut detaches x from y's child ring and adds it back to the root
// list, clearing its mark (it is a fresh root, not a lost child).
func (h *Heap[K, V]) cut(x, y Handle) {
	xe := &h.arena[x.idx]
	ye := &h.arena[y.idx]
	if xe.right == x {
		ye.child = NoHandle
	} else {
		le, re := xe.left, xe.right
		h.arena[le.idx].right = re
		h.arena[re.idx].left = le
		if ye.child == x {
			ye.child = re
		}
	}
	ye.degree--

	xe.parent = NoHandle
	xe.mark = false
	me := &h.arena[h.min.idx]
	ml := me.left
	h.arena[ml.idx].right = x
	xe.left, xe.right = ml, h.min
	me.left = x
}

// cascadingCut propagates cuts up the tree: the first child lost by a
// non-root just marks it; the second triggers a cut of the node itself
// and recurses on its former parent. Bounded by tree depth.
func (h *Heap[K, V]) cascadingCut(y Handle) {
	ye := &h.arena[y.idx]
	z := ye.parent
	if z == NoHandle {
		return
	}
	if !ye.mark {
		ye.mark = true
		return
	}
	h.cut(y, z)
	h.cascadingCut(z)
}
