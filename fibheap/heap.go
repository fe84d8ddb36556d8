package fibheap

import "math"

// Insert adds a new entry with the given key and payload to the heap
// and returns a Handle that stays valid until the entry is removed by
// ExtractMin or Delete. Amortized O(1).
func (h *Heap[K, V]) Insert(k1, k2 K, payload V) Handle {
	hd := h.alloc(k1, k2, payload)
	if h.min == NoHandle {
		h.min = hd
	} else {
		h.mergeRings(h.min, hd)
		if less(k1, k2, h.arena[h.min.idx].key1, h.arena[h.min.idx].key2) {
			h.min = hd
		}
	}
	h.n++
	return hd
}

// PeekMin returns the key of the minimum entry without removing it.
// ok is false when the heap is empty. Non-mutating, O(1).
func (h *Heap[K, V]) PeekMin() (k1, k2 K, ok bool) {
	if h.min == NoHandle {
		return 0, 0, false
	}
	e := &h.arena[h.min.idx]
	return e.key1, e.key2, true
}

// ExtractMin removes and returns the payload of the minimum entry.
// Amortized O(log n); returns ErrEmptyHeap if the heap has no entries.
func (h *Heap[K, V]) ExtractMin() (V, error) {
	var zero V
	if h.min == NoHandle {
		return zero, ErrEmptyHeap
	}
	z := h.min
	ze := &h.arena[z.idx]

	if ze.child != NoHandle {
		// Clear parent/mark on every child before promoting the whole
		// child ring into the root list in one splice.
		c := ze.child
		cur := c
		for {
			ce := &h.arena[cur.idx]
			ce.parent = NoHandle
			ce.mark = false
			cur = ce.right
			if cur == c {
				break
			}
		}
		h.mergeRings(z, c)
		ze.child = NoHandle
	}

	payload := ze.payload
	if ze.right == z {
		// z was the sole root and had no children (a merge above would
		// have left ze.right pointing into the child ring instead).
		h.min = NoHandle
	} else {
		le, re := ze.left, ze.right
		h.arena[le.idx].right = re
		h.arena[re.idx].left = le
		h.min = re
	}
	h.n--
	h.release(z)

	if h.min != NoHandle {
		h.consolidate()
	}
	return payload, nil
}

// DecreaseKey lowers the key of the entry named by hd to (k1,k2). The
// new key must compare lexicographically less-than-or-equal to the
// entry's current key; otherwise the heap is left unchanged and
// ErrKeyNotDecreasing is returned. ErrInvalidHandle is returned if hd
// does not name a live entry. Amortized O(1).
func (h *Heap[K, V]) DecreaseKey(hd Handle, k1, k2 K) error {
	e, err := h.validate(hd)
	if err != nil {
		return err
	}
	if !lessOrEqual(k1, k2, e.key1, e.key2) {
		return ErrKeyNotDecreasing
	}
	h.decreaseKeyUnchecked(hd, k1, k2)
	return nil
}

// decreaseKeyUnchecked performs the cut/cascading-cut/min-update dance
// without re-validating hd or re-checking the ordering; callers must
// have already established both.
func (h *Heap[K, V]) decreaseKeyUnchecked(hd Handle, k1, k2 K) {
	e := &h.arena[hd.idx]
	e.key1, e.key2 = k1, k2
	if y := e.parent; y != NoHandle {
		ye := &h.arena[y.idx]
		if less(k1, k2, ye.key1, ye.key2) {
			h.cut(hd, y)
			h.cascadingCut(y)
		}
	}
	if h.min == NoHandle || less(k1, k2, h.arena[h.min.idx].key1, h.arena[h.min.idx].key2) {
		h.min = hd
	}
}

// Delete removes the entry named by hd, discarding its payload. It is
// defined as DecreaseKey to (-Inf, -Inf) followed by ExtractMin
// (spec.md §4.1). Amortized O(log n).
func (h *Heap[K, V]) Delete(hd Handle) error {
	if _, err := h.validate(hd); err != nil {
		return err
	}
	negInf := K(math.Inf(-1))
	h.decreaseKeyUnchecked(hd, negInf, negInf)
	// -Inf is the global minimum of any non-empty heap, but a tie
	// against an already-minimal entry would leave h.min pointing at
	// that other entry rather than hd; force it so ExtractMin removes
	// exactly the entry the caller asked to delete.
	h.min = hd
	_, err := h.ExtractMin()
	return err
}
