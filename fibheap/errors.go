package fibheap

import "errors"

// Sentinel errors returned by the fibheap package.
var (
	// ErrEmptyHeap indicates ExtractMin was called on a heap with no
	// entries.
	ErrEmptyHeap = errors.New("fibheap: heap is empty")

	// ErrKeyNotDecreasing indicates DecreaseKey was called with a key
	// that does not compare less-than-or-equal to the entry's current
	// key. The heap is left unchanged.
	ErrKeyNotDecreasing = errors.New("fibheap: new key does not decrease current key")

	// ErrInvalidHandle indicates a Handle was used after its entry was
	// removed by ExtractMin or Delete, or the Handle never named a live
	// entry in this heap.
	ErrInvalidHandle = errors.New("fibheap: handle does not name a live entry")
)
