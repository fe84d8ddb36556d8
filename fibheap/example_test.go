// File: fibheap/example_test.go
package fibheap_test

import (
	"fmt"

	"github.com/go-lpastar/lpastar/fibheap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: basic insert/extract ordering
////////////////////////////////////////////////////////////////////////////////

// ExampleHeap demonstrates that entries come back out in lexicographic
// (key1, key2) order regardless of insertion order.
func ExampleHeap() {
	h := fibheap.New[float64, string](0)
	h.Insert(5, 0, "x")
	h.Insert(3, 0, "y")
	h.Insert(3, 1, "z")
	h.Insert(4, 0, "w")

	for !h.IsEmpty() {
		v, _ := h.ExtractMin()
		fmt.Println(v)
	}
	// Output:
	// y
	// z
	// w
	// x
}

////////////////////////////////////////////////////////////////////////////////
// Example: DecreaseKey promoting an entry to the front
////////////////////////////////////////////////////////////////////////////////

// ExampleHeap_DecreaseKey demonstrates that lowering an entry's key can
// make it the next one extracted, even though it was inserted last.
func ExampleHeap_DecreaseKey() {
	h := fibheap.New[float64, string](0)
	h.Insert(5, 0, "x")
	h.Insert(3, 0, "y")
	h.Insert(4, 0, "w")
	hx := h.Insert(5, 0, "x2")

	h.DecreaseKey(hx, 1, 0)

	v, _ := h.ExtractMin()
	fmt.Println(v)
	// Output:
	// x2
}

////////////////////////////////////////////////////////////////////////////////
// Example: Delete removing an arbitrary live entry
////////////////////////////////////////////////////////////////////////////////

// ExampleHeap_Delete demonstrates removing a non-minimum entry before it
// is ever extracted.
func ExampleHeap_Delete() {
	h := fibheap.New[float64, string](0)
	h.Insert(1, 0, "a")
	hb := h.Insert(2, 0, "b")
	h.Insert(3, 0, "c")

	h.Delete(hb)

	for !h.IsEmpty() {
		v, _ := h.ExtractMin()
		fmt.Println(v)
	}
	// Output:
	// a
	// c
}
