// Package fibheap implements a mergeable min-priority-queue backed by a
// Fibonacci heap, keyed on a lexicographic pair (k1, k2) of real numbers.
//
// What:
//
//   - Insert, PeekMin, ExtractMin, DecreaseKey, Delete, IsEmpty, Len.
//   - Insert/PeekMin/DecreaseKey run in amortized O(1); ExtractMin and
//     Delete run in amortized O(log n).
//   - Keys compare lexicographically: (a1,a2) < (b1,b2) iff a1<b1, or
//     a1==b1 and a2<b2. +Inf and -Inf (via math.Inf) are valid key
//     components and compare as expected at both ends.
//
// Why:
//
//   - The Lifelong Planning A* search in package lpastar needs
//     decrease-key and delete-by-handle in amortized O(1)/O(log n) to
//     stay efficient across repeated incremental replans; a binary heap
//     (as in container/heap) only offers O(log n) decrease-key via a
//     linear index scan, and no O(1) arbitrary delete.
//
// Structure:
//
//   - Entries live in an arena (a slice), addressed by a stable Handle
//     rather than a pointer, so the heap has no interior pointers for
//     Go's garbage collector to chase and handles stay valid across
//     any operation on a different handle (see Handle's doc comment).
//   - The four structural links (parent, one child, left/right sibling)
//     are Handles into the same arena. Sibling lists are circular
//     doubly-linked rings: the root list and every child list.
//
// Complexity and amortized analysis follow Fredman & Tarjan's original
// Fibonacci heap construction; see CLRS chapter 19 for the potential-
// function argument behind the O(1) amortized bounds on Insert and
// DecreaseKey and the cascading-cut bound on tree degree growth.
package fibheap
