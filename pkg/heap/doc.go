// Package heap provides an array-backed binary heap over float64 keys.
//
// A [Heap] is fixed to one [Mode] at construction: [Max] keeps the largest key
// at the root, [Min] the smallest. The backing slice is read as a complete
// binary tree:
//
//	parent(i) = (i-1)/2
//	left(i)   = 2i+1
//	right(i)  = 2i+2
//
// # Invariant
//
// After every [Heap.Insert] and [Heap.ExtractRoot], no parent/child pair
// needs a swap under the heap's mode. Both repair walks (sift-up after an
// insert, sift-down after a root removal) use the same swap predicate, so the
// two modes share one implementation.
//
// # Empty heaps
//
// [Heap.ExtractRoot] and [Heap.Peek] report an empty heap through their
// second return value instead of an error. Callers drain a heap with:
//
//	for {
//	    v, ok := h.ExtractRoot()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(v)
//	}
//
// # Concurrency
//
// A Heap is not safe for concurrent use. Callers sharing one instance must
// serialize access themselves.
package heap
