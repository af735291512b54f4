// Package elimheap is the variable-elimination priority queue: a min-heap
// over variables keyed by cost(v) = n_occ[pos(v)] * n_occ[neg(v)], so the
// driver always attempts the cheapest-looking elimination next. It is a
// pqueue.Heap parameterized with that cost as the comparator, matching the
// decision-order heap's shape but not its key.
package elimheap

import (
	"github.com/ericr/saturday/internal/pqueue"
	"github.com/ericr/saturday/occur"
)

// Heap is the elimination heap over variables.
type Heap struct {
	heap *pqueue.Heap
}

// New returns a Heap whose cost function reads live occurrence counts from
// occ.
func New(occ *occur.Index) *Heap {
	return &Heap{
		heap: pqueue.New(func(a, b int) bool {
			return occ.Cost(a) < occ.Cost(b)
		}),
	}
}

// Insert adds v to the heap. A variable may appear at most once.
func (h *Heap) Insert(v int) {
	h.heap.Insert(v)
}

// Increase re-heapifies v after its occurrence counts rose (cost went up).
func (h *Heap) Increase(v int) {
	h.heap.Update(v)
}

// Update re-heapifies v after its occurrence counts fell (cost went down),
// or inserts it if it had dropped out of the heap.
func (h *Heap) Update(v int) {
	h.heap.Update(v)
}

// Contains reports whether v is currently in the heap.
func (h *Heap) Contains(v int) bool {
	return h.heap.Contains(v)
}

// RemoveMin pops and returns the cheapest variable to eliminate.
func (h *Heap) RemoveMin() int {
	return h.heap.RemoveMin()
}

// Empty reports whether the heap holds no variables.
func (h *Heap) Empty() bool {
	return h.heap.Empty()
}

// Clear empties the heap.
func (h *Heap) Clear() {
	h.heap.Clear()
}
