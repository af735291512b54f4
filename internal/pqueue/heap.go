// Package pqueue implements a binary heap over dense integer keys (variable
// indices, in practice) ordered by a caller-supplied comparator. It is the
// one piece of polymorphism shared by the decision-variable order and the
// elimination heap: both need insert/increase/update/removeMin over ints,
// differing only in what "less" means.
package pqueue

// Heap is a min-heap over small integers in [0, n). Items are referenced by
// value, not by heap position; indices tracks each item's current slot (or
// -1 if absent) so Increase/Update can find it without a scan.
type Heap struct {
	less    func(a, b int) bool
	content []int
	indices []int
}

// New returns an empty heap ordered by less(a, b): "a before b".
func New(less func(a, b int) bool) *Heap {
	return &Heap{less: less}
}

// Len returns the number of items in the heap.
func (h *Heap) Len() int {
	return len(h.content)
}

// Empty reports whether the heap holds no items.
func (h *Heap) Empty() bool {
	return len(h.content) == 0
}

// Contains reports whether n is currently in the heap.
func (h *Heap) Contains(n int) bool {
	return n < len(h.indices) && h.indices[n] >= 0
}

// Grow ensures the heap can track items up to n (exclusive) without
// inserting them; newVar-style callers use this to pre-size indices.
func (h *Heap) Grow(n int) {
	for i := len(h.indices); i < n; i++ {
		h.indices = append(h.indices, -1)
	}
}

// Insert adds n to the heap. A no-op if n is already present.
func (h *Heap) Insert(n int) {
	if h.Contains(n) {
		return
	}
	h.Grow(n + 1)
	h.indices[n] = len(h.content)
	h.content = append(h.content, n)
	h.percolateUp(h.indices[n])
}

// Increase re-heapifies after n's key has gotten smaller (more urgent) by
// moving it toward the root only; a no-op if n is absent. Update handles a
// key that moved in either direction.
func (h *Heap) Increase(n int) {
	if h.Contains(n) {
		h.percolateUp(h.indices[n])
	}
}

// Update re-heapifies n wherever its key moved, inserting it if absent.
func (h *Heap) Update(n int) {
	if !h.Contains(n) {
		h.Insert(n)
		return
	}
	h.percolateUp(h.indices[n])
	h.percolateDown(h.indices[n])
}

// RemoveMin pops and returns the least item per less().
func (h *Heap) RemoveMin() int {
	x := h.content[0]
	last := len(h.content) - 1
	h.content[0] = h.content[last]
	h.indices[h.content[0]] = 0
	h.indices[x] = -1
	h.content = h.content[:last]
	if len(h.content) > 1 {
		h.percolateDown(0)
	}
	return x
}

// Clear empties the heap; Contains(n) is false for every n afterward.
func (h *Heap) Clear() {
	for _, n := range h.content {
		h.indices[n] = -1
	}
	h.content = h.content[:0]
}

func left(i int) int   { return i*2 + 1 }
func right(i int) int  { return (i + 1) * 2 }
func parent(i int) int { return (i - 1) >> 1 }

func (h *Heap) percolateUp(i int) {
	x := h.content[i]
	p := parent(i)
	for i != 0 && h.less(x, h.content[p]) {
		h.content[i] = h.content[p]
		h.indices[h.content[p]] = i
		i = p
		p = parent(p)
	}
	h.content[i] = x
	h.indices[x] = i
}

func (h *Heap) percolateDown(i int) {
	x := h.content[i]
	for left(i) < len(h.content) {
		child := left(i)
		if r := right(i); r < len(h.content) && h.less(h.content[r], h.content[child]) {
			child = r
		}
		if !h.less(h.content[child], x) {
			break
		}
		h.content[i] = h.content[child]
		h.indices[h.content[i]] = i
		i = child
	}
	h.content[i] = x
	h.indices[x] = i
}
