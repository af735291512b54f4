package simp

import "github.com/ericr/saturday/arena"

// crefQueue is a FIFO of CRefs — push at the back, pop from the front —
// mirroring lit.Queue's front-slicing approach. The subsumption queue needs
// FIFO order: a candidate pushed while an earlier one is still pending must
// wait its turn, not jump ahead of it.
type crefQueue struct {
	items []arena.CRef
}

// push appends cr to the back of the queue.
func (q *crefQueue) push(cr arena.CRef) {
	q.items = append(q.items, cr)
}

// pop removes and returns the front of the queue, or arena.Undef if empty.
func (q *crefQueue) pop() arena.CRef {
	if len(q.items) == 0 {
		return arena.Undef
	}
	first := q.items[0]
	q.items = q.items[1:]

	return first
}

// clear empties the queue.
func (q *crefQueue) clear() {
	q.items = nil
}

// len returns the number of items still queued.
func (q *crefQueue) len() int {
	return len(q.items)
}
