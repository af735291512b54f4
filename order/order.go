// Package order assists the search engine with dynamic variable ordering.
// It is a thin domain wrapper over pqueue.Heap: the search engine only ever
// needs "give me the next variable to decide on", keyed by activity.
package order

import (
	"github.com/ericr/saturday/internal/pqueue"
	"github.com/ericr/saturday/lit"
	"github.com/ericr/saturday/tribool"
)

// Order assists with dynamic variable ordering.
type Order struct {
	heap        *pqueue.Heap
	assigns     *[]tribool.Tribool
	activity    *[]float64
	decisionVar *[]bool
}

// New returns a new Order. decisionVar marks which variables are eligible to
// be chosen at all; variables the preprocessor has eliminated or substituted
// away are excluded so the search never has to "decide" a variable that no
// longer appears in any live clause.
func New(assigns *[]tribool.Tribool, activity *[]float64, decisionVar *[]bool) *Order {
	o := &Order{
		assigns:     assigns,
		activity:    activity,
		decisionVar: decisionVar,
	}
	o.heap = pqueue.New(func(a, b int) bool {
		return (*o.activity)[a] < (*o.activity)[b]
	})
	return o
}

// Init inserts every eligible variable into the heap.
func (o *Order) Init() {
	dv := *o.decisionVar
	for v := range *o.activity {
		if dv[v] {
			o.heap.Insert(v)
		}
	}
}

// NewVar adds a new var to the order.
func (o *Order) NewVar() {
	n := len(*o.activity) - 1
	o.heap.Grow(n + 1)
	if (*o.decisionVar)[n] {
		o.heap.Insert(n)
	}
}

// Choose returns an unbound variable, or the integer value of lit.Undef when
// there are no vars left to choose from.
func (o *Order) Choose() int {
	a := *o.assigns

	for !o.heap.Empty() {
		if v := o.heap.RemoveMin(); a[v].Undef() {
			return v + 1
		}
	}
	return int(lit.Undef)
}

// Push pushes a variable back onto the heap, e.g. after it is unassigned.
func (o *Order) Push(v int) {
	if (*o.decisionVar)[v] {
		o.heap.Insert(v)
	}
}

// Fix re-heapifies v after its activity has changed. A no-op for variables
// the decision heuristic is no longer allowed to pick.
func (o *Order) Fix(v int) {
	if (*o.decisionVar)[v] {
		o.heap.Update(v)
	}
}

// Rebuild discards the current heap and reinserts exactly the variables in
// vs, in order. Used after preprocessing removes eliminated variables from
// the decision order.
func (o *Order) Rebuild(vs []int) {
	o.heap.Clear()
	for _, v := range vs {
		o.heap.Insert(v)
	}
}
