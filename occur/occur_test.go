package occur

import (
	"testing"

	"github.com/ericr/saturday/arena"
	"github.com/ericr/saturday/lit"
)

func TestLookupFiltersDeletedAndDuplicateHandles(t *testing.T) {
	ca := arena.NewAllocator()
	cr1 := ca.Alloc([]lit.Lit{lit.New(0, false)}, false)
	cr2 := ca.Alloc([]lit.Lit{lit.New(0, false)}, false)

	idx := New(ca)
	idx.Init(0)
	idx.Push(0, cr1)
	idx.Push(0, cr1)
	idx.Push(0, cr2)

	ca.Free(cr2)
	idx.Smudge(0)

	got := idx.Lookup(0)
	if len(got) != 1 || got[0] != cr1 {
		t.Fatalf("Lookup(0) = %v, want [cr1] after deleting cr2 and deduping cr1", got)
	}
}

func TestCostIsProductOfPolarityCounts(t *testing.T) {
	idx := New(arena.NewAllocator())
	idx.Init(0)

	idx.IncCount(lit.New(0, false))
	idx.IncCount(lit.New(0, false))
	idx.IncCount(lit.New(0, true))

	if got := idx.Cost(0); got != 2 {
		t.Fatalf("Cost(0) = %d, want 2 (pos=2, neg=1)", got)
	}
}

func TestClearDropsList(t *testing.T) {
	ca := arena.NewAllocator()
	cr := ca.Alloc([]lit.Lit{lit.New(0, false)}, false)

	idx := New(ca)
	idx.Init(0)
	idx.Push(0, cr)
	idx.Clear(0)

	if got := idx.Lookup(0); len(got) != 0 {
		t.Fatalf("Lookup(0) after Clear = %v, want empty", got)
	}
}
