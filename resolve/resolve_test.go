package resolve

import (
	"testing"

	"github.com/ericr/saturday/lit"
)

// a = var 0, b = var 1, x = var 2.
func TestMergeProducesResolventOnSharedPivot(t *testing.T) {
	a, b, x := lit.New(0, false), lit.New(1, false), lit.New(2, false)
	ps := []lit.Lit{x, a}    // (x ∨ a)
	qs := []lit.Lit{x.Not(), b} // (~x ∨ b)

	out, ok := Merge(ps, qs, 2)
	if !ok {
		t.Fatal("Merge reported tautology for (x∨a) and (~x∨b)")
	}
	if len(out) != 2 || !contains(out, a) || !contains(out, b) {
		t.Fatalf("Merge = %v, want {a, b}", out)
	}
}

func TestMergeDetectsTautology(t *testing.T) {
	a, x := lit.New(0, false), lit.New(2, false)
	ps := []lit.Lit{x, a}
	qs := []lit.Lit{x.Not(), a.Not()}

	if _, ok := Merge(ps, qs, 2); ok {
		t.Fatal("Merge did not detect tautology for (x∨a) and (~x∨~a)")
	}
}

func TestMergeSizeMatchesMergeLength(t *testing.T) {
	a, b, x := lit.New(0, false), lit.New(1, false), lit.New(2, false)
	ps := []lit.Lit{x, a}
	qs := []lit.Lit{x.Not(), b}

	size, ok := MergeSize(ps, qs, 2)
	out, ok2 := Merge(ps, qs, 2)

	if !ok || !ok2 || size != len(out) {
		t.Fatalf("MergeSize = %d, Merge len = %d, want equal", size, len(out))
	}
}

func TestMergeSizeDetectsTautology(t *testing.T) {
	a, x := lit.New(0, false), lit.New(2, false)
	ps := []lit.Lit{x, a}
	qs := []lit.Lit{x.Not(), a.Not()}

	if _, ok := MergeSize(ps, qs, 2); ok {
		t.Fatal("MergeSize did not detect tautology")
	}
}

func contains(lits []lit.Lit, l lit.Lit) bool {
	for _, p := range lits {
		if p == l {
			return true
		}
	}
	return false
}
