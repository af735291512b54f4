package order

import (
	"testing"

	"github.com/ericr/saturday/tribool"
)

func TestOrderChoosePicksUnassignedVar(t *testing.T) {
	assigns := []tribool.Tribool{tribool.True, tribool.False, tribool.Undef}
	activity := []float64{1, 2, 3}
	decisionVar := []bool{true, true, true}

	ord := New(&assigns, &activity, &decisionVar)
	ord.Init()

	if v := ord.Choose(); v != 3 {
		t.Fatalf("Choose() = %d, want 3 (the only undef var)", v)
	}
}

func TestOrderPushMakesVarChoosableAgain(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef}
	activity := []float64{1}
	decisionVar := []bool{true}

	ord := New(&assigns, &activity, &decisionVar)
	ord.Init()

	ord.Choose()
	ord.Push(0)

	if v := ord.Choose(); v != 1 {
		t.Fatalf("Choose() = %d after Push, want 1", v)
	}
}

func TestOrderRebuildLimitsChoices(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef, tribool.Undef, tribool.Undef}
	activity := []float64{1, 1, 1}
	decisionVar := []bool{true, true, true}

	ord := New(&assigns, &activity, &decisionVar)
	ord.Init()

	ord.Rebuild([]int{2})

	if v := ord.Choose(); v != 3 {
		t.Fatalf("Choose() = %d after Rebuild([2]), want 3", v)
	}
}

func TestOrderExcludesIneligibleVars(t *testing.T) {
	assigns := []tribool.Tribool{tribool.Undef, tribool.Undef}
	activity := []float64{1, 1}
	decisionVar := []bool{false, true}

	ord := New(&assigns, &activity, &decisionVar)
	ord.Init()

	if v := ord.Choose(); v != 2 {
		t.Fatalf("Choose() = %d, want 2 (var 0 is ineligible)", v)
	}
}
