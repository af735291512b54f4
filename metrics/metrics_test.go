package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeStats struct {
	conflicts, propagations, decisions, restarts, vars, merges int
}

func (f fakeStats) NConflicts() int    { return f.conflicts }
func (f fakeStats) NPropagations() int { return f.propagations }
func (f fakeStats) NDecisions() int    { return f.decisions }
func (f fakeStats) NRestarts() int     { return f.restarts }
func (f fakeStats) NVars() int         { return f.vars }
func (f fakeStats) Merges() int        { return f.merges }

func TestReportSetsGauges(t *testing.T) {
	Report(fakeStats{conflicts: 3, propagations: 10, decisions: 4, restarts: 1, vars: 7, merges: 2}, 2)

	if got := testutil.ToFloat64(conflicts); got != 3 {
		t.Fatalf("conflicts gauge = %v, want 3", got)
	}
	if got := testutil.ToFloat64(variables); got != 7 {
		t.Fatalf("variables gauge = %v, want 7", got)
	}
	if got := testutil.ToFloat64(eliminatedVars); got != 2 {
		t.Fatalf("eliminatedVars gauge = %v, want 2", got)
	}
}
